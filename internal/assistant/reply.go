package assistant

import "context"

type Status int

const (
	StatusNormal Status = iota
	StatusExit
)

// Reply is the outcome of one dispatch turn. When Deferred is set the
// Text is only an interim acknowledgement; the caller must run
// Deferred off the UI loop and render its result as a second message.
type Reply struct {
	Status   Status
	Text     string
	Deferred func(context.Context) string
}
