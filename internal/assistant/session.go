package assistant

import (
	"context"
	"sync"
	"time"
)

const (
	teaQuestion  = "Çay molası! Çay içtin mi?"
	bootGreeting = "Merhaba! Ben Lee. 'saat kaç' ya da 'not al: ...' diyebilirsin. Hazır başlamışken: çay içtin mi?"

	replyTeaYes   = "Afiyet olsun! Birkaç saate yine sorarım."
	replyTeaNo    = "Olmaz öyle, demlik hazırdı! Neyse, sonra yine sorarım."
	replyTeaAgain = "Cevabı kaçırdım: çay içtin mi, evet mi hayır mı?"
)

// Session owns the only piece of conversational state there is:
// whether a tea check-in question is waiting for an answer.
type Session struct {
	mu       sync.Mutex
	awaiting bool

	interval time.Duration
	prompts  chan string
}

func NewSession(interval time.Duration) *Session {
	if interval <= 0 {
		interval = 2 * time.Hour
	}
	return &Session{
		interval: interval,
		prompts:  make(chan string, 1),
	}
}

// Prompts delivers scheduled check-in questions to the UI loop.
func (s *Session) Prompts() <-chan string {
	return s.prompts
}

// Ask marks a check-in as outstanding and returns the question text.
// Calling it while an answer is already pending simply re-asks; there
// is never more than one outstanding question.
func (s *Session) Ask() string {
	s.mu.Lock()
	s.awaiting = true
	s.mu.Unlock()
	return teaQuestion
}

func (s *Session) askBoot() string {
	s.mu.Lock()
	s.awaiting = true
	s.mu.Unlock()
	return bootGreeting
}

func (s *Session) AnswerPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.awaiting
}

func (s *Session) resolve() {
	s.mu.Lock()
	s.awaiting = false
	s.mu.Unlock()
}

// Start fires the boot greeting right away, then a check-in on every
// tick until ctx is done.
func (s *Session) Start(ctx context.Context) {
	go func() {
		s.send(s.askBoot())

		t := time.NewTicker(s.interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.send(s.Ask())
			}
		}
	}()
}

// send never blocks the ticker goroutine. A prompt the UI has not
// drained yet is not stacked; the flag stays set and the next tick
// re-asks.
func (s *Session) send(q string) {
	select {
	case s.prompts <- q:
	default:
	}
}
