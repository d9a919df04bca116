package speech

import "context"

// Recognizer turns captured PCM (mono, 16 kHz, float32 in [-1, 1])
// into text. An empty transcript means the utterance could not be
// understood; callers treat transport errors the same way.
type Recognizer interface {
	Transcribe(ctx context.Context, pcm []float32) (string, error)
	Close() error
}
