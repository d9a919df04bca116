package speech

import "context"

// Listener couples the recorder with a recognizer for one capture
// turn: listen until silence or the time limit, then transcribe.
type Listener struct {
	rec *Recorder
	stt Recognizer
}

func NewListener(rec *Recorder, stt Recognizer) *Listener {
	return &Listener{rec: rec, stt: stt}
}

func (l *Listener) Listen(ctx context.Context) (string, error) {
	pcm, err := l.rec.Record()
	if err != nil {
		return "", err
	}
	if len(pcm) == 0 {
		return "", nil
	}
	return l.stt.Transcribe(ctx, pcm)
}
