package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

// WhisperRecognizer runs whisper.cpp locally, for setups without a
// reachable transcription service.
type WhisperRecognizer struct {
	model    whisper.Model
	language string
}

func NewWhisperRecognizer(modelPath, language string) (*WhisperRecognizer, error) {
	if modelPath == "" {
		return nil, errors.New("empty model path")
	}
	m, err := whisper.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	if language == "" {
		language = "tr"
	}
	// The service-style hint "tr-TR" maps to whisper's bare code.
	if i := strings.IndexByte(language, '-'); i > 0 {
		language = language[:i]
	}
	return &WhisperRecognizer{model: m, language: language}, nil
}

func (w *WhisperRecognizer) Transcribe(ctx context.Context, pcm []float32) (string, error) {
	if len(pcm) == 0 {
		return "", nil
	}

	wctx, err := w.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("new context: %w", err)
	}
	if err := wctx.SetLanguage(w.language); err != nil {
		return "", fmt.Errorf("set language: %w", err)
	}
	wctx.SetThreads(uint(runtime.NumCPU()))

	if err := wctx.Process(pcm, nil, nil, nil); err != nil {
		return "", fmt.Errorf("process: %w", err)
	}

	var parts []string
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		s, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("next segment: %w", err)
		}
		parts = append(parts, strings.TrimSpace(s.Text))
	}

	return strings.Join(parts, " "), nil
}

func (w *WhisperRecognizer) Close() error {
	if w.model == nil {
		return nil
	}
	return w.model.Close()
}
