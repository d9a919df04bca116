package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"lee/pkg/audioconv"
)

// RemoteRecognizer uploads the captured turn as WAV to a speech
// recognition endpoint with a fixed language hint.
type RemoteRecognizer struct {
	http     *http.Client
	endpoint string
	language string
}

func NewRemoteRecognizer(client *http.Client, endpoint, language string) *RemoteRecognizer {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if language == "" {
		language = "tr-TR"
	}
	return &RemoteRecognizer{http: client, endpoint: endpoint, language: language}
}

func (r *RemoteRecognizer) Transcribe(ctx context.Context, pcm []float32) (string, error) {
	if len(pcm) == 0 {
		return "", nil
	}

	wav, err := audioconv.EncodeWAV16k(pcm)
	if err != nil {
		return "", fmt.Errorf("encode upload: %w", err)
	}

	q := url.Values{}
	q.Set("lang", r.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint+"?"+q.Encode(), bytes.NewReader(wav))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "audio/wav")

	resp, err := r.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("recognize: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// A miss comes back as an empty or absent text field, not an error.
	return gjson.GetBytes(body, "text").String(), nil
}

func (r *RemoteRecognizer) Close() error { return nil }
