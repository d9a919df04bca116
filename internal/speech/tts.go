package speech

import (
	"context"
	"encoding/binary"
	"encoding/xml"
	"fmt"
	"strings"
	"sync"

	log "log/slog"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	VoiceMale   = "tr-TR-AhmetNeural"
	VoiceFemale = "tr-TR-EmelNeural"

	// DefaultTTSEndpoint is the neural read-aloud websocket service.
	DefaultTTSEndpoint = "wss://speech.platform.bing.com/consumer/speech/synthesize/readaloud/edge/v1"

	outputFormat = "audio-24khz-48kbitrate-mono-mp3"
)

// Synthesizer speaks a text frame over the service's websocket
// protocol: one speech.config frame, one SSML frame, then binary
// audio frames until turn.end.
type Synthesizer struct {
	endpoint string

	mu    sync.Mutex
	voice string
}

func NewSynthesizer(endpoint, voice string) *Synthesizer {
	if endpoint == "" {
		endpoint = DefaultTTSEndpoint
	}
	if voice == "" {
		voice = VoiceMale
	}
	return &Synthesizer{endpoint: endpoint, voice: voice}
}

func (s *Synthesizer) Voice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voice
}

// ToggleVoice flips between the two fixed presets and returns the one
// now active.
func (s *Synthesizer) ToggleVoice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.voice == VoiceMale {
		s.voice = VoiceFemale
	} else {
		s.voice = VoiceMale
	}
	return s.voice
}

func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	id := strings.ReplaceAll(uuid.NewString(), "-", "")

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.endpoint+"?ConnectionId="+id, nil)
	if err != nil {
		return nil, fmt.Errorf("dial tts: %w", err)
	}
	defer conn.Close()

	cfg := "Content-Type:application/json; charset=utf-8\r\n" +
		"Path:speech.config\r\n\r\n" +
		`{"context":{"synthesis":{"audio":{"metadataoptions":{"sentenceBoundaryEnabled":"false","wordBoundaryEnabled":"false"},"outputFormat":"` + outputFormat + `"}}}}`
	if err := conn.WriteMessage(websocket.TextMessage, []byte(cfg)); err != nil {
		return nil, fmt.Errorf("send config: %w", err)
	}

	frame := "X-RequestId:" + id + "\r\n" +
		"Content-Type:application/ssml+xml\r\n" +
		"Path:ssml\r\n\r\n" + s.ssml(text)
	if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
		return nil, fmt.Errorf("send ssml: %w", err)
	}

	var audio []byte
	for {
		kind, msg, err := conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("read tts: %w", err)
		}

		switch kind {
		case websocket.TextMessage:
			if strings.Contains(string(msg), "Path:turn.end") {
				return audio, nil
			}
		case websocket.BinaryMessage:
			// Binary frames carry a 2-byte header length prefix,
			// the header, then the audio payload.
			if len(msg) < 2 {
				continue
			}
			hl := int(binary.BigEndian.Uint16(msg[:2]))
			if 2+hl > len(msg) {
				log.Warn("tts frame shorter than its header", "len", len(msg))
				continue
			}
			audio = append(audio, msg[2+hl:]...)
		}
	}
}

func (s *Synthesizer) ssml(text string) string {
	var esc strings.Builder
	_ = xml.EscapeText(&esc, []byte(text))
	return fmt.Sprintf(
		"<speak version='1.0' xmlns='http://www.w3.org/2001/10/synthesis' xml:lang='tr-TR'><voice name='%s'>%s</voice></speak>",
		s.Voice(), esc.String(),
	)
}
