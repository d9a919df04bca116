package speech

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// Player plays synthesized audio blobs. The mutex serializes playback
// so a new utterance waits for the previous one; there is no barge-in.
type Player struct {
	mu sync.Mutex
}

func NewPlayer() *Player { return &Player{} }

func (p *Player) Play(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	streamer, format, err := decode(data)
	if err != nil {
		return err
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return err
	}

	done := make(chan bool)
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		done <- true
	})))
	<-done

	return nil
}

// decode sniffs the container; the synthesis service answers with
// mp3, but wav and ogg-vorbis are accepted too.
func decode(data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	rc := io.NopCloser(bytes.NewReader(data))

	switch {
	case len(data) >= 4 && string(data[:4]) == "RIFF":
		return wav.Decode(rc)
	case len(data) >= 4 && string(data[:4]) == "OggS":
		return vorbis.Decode(rc)
	case len(data) >= 3 && string(data[:3]) == "ID3":
		return mp3.Decode(rc)
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		return mp3.Decode(rc)
	}
	return nil, beep.Format{}, errors.New("unrecognized audio container")
}
