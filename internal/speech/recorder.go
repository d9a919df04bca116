// Package speech covers one spoken turn end to end: microphone
// capture, transcription, synthesis and playback.
package speech

import (
	"math"
	"time"

	"github.com/gordonklaus/portaudio"
)

// Recorder captures mono 16 kHz PCM from the default input device.
// Capture stops on trailing silence or after maxListen, whichever
// comes first.
type Recorder struct {
	maxListen time.Duration
}

func NewRecorder(maxListen time.Duration) *Recorder {
	if maxListen <= 0 {
		maxListen = 8 * time.Second
	}
	return &Recorder{maxListen: maxListen}
}

func (r *Recorder) Init() error {
	return portaudio.Initialize()
}

func (r *Recorder) Close() {
	portaudio.Terminate()
}

func (r *Recorder) Record() ([]float32, error) {
	const (
		sampleRate       = 16000
		frameSize        = 320 // 20ms
		silenceThreshRMS = 0.015
		silenceFramesMax = 30 // 600ms of trailing silence ends the turn
	)

	buf := make([]float32, frameSize)
	out := make([]float32, 0, sampleRate*3)

	stream, err := portaudio.OpenDefaultStream(1, 0, sampleRate, len(buf), buf)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, err
	}
	defer stream.Stop()

	var (
		speaking      bool
		silenceFrames int
	)

	maxFrames := int(r.maxListen.Seconds() * sampleRate / frameSize)

	for i := 0; i < maxFrames; i++ {
		if err := stream.Read(); err != nil {
			return nil, err
		}

		rms := frameRMS(buf)

		if rms > silenceThreshRMS {
			speaking = true
			silenceFrames = 0
			out = append(out, buf...)
		} else if speaking {
			silenceFrames++
			if silenceFrames >= silenceFramesMax {
				break
			}
			out = append(out, buf...)
		}
	}

	return out, nil
}

func frameRMS(f []float32) float64 {
	var s float64
	for _, x := range f {
		s += float64(x * x)
	}
	return math.Sqrt(s / float64(len(f)))
}
