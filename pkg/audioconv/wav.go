// Package audioconv converts between the raw PCM the recorder
// produces and the WAV blobs remote services expect.
package audioconv

import (
	"errors"
	"fmt"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// EncodeWAV16k packs mono float32 PCM in [-1, 1] into a 16-bit 16 kHz
// WAV blob.
func EncodeWAV16k(pcm []float32) ([]byte, error) {
	if len(pcm) == 0 {
		return nil, errors.New("no samples")
	}

	buf := &seekBuffer{}
	enc := wav.NewEncoder(buf, 16000, 16, 1, 1)

	ints := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 16000},
		Data:           make([]int, len(pcm)),
		SourceBitDepth: 16,
	}
	for i, s := range pcm {
		if s > 1 {
			s = 1
		}
		if s < -1 {
			s = -1
		}
		ints.Data[i] = int(s * 32767)
	}

	if err := enc.Write(ints); err != nil {
		return nil, fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("finalize wav: %w", err)
	}
	return buf.data, nil
}
