package audioconv

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWAV16k(t *testing.T) {
	pcm := make([]float32, 1600) // 100ms of silence
	pcm[0] = 0.5
	pcm[1] = -2 // clamped

	data, err := EncodeWAV16k(pcm)
	require.NoError(t, err)

	require.Greater(t, len(data), 44)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))

	// Sample rate lives at offset 24 of the canonical header.
	assert.Equal(t, uint32(16000), binary.LittleEndian.Uint32(data[24:28]))
}

func TestEncodeWAV16kEmpty(t *testing.T) {
	_, err := EncodeWAV16k(nil)
	assert.Error(t, err)
}

func TestSeekBuffer(t *testing.T) {
	b := &seekBuffer{}

	_, err := b.Write([]byte("abcdef"))
	require.NoError(t, err)

	_, err = b.Seek(2, 0)
	require.NoError(t, err)
	_, err = b.Write([]byte("XY"))
	require.NoError(t, err)

	assert.True(t, bytes.Equal(b.data, []byte("abXYef")))
}
