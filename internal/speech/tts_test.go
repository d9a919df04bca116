package speech

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleVoice(t *testing.T) {
	s := NewSynthesizer("", "")
	assert.Equal(t, VoiceMale, s.Voice())
	assert.Equal(t, VoiceFemale, s.ToggleVoice())
	assert.Equal(t, VoiceMale, s.ToggleVoice())
}

func TestSSMLEscapesText(t *testing.T) {
	s := NewSynthesizer("", VoiceFemale)

	got := s.ssml("5 < 7 & 'tamam'")
	assert.Contains(t, got, "tr-TR-EmelNeural")
	assert.Contains(t, got, "&lt;")
	assert.Contains(t, got, "&amp;")
	assert.False(t, strings.Contains(got, "5 < 7"))
}

func TestCleanForSpeech(t *testing.T) {
	got := cleanForSpeech("Şunları yapabilirim:\n• saat kaç\n• kapat")
	assert.NotContains(t, got, "•")
	assert.NotContains(t, got, "\n")
	assert.Contains(t, got, "saat kaç")
}
