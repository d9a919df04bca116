package speech

import (
	"context"
	"strings"
)

// Speaker voices reply text: clean it up, synthesize, play.
type Speaker struct {
	synth  *Synthesizer
	player *Player
}

func NewSpeaker(synth *Synthesizer, player *Player) *Speaker {
	return &Speaker{synth: synth, player: player}
}

func (s *Speaker) Say(ctx context.Context, text string) error {
	data, err := s.synth.Synthesize(ctx, cleanForSpeech(text))
	if err != nil {
		return err
	}
	return s.player.Play(data)
}

func (s *Speaker) ToggleVoice() string {
	return s.synth.ToggleVoice()
}

var speechCleaner = strings.NewReplacer(
	"•", "",
	"\n", ". ",
)

// cleanForSpeech drops list bullets and turns line breaks into
// sentence pauses so the voice does not read layout out loud.
func cleanForSpeech(text string) string {
	return strings.Join(strings.Fields(speechCleaner.Replace(text)), " ")
}
