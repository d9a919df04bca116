package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotes struct {
	lines     []string
	appended  []string
	appendErr error
}

func (s *stubNotes) Append(body string) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appended = append(s.appended, body)
	return nil
}

func (s *stubNotes) LastN(n int) ([]string, error) {
	if n > 0 && len(s.lines) > n {
		return s.lines[len(s.lines)-n:], nil
	}
	return s.lines, nil
}

type stubCities struct {
	city string
}

func (s *stubCities) Find(text string) (string, bool) {
	return s.city, s.city != ""
}

type stubForecast struct {
	text  string
	calls int
	city  string
}

func (s *stubForecast) Forecast(_ context.Context, city string) string {
	s.calls++
	s.city = city
	return s.text
}

func newTestDispatcher(cfg Config) (*Dispatcher, *stubNotes, *stubForecast, *Session) {
	notes := &stubNotes{}
	fc := &stubForecast{text: "stub"}
	session := NewSession(time.Hour)
	d := New(cfg, notes, &stubCities{city: "Ankara"}, fc, session)
	return d, notes, fc, session
}

func TestDispatchNothingHeard(t *testing.T) {
	d, notes, fc, _ := newTestDispatcher(Config{})

	rep := d.Dispatch("")
	assert.Equal(t, StatusNormal, rep.Status)
	assert.Equal(t, ReplyDidNotCatch, rep.Text)
	assert.Empty(t, notes.appended)
	assert.Zero(t, fc.calls)

	rep = d.Dispatch("   ")
	assert.Equal(t, ReplyDidNotCatch, rep.Text)
}

func TestDispatchExit(t *testing.T) {
	d, _, _, _ := newTestDispatcher(Config{})

	for _, in := range []string{"kapat", "çık", " exit ", "Quit", "bitir"} {
		rep := d.Dispatch(in)
		assert.Equal(t, StatusExit, rep.Status, "input %q", in)
		assert.NotEmpty(t, rep.Text)
	}

	// Containment is not enough, exit needs an exact match.
	rep := d.Dispatch("kapatma sakın")
	assert.Equal(t, StatusNormal, rep.Status)
}

func TestDispatchTime(t *testing.T) {
	d, _, _, _ := newTestDispatcher(Config{})
	d.now = func() time.Time {
		return time.Date(2026, 9, 1, 14, 30, 5, 0, time.Local)
	}

	rep := d.Dispatch("saat kaç")
	assert.Equal(t, "Şu an saat 14:30:05.", rep.Text)

	rep = d.Dispatch("saat")
	assert.Equal(t, "Şu an saat 14:30:05.", rep.Text)
}

func TestDispatchDate(t *testing.T) {
	d, _, _, _ := newTestDispatcher(Config{})
	d.now = func() time.Time {
		// A Tuesday.
		return time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	}

	rep := d.Dispatch("bugün günlerden ne")
	assert.Equal(t, "Bugün Salı, 01.09.2026.", rep.Text)

	rep = d.Dispatch("tarih ne")
	assert.Equal(t, "Bugün Salı, 01.09.2026.", rep.Text)
}

func TestDispatchTieBreakTimeBeforeDate(t *testing.T) {
	d, _, _, _ := newTestDispatcher(Config{})

	rep := d.Dispatch("saat kaç ve tarih ne")
	assert.Contains(t, rep.Text, "Şu an saat")
}

func TestDispatchTakeNote(t *testing.T) {
	d, notes, _, _ := newTestDispatcher(Config{})

	rep := d.Dispatch("not al: yarın toplantı")
	require.Equal(t, []string{"yarın toplantı"}, notes.appended)
	assert.Equal(t, "Not aldım: yarın toplantı", rep.Text)
}

func TestDispatchTakeNoteWithoutColon(t *testing.T) {
	d, notes, _, _ := newTestDispatcher(Config{})

	rep := d.Dispatch("Not al süt almayı unutma")
	require.Equal(t, []string{"süt almayı unutma"}, notes.appended)
	assert.Equal(t, "Not aldım: süt almayı unutma", rep.Text)
}

func TestDispatchTakeNoteEmptyBody(t *testing.T) {
	d, notes, _, _ := newTestDispatcher(Config{})

	rep := d.Dispatch("not al:")
	assert.Empty(t, notes.appended)
	assert.Equal(t, replyNoteHow, rep.Text)
}

func TestDispatchTakeNoteStoreError(t *testing.T) {
	d, notes, _, _ := newTestDispatcher(Config{})
	notes.appendErr = errors.New("disk full")

	rep := d.Dispatch("not al: deneme")
	assert.Equal(t, replyNoteFailed, rep.Text)
}

func TestDispatchListNotes(t *testing.T) {
	d, notes, _, _ := newTestDispatcher(Config{})

	rep := d.Dispatch("notlarımı oku")
	assert.Equal(t, replyNoNotes, rep.Text)

	notes.lines = []string{"[2026-09-01 10:00] bir", "[2026-09-01 11:00] iki"}
	rep = d.Dispatch("notları oku")
	assert.Contains(t, rep.Text, "Son notların:")
	assert.Contains(t, rep.Text, "bir")
	assert.Contains(t, rep.Text, "iki")
}

func TestDispatchWeatherDeferred(t *testing.T) {
	d, _, fc, _ := newTestDispatcher(Config{})
	fc.text = "Ankara için bugün: en düşük 10°, en yüksek 18° bekleniyor, yağış ihtimali yüzde 40."

	rep := d.Dispatch("Ankara hava durumu")
	assert.Contains(t, rep.Text, "Ankara")
	require.NotNil(t, rep.Deferred)
	assert.Zero(t, fc.calls)

	got := rep.Deferred(context.Background())
	assert.Equal(t, 1, fc.calls)
	assert.Equal(t, "Ankara", fc.city)
	assert.Contains(t, got, "10")
	assert.Contains(t, got, "18")
	assert.Contains(t, got, "yüzde 40")
}

func TestDispatchWeatherDefaultCity(t *testing.T) {
	notes := &stubNotes{}
	fc := &stubForecast{text: "stub"}
	d := New(Config{DefaultCity: "İstanbul"}, notes, &stubCities{}, fc, nil)

	rep := d.Dispatch("hava nasıl")
	require.NotNil(t, rep.Deferred)
	rep.Deferred(context.Background())
	assert.Equal(t, "İstanbul", fc.city)
}

func TestDispatchHelp(t *testing.T) {
	d, _, _, _ := newTestDispatcher(Config{})

	rep := d.Dispatch("yardım")
	assert.Equal(t, HelpText, rep.Text)

	rep = d.Dispatch("ne yapabilirsin")
	assert.Equal(t, HelpText, rep.Text)
}

func TestDispatchGreeting(t *testing.T) {
	d, _, _, _ := newTestDispatcher(Config{})

	rep := d.Dispatch("merhaba")
	assert.Equal(t, replyGreeting, rep.Text)
}

func TestDispatchFallback(t *testing.T) {
	d, _, _, _ := newTestDispatcher(Config{})

	rep := d.Dispatch("asdf qwerty")
	assert.Contains(t, rep.Text, "Bunu duydum: asdf qwerty")
	assert.Contains(t, rep.Text, "Yardım")
}

func TestWakeGating(t *testing.T) {
	d, notes, _, _ := newTestDispatcher(Config{WakeGating: true})

	// No wake word, no command keyword: rejected.
	rep := d.Dispatch("nasılsın bakalım")
	assert.Equal(t, replyWakeMissing, rep.Text)

	// A bare command is honored without the wake word.
	rep = d.Dispatch("saat kaç")
	assert.Contains(t, rep.Text, "Şu an saat")

	// Wake word satisfied and stripped before dispatch.
	rep = d.Dispatch("Lee not al: çay al")
	assert.Equal(t, []string{"çay al"}, notes.appended)

	d.SetWakeGating(false)
	rep = d.Dispatch("nasılsın bakalım")
	assert.NotEqual(t, replyWakeMissing, rep.Text)
}

func TestTeaCheckInStateMachine(t *testing.T) {
	d, _, _, session := newTestDispatcher(Config{})

	require.NotEmpty(t, session.Ask())
	require.True(t, session.AnswerPending())

	// Neither marker: flag stays set, re-prompt.
	rep := d.Dispatch("belki sonra bakarız")
	assert.Equal(t, replyTeaAgain, rep.Text)
	assert.True(t, session.AnswerPending())

	// Yes marker clears it.
	rep = d.Dispatch("evet içtim")
	assert.Equal(t, replyTeaYes, rep.Text)
	assert.False(t, session.AnswerPending())

	// And a no marker also clears it, diacritic-folded.
	session.Ask()
	rep = d.Dispatch("hayir daha degil")
	assert.Equal(t, replyTeaNo, rep.Text)
	assert.False(t, session.AnswerPending())
}

func TestTeaAnswerBypassesWakeGating(t *testing.T) {
	d, _, _, session := newTestDispatcher(Config{WakeGating: true})

	require.NotEmpty(t, session.Ask())

	// The assistant just asked, so a bare answer needs no wake word.
	rep := d.Dispatch("evet")
	assert.Equal(t, replyTeaYes, rep.Text)
	assert.False(t, session.AnswerPending())

	session.Ask()
	rep = d.Dispatch("hayır")
	assert.Equal(t, replyTeaNo, rep.Text)
	assert.False(t, session.AnswerPending())

	// With no question pending the gate applies again.
	rep = d.Dispatch("evet")
	assert.Equal(t, replyWakeMissing, rep.Text)
}

func TestTeaAnswerDoesNotShadowCommands(t *testing.T) {
	d, _, _, session := newTestDispatcher(Config{})
	session.Ask()

	// While an answer is pending, even a command utterance is treated
	// as an answer attempt: first match wins, tea comes first.
	rep := d.Dispatch("saat kaç")
	assert.Equal(t, replyTeaAgain, rep.Text)
	session.resolve()
}
