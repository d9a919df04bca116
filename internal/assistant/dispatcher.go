// Package assistant holds the intent dispatcher and the conversation
// session behind the Lee voice assistant.
package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	log "log/slog"

	"lee/pkg/trfold"
)

// NoteStore persists user notes.
type NoteStore interface {
	Append(body string) error
	LastN(n int) ([]string, error)
}

// CityFinder resolves a city name mentioned anywhere in free text.
type CityFinder interface {
	Find(text string) (string, bool)
}

// Forecaster produces a user-safe forecast sentence; it must not fail.
type Forecaster interface {
	Forecast(ctx context.Context, city string) string
}

const (
	// ReplyDidNotCatch is used both for empty typed input and for a
	// capture that produced nothing intelligible.
	ReplyDidNotCatch = "Anlayamadım. Tekrar söyler misin?"

	// HelpText is the fixed command summary.
	HelpText = "Şunları yapabilirim:\n" +
		"• saat kaç\n" +
		"• tarih ne / bugün günlerden ne\n" +
		"• hava durumu (şehir adıyla)\n" +
		"• not al: ...\n" +
		"• notlarımı oku\n" +
		"• kapat"

	replyWakeMissing = "Uyandırma kelimesi yok. Örn: 'Lee saat kaç' de."
	replyFarewell    = "Tamam, görüşürüz!"
	replyGreeting    = "Merhaba! Hazırım. 'saat kaç' ya da 'not al: ...' diyebilirsin."
	replyNoteHow     = "Not için 'Not al: ...' şeklinde söyleyebilirsin."
	replyNoteFailed  = "Notu kaydedemedim, bir şeyler ters gitti."
	replyNoNotes     = "Henüz not yok."
)

var (
	exitWords  = []string{"çık", "kapat", "bitir", "exit", "quit"}
	yesMarkers = []string{"evet", "içtim", "tabii", "olur"}
	noMarkers  = []string{"hayır", "yok", "içmedim", "istemem"}

	// commandWords decides, under wake gating, whether an utterance
	// without the wake word is still honored. The weather trigger
	// counts as a command.
	commandWords = []string{
		"saat", "tarih", "bugün", "günlerden", "hava",
		"not al", "notlar", "yardım",
		"kapat", "çık", "bitir", "exit", "quit",
	}

	// Wake tokens are plain ASCII, so a case-insensitive regexp keeps
	// byte offsets aligned with the original utterance.
	wakeRe        = regexp.MustCompile(`(?i)\b(hey lee|ok lee|selam lee|hey li|ok li|lee|ley|li)\b`)
	noteTriggerRe = regexp.MustCompile(`(?i)not al`)
)

type Config struct {
	DefaultCity string // used when a weather request names no known city
	NoteCount   int    // how many notes "notlarımı oku" reads back, 5..12
	WakeGating  bool
}

// Dispatcher turns one utterance into one Reply. Matching is keyword
// containment over folded text, first match wins, in a fixed order:
// pending tea answer, weather, time, date, take note, list notes,
// exit (exact), help, greeting, fallback.
type Dispatcher struct {
	notes   NoteStore
	cities  CityFinder
	weather Forecaster
	session *Session

	defaultCity string
	noteCount   int
	now         func() time.Time

	mu   sync.Mutex
	gate bool
}

func New(cfg Config, notes NoteStore, cities CityFinder, weather Forecaster, session *Session) *Dispatcher {
	d := &Dispatcher{
		notes:       notes,
		cities:      cities,
		weather:     weather,
		session:     session,
		defaultCity: cfg.DefaultCity,
		noteCount:   cfg.NoteCount,
		now:         time.Now,
		gate:        cfg.WakeGating,
	}
	if d.defaultCity == "" {
		d.defaultCity = "Ankara"
	}
	if d.noteCount < 5 {
		d.noteCount = 5
	}
	if d.noteCount > 12 {
		d.noteCount = 12
	}
	return d
}

func (d *Dispatcher) WakeGating() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gate
}

func (d *Dispatcher) SetWakeGating(on bool) {
	d.mu.Lock()
	d.gate = on
	d.mu.Unlock()
}

// Dispatch runs one turn. An empty utterance stands for "nothing
// heard" and short-circuits before any matching.
func (d *Dispatcher) Dispatch(raw string) Reply {
	utter := strings.TrimSpace(raw)
	if utter == "" {
		return Reply{Text: ReplyDidNotCatch}
	}

	// A pending tea question is answered without the wake word; the
	// assistant just asked, so a bare "evet" must land.
	if d.session != nil && d.session.AnswerPending() {
		folded := trfold.Fold(utter)
		switch {
		case anyIn(folded, yesMarkers):
			d.session.resolve()
			return Reply{Text: replyTeaYes}
		case anyIn(folded, noMarkers):
			d.session.resolve()
			return Reply{Text: replyTeaNo}
		default:
			return Reply{Text: replyTeaAgain}
		}
	}

	if d.WakeGating() {
		if !wakeRe.MatchString(utter) && !anyIn(trfold.Fold(utter), commandWords) {
			return Reply{Text: replyWakeMissing}
		}
		utter = strings.Trim(wakeRe.ReplaceAllString(utter, " "), " ,.!?:;")
		utter = strings.TrimSpace(utter)
	}

	folded := trfold.Fold(utter)

	if strings.Contains(folded, "hava") {
		city, ok := d.cities.Find(utter)
		if !ok {
			city = d.defaultCity
		}
		forecast := d.weather
		return Reply{
			Text: fmt.Sprintf("%s için hava durumuna bakıyorum...", city),
			Deferred: func(ctx context.Context) string {
				return forecast.Forecast(ctx, city)
			},
		}
	}

	if strings.Contains(folded, "saat kac") || strings.Contains(folded, "saati soyle") || folded == "saat" {
		return Reply{Text: fmt.Sprintf("Şu an saat %s.", d.now().Format("15:04:05"))}
	}

	if strings.Contains(folded, "tarih") || strings.Contains(folded, "bugun gun") {
		now := d.now()
		return Reply{Text: fmt.Sprintf("Bugün %s, %s.", dayName(now), now.Format("02.01.2006"))}
	}

	if strings.Contains(folded, "not al") {
		body := noteBody(utter)
		if body == "" {
			return Reply{Text: replyNoteHow}
		}
		if err := d.notes.Append(body); err != nil {
			log.Error("note append failed", "err", err)
			return Reply{Text: replyNoteFailed}
		}
		return Reply{Text: "Not aldım: " + body}
	}

	if strings.Contains(folded, "notlarimi oku") || strings.Contains(folded, "notlari oku") || folded == "notlar" {
		lines, err := d.notes.LastN(d.noteCount)
		if err != nil {
			log.Error("note read failed", "err", err)
			lines = nil
		}
		if len(lines) == 0 {
			return Reply{Text: replyNoNotes}
		}
		return Reply{Text: "Son notların:\n" + strings.Join(lines, "\n")}
	}

	for _, w := range exitWords {
		if folded == trfold.Fold(w) {
			return Reply{Status: StatusExit, Text: replyFarewell}
		}
	}

	if strings.Contains(folded, "yardim") || strings.Contains(folded, "ne yapabilirsin") {
		return Reply{Text: HelpText}
	}

	if strings.HasPrefix(folded, "merhaba") || strings.Contains(folded, "selam") {
		return Reply{Text: replyGreeting}
	}

	return Reply{Text: fmt.Sprintf("Bunu duydum: %s. 'Yardım' dersen komutları göstereyim.", utter)}
}

// noteBody extracts the note text: everything after the first colon,
// or failing that everything after the trigger phrase.
func noteBody(utter string) string {
	if i := strings.Index(utter, ":"); i >= 0 {
		return strings.TrimSpace(utter[i+1:])
	}
	if loc := noteTriggerRe.FindStringIndex(utter); loc != nil {
		return strings.Trim(utter[loc[1]:], " :")
	}
	return ""
}

func anyIn(folded string, words []string) bool {
	for _, w := range words {
		if strings.Contains(folded, trfold.Fold(w)) {
			return true
		}
	}
	return false
}

var dayNames = [...]string{"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi"}

func dayName(t time.Time) string {
	return dayNames[int(t.Weekday())]
}
