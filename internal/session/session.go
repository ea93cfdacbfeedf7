// Package session tracks keystrokes within one typing test and emits a timing
// event for every completed word.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/wordrill/internal/model"
)

// State is the phase a test is in.
type State int

const (
	StateIdle            State = iota // Waiting for the first keystroke
	StateTyping                       // A word is being typed
	StateWordComplete                 // A word was just submitted; the next one has not been touched
	StateSessionComplete              // All words done or the countdown expired
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTyping:
		return "typing"
	case StateWordComplete:
		return "word-complete"
	case StateSessionComplete:
		return "session-complete"
	default:
		return "unknown"
	}
}

// maxOverflow bounds how far input may run past the target word.
const maxOverflow = 16

// Session is a single typing test over a fixed word list.
type Session struct {
	id       string
	words    []string
	target   []rune
	duration time.Duration

	state   State
	index   int
	input   []rune
	wordErr bool

	startedAt     time.Time
	wordStartedAt time.Time
	endedAt       time.Time

	correct   int
	incorrect int
	events    []model.TypedWordEvent
}

// New starts a session over words. A positive duration makes it time-limited.
func New(words []string, duration time.Duration) *Session {
	s := &Session{
		id:       uuid.New().String(),
		words:    append([]string(nil), words...),
		duration: duration,
	}
	if len(s.words) == 0 {
		s.state = StateSessionComplete
		return s
	}
	s.target = []rune(s.words[0])
	return s
}

// ID identifies the session in logs and timer messages.
func (s *Session) ID() string { return s.id }

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Words returns the practice list.
func (s *Session) Words() []string { return s.words }

// Index returns the position of the word being typed.
func (s *Session) Index() int { return s.index }

// Input returns the runes typed for the current word.
func (s *Session) Input() []rune { return s.input }

// CurrentHasError reports whether the current word has seen a wrong keystroke.
func (s *Session) CurrentHasError() bool { return s.wordErr }

// Events returns the completed-word events in typing order.
func (s *Session) Events() []model.TypedWordEvent { return s.events }

// Keystrokes returns correct and incorrect non-space keystroke counts.
func (s *Session) Keystrokes() (correct, incorrect int) { return s.correct, s.incorrect }

// Done reports whether the session has finished.
func (s *Session) Done() bool { return s.state == StateSessionComplete }

// Timed reports whether a countdown ends the session.
func (s *Session) Timed() bool { return s.duration > 0 }

// Type feeds one keystroke. Space submits the current word; it is accepted only
// when the input matches the target exactly. A keystroke arriving after the
// countdown expired ends the session instead of being scored.
func (s *Session) Type(r rune, now time.Time) {
	if s.state == StateSessionComplete || s.Tick(now) {
		return
	}
	if r == ' ' {
		s.submit(now)
		return
	}
	if s.state == StateIdle {
		s.startedAt = now
		s.wordStartedAt = now
	}
	s.state = StateTyping
	if len(s.input) >= len(s.target)+maxOverflow {
		return
	}
	pos := len(s.input)
	s.input = append(s.input, r)
	if pos < len(s.target) && s.target[pos] == r {
		s.correct++
	} else {
		s.incorrect++
		s.wordErr = true
	}
	if s.index == len(s.words)-1 && s.matches() {
		s.completeWord(now)
	}
}

// Backspace removes the last typed rune of the current word.
func (s *Session) Backspace() {
	if s.state != StateTyping || len(s.input) == 0 {
		return
	}
	s.input = s.input[:len(s.input)-1]
}

// Tick ends a time-limited session once its duration has elapsed and reports
// whether this call ended it.
func (s *Session) Tick(now time.Time) bool {
	if !s.Timed() || s.state == StateIdle || s.state == StateSessionComplete {
		return false
	}
	if now.Sub(s.startedAt) < s.duration {
		return false
	}
	s.state = StateSessionComplete
	s.endedAt = s.startedAt.Add(s.duration)
	return true
}

// Remaining returns the countdown left at now. Untimed sessions report zero.
func (s *Session) Remaining(now time.Time) time.Duration {
	if !s.Timed() {
		return 0
	}
	switch s.state {
	case StateIdle:
		return s.duration
	case StateSessionComplete:
		return 0
	}
	left := s.duration - now.Sub(s.startedAt)
	if left < 0 {
		return 0
	}
	return left
}

// DurationMs returns the session length in milliseconds, measured up to now while running.
func (s *Session) DurationMs(now time.Time) int64 {
	switch s.state {
	case StateIdle:
		return 0
	case StateSessionComplete:
		if s.startedAt.IsZero() {
			return 0
		}
		return s.endedAt.Sub(s.startedAt).Milliseconds()
	}
	return now.Sub(s.startedAt).Milliseconds()
}

func (s *Session) submit(now time.Time) {
	if s.state == StateIdle || s.state == StateWordComplete {
		return
	}
	if !s.matches() {
		s.incorrect++
		s.wordErr = true
		return
	}
	s.completeWord(now)
}

func (s *Session) matches() bool {
	return string(s.input) == string(s.target)
}

func (s *Session) completeWord(now time.Time) {
	elapsed := now.Sub(s.wordStartedAt)
	if elapsed < time.Millisecond {
		elapsed = time.Millisecond
	}
	s.events = append(s.events, model.TypedWordEvent{
		Word:      s.words[s.index],
		ElapsedMs: float64(elapsed.Milliseconds()),
		HadError:  s.wordErr,
	})
	s.index++
	s.input = nil
	s.wordErr = false
	s.wordStartedAt = now
	if s.index >= len(s.words) {
		s.state = StateSessionComplete
		s.endedAt = now
		s.target = nil
		return
	}
	s.target = []rune(s.words[s.index])
	s.state = StateWordComplete
}
