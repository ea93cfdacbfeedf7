// Package model defines shared data structures.
package model

// Config defines practice settings.
type Config struct {
	Words           int    `validate:"min=10,max=200"`
	DurationSeconds int    `validate:"min=0"`
	WPMTarget       int    `validate:"gt=0"`
	Candidates      int    `validate:"gt=0"`
	WordListPath    string
}

// Timed reports whether the session ends on a countdown instead of the last word.
func (c Config) Timed() bool {
	return c.DurationSeconds > 0
}

// WordRecord is the persisted performance record for a single word.
type WordRecord struct {
	Word      string  `json:"word"`
	Time      float64 `json:"time"`
	Attempts  int     `json:"attempts"`
	LastScore float64 `json:"lastScore"`
}

// Scored reports whether the word has been practised at least once.
func (r WordRecord) Scored() bool {
	return r.LastScore > 0
}

// TypedWordEvent captures one completed word within a session.
type TypedWordEvent struct {
	Word      string
	ElapsedMs float64
	HadError  bool
}

// SummaryRow describes how a word went in the session that just ended.
type SummaryRow struct {
	Word     string
	Score    float64
	TimeMs   float64
	HadError bool
	Count    int
}

// SessionResult is handed back to the typing UI once a session is folded in.
type SessionResult struct {
	SessionID  string
	Summary    []SummaryRow
	Correct    int
	Incorrect  int
	DurationMs int64
	NextWords  []string
}
