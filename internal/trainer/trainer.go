// Package trainer drives the adaptive practice loop: it folds finished sessions
// into the performance store and builds the next word list from the weakest words.
package trainer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/verte-zerg/wordrill/internal/config"
	"github.com/verte-zerg/wordrill/internal/generator"
	"github.com/verte-zerg/wordrill/internal/model"
	"github.com/verte-zerg/wordrill/internal/perf"
	"github.com/verte-zerg/wordrill/internal/stats"
	"github.com/verte-zerg/wordrill/internal/wordlist"
)

// Trainer owns the practice settings and the performance store for one run.
type Trainer struct {
	store      *perf.Store
	kv         perf.KV
	gen        *generator.Generator
	logger     *slog.Logger
	vocabulary []string

	words      int
	wpm        int
	candidates int
}

// New builds a trainer. An empty vocabulary falls back to the built-in word list.
func New(store *perf.Store, kv perf.KV, gen *generator.Generator, cfg model.Config, logger *slog.Logger) *Trainer {
	vocabulary := store.Vocabulary()
	if len(vocabulary) == 0 {
		vocabulary = wordlist.Default()
	}
	candidates := cfg.Candidates
	if candidates <= 0 {
		candidates = stats.DefaultCandidates
	}
	return &Trainer{
		store:      store,
		kv:         kv,
		gen:        gen,
		logger:     logger,
		vocabulary: vocabulary,
		words:      cfg.Words,
		wpm:        cfg.WPMTarget,
		candidates: candidates,
	}
}

// WPMTarget returns the current target.
func (t *Trainer) WPMTarget() int { return t.wpm }

// WordCount returns the number of words per test.
func (t *Trainer) WordCount() int { return t.words }

// CandidateLimit returns how many of the worst words each drill targets.
func (t *Trainer) CandidateLimit() int { return t.candidates }

// Store exposes the performance store for read-only views.
func (t *Trainer) Store() *perf.Store { return t.store }

// Snapshot returns the records of words in the current vocabulary. Records left
// over from another word list stay in storage but are never drilled or reported.
func (t *Trainer) Snapshot() map[string]model.WordRecord {
	all := t.store.Snapshot()
	out := make(map[string]model.WordRecord, len(t.vocabulary))
	for _, word := range t.vocabulary {
		if rec, ok := all[word]; ok {
			out[word] = rec
		}
	}
	return out
}

// Candidates returns the worst non-graduated words for the current target.
func (t *Trainer) Candidates() []string {
	return stats.SelectCandidates(t.Snapshot(), float64(t.wpm), t.candidates)
}

// GraduatedCount returns how many words beat the current target.
func (t *Trainer) GraduatedCount() int {
	return stats.CountGraduated(t.Snapshot(), float64(t.wpm))
}

// NextWordList builds the next practice list. It never returns an empty list
// while a vocabulary exists.
func (t *Trainer) NextWordList() []string {
	candidates := t.Candidates()
	if len(candidates) == 0 {
		t.logger.Info("no practice candidates; using full vocabulary", "wpm", t.wpm)
		return t.gen.BuildWordList(nil, t.words, t.vocabulary)
	}
	t.logger.Debug("selected candidates", "count", len(candidates), "worst", candidates[0], "wpm", t.wpm)
	return t.gen.BuildWordList(candidates, t.words, t.vocabulary)
}

// Finish records a finished session and prepares the next list.
func (t *Trainer) Finish(ctx context.Context, sessionID string, events []model.TypedWordEvent, correct, incorrect int, durationMs int64) model.SessionResult {
	summary := stats.Summarize(events)
	t.store.RecordSession(ctx, events)

	attrs := []any{"session", sessionID, "words", len(events), "distinct", len(summary), "duration_ms", durationMs}
	if len(summary) > 0 {
		attrs = append(attrs, "worst", summary[0].Word, "worst_score", summary[0].Score)
	}
	t.logger.Info("session finished", attrs...)

	return model.SessionResult{
		SessionID:  sessionID,
		Summary:    summary,
		Correct:    correct,
		Incorrect:  incorrect,
		DurationMs: durationMs,
		NextWords:  t.NextWordList(),
	}
}

// SetWPMTarget changes and persists the target. Invalid values are rejected and
// the previous target is kept.
func (t *Trainer) SetWPMTarget(ctx context.Context, wpm int) error {
	if !config.ValidWPM(wpm) {
		return fmt.Errorf("wpm target must be > 0, got %d", wpm)
	}
	t.wpm = wpm
	if err := perf.SaveWPMTarget(ctx, t.kv, wpm); err != nil {
		t.logger.Warn("failed to persist wpm target", "error", err)
	}
	return nil
}

// SetWordCount changes the number of words per test. Invalid values are rejected
// and the previous count is kept.
func (t *Trainer) SetWordCount(n int) error {
	if !config.ValidWords(n) {
		return fmt.Errorf("word count must be between %d and %d, got %d", config.MinWords, config.MaxWords, n)
	}
	t.words = n
	return nil
}
