// Package perf keeps the per-word performance records and mirrors them to storage.
package perf

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/verte-zerg/wordrill/internal/model"
	"github.com/verte-zerg/wordrill/internal/stats"
)

// Storage keys.
const (
	WordStatsKey = "wordStats"
	WPMTargetKey = "wpmTarget"
)

// KV is the synchronous key-value persistence the store is mirrored to.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Store maps words to their cumulative records.
type Store struct {
	mu         sync.RWMutex
	kv         KV
	logger     *slog.Logger
	vocabulary []string
	records    map[string]model.WordRecord
}

// Initialize loads the persisted records, or seeds zero records for the vocabulary
// when nothing usable is stored. Vocabulary words missing from the persisted
// records are added with zero stats.
func Initialize(ctx context.Context, kv KV, vocabulary []string, logger *slog.Logger) *Store {
	s := &Store{
		kv:         kv,
		logger:     logger,
		vocabulary: append([]string(nil), vocabulary...),
	}
	s.records = s.load(ctx)
	added := 0
	for _, word := range s.vocabulary {
		if _, ok := s.records[word]; !ok {
			s.records[word] = model.WordRecord{Word: word}
			added++
		}
	}
	logger.Debug("initialized word stats", "words", len(s.records), "seeded", added)
	return s
}

func (s *Store) load(ctx context.Context) map[string]model.WordRecord {
	raw, ok, err := s.kv.Get(ctx, WordStatsKey)
	if err != nil {
		s.logger.Warn("failed to read word stats; starting fresh", "error", err)
		return map[string]model.WordRecord{}
	}
	if !ok {
		return map[string]model.WordRecord{}
	}
	records, err := decodeRecords(raw)
	if err != nil {
		s.logger.Warn("malformed word stats; starting fresh", "error", err)
		return map[string]model.WordRecord{}
	}
	return records
}

func decodeRecords(raw []byte) (map[string]model.WordRecord, error) {
	var decoded map[string]model.WordRecord
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	records := make(map[string]model.WordRecord, len(decoded))
	for word, rec := range decoded {
		if word == "" {
			continue
		}
		rec.Word = word
		if rec.Attempts < 0 || rec.LastScore < 0 || rec.Time < 0 {
			return nil, fmt.Errorf("negative stats for %q", word)
		}
		records[word] = rec
	}
	return records, nil
}

// RecordSession folds one finished session into the records and persists them.
// Each word typed in the session gains exactly one attempt regardless of repeats.
func (s *Store) RecordSession(ctx context.Context, events []model.TypedWordEvent) {
	if len(events) == 0 {
		return
	}
	avg, _ := stats.SessionAverages(events)

	s.mu.Lock()
	for word, ms := range avg {
		rec := s.records[word]
		rec.Word = word
		rec.Attempts++
		rec.Time = ms
		rec.LastScore = stats.WordScore(word, ms)
		s.records[word] = rec
	}
	s.mu.Unlock()

	s.persist(ctx)
}

// Snapshot returns a copy of the records.
func (s *Store) Snapshot() map[string]model.WordRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]model.WordRecord, len(s.records))
	for word, rec := range s.records {
		out[word] = rec
	}
	return out
}

// Vocabulary returns the words the store was seeded with.
func (s *Store) Vocabulary() []string {
	return append([]string(nil), s.vocabulary...)
}

// Reset replaces every record with a zero record for the vocabulary and persists.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	s.records = make(map[string]model.WordRecord, len(s.vocabulary))
	for _, word := range s.vocabulary {
		s.records[word] = model.WordRecord{Word: word}
	}
	s.mu.Unlock()
	s.persist(ctx)
}

// persist writes the records; failures are logged and the in-memory state stays authoritative.
func (s *Store) persist(ctx context.Context) {
	s.mu.RLock()
	raw, err := json.Marshal(s.records)
	s.mu.RUnlock()
	if err != nil {
		s.logger.Error("failed to encode word stats", "error", err)
		return
	}
	if err := s.kv.Set(ctx, WordStatsKey, raw); err != nil {
		s.logger.Warn("failed to persist word stats", "error", err)
	}
}
