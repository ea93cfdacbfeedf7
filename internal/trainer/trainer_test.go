package trainer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wordrill/internal/generator"
	"github.com/verte-zerg/wordrill/internal/logs"
	"github.com/verte-zerg/wordrill/internal/model"
	"github.com/verte-zerg/wordrill/internal/perf"
)

type memKV struct {
	data    map[string][]byte
	failSet error
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	if m.failSet != nil {
		return m.failSet
	}
	m.data[key] = value
	return nil
}

func newTrainer(t *testing.T, vocabulary []string, persisted string) (*Trainer, *memKV) {
	t.Helper()
	kv := &memKV{data: map[string][]byte{}}
	if persisted != "" {
		kv.data[perf.WordStatsKey] = []byte(persisted)
	}
	ctx := context.Background()
	st := perf.Initialize(ctx, kv, vocabulary, logs.Discard())
	cfg := model.Config{Words: 20, WPMTarget: 40, Candidates: 3}
	return New(st, kv, generator.NewSeeded(11), cfg, logs.Discard()), kv
}

func TestNextWordListDrillsWorstWords(t *testing.T) {
	tr, _ := newTrainer(t, []string{"slow", "mid", "fast", "done"},
		`{"slow":{"lastScore":900,"attempts":1},"mid":{"lastScore":500,"attempts":1},"fast":{"lastScore":310,"attempts":1},"done":{"lastScore":10,"attempts":1}}`)

	assert.Equal(t, []string{"slow", "mid", "fast"}, tr.Candidates())
	list := tr.NextWordList()
	require.Len(t, list, 20)
	counts := map[string]int{}
	for _, w := range list {
		counts[w]++
	}
	assert.Equal(t, map[string]int{"slow": 5, "mid": 13, "fast": 2}, counts)
	assert.Equal(t, 1, tr.GraduatedCount())
}

func TestNextWordListFallsBackWhenAllGraduated(t *testing.T) {
	tr, _ := newTrainer(t, []string{"a", "b"}, `{"a":{"lastScore":10},"b":{"lastScore":12}}`)
	assert.Empty(t, tr.Candidates())
	list := tr.NextWordList()
	require.Len(t, list, 20)
	for _, w := range list {
		assert.Contains(t, []string{"a", "b"}, w)
	}
}

func TestSwitchedVocabularyIgnoresOldRecords(t *testing.T) {
	tr, kv := newTrainer(t, []string{"alpha", "beta"},
		`{"the":{"lastScore":900,"attempts":4},"and":{"lastScore":700,"attempts":2}}`)

	assert.Equal(t, []string{"alpha", "beta"}, tr.Candidates())
	assert.NotContains(t, tr.Snapshot(), "the")
	assert.Zero(t, tr.GraduatedCount())

	list := tr.NextWordList()
	require.Len(t, list, 20)
	for _, w := range list {
		assert.Contains(t, []string{"alpha", "beta"}, w)
	}
	assert.Contains(t, list, "beta")

	tr.Finish(context.Background(), "s-2", []model.TypedWordEvent{{Word: "alpha", ElapsedMs: 500}}, 5, 0, 500)
	assert.Contains(t, tr.Store().Snapshot(), "the", "records of the previous list stay stored")
	assert.Contains(t, string(kv.data[perf.WordStatsKey]), `"and"`)
}

func TestNewFallsBackToDefaultVocabulary(t *testing.T) {
	tr, _ := newTrainer(t, nil, "")
	require.NoError(t, tr.SetWPMTarget(context.Background(), 1))
	assert.Len(t, tr.NextWordList(), 20)
}

func TestFinishRecordsAndSummarizes(t *testing.T) {
	tr, kv := newTrainer(t, []string{"cat", "dog", "emu"}, "")
	events := []model.TypedWordEvent{
		{Word: "cat", ElapsedMs: 100},
		{Word: "dog", ElapsedMs: 1500, HadError: true},
		{Word: "cat", ElapsedMs: 140},
	}
	res := tr.Finish(context.Background(), "s-1", events, 9, 1, 1740)

	assert.Equal(t, "s-1", res.SessionID)
	require.Len(t, res.Summary, 2)
	assert.Equal(t, "dog", res.Summary[0].Word)
	assert.True(t, res.Summary[0].HadError)
	assert.InDelta(t, 40.0, res.Summary[1].Score, 1e-9)
	assert.Len(t, res.NextWords, 20)
	assert.Equal(t, []string{"dog", "emu"}, tr.Candidates(), "cat graduated at 40 WPM")

	snap := tr.Store().Snapshot()
	assert.Equal(t, 1, snap["cat"].Attempts)
	assert.Contains(t, string(kv.data[perf.WordStatsKey]), `"dog"`)
}

func TestSetWPMTarget(t *testing.T) {
	tr, kv := newTrainer(t, []string{"cat"}, "")
	ctx := context.Background()

	require.NoError(t, tr.SetWPMTarget(ctx, 75))
	assert.Equal(t, 75, tr.WPMTarget())
	assert.Equal(t, "75", string(kv.data[perf.WPMTargetKey]))

	assert.Error(t, tr.SetWPMTarget(ctx, 0))
	assert.Error(t, tr.SetWPMTarget(ctx, -10))
	assert.Equal(t, 75, tr.WPMTarget())
	assert.Equal(t, "75", string(kv.data[perf.WPMTargetKey]))

	kv.failSet = errors.New("read-only")
	require.NoError(t, tr.SetWPMTarget(ctx, 90))
	assert.Equal(t, 90, tr.WPMTarget())
}

func TestSetWordCount(t *testing.T) {
	tr, _ := newTrainer(t, []string{"cat"}, "")
	require.NoError(t, tr.SetWordCount(50))
	assert.Equal(t, 50, tr.WordCount())
	assert.Error(t, tr.SetWordCount(9))
	assert.Error(t, tr.SetWordCount(201))
	assert.Equal(t, 50, tr.WordCount())
	assert.Len(t, tr.NextWordList(), 50)
}
