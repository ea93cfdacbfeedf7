// Package generator builds practice word lists.
package generator

import (
	"math"
	"math/rand"
	"time"
)

const (
	worstShare    = 0.25
	minOccurrence = 2
)

// Generator produces randomized practice lists.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate selects count words uniformly, with replacement.
func (g *Generator) Generate(words []string, count int) []string {
	if len(words) == 0 || count <= 0 {
		return nil
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, words[g.rnd.Intn(len(words))])
	}
	return result
}

// BuildWordList expands ordered candidates (worst first) into exactly total words,
// repeating weaker words more often, and shuffles the result. With no candidates
// it falls back to a uniform sample of fallback.
func (g *Generator) BuildWordList(candidates []string, total int, fallback []string) []string {
	if total <= 0 {
		return nil
	}
	if len(candidates) == 0 {
		return g.Generate(fallback, total)
	}
	counts := Distribute(len(candidates), total)
	list := make([]string, 0, total)
	for i, word := range candidates {
		for j := 0; j < counts[i]; j++ {
			list = append(list, word)
		}
	}
	// Floors can leave slots unassigned; they go to the weakest word.
	for len(list) < total {
		list = append(list, candidates[0])
	}
	g.shuffle(list)
	if len(list) > total {
		list = list[:total]
	}
	return list
}

// Distribute returns per-rank occurrence counts for n candidates sharing total slots.
// Rank 0 gets a quarter of the slots, the last rank gets the minimum, and middle
// ranks share the rest with linearly decreasing weights. Counts are best-effort and
// may not sum to total when the minimums do not fit.
func Distribute(n, total int) []int {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []int{total}
	}
	counts := make([]int, n)
	counts[0] = maxInt(int(math.Floor(float64(total)*worstShare)), 1)
	counts[n-1] = minOccurrence
	middle := n - 2
	remaining := total - counts[0] - counts[n-1]
	weightSum := middle * (middle + 1) / 2
	for i := 1; i <= middle; i++ {
		weight := n - 1 - i
		share := 0
		if remaining > 0 {
			share = int(math.Floor(float64(remaining) * float64(weight) / float64(weightSum)))
		}
		counts[i] = maxInt(share, minOccurrence)
	}
	return counts
}

func (g *Generator) shuffle(words []string) {
	g.rnd.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
