package analyzer

import (
	"sort"

	"zipf/internal/domain"
)

// Counter accumulates token occurrences and remembers the order in which
// words were first seen.
type Counter struct {
	counts map[string]int
	order  []string
	total  int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add counts every token in tokens.
func (c *Counter) Add(tokens []string) {
	for _, tok := range tokens {
		if _, seen := c.counts[tok]; !seen {
			c.order = append(c.order, tok)
		}
		c.counts[tok]++
		c.total++
	}
}

// Total returns the number of tokens added.
func (c *Counter) Total() int {
	return c.total
}

// Vocabulary returns the number of distinct words.
func (c *Counter) Vocabulary() int {
	return len(c.order)
}

// MostCommon returns all words sorted by descending count. Words with equal
// counts keep the order in which they were first added.
func (c *Counter) MostCommon() []domain.WordCount {
	entries := make([]domain.WordCount, len(c.order))
	for i, w := range c.order {
		entries[i] = domain.WordCount{Word: w, Count: c.counts[w]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Ranked returns MostCommon with 1-based ranks assigned.
func (c *Counter) Ranked() []domain.RankedWord {
	common := c.MostCommon()
	rows := make([]domain.RankedWord, len(common))
	for i, wc := range common {
		rows[i] = domain.RankedWord{Rank: i + 1, Word: wc.Word, Count: wc.Count}
	}
	return rows
}
