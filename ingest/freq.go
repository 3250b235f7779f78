package ingest

import "fmt"

// ValueFrequencyCalculator tallies value occurrences (spec §4.H), keyed by
// string form, preserving first-seen order — used to decide whether a
// field's effective distinct-value count stays under the indexing
// threshold.
type ValueFrequencyCalculator struct {
	counts map[string]int
	order  []string
}

// NewValueFrequencyCalculator returns a fresh calculator.
func NewValueFrequencyCalculator() *ValueFrequencyCalculator {
	return &ValueFrequencyCalculator{counts: map[string]int{}}
}

func (c *ValueFrequencyCalculator) OnItem(v any) {
	key := fmt.Sprint(v)
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// DistinctCount returns the number of distinct values seen so far.
func (c *ValueFrequencyCalculator) DistinctCount() int { return len(c.order) }

// OnEnd returns the final occurrence counts, keyed by string form.
func (c *ValueFrequencyCalculator) OnEnd() map[string]int {
	return c.counts
}
