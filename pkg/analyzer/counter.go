package analyzer

import "sort"

// counter tallies string keys while remembering first-seen order, so that
// ties in MostCommon resolve to the earlier-encountered key.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) Add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// MostCommon returns up to n keys by descending count, ties in first-seen order.
func (c *counter) MostCommon(n int) []LabelCount {
	result := make([]LabelCount, 0, len(c.order))
	for _, key := range c.order {
		result = append(result, LabelCount{Label: key, Count: c.counts[key]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if len(result) > n {
		result = result[:n]
	}
	return result
}
