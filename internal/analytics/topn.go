package analytics

import (
	"sort"

	"jobmarket/internal/domain"
)

// Count is one key with its occurrence count across a record set.
type Count struct {
	Key   string
	Count int
}

// counter tallies keys while remembering first-encounter order, so equal
// counts always rank deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) distinct() int { return len(c.order) }

// top returns up to n entries sorted by count descending; ties keep
// first-encounter order.
func (c *counter) top(n int) []Count {
	out := make([]Count, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, Count{Key: k, Count: c.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// TopSkills counts skill tags across the record set.
func TopSkills(jobs []domain.Job, n int) []Count {
	c := newCounter()
	for _, j := range jobs {
		for _, s := range j.Skills {
			c.add(s)
		}
	}
	return c.top(n)
}

// TopCompanies counts postings per company, excluding unresolved names.
// Also returns the number of distinct companies counted.
func TopCompanies(jobs []domain.Job, n int) ([]Count, int) {
	c := newCounter()
	for _, j := range jobs {
		if j.Company == "" || j.Company == "Unknown" {
			continue
		}
		c.add(j.Company)
	}
	return c.top(n), c.distinct()
}

// TopLocations counts postings per location, excluding unresolved names.
// Also returns the number of distinct locations counted.
func TopLocations(jobs []domain.Job, n int) ([]Count, int) {
	c := newCounter()
	for _, j := range jobs {
		if j.Location == "" || j.Location == "Unknown" {
			continue
		}
		c.add(j.Location)
	}
	return c.top(n), c.distinct()
}
