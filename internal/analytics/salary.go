package analytics

import (
	"sort"

	"jobmarket/internal/domain"
)

// SalaryStats summarizes the union multiset of all nonzero salary bounds
// in a record set.
type SalaryStats struct {
	Min     int `json:"min_salary"`
	Max     int `json:"max_salary"`
	Average int `json:"average_salary"`
	Median  int `json:"median_salary"`
	Samples int `json:"salary_samples"`
}

// Salaries pools every nonzero min and max bound into one multiset and
// reports min, max, integer mean and median. The median is the middle
// element of the sorted multiset; for even counts that is the upper-middle
// element, not an averaged midpoint. Returns nil when no record carries
// salary data.
func Salaries(jobs []domain.Job) *SalaryStats {
	var vals []int
	for _, j := range jobs {
		if j.SalaryMin > 0 {
			vals = append(vals, j.SalaryMin)
		}
		if j.SalaryMax > 0 {
			vals = append(vals, j.SalaryMax)
		}
	}
	if len(vals) == 0 {
		return nil
	}

	sort.Ints(vals)

	sum := 0
	for _, v := range vals {
		sum += v
	}

	return &SalaryStats{
		Min:     vals[0],
		Max:     vals[len(vals)-1],
		Average: sum / len(vals),
		Median:  vals[len(vals)/2],
		Samples: len(vals),
	}
}
