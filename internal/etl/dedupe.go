package etl

import "jobmarket/internal/domain"

// Dedupe keeps the first occurrence of each distinct id, preserving the
// input order of the survivors. Records with an empty id are dropped.
func Dedupe(jobs []domain.RawJob) []domain.RawJob {
	seen := make(map[string]bool, len(jobs))
	out := make([]domain.RawJob, 0, len(jobs))

	for _, j := range jobs {
		if j.ID == "" || seen[j.ID] {
			continue
		}
		seen[j.ID] = true
		out = append(out, j)
	}
	return out
}
