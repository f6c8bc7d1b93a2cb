package analytics

import (
	"strings"

	"jobmarket/internal/domain"
)

// IsRemote reports whether a posting mentions remote work in its title,
// description or location. Plain case-insensitive substring test.
func IsRemote(j domain.Job) bool {
	for _, s := range []string{j.Title, j.Description, j.Location} {
		if strings.Contains(strings.ToLower(s), "remote") {
			return true
		}
	}
	return false
}

// FilterRemote returns up to limit remote postings, preserving input order.
func FilterRemote(jobs []domain.Job, limit int) []domain.Job {
	capHint := len(jobs)
	if limit > 0 && limit < capHint {
		capHint = limit
	}
	out := make([]domain.Job, 0, capHint)
	for _, j := range jobs {
		if !IsRemote(j) {
			continue
		}
		out = append(out, j)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
