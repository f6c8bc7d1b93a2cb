package domain

import "time"

// Job is the canonical, cleaned job posting as stored and served.
// Records are immutable after the first write: the store never updates
// or deletes an existing id.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	SalaryMin   int       `json:"salary_min"`
	SalaryMax   int       `json:"salary_max"`
	SalaryAvg   int       `json:"salary_avg"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	SkillsCount int       `json:"skills_count"`
	OriginalURL string    `json:"original_url"`
	CreatedDate time.Time `json:"created_date"`
}
