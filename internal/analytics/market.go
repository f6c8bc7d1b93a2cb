package analytics

import (
	"math"
	"time"

	"jobmarket/internal/domain"
)

// SkillCount is one skill entry in a market report.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// CompanyCount is one company entry in a market report.
type CompanyCount struct {
	Company string `json:"company"`
	Jobs    int    `json:"jobs"`
}

// MarketReport is a per-keyword snapshot of the stored record set.
type MarketReport struct {
	Keyword      string         `json:"keyword"`
	TotalJobs    int            `json:"total_jobs"`
	AnalysisDate string         `json:"analysis_date"`
	SalaryStats  *SalaryStats   `json:"salary_stats,omitempty"`
	TopSkills    []SkillCount   `json:"top_skills"`
	TopCompanies []CompanyCount `json:"top_companies"`
}

// Market builds a report over records already filtered by keyword: salary
// summary plus the five most frequent skills and companies.
func Market(jobs []domain.Job, keyword string, now time.Time) *MarketReport {
	r := &MarketReport{
		Keyword:      keyword,
		TotalJobs:    len(jobs),
		AnalysisDate: now.Format("2006-01-02"),
		SalaryStats:  Salaries(jobs),
		TopSkills:    []SkillCount{},
		TopCompanies: []CompanyCount{},
	}

	for _, c := range TopSkills(jobs, 5) {
		r.TopSkills = append(r.TopSkills, SkillCount{Skill: c.Key, Count: c.Count})
	}
	top, _ := TopCompanies(jobs, 5)
	for _, c := range top {
		r.TopCompanies = append(r.TopCompanies, CompanyCount{Company: c.Key, Jobs: c.Count})
	}
	return r
}

// SkillRecommendation is one recommended skill for a target role, with how
// often it appears and the share of postings mentioning it.
type SkillRecommendation struct {
	Skill      string  `json:"skill"`
	Frequency  int     `json:"frequency"`
	Percentage float64 `json:"percentage"`
}

// RecommendSkills ranks the skills found in postings for a target role.
// Skills that never occur are omitted.
func RecommendSkills(jobs []domain.Job, n int) []SkillRecommendation {
	out := []SkillRecommendation{}
	if len(jobs) == 0 {
		return out
	}

	for _, c := range TopSkills(jobs, n) {
		if c.Count == 0 {
			continue
		}
		pct := float64(c.Count) / float64(len(jobs)) * 100
		out = append(out, SkillRecommendation{
			Skill:      c.Key,
			Frequency:  c.Count,
			Percentage: math.Round(pct*10) / 10,
		})
	}
	return out
}
