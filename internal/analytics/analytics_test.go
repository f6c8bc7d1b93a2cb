package analytics

import (
	"math"
	"testing"
	"time"

	"jobmarket/internal/domain"
)

func jobWithSalary(id string, min, max int) domain.Job {
	return domain.Job{ID: id, SalaryMin: min, SalaryMax: max}
}

func TestSalariesMedianUpperMiddle(t *testing.T) {
	// Multiset [1,2,3,4]: the median must be the upper-middle element (3),
	// not an averaged 2.5.
	jobs := []domain.Job{
		jobWithSalary("a", 1, 2),
		jobWithSalary("b", 3, 4),
	}

	stats := Salaries(jobs)
	if stats == nil {
		t.Fatal("expected stats")
	}
	if stats.Median != 3 {
		t.Errorf("median = %d, want 3", stats.Median)
	}
	if stats.Min != 1 || stats.Max != 4 {
		t.Errorf("min/max = %d/%d, want 1/4", stats.Min, stats.Max)
	}
	if stats.Average != 2 { // 10 / 4 with integer division
		t.Errorf("average = %d, want 2", stats.Average)
	}
}

func TestSalariesSkipsZeroBounds(t *testing.T) {
	jobs := []domain.Job{
		jobWithSalary("a", 0, 100),
		jobWithSalary("b", 50, 0),
	}

	stats := Salaries(jobs)
	if stats == nil {
		t.Fatal("expected stats")
	}
	if stats.Samples != 2 {
		t.Errorf("samples = %d, want 2", stats.Samples)
	}
	if stats.Min != 50 || stats.Max != 100 {
		t.Errorf("min/max = %d/%d", stats.Min, stats.Max)
	}
}

func TestSalariesNoData(t *testing.T) {
	if got := Salaries([]domain.Job{jobWithSalary("a", 0, 0)}); got != nil {
		t.Errorf("expected nil stats, got %+v", got)
	}
	if got := Salaries(nil); got != nil {
		t.Errorf("expected nil stats for empty set, got %+v", got)
	}
}

func TestTopSkillsOrdering(t *testing.T) {
	jobs := []domain.Job{
		{ID: "1", Skills: []string{"python", "sql"}},
		{ID: "2", Skills: []string{"python", "aws"}},
		{ID: "3", Skills: []string{"python", "sql"}},
	}

	top := TopSkills(jobs, 10)
	if len(top) != 3 {
		t.Fatalf("got %d entries, want 3", len(top))
	}
	if top[0].Key != "python" || top[0].Count != 3 {
		t.Errorf("top[0] = %+v", top[0])
	}
	if top[1].Key != "sql" || top[1].Count != 2 {
		t.Errorf("top[1] = %+v", top[1])
	}
	if top[2].Key != "aws" || top[2].Count != 1 {
		t.Errorf("top[2] = %+v", top[2])
	}
}

func TestTopNTiesKeepFirstEncounterOrder(t *testing.T) {
	jobs := []domain.Job{
		{ID: "1", Company: "Beta"},
		{ID: "2", Company: "Alpha"},
	}

	top, distinct := TopCompanies(jobs, 10)
	if distinct != 2 {
		t.Fatalf("distinct = %d, want 2", distinct)
	}
	// Both count 1: Beta was seen first, so Beta ranks first.
	if top[0].Key != "Beta" || top[1].Key != "Alpha" {
		t.Errorf("tie order = %q, %q; want Beta, Alpha", top[0].Key, top[1].Key)
	}
}

func TestTopCompaniesExcludesUnknown(t *testing.T) {
	jobs := []domain.Job{
		{ID: "1", Company: "Unknown"},
		{ID: "2", Company: ""},
		{ID: "3", Company: "Acme"},
	}

	top, distinct := TopCompanies(jobs, 10)
	if distinct != 1 || len(top) != 1 || top[0].Key != "Acme" {
		t.Errorf("got %v (distinct %d)", top, distinct)
	}
}

func TestTopNTruncates(t *testing.T) {
	jobs := []domain.Job{
		{ID: "1", Location: "NY"},
		{ID: "2", Location: "SF"},
		{ID: "3", Location: "LA"},
	}
	top, _ := TopLocations(jobs, 2)
	if len(top) != 2 {
		t.Errorf("got %d entries, want 2", len(top))
	}
}

func TestIsRemote(t *testing.T) {
	cases := []struct {
		job  domain.Job
		want bool
	}{
		{domain.Job{Title: "Remote Data Scientist"}, true},
		{domain.Job{Description: "fully REMOTE team"}, true},
		{domain.Job{Location: "Remote, US"}, true},
		{domain.Job{Title: "Data Scientist", Location: "NY"}, false},
	}
	for _, tc := range cases {
		if got := IsRemote(tc.job); got != tc.want {
			t.Errorf("IsRemote(%+v) = %v, want %v", tc.job, got, tc.want)
		}
	}
}

func TestFilterRemoteLimit(t *testing.T) {
	jobs := []domain.Job{
		{ID: "1", Location: "Remote"},
		{ID: "2", Location: "NY"},
		{ID: "3", Title: "Remote Engineer"},
		{ID: "4", Description: "remote-first"},
	}

	out := FilterRemote(jobs, 2)
	if len(out) != 2 || out[0].ID != "1" || out[1].ID != "3" {
		t.Errorf("got %v", out)
	}
}

func TestFilterRemoteHugeLimit(t *testing.T) {
	jobs := []domain.Job{
		{ID: "1", Location: "Remote"},
		{ID: "2", Location: "NY"},
	}

	out := FilterRemote(jobs, math.MaxInt)
	if len(out) != 1 || out[0].ID != "1" {
		t.Errorf("got %v", out)
	}
}

func TestMarketReport(t *testing.T) {
	jobs := []domain.Job{
		{ID: "1", Company: "Acme", Skills: []string{"python"}, SalaryMin: 100, SalaryMax: 200},
		{ID: "2", Company: "Acme", Skills: []string{"python", "sql"}},
	}

	r := Market(jobs, "data scientist", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	if r.TotalJobs != 2 || r.AnalysisDate != "2026-08-01" {
		t.Errorf("report header = %+v", r)
	}
	if r.SalaryStats == nil || r.SalaryStats.Min != 100 {
		t.Errorf("salary stats = %+v", r.SalaryStats)
	}
	if len(r.TopSkills) != 2 || r.TopSkills[0].Skill != "python" || r.TopSkills[0].Count != 2 {
		t.Errorf("top skills = %v", r.TopSkills)
	}
	if len(r.TopCompanies) != 1 || r.TopCompanies[0].Jobs != 2 {
		t.Errorf("top companies = %v", r.TopCompanies)
	}
}

func TestRecommendSkillsPercentage(t *testing.T) {
	jobs := []domain.Job{
		{ID: "1", Skills: []string{"python"}},
		{ID: "2", Skills: []string{"python"}},
		{ID: "3", Skills: []string{"sql"}},
	}

	recs := RecommendSkills(jobs, 10)
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Skill != "python" || recs[0].Frequency != 2 || recs[0].Percentage != 66.7 {
		t.Errorf("recs[0] = %+v", recs[0])
	}
}
