package etl

import (
	"fmt"

	"go.uber.org/zap"

	"jobmarket/internal/domain"
)

// Transformer turns raw upstream postings into canonical records.
type Transformer struct {
	logger *zap.Logger
}

func NewTransformer(logger *zap.Logger) *Transformer {
	return &Transformer{logger: logger}
}

// Transform cleans a single raw posting. Every branch has a default, so
// malformed input degrades to safe values instead of failing.
func (t *Transformer) Transform(raw domain.RawJob) domain.Job {
	desc := CleanHTML(raw.Description)
	skills := ExtractSkills(desc, raw.Title)
	min, max, avg := NormalizeSalary(int(raw.SalaryMin), int(raw.SalaryMax))

	return domain.Job{
		ID:          raw.ID,
		Title:       raw.Title,
		Company:     raw.Company.Resolve(),
		Location:    raw.Location.Resolve(),
		SalaryMin:   min,
		SalaryMax:   max,
		SalaryAvg:   avg,
		Description: desc,
		Skills:      skills,
		SkillsCount: len(skills),
		OriginalURL: raw.RedirectURL,
	}
}

// Process runs the batch transform over one fetched page: dedupe first,
// then normalize each survivor. A record that fails to transform is logged
// and skipped; it never aborts the batch.
func (t *Transformer) Process(raw []domain.RawJob) []domain.Job {
	unique := Dedupe(raw)

	out := make([]domain.Job, 0, len(unique))
	for _, r := range unique {
		job, err := t.transform(r)
		if err != nil {
			t.logger.Warn("skipping job", zap.String("id", r.ID), zap.Error(err))
			continue
		}
		out = append(out, job)
	}
	return out
}

func (t *Transformer) transform(raw domain.RawJob) (job domain.Job, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transform job %q: %v", raw.ID, r)
		}
	}()
	return t.Transform(raw), nil
}
