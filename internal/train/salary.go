package train

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"jobmarket/internal/domain"
	"jobmarket/internal/ml"
	"jobmarket/internal/store"
)

const (
	// trainingQueryLimit bounds how many rows a training run reads.
	trainingQueryLimit = 5000
	// minSalaryRows is the floor below which a salary fit is meaningless.
	minSalaryRows = 50
)

// SalaryModel fits the additive target-encoding regressor on stored rows
// that carry salary data and writes the artifact under dir.
func SalaryModel(ctx context.Context, st *store.Store, dir string, logger *zap.Logger) (*ml.SalaryModel, error) {
	jobs, err := st.Query(ctx, store.Filter{Limit: trainingQueryLimit})
	if err != nil {
		return nil, fmt.Errorf("load training rows: %w", err)
	}

	var rows []domain.Job
	for _, j := range jobs {
		if j.SalaryMin > 0 && j.SalaryAvg > 0 {
			rows = append(rows, j)
		}
	}
	logger.Info("salary training set",
		zap.Int("total_rows", len(jobs)),
		zap.Int("with_salary", len(rows)),
	)
	if len(rows) < minSalaryRows {
		return nil, fmt.Errorf("need at least %d rows with salary data, have %d", minSalaryRows, len(rows))
	}

	var sum float64
	for _, j := range rows {
		sum += float64(j.SalaryAvg)
	}
	globalMean := sum / float64(len(rows))

	m := &ml.SalaryModel{
		GlobalMean: globalMean,
		Title:      fitFeature(rows, globalMean, func(j domain.Job) string { return j.Title }),
		Location:   fitFeature(rows, globalMean, func(j domain.Job) string { return j.Location }),
		Company:    fitFeature(rows, globalMean, func(j domain.Job) string { return j.Company }),
		TrainedOn:  len(rows),
	}

	if err := m.Save(dir); err != nil {
		return nil, err
	}
	logger.Info("salary model saved",
		zap.String("dir", dir),
		zap.Int("trained_on", m.TrainedOn),
		zap.Int("unique_titles", len(m.Title.Encoding.Classes)),
	)
	return m, nil
}

// fitFeature learns one offset per class: the mean salary of rows in that
// class minus the global mean.
func fitFeature(rows []domain.Job, globalMean float64, key func(domain.Job) string) *ml.Feature {
	vals := make([]string, len(rows))
	for i, j := range rows {
		vals[i] = key(j)
	}
	enc := ml.NewLabelEncoding(vals)

	sums := make([]float64, len(enc.Classes))
	counts := make([]int, len(enc.Classes))
	for _, j := range rows {
		code, _ := enc.Encode(key(j))
		sums[code] += float64(j.SalaryAvg)
		counts[code]++
	}

	offsets := make([]float64, len(enc.Classes))
	for i := range offsets {
		offsets[i] = sums[i]/float64(counts[i]) - globalMean
	}

	return &ml.Feature{Encoding: enc, Offsets: offsets}
}
