// Package ingest runs the fetch, clean and store cycle behind /refresh.
package ingest

import (
	"context"

	"go.uber.org/zap"

	"jobmarket/internal/domain"
	"jobmarket/internal/events"
	"jobmarket/internal/store"
)

// Searcher fetches raw postings from the upstream API.
type Searcher interface {
	Search(ctx context.Context, keyword, country string, results int) []domain.RawJob
}

// Saver persists cleaned jobs.
type Saver interface {
	UpsertBatch(ctx context.Context, jobs []domain.Job) (store.UpsertResult, error)
}

// Transformer turns raw postings into cleaned jobs.
type Transformer interface {
	Process(raw []domain.RawJob) []domain.Job
}

type Service struct {
	Client      Searcher
	Store       Saver
	Transformer Transformer
	Hub         *events.Hub
	Logger      *zap.Logger
}

type RefreshResult struct {
	Fetched   int `json:"fetched"`
	Cleaned   int `json:"cleaned"`
	Attempted int `json:"attempted"`
	Saved     int `json:"saved"`
}

// Refresh fetches postings for keyword, cleans them and stores the batch.
// Storage failures are logged and reported as zero saved; the cycle itself
// never errors so a broken upstream or database degrades gracefully.
func (s *Service) Refresh(ctx context.Context, keyword, country string, results int) RefreshResult {
	raw := s.Client.Search(ctx, keyword, country, results)
	jobs := s.Transformer.Process(raw)

	res := RefreshResult{Fetched: len(raw), Cleaned: len(jobs)}

	saved, err := s.Store.UpsertBatch(ctx, jobs)
	if err != nil {
		s.Logger.Error("upsert batch failed", zap.String("keyword", keyword), zap.Error(err))
		return res
	}
	res.Attempted = saved.Attempted
	res.Saved = saved.Inserted

	s.Logger.Info("refresh complete",
		zap.String("keyword", keyword),
		zap.Int("fetched", res.Fetched),
		zap.Int("cleaned", res.Cleaned),
		zap.Int("saved", res.Saved),
	)

	if s.Hub != nil && res.Saved > 0 {
		s.Hub.Publish(events.JobsRefreshed(keyword, res.Saved))
	}
	return res
}
