package httpapi

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobmarket/internal/domain"
	"jobmarket/internal/store"
)

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// queryJobs reads from the store, degrading to an empty set on failure so
// read endpoints stay up when the database does not.
func queryJobs(ctx context.Context, st *store.Store, logger *zap.Logger, f store.Filter) []domain.Job {
	jobs, err := st.Query(ctx, f)
	if err != nil {
		logger.Error("store query failed", zap.Error(err))
		return []domain.Job{}
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs
}
