package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobmarket/internal/domain"
	"jobmarket/internal/store"
)

type JobsHandler struct {
	Store  *store.Store
	Logger *zap.Logger
}

func (h *JobsHandler) List(c *gin.Context) {
	jobs := queryJobs(c.Request.Context(), h.Store, h.Logger, store.Filter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		Limit:    intQuery(c, "limit", 100),
	})
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

// Search filters by salary in application code after the fetch: the salary
// bounds compare against each record's minimum salary.
func (h *JobsHandler) Search(c *gin.Context) {
	minSalary := intQuery(c, "min_salary", 0)
	maxSalary := intQuery(c, "max_salary", 0)
	limit := intQuery(c, "limit", 10)

	jobs := queryJobs(c.Request.Context(), h.Store, h.Logger, store.Filter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		Limit:    100,
	})

	filtered := []domain.Job{}
	for _, j := range jobs {
		if minSalary > 0 && j.SalaryMin < minSalary {
			continue
		}
		if maxSalary > 0 && j.SalaryMin > maxSalary {
			continue
		}
		filtered = append(filtered, j)
		if len(filtered) >= limit {
			break
		}
	}
	c.JSON(http.StatusOK, gin.H{"jobs": filtered, "count": len(filtered)})
}

func (h *JobsHandler) Get(c *gin.Context) {
	id := c.Param("id")
	job, err := h.Store.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("get job failed", zap.String("job_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found", "job_id": id})
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}
