package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobmarket/internal/analytics"
	"jobmarket/internal/store"
)

type AnalyticsHandler struct {
	Store  *store.Store
	Logger *zap.Logger
}

func (h *AnalyticsHandler) TopSkills(c *gin.Context) {
	limit := intQuery(c, "limit", 20)
	jobs := queryJobs(c.Request.Context(), h.Store, h.Logger, store.Filter{Limit: 200})

	skills := []gin.H{}
	for _, s := range analytics.TopSkills(jobs, limit) {
		skills = append(skills, gin.H{"skill": s.Key, "count": s.Count})
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills, "total_jobs_analyzed": len(jobs)})
}

func (h *AnalyticsHandler) TopCompanies(c *gin.Context) {
	limit := intQuery(c, "limit", 10)
	jobs := queryJobs(c.Request.Context(), h.Store, h.Logger, store.Filter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		Limit:    200,
	})

	top, distinct := analytics.TopCompanies(jobs, limit)
	companies := []gin.H{}
	for _, co := range top {
		companies = append(companies, gin.H{"company": co.Key, "job_count": co.Count})
	}
	c.JSON(http.StatusOK, gin.H{"companies": companies, "total_companies": distinct})
}

func (h *AnalyticsHandler) BestLocations(c *gin.Context) {
	limit := intQuery(c, "limit", 10)
	jobs := queryJobs(c.Request.Context(), h.Store, h.Logger, store.Filter{
		Keyword: c.Query("keyword"),
		Limit:   200,
	})

	top, distinct := analytics.TopLocations(jobs, limit)
	locations := []gin.H{}
	for _, loc := range top {
		locations = append(locations, gin.H{"location": loc.Key, "job_count": loc.Count})
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations, "total_locations": distinct})
}

func (h *AnalyticsHandler) Remote(c *gin.Context) {
	limit := intQuery(c, "limit", 10)
	jobs := queryJobs(c.Request.Context(), h.Store, h.Logger, store.Filter{
		Keyword: c.Query("keyword"),
		Limit:   200,
	})

	remote := analytics.FilterRemote(jobs, limit)
	c.JSON(http.StatusOK, gin.H{"jobs": remote, "count": len(remote)})
}

func (h *AnalyticsHandler) SalaryStats(c *gin.Context) {
	keyword := c.Query("keyword")
	location := c.Query("location")
	jobs := queryJobs(c.Request.Context(), h.Store, h.Logger, store.Filter{
		Keyword:  keyword,
		Location: location,
		Limit:    200,
	})

	stats := analytics.Salaries(jobs)
	if stats == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No salary data available"})
		return
	}
	if keyword == "" {
		keyword = "all"
	}
	if location == "" {
		location = "all"
	}
	c.JSON(http.StatusOK, gin.H{
		"keyword":        keyword,
		"location":       location,
		"min_salary":     stats.Min,
		"max_salary":     stats.Max,
		"average_salary": stats.Average,
		"median_salary":  stats.Median,
		"jobs_analyzed":  len(jobs),
	})
}

func (h *AnalyticsHandler) MarketAnalyze(c *gin.Context) {
	keyword := c.Query("keyword")
	jobs := queryJobs(c.Request.Context(), h.Store, h.Logger, store.Filter{
		Keyword: keyword,
		Limit:   500,
	})
	c.JSON(http.StatusOK, analytics.Market(jobs, keyword, time.Now()))
}

func (h *AnalyticsHandler) RecommendSkills(c *gin.Context) {
	role := c.Query("role")
	limit := intQuery(c, "limit", 10)
	jobs := queryJobs(c.Request.Context(), h.Store, h.Logger, store.Filter{
		Keyword: role,
		Limit:   200,
	})
	c.JSON(http.StatusOK, gin.H{
		"role":            role,
		"recommendations": analytics.RecommendSkills(jobs, limit),
		"jobs_analyzed":   len(jobs),
	})
}
