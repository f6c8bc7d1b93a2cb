// Package httpapi exposes the stored record set, the aggregations and the
// inference adapters over HTTP.
package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobmarket/internal/events"
	"jobmarket/internal/ingest"
	"jobmarket/internal/ml"
	"jobmarket/internal/store"
)

type Deps struct {
	Store    *store.Store
	Ingest   *ingest.Service
	Salary   *ml.SalaryModel
	Category *ml.CategoryModel
	Hub      *events.Hub
	Logger   *zap.Logger

	AllowOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(d.AllowOrigins) == 0 || (len(d.AllowOrigins) == 1 && d.AllowOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = d.AllowOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Job Market API is running!"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	jobs := &JobsHandler{Store: d.Store, Logger: d.Logger}
	r.GET("/jobs", jobs.List)
	r.GET("/jobs/search", jobs.Search)
	r.GET("/jobs/:id", jobs.Get)

	an := &AnalyticsHandler{Store: d.Store, Logger: d.Logger}
	r.GET("/skills/top", an.TopSkills)
	r.GET("/skills/recommend", an.RecommendSkills)
	r.GET("/companies/hiring", an.TopCompanies)
	r.GET("/locations/best", an.BestLocations)
	r.GET("/remote", an.Remote)
	r.GET("/salaries/stats", an.SalaryStats)
	r.GET("/market/analyze", an.MarketAnalyze)

	mlh := &MLHandler{Salary: d.Salary, Category: d.Category, Logger: d.Logger}
	r.POST("/ml/predict-salary", mlh.PredictSalary)
	r.POST("/ml/classify-job", mlh.ClassifyJob)
	r.GET("/ml/model-stats", mlh.ModelStats)

	if d.Ingest != nil {
		rh := &RefreshHandler{Ingest: d.Ingest}
		r.POST("/refresh", rh.Refresh)
	}
	if d.Hub != nil {
		eh := &EventsHandler{Hub: d.Hub}
		r.GET("/events", eh.Stream)
	}

	return r
}
