package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobmarket/internal/ml"
)

type MLHandler struct {
	Salary   *ml.SalaryModel
	Category *ml.CategoryModel
	Logger   *zap.Logger
}

func (h *MLHandler) PredictSalary(c *gin.Context) {
	if h.Salary == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "salary model not loaded"})
		return
	}

	pred, err := h.Salary.Predict(c.Query("title"), c.Query("location"), c.Query("company"))
	if err != nil {
		var unknown *ml.UnknownCategoryError
		if errors.As(err, &unknown) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Prediction failed: " + unknown.Error()})
			return
		}
		h.Logger.Error("salary prediction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}
	c.JSON(http.StatusOK, pred)
}

func (h *MLHandler) ClassifyJob(c *gin.Context) {
	if h.Category == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "classifier model not loaded"})
		return
	}
	c.JSON(http.StatusOK, h.Category.Predict(c.Query("title"), c.Query("description")))
}

func (h *MLHandler) ModelStats(c *gin.Context) {
	if h.Salary == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "salary model not loaded"})
		return
	}
	stats := gin.H{
		"model_type":       "target-encoding regressor",
		"features":         []string{"title", "location", "company"},
		"trained_on_jobs":  h.Salary.TrainedOn,
		"unique_titles":    len(h.Salary.Title.Encoding.Classes),
		"unique_locations": len(h.Salary.Location.Encoding.Classes),
		"unique_companies": len(h.Salary.Company.Encoding.Classes),
	}
	if h.Category != nil {
		stats["classifier_classes"] = h.Category.Classifier.Classes
		stats["classifier_vocabulary_size"] = len(h.Category.Vectorizer.Vocabulary)
	}
	c.JSON(http.StatusOK, stats)
}
