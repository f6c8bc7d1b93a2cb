package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobmarket/internal/ingest"
)

type RefreshHandler struct {
	Ingest *ingest.Service
}

// Refresh runs one fetch-clean-store cycle. The location parameter is the
// upstream country code, matching the search API.
func (h *RefreshHandler) Refresh(c *gin.Context) {
	keyword := c.DefaultQuery("keyword", "data")
	country := c.DefaultQuery("location", "us")
	results := intQuery(c, "results", 50)

	res := h.Ingest.Refresh(c.Request.Context(), keyword, country, results)
	c.JSON(http.StatusOK, gin.H{
		"message":   "Jobs refreshed with ETL processing",
		"fetched":   res.Fetched,
		"cleaned":   res.Cleaned,
		"saved":     res.Saved,
		"attempted": res.Attempted,
	})
}
