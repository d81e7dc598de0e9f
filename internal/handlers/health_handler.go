package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Clinic Management API running"})
}

// TestDatabase reports store connectivity. Every failure along the checks is
// folded into the response body; this endpoint always answers 200.
func (h *Handler) TestDatabase(c *gin.Context) {
	resp := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     h.store.Name(),
		"connection_status": "not connected",
		"collections":       []string{},
	}
	if os.Getenv("MONGO_URI") != "" {
		resp["database_url"] = "set"
	}

	ctx := c.Request.Context()
	if err := h.store.Ping(ctx); err != nil {
		c.JSON(http.StatusOK, resp)
		return
	}
	resp["database"] = "available"
	resp["connection_status"] = "connected"

	collections, err := h.store.Collections(ctx)
	if err != nil {
		resp["database"] = "connected but error: " + truncate(err.Error(), 50)
		c.JSON(http.StatusOK, resp)
		return
	}
	if len(collections) > 10 {
		collections = collections[:10]
	}
	resp["database"] = "connected & working"
	resp["collections"] = collections

	c.JSON(http.StatusOK, resp)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
