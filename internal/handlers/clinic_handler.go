package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/clinicdesk/clinic-api/internal/models"
)

func (h *Handler) CreateClinic(c *gin.Context) {
	var clinic models.Clinic
	if err := c.ShouldBindJSON(&clinic); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	h.createRecord(c, &clinic, "failed to create clinic")
}

func (h *Handler) ListClinics(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Query(c.Request.Context(), models.CollectionClinic, bson.M{}))
}
