package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/clinicdesk/clinic-api/internal/models"
)

func (h *Handler) CreateDoctor(c *gin.Context) {
	var profile models.DoctorProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	h.createRecord(c, &profile, "failed to create doctor profile")
}

func (h *Handler) ListDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Query(c.Request.Context(), models.CollectionDoctorProfile, bson.M{}))
}

func (h *Handler) AddAvailability(c *gin.Context) {
	var slot models.AvailabilitySlot
	if err := c.ShouldBindJSON(&slot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	h.createRecord(c, &slot, "failed to create availability slot")
}

func (h *Handler) GetAvailability(c *gin.Context) {
	filter := bson.M{"doctor_id": c.Param("doctor_id")}
	c.JSON(http.StatusOK, h.store.Query(c.Request.Context(), models.CollectionAvailabilitySlot, filter))
}
