package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/models"
	"github.com/clinicdesk/clinic-api/internal/scheduler"
	"github.com/clinicdesk/clinic-api/internal/store"
)

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req scheduler.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.scheduler.Schedule(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, scheduler.ErrOverlap) {
			c.JSON(http.StatusConflict, gin.H{"error": "overlap"})
			return
		}
		var ve *store.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create appointment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) ListAppointments(c *gin.Context) {
	filter, err := store.NewFilter().
		Equals("clinic_id", c.Query("clinic_id")).
		Equals("doctor_id", c.Query("doctor_id")).
		Equals("patient_id", c.Query("patient_id")).
		DateRange("starts_at", c.Query("from_date"), c.Query("to_date")).
		Build()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.store.Query(c.Request.Context(), models.CollectionAppointment, filter))
}
