package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/clinicdesk/clinic-api/internal/models"
)

// AnalyticsSummary dumps a clinic's raw appointments, invoices and payments.
// Aggregation happens client-side; the optional period/date params are
// accepted and ignored.
func (h *Handler) AnalyticsSummary(c *gin.Context) {
	clinicID := c.Query("clinic_id")
	if clinicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clinic_id is required"})
		return
	}

	ctx := c.Request.Context()
	filter := bson.M{"clinic_id": clinicID}

	c.JSON(http.StatusOK, gin.H{
		"appointments": h.store.Query(ctx, models.CollectionAppointment, filter),
		"invoices":     h.store.Query(ctx, models.CollectionInvoice, filter),
		"payments":     h.store.Query(ctx, models.CollectionPayment, filter),
	})
}
