package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/models"
	"github.com/clinicdesk/clinic-api/internal/store"
)

// Invoices and payments are pure pass-through: validate, insert, return the
// id. Totals, tax and amount consistency are the caller's problem.

func (h *Handler) CreateInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	invoice.SetDefaults()
	h.createRecord(c, &invoice, "failed to create invoice")
}

func (h *Handler) ListInvoices(c *gin.Context) {
	filter, err := store.NewFilter().
		Equals("clinic_id", c.Query("clinic_id")).
		Equals("status", c.Query("status")).
		Build()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.store.Query(c.Request.Context(), models.CollectionInvoice, filter))
}

func (h *Handler) RecordPayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	payment.SetDefaults()
	h.createRecord(c, &payment, "failed to record payment")
}

func (h *Handler) ListPayments(c *gin.Context) {
	filter, err := store.NewFilter().
		Equals("clinic_id", c.Query("clinic_id")).
		Equals("invoice_id", c.Query("invoice_id")).
		Build()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.store.Query(c.Request.Context(), models.CollectionPayment, filter))
}
