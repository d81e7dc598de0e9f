package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/clinicdesk/clinic-api/internal/scheduler"
	"github.com/clinicdesk/clinic-api/internal/store"
)

// Store is what the handlers need from the record store gateway.
type Store interface {
	Insert(ctx context.Context, rec store.Record) (string, error)
	Query(ctx context.Context, collection string, filter bson.M) []bson.M
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
	Name() string
}

type Handler struct {
	store     Store
	scheduler *scheduler.Scheduler
}

func New(st Store, sch *scheduler.Scheduler) *Handler {
	return &Handler{store: st, scheduler: sch}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/test", h.TestDatabase)

	r.POST("/users", h.CreateUser)
	r.GET("/users", h.ListUsers)

	r.POST("/clinics", h.CreateClinic)
	r.GET("/clinics", h.ListClinics)

	r.POST("/doctors", h.CreateDoctor)
	r.GET("/doctors", h.ListDoctors)

	r.POST("/availability", h.AddAvailability)
	r.GET("/availability/:doctor_id", h.GetAvailability)

	r.POST("/appointments", h.CreateAppointment)
	r.GET("/appointments", h.ListAppointments)

	r.POST("/invoices", h.CreateInvoice)
	r.GET("/invoices", h.ListInvoices)

	r.POST("/payments", h.RecordPayment)
	r.GET("/payments", h.ListPayments)

	r.GET("/analytics/summary", h.AnalyticsSummary)
}

// createRecord is the shared insert path: defaults are assumed to be applied
// already, validation happens inside the store.
func (h *Handler) createRecord(c *gin.Context, rec store.Record, failMsg string) {
	id, err := h.store.Insert(c.Request.Context(), rec)
	if err != nil {
		var ve *store.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMsg})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
