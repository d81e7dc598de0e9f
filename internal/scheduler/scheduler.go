// Package scheduler books appointments: it derives the time window from the
// request and refuses windows that overlap an existing booking for the same
// doctor.
package scheduler

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/clinicdesk/clinic-api/internal/models"
	"github.com/clinicdesk/clinic-api/internal/store"
)

// ErrOverlap is returned when the requested window intersects an existing
// appointment for the doctor. Handlers map it to 409.
var ErrOverlap = errors.New("overlap")

const (
	startLayout     = "2006-01-02 15:04"
	defaultDuration = 30
)

// Store is the slice of the record store the scheduler needs.
type Store interface {
	Insert(ctx context.Context, rec store.Record) (string, error)
	Query(ctx context.Context, collection string, filter bson.M) []bson.M
}

type Scheduler struct {
	store Store
}

func New(st Store) *Scheduler {
	return &Scheduler{store: st}
}

// Request is the booking payload. DurationMinutes is a pointer so an explicit
// zero survives; nil means the 30-minute default.
type Request struct {
	ClinicID        string `json:"clinic_id"`
	DoctorID        string `json:"doctor_id"`
	PatientID       string `json:"patient_id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes *int   `json:"duration_minutes"`
	Reason          string `json:"reason,omitempty"`
}

// Schedule parses the requested window, rejects overlapping bookings and
// persists the appointment with status "scheduled", returning the new id.
//
// The overlap check and the insert are two separate store calls with no
// transaction between them, so two concurrent requests for the same slot can
// both pass the check. Accepted limitation for this deployment size.
// Cancelled appointments still block their slot: the overlap query carries no
// status clause.
func (s *Scheduler) Schedule(ctx context.Context, req Request) (string, error) {
	startsAt, err := time.Parse(startLayout, req.Date+" "+req.StartTime)
	if err != nil {
		return "", store.NewValidationError("invalid date or time format, expected YYYY-MM-DD and HH:MM")
	}

	duration := defaultDuration
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	endsAt := startsAt.Add(time.Duration(duration) * time.Minute)

	existing := s.store.Query(ctx, models.CollectionAppointment, OverlapFilter(req.DoctorID, startsAt, endsAt))
	if len(existing) > 0 {
		return "", ErrOverlap
	}

	appt := models.Appointment{
		ClinicID:  req.ClinicID,
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		Reason:    req.Reason,
		Status:    models.AppointmentScheduled,
	}
	return s.store.Insert(ctx, &appt)
}

// OverlapFilter matches appointments for the doctor whose half-open interval
// [starts_at, ends_at) intersects [startsAt, endsAt). Strict $lt/$gt means
// back-to-back bookings do not collide.
func OverlapFilter(doctorID string, startsAt, endsAt time.Time) bson.M {
	return bson.M{
		"doctor_id": doctorID,
		"starts_at": bson.M{"$lt": endsAt},
		"ends_at":   bson.M{"$gt": startsAt},
	}
}
