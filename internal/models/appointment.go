package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const CollectionAppointment = "appointment"

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCheckedIn AppointmentStatus = "checked_in"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ClinicID  string             `bson:"clinic_id" json:"clinic_id" validate:"required"`
	DoctorID  string             `bson:"doctor_id" json:"doctor_id" validate:"required"`
	PatientID string             `bson:"patient_id" json:"patient_id" validate:"required"`
	StartsAt  time.Time          `bson:"starts_at" json:"starts_at" validate:"required"`
	EndsAt    time.Time          `bson:"ends_at" json:"ends_at" validate:"required"`
	Reason    string             `bson:"reason,omitempty" json:"reason,omitempty"`
	Status    AppointmentStatus  `bson:"status" json:"status" validate:"required,oneof=scheduled checked_in completed cancelled"`
}

func (Appointment) Collection() string { return CollectionAppointment }

func (a *Appointment) SetDefaults() {
	if a.Status == "" {
		a.Status = AppointmentScheduled
	}
}
