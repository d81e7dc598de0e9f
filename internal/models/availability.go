package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const CollectionAvailabilitySlot = "availabilityslot"

// AvailabilitySlot is a weekly recurring window. Weekday 0 is Monday, 6 is
// Sunday. Times are "HH:MM" strings; end is not checked against start.
type AvailabilitySlot struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DoctorID  string             `bson:"doctor_id" json:"doctor_id" validate:"required"`
	ClinicID  string             `bson:"clinic_id" json:"clinic_id" validate:"required"`
	Weekday   int                `bson:"weekday" json:"weekday" validate:"gte=0,lte=6"`
	StartTime string             `bson:"start_time" json:"start_time" validate:"required"`
	EndTime   string             `bson:"end_time" json:"end_time" validate:"required"`
}

func (AvailabilitySlot) Collection() string { return CollectionAvailabilitySlot }
