package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const CollectionDoctorProfile = "doctorprofile"

// DoctorProfile references a User expected to have role=doctor. The role is
// not enforced here; references are opaque ids resolved by the caller.
type DoctorProfile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id" json:"user_id" validate:"required"`
	ClinicID  string             `bson:"clinic_id" json:"clinic_id" validate:"required"`
	Specialty string             `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Bio       string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Fee       float64            `bson:"fee" json:"fee"`
}

func (DoctorProfile) Collection() string { return CollectionDoctorProfile }
