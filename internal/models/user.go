package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const CollectionUser = "user"

const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name" validate:"required"`
	Email    string             `bson:"email" json:"email" validate:"required,email"`
	Role     string             `bson:"role" json:"role" validate:"required,oneof=admin doctor patient"`
	ClinicID string             `bson:"clinic_id,omitempty" json:"clinic_id,omitempty"`
	Phone    string             `bson:"phone,omitempty" json:"phone,omitempty"`
	IsActive *bool              `bson:"is_active" json:"is_active"`
}

func (User) Collection() string { return CollectionUser }

// SetDefaults marks the user active unless the request said otherwise.
func (u *User) SetDefaults() {
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}
