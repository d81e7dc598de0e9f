package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const CollectionClinic = "clinic"

type Clinic struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	OwnerUserID string             `bson:"owner_user_id,omitempty" json:"owner_user_id,omitempty"`
}

func (Clinic) Collection() string { return CollectionClinic }
