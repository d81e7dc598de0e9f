package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const CollectionPayment = "payment"

type PaymentMethod string

const (
	PaymentCash      PaymentMethod = "cash"
	PaymentCard      PaymentMethod = "card"
	PaymentTransfer  PaymentMethod = "transfer"
	PaymentInsurance PaymentMethod = "insurance"
)

// Payment records money received against an invoice. The amount is not
// checked against the invoice's items.
type Payment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ClinicID  string             `bson:"clinic_id" json:"clinic_id" validate:"required"`
	InvoiceID string             `bson:"invoice_id" json:"invoice_id" validate:"required"`
	Amount    float64            `bson:"amount" json:"amount" validate:"required"`
	Method    PaymentMethod      `bson:"method" json:"method" validate:"required,oneof=cash card transfer insurance"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
}

func (Payment) Collection() string { return CollectionPayment }

func (p *Payment) SetDefaults() {
	if p.Method == "" {
		p.Method = PaymentCash
	}
}
