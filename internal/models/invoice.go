package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const CollectionInvoice = "invoice"

type InvoiceStatus string

const (
	InvoiceUnpaid InvoiceStatus = "unpaid"
	InvoicePaid   InvoiceStatus = "paid"
	InvoiceVoid   InvoiceStatus = "void"
)

type InvoiceItem struct {
	Name      string  `bson:"name" json:"name" validate:"required"`
	Qty       int     `bson:"qty" json:"qty"`
	UnitPrice float64 `bson:"unit_price" json:"unit_price"`
}

// Invoice stores line items as submitted. No total is computed or stored;
// aggregation is left to the caller.
type Invoice struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ClinicID      string             `bson:"clinic_id" json:"clinic_id" validate:"required"`
	AppointmentID string             `bson:"appointment_id" json:"appointment_id" validate:"required"`
	PatientID     string             `bson:"patient_id" json:"patient_id" validate:"required"`
	DoctorID      string             `bson:"doctor_id" json:"doctor_id" validate:"required"`
	Items         []InvoiceItem      `bson:"items" json:"items" validate:"dive"`
	Discount      float64            `bson:"discount" json:"discount"`
	TaxRate       float64            `bson:"tax_rate" json:"tax_rate"`
	Status        InvoiceStatus      `bson:"status" json:"status" validate:"required,oneof=unpaid paid void"`
}

func (Invoice) Collection() string { return CollectionInvoice }

func (i *Invoice) SetDefaults() {
	if i.Status == "" {
		i.Status = InvoiceUnpaid
	}
	if i.Items == nil {
		i.Items = []InvoiceItem{}
	}
	for idx := range i.Items {
		if i.Items[idx].Qty == 0 {
			i.Items[idx].Qty = 1
		}
	}
}
