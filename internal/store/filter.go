package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

const dateLayout = "2006-01-02"

// Filter accumulates optional query dimensions into a bson.M. Absent
// parameters contribute no clause at all.
type Filter struct {
	m   bson.M
	err error
}

func NewFilter() *Filter {
	return &Filter{m: bson.M{}}
}

// Equals adds an equality clause unless value is empty.
func (f *Filter) Equals(field, value string) *Filter {
	if value != "" {
		f.m[field] = value
	}
	return f
}

// DateRange bounds a datetime field by calendar days: from is inclusive of
// the whole day ($gte midnight), to is inclusive through 23:59:59 ($lt
// midnight of the following day). Either bound may be empty.
func (f *Filter) DateRange(field, from, to string) *Filter {
	bounds := bson.M{}
	if from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			f.err = NewValidationError("invalid from_date %q, expected YYYY-MM-DD", from)
			return f
		}
		bounds["$gte"] = t
	}
	if to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			f.err = NewValidationError("invalid to_date %q, expected YYYY-MM-DD", to)
			return f
		}
		bounds["$lt"] = t.AddDate(0, 0, 1)
	}
	if len(bounds) > 0 {
		f.m[field] = bounds
	}
	return f
}

func (f *Filter) Build() (bson.M, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.m, nil
}
