// Package store is a thin gateway over MongoDB collections: schema-validated
// inserts and filtered reads, keyed by collection name.
package store

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Record is any persistable entity with a known collection name.
type Record interface {
	Collection() string
}

// ValidationError marks input the caller can fix; handlers map it to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

type Store struct {
	db       *mongo.Database
	validate *validator.Validate
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, validate: validator.New()}
}

// Insert validates the record against its struct tags and writes it, returning
// the store-assigned id as a hex string. Validation failures come back as
// *ValidationError; driver failures propagate as-is.
func (s *Store) Insert(ctx context.Context, rec Record) (string, error) {
	if err := s.validate.Struct(rec); err != nil {
		return "", &ValidationError{Msg: err.Error()}
	}

	res, err := s.db.Collection(rec.Collection()).InsertOne(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", rec.Collection(), err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", rec.Collection(), res.InsertedID)
	}
	return oid.Hex(), nil
}

// Query returns every document matching the filter, with the Mongo _id
// rewritten to a hex "id" field. Store errors are swallowed into an empty
// slice so list endpoints stay usable against an uninitialized deployment.
func (s *Store) Query(ctx context.Context, collection string, filter bson.M) []bson.M {
	docs := make([]bson.M, 0)

	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		log.Warn().Err(err).Str("collection", collection).Msg("query failed, returning empty result")
		return docs
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		log.Warn().Err(err).Str("collection", collection).Msg("cursor decode failed, returning empty result")
		return docs
	}

	for _, doc := range raw {
		docs = append(docs, normalize(doc))
	}
	return docs
}

// normalize makes raw documents JSON-friendly: _id becomes a hex "id" and
// BSON datetimes become time.Time so they render as RFC3339.
func normalize(doc bson.M) bson.M {
	for k, v := range doc {
		if dt, ok := v.(primitive.DateTime); ok {
			doc[k] = dt.Time().UTC()
		}
	}
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["id"] = oid.Hex()
		delete(doc, "_id")
	}
	return doc
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *Store) Name() string {
	return s.db.Name()
}
