package store

import (
	"context"
	"fmt"
	"time"

	"donoru/internal/db"
	"donoru/pkg/types"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxListedCollections caps the collection names returned by DescribeConnection.
const maxListedCollections = 10

// DocumentStore reads and writes records in any named collection of the
// shared database handle.
type DocumentStore struct {
	handle *db.Handle
	now    func() time.Time
}

func NewDocumentStore(handle *db.Handle) *DocumentStore {
	return &DocumentStore{
		handle: handle,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateDocument inserts record into collection, stamping created_at and
// updated_at, and returns the generated id in hex form.
func (s *DocumentStore) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	database, err := s.handle.Database()
	if err != nil {
		return "", &types.StorageError{Op: "insert", Collection: collection, Err: err}
	}

	doc, err := toDocument(record)
	if err != nil {
		return "", &types.StorageError{Op: "insert", Collection: collection, Err: err}
	}

	now := s.now()
	doc["created_at"] = now
	doc["updated_at"] = now

	result, err := database.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", &types.StorageError{Op: "insert", Collection: collection, Err: err}
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprint(result.InsertedID), nil
	}

	return id.Hex(), nil
}

// Documents decodes up to limit documents from collection into out, which
// must be a pointer to a slice. Documents come back in natural order; a
// limit of 0 returns everything.
func (s *DocumentStore) Documents(ctx context.Context, collection string, limit int64, out any) error {
	database, err := s.handle.Database()
	if err != nil {
		return &types.StorageError{Op: "find", Collection: collection, Err: err}
	}

	cursor, err := database.Collection(collection).Find(ctx, bson.D{}, options.Find().SetLimit(limit))
	if err != nil {
		return &types.StorageError{Op: "find", Collection: collection, Err: err}
	}

	if err := cursor.All(ctx, out); err != nil {
		return &types.StorageError{Op: "decode", Collection: collection, Err: err}
	}

	return nil
}

// DescribeConnection reports on the handle without ever failing. Problems
// listing collections end up in the report's probe.
func (s *DocumentStore) DescribeConnection(ctx context.Context) types.ConnectionReport {
	report := types.ConnectionReport{
		HandlePresent:  s.handle.Present(),
		URLConfigured:  s.handle.URLConfigured(),
		NameConfigured: s.handle.NameConfigured(),
	}

	if !report.HandlePresent {
		return report
	}

	database, err := s.handle.Database()
	if err != nil {
		report.Probe = types.CollectionProbe{Err: err}
		return report
	}

	names, err := database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		report.Probe = types.CollectionProbe{Err: err}
		return report
	}

	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	if names == nil {
		names = []string{}
	}
	report.Probe = types.CollectionProbe{Names: names}

	return report
}

// toDocument flattens a record into a bson.M using its bson tags so
// bookkeeping fields can be added without knowing the record type.
func toDocument(record any) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}

	return doc, nil
}
