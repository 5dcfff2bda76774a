// Package repositories is the persistence gateway: one thin repository per
// collection over a shared Store. All operations degrade to empty results
// when the store is not connected, and malformed identifiers are caught here
// rather than surfacing to the HTTP layer.
package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dishaportal/disha-backend/internal/db"
	"github.com/dishaportal/disha-backend/internal/pkg/apperrors"
	"github.com/dishaportal/disha-backend/internal/pkg/logger"
)

// Store is the shared database handle behind all repositories.
type Store struct {
	mongo *db.Mongo
}

// NewStore wraps a (possibly disconnected) Mongo handle.
func NewStore(m *db.Mongo) *Store {
	return &Store{mongo: m}
}

// Connected reports whether the underlying store is reachable.
func (s *Store) Connected() bool {
	return s.mongo.Connected()
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.mongo.Database.Collection(name)
}

// insertOne inserts a document and returns the new id as a hex string.
func (s *Store) insertOne(ctx context.Context, coll string, doc bson.M) (string, error) {
	if !s.Connected() {
		return "", apperrors.ErrNotConnected
	}
	res, err := s.collection(coll).InsertOne(ctx, doc)
	if err != nil {
		logger.Error().Err(err).Str("collection", coll).Msg("Insert failed")
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// findByID fetches a document by hex id. A malformed id or a miss both yield
// (nil, nil): callers treat absence as not-found.
func (s *Store) findByID(ctx context.Context, coll, id string) (bson.M, error) {
	if !s.Connected() {
		return nil, nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Warn().Str("collection", coll).Str("id", id).Msg("Malformed document id")
		return nil, nil
	}
	var doc bson.M
	err = s.collection(coll).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Error().Err(err).Str("collection", coll).Msg("FindOne failed")
		return nil, err
	}
	return doc, nil
}

// findOne fetches the first document matching the filter, nil on miss.
func (s *Store) findOne(ctx context.Context, coll string, filter bson.M) (bson.M, error) {
	if !s.Connected() {
		return nil, nil
	}
	var doc bson.M
	err := s.collection(coll).FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		logger.Error().Err(err).Str("collection", coll).Msg("FindOne failed")
		return nil, err
	}
	return doc, nil
}

// findAll lists documents matching the filter, empty when disconnected.
func (s *Store) findAll(ctx context.Context, coll string, filter bson.M, opts ...*options.FindOptions) ([]bson.M, error) {
	if !s.Connected() {
		return []bson.M{}, nil
	}
	cur, err := s.collection(coll).Find(ctx, filter, opts...)
	if err != nil {
		logger.Error().Err(err).Str("collection", coll).Msg("Find failed")
		return []bson.M{}, nil
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		logger.Error().Err(err).Str("collection", coll).Msg("Cursor decode failed")
		return []bson.M{}, nil
	}
	return docs, nil
}

// updateByID applies a $set partial to a document, reporting whether a
// document matched.
func (s *Store) updateByID(ctx context.Context, coll, id string, partial bson.M) (bool, error) {
	if !s.Connected() {
		return false, apperrors.ErrNotConnected
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Warn().Str("collection", coll).Str("id", id).Msg("Malformed document id")
		return false, nil
	}
	res, err := s.collection(coll).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": partial})
	if err != nil {
		logger.Error().Err(err).Str("collection", coll).Msg("Update failed")
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// deleteByID removes a document, reporting whether one was deleted.
func (s *Store) deleteByID(ctx context.Context, coll, id string) (bool, error) {
	if !s.Connected() {
		return false, apperrors.ErrNotConnected
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logger.Warn().Str("collection", coll).Str("id", id).Msg("Malformed document id")
		return false, nil
	}
	res, err := s.collection(coll).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		logger.Error().Err(err).Str("collection", coll).Msg("Delete failed")
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// count counts documents matching the filter, 0 when disconnected.
func (s *Store) count(ctx context.Context, coll string, filter bson.M) int64 {
	if !s.Connected() {
		return 0
	}
	n, err := s.collection(coll).CountDocuments(ctx, filter)
	if err != nil {
		logger.Error().Err(err).Str("collection", coll).Msg("Count failed")
		return 0
	}
	return n
}
