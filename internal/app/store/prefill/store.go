// internal/app/store/prefill/store.go
package prefill

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/assetmanager/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when the key was never written, was already
// consumed, or has been purged.
var ErrNotFound = errors.New("prefill not found")

// Store holds one-shot handoffs from the discovery page to the device form.
type Store struct {
	c *mongo.Collection
}

// New creates a new prefill Store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("device_prefills")}
}

// EnsureIndexes creates the age index used by Purge.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: 1}},
		Options: options.Index().SetName("idx_prefill_created"),
	})
	return err
}

// Put stores p under a fresh random key and returns the key.
func (s *Store) Put(ctx context.Context, p models.Prefill) (string, error) {
	p.Key = uuid.NewString()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return "", err
	}
	return p.Key, nil
}

// Take atomically reads and deletes the handoff under key, so it is read at
// most once.
func (s *Store) Take(ctx context.Context, key string) (models.Prefill, error) {
	var p models.Prefill
	if _, err := uuid.Parse(key); err != nil {
		return p, ErrNotFound
	}
	err := s.c.FindOneAndDelete(ctx, bson.M{"_id": key}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return p, ErrNotFound
	}
	return p, err
}

// Purge deletes handoffs older than maxAge and returns how many were removed.
func (s *Store) Purge(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge)
	res, err := s.c.DeleteMany(ctx, bson.M{"created_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
