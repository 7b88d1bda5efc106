package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"RealEstateAPI/config"
	"RealEstateAPI/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Document is a stored record with its ObjectID rendered as the string "id".
type Document = bson.M

// Store is the process-wide handle on the document database. A Store with
// no database reports every operation as not configured.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

// Connect creates the client for cfg. Missing settings or a client that
// cannot be created leave the store unavailable rather than failing start.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) *Store {
	store := &Store{now: time.Now}
	if !cfg.Configured() {
		logger.Warn("DATABASE_URL or DATABASE_NAME not set, storage unavailable")
		return store
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		logger.Error("Failed to create MongoDB client", "error", err)
		return store
	}

	store.client = client
	store.db = client.Database(cfg.Name)
	logger.Info("MongoDB client created", "database", cfg.Name)
	return store
}

// NewStore wraps an existing database handle.
func NewStore(db *mongo.Database) *Store {
	return &Store{client: db.Client(), db: db, now: time.Now}
}

func (s *Store) Available() bool {
	return s.db != nil
}

func (s *Store) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// CreateDocument inserts record into collection, stamping created_at and
// updated_at, and returns the new id as a hex string.
func (s *Store) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	if s.db == nil {
		return "", utils.ErrNotConfigured
	}

	doc, err := toDocument(record)
	if err != nil {
		return "", &utils.AppError{Kind: utils.KindInternal, Op: "encode " + collection, Err: err}
	}
	now := s.now().UTC()
	doc["created_at"] = now
	doc["updated_at"] = now

	result, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", utils.StorageError("insert "+collection, err)
	}
	return idString(result.InsertedID), nil
}

// GetDocuments returns up to limit documents of collection matching filter
// by equality, in natural order. A limit of 0 returns every match.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter map[string]any, limit int64) ([]Document, error) {
	if s.db == nil {
		return nil, utils.ErrNotConfigured
	}

	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := s.db.Collection(collection).Find(ctx, query, opts)
	if err != nil {
		return nil, utils.StorageError("find "+collection, err)
	}
	defer cursor.Close(ctx)

	docs := make([]Document, 0)
	for cursor.Next(ctx) {
		var doc Document
		if err := cursor.Decode(&doc); err != nil {
			return nil, utils.StorageError("decode "+collection, err)
		}
		docs = append(docs, NormalizeID(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, utils.StorageError("find "+collection, err)
	}
	return docs, nil
}

func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, utils.ErrNotConfigured
	}
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, utils.StorageError("list collections", err)
	}
	return names, nil
}

// NormalizeID replaces the native _id with its string form under "id".
func NormalizeID(doc Document) Document {
	id, ok := doc["_id"]
	if !ok {
		return doc
	}
	delete(doc, "_id")
	doc["id"] = idString(id)
	return doc
}

func idString(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func toDocument(record any) (bson.M, error) {
	data, err := bson.Marshal(record)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
