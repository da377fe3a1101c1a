package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/errors"
)

const (
	defaultDatabase   = "wiremap"
	defaultCollection = "documents"
)

// MongoStore is a MongoDB-backed document store. Documents round-trip
// through their bson tags; the document ID is the collection _id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to the MongoDB deployment described by the DSN
// (mongodb://host:port or mongodb+srv://...) and verifies the connection.
func NewMongoStore(ctx context.Context, dsn string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigFailure, err, "parse mongo DSN")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStoreFailure, err, "connect to mongodb")
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(defaultDatabase).Collection(defaultCollection),
	}, nil
}

func (s *MongoStore) Save(ctx context.Context, doc *document.Document) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailure, err, "save document %s", doc.ID)
	}
	return nil
}

func (s *MongoStore) Load(ctx context.Context, id string) (*document.Document, error) {
	var doc document.Document
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailure, err, "load document %s", id)
	}
	return &doc, nil
}

func (s *MongoStore) List(ctx context.Context) ([]*document.Document, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailure, err, "list documents")
	}
	defer cursor.Close(ctx)

	var out []*document.Document
	if err := cursor.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailure, err, "decode documents")
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailure, err, "delete document %s", id)
	}
	return nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ Store = (*MongoStore)(nil)
