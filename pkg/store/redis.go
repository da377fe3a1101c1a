package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/errors"
)

// keyPrefix namespaces wiremap documents inside a shared Redis instance.
const keyPrefix = "wiremap:doc:"

// RedisStore is a Redis-backed document store for multi-instance
// deployments. Documents are stored as JSON values under keyPrefix.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration // 0 means no expiration
}

// NewRedisStore connects to the Redis instance described by the DSN
// (redis://[user:pass@]host:port/db) and verifies the connection.
func NewRedisStore(ctx context.Context, dsn string) (*RedisStore, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigFailure, err, "parse redis DSN")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeStoreFailure, err, "connect to redis")
	}
	return &RedisStore{client: client}, nil
}

// SetTTL configures an expiration applied on every Save. Zero disables
// expiration.
func (s *RedisStore) SetTTL(ttl time.Duration) {
	s.ttl = ttl
}

func (s *RedisStore) Save(ctx context.Context, doc *document.Document) error {
	data, err := document.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+doc.ID, data, s.ttl).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailure, err, "save document %s", doc.ID)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, id string) (*document.Document, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailure, err, "load document %s", id)
	}
	return document.Unmarshal(data)
}

func (s *RedisStore) List(ctx context.Context) ([]*document.Document, error) {
	var out []*document.Document

	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			// Key expired between scan and read.
			continue
		}
		doc, err := document.Unmarshal(data)
		if err != nil {
			continue
		}
		out = append(out, doc)
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreFailure, err, "scan documents")
	}
	return out, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStoreFailure, err, "delete document %s", id)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
