// Package store provides document persistence for wiremap.
//
// This package defines the Store interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - file: JSON files on disk for CLI usage
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for durable multi-instance deployments
//
// # DSN Dispatch
//
// Open selects a backend from a DSN scheme:
//
//	store, err := store.Open(ctx, "mem:")
//	store, err := store.Open(ctx, "file:~/.local/share/wiremap")
//	store, err := store.Open(ctx, "redis://localhost:6379/0")
//	store, err := store.Open(ctx, "mongodb://localhost:27017/wiremap")
//
// All backends return a DOCUMENT_NOT_FOUND coded error for missing IDs so
// callers can map it uniformly (the HTTP API turns it into a 404).
package store

import (
	"context"
	"strings"

	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/errors"
)

// Store is the interface for document storage backends.
type Store interface {
	// Save inserts or replaces a document keyed by its ID.
	Save(ctx context.Context, doc *document.Document) error

	// Load retrieves a document by ID.
	// Returns a DOCUMENT_NOT_FOUND coded error when the ID does not exist.
	Load(ctx context.Context, id string) (*document.Document, error)

	// List returns all stored documents.
	List(ctx context.Context) ([]*document.Document, error)

	// Delete removes a document. Deleting an unknown ID is a no-op.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// Open creates a store for the given DSN. Supported schemes: "mem:",
// "file:<dir>", "redis://", "rediss://", "mongodb://", "mongodb+srv://".
func Open(ctx context.Context, dsn string) (Store, error) {
	switch {
	case dsn == "" || dsn == "mem:" || dsn == "mem://":
		return NewMemoryStore(), nil
	case strings.HasPrefix(dsn, "file:"):
		return NewFileStore(strings.TrimPrefix(dsn, "file:"))
	case strings.HasPrefix(dsn, "redis://") || strings.HasPrefix(dsn, "rediss://"):
		return NewRedisStore(ctx, dsn)
	case strings.HasPrefix(dsn, "mongodb://") || strings.HasPrefix(dsn, "mongodb+srv://"):
		return NewMongoStore(ctx, dsn)
	}
	return nil, errors.New(errors.ErrCodeConfigFailure, "unsupported store DSN: %q", dsn)
}

// notFound builds the canonical missing-document error.
func notFound(id string) error {
	return errors.New(errors.ErrCodeDocumentNotFound, "document %s not found", id)
}
