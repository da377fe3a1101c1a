package pipeline

import (
	"context"

	"github.com/wiremaphq/wiremap/pkg/document"
	"github.com/wiremaphq/wiremap/pkg/store"
)

// Load resolves the document named by opts: an in-memory document, a JSON
// file, or a store lookup by ID.
func Load(ctx context.Context, opts Options) (*document.Document, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	switch {
	case opts.Document != nil:
		if err := opts.Document.Validate(); err != nil {
			return nil, err
		}
		return opts.Document, nil

	case opts.Input != "":
		return document.ReadFile(opts.Input)

	default:
		st, err := store.Open(ctx, opts.StoreDSN)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Load(ctx, opts.DocumentID)
	}
}
