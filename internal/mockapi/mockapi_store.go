// Package mockapi is a CRUD REST backend for the five HR collections. It
// plays the part of the remote API during development and tests.
package mockapi

import (
	"context"
	"encoding/json"
	"math"
	"slices"

	"go-hris-admin/internal/domain"
)

// Document is one record as sent over the wire. Fields the store does not
// know about are kept as-is by the memory store.
type Document = map[string]any

type Store interface {
	List(ctx context.Context, resource domain.Kind) ([]Document, error)
	Get(ctx context.Context, resource domain.Kind, id int64) (Document, error)
	// Create assigns the id; any id in doc is ignored.
	Create(ctx context.Context, resource domain.Kind, doc Document) (Document, error)
	// Update replaces the record; the stored id is always id.
	Update(ctx context.Context, resource domain.Kind, id int64, doc Document) (Document, error)
	// Delete of an absent id is not an error.
	Delete(ctx context.Context, resource domain.Kind, id int64) error
}

// Known reports whether resource is one of the served collections.
func Known(resource domain.Kind) bool {
	return slices.Contains(domain.Kinds, resource)
}

// docID reads the numeric id of doc, 0 when missing or not a whole number.
func docID(doc Document) int64 {
	switch v := doc["id"].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		if v == math.Trunc(v) {
			return int64(v)
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
	}
	return 0
}

func cloneDoc(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
