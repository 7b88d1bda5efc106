package handlers

import (
	"context"

	"RealEstateAPI/database"
)

// DocumentStore is the persistence surface the handlers use.
// *database.Store satisfies it.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, record any) (string, error)
	GetDocuments(ctx context.Context, collection string, filter map[string]any, limit int64) ([]database.Document, error)
}

// StatusReporter backs the diagnostic endpoint.
type StatusReporter interface {
	Available() bool
	ListCollectionNames(ctx context.Context) ([]string, error)
}
