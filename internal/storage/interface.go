package storage

import (
	"context"

	"github.com/nhce-portal/accounts/internal/model"
)

// Storage defines the interface for data persistence.
//
// The account collection is always read and written whole: SaveAccounts
// replaces the stored collection, never merges. A read-modify-write of
// the collection happens within one request; the storage layer itself
// gives no transactional guarantee across writers.
type Storage interface {
	// Account collection operations
	LoadAccounts(ctx context.Context) ([]model.Account, error)
	SaveAccounts(ctx context.Context, accounts []model.Account) error

	// Session marker operations
	LoadSession(ctx context.Context) (*model.SessionMarker, error)
	SaveSession(ctx context.Context, marker *model.SessionMarker) error
}
