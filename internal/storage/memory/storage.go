package memory

import (
	"context"
	"sync"

	"github.com/nhce-portal/accounts/internal/model"
	"github.com/nhce-portal/accounts/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts []model.Account
	session  *model.SessionMarker
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account collection operations

func (s *Storage) LoadAccounts(ctx context.Context) ([]model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.Account, len(s.accounts))
	copy(result, s.accounts)
	return result, nil
}

func (s *Storage) SaveAccounts(ctx context.Context, accounts []model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = make([]model.Account, len(accounts))
	copy(s.accounts, accounts)
	return nil
}

// Session marker operations

func (s *Storage) LoadSession(ctx context.Context) (*model.SessionMarker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, model.ErrNoSession
	}
	marker := *s.session
	return &marker, nil
}

func (s *Storage) SaveSession(ctx context.Context, marker *model.SessionMarker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := *marker
	s.session = &m
	return nil
}
