package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nhce-portal/accounts/internal/model"
	"github.com/nhce-portal/accounts/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// The account collection is serialized as one JSON array under a single
// key and always replaced whole.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account collection operations

func (s *Storage) LoadAccounts(ctx context.Context) ([]model.Account, error) {
	data, err := s.client.Get(ctx, accountsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []model.Account{}, nil
		}
		return nil, err
	}

	var accounts []model.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *Storage) SaveAccounts(ctx context.Context, accounts []model.Account) error {
	if accounts == nil {
		accounts = []model.Account{}
	}

	data, err := json.Marshal(accounts)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, accountsKey(), data, 0).Err()
}

// Session marker operations

func (s *Storage) LoadSession(ctx context.Context) (*model.SessionMarker, error) {
	data, err := s.client.Get(ctx, sessionKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNoSession
		}
		return nil, err
	}

	var marker model.SessionMarker
	if err := json.Unmarshal(data, &marker); err != nil {
		return nil, err
	}
	return &marker, nil
}

func (s *Storage) SaveSession(ctx context.Context, marker *model.SessionMarker) error {
	data, err := json.Marshal(marker)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(), data, 0).Err()
}
