package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/nhce-portal/accounts/internal/services/account"
	"github.com/nhce-portal/accounts/internal/storage"
	"github.com/nhce-portal/accounts/internal/storage/memory"
	redisstorage "github.com/nhce-portal/accounts/internal/storage/redis"
	"github.com/nhce-portal/accounts/internal/validate"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage        storage.Storage
	AccountService *account.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Policy holds the validation policy (optional)
	// If zero value, defaults to validate.DefaultPolicy()
	Policy validate.Policy
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	policy := cfg.Policy
	if policy.EmailPolicy == "" {
		policy = validate.DefaultPolicy()
	}

	return &App{
		Storage:        store,
		AccountService: account.New(store, policy, logger),
	}, nil
}
