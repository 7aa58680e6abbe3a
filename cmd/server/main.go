package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nhce-portal/accounts/internal/api"
	"github.com/nhce-portal/accounts/internal/factory"
	redisstorage "github.com/nhce-portal/accounts/internal/storage/redis"
	"github.com/nhce-portal/accounts/internal/validate"
	"github.com/nhce-portal/accounts/internal/web"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Optional .env in the working directory
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded .env from working directory")
	}

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
		Policy:      policyFromEnv(logger),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AccountService: app.AccountService,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:         logger,
		AccountService: app.AccountService,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = os.Getenv("HOST")
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("value", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(mux, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// policyFromEnv builds the validation policy from environment variables,
// starting from the defaults
func policyFromEnv(logger *slog.Logger) validate.Policy {
	policy := validate.DefaultPolicy()

	switch ep := os.Getenv("EMAIL_POLICY"); ep {
	case "":
		// keep default
	case validate.EmailPolicyAllowlist, validate.EmailPolicyShape:
		policy.EmailPolicy = ep
	default:
		logger.Warn("unknown EMAIL_POLICY, using default", slog.String("value", ep))
	}

	if domains := os.Getenv("ALLOWED_EMAIL_DOMAINS"); domains != "" {
		var list []string
		for _, d := range strings.Split(domains, ",") {
			if d = strings.TrimSpace(d); d != "" {
				list = append(list, strings.ToLower(d))
			}
		}
		if len(list) > 0 {
			policy.AllowedDomains = list
		}
	}

	if min := os.Getenv("MIN_PASSWORD_LENGTH"); min != "" {
		n, err := strconv.Atoi(min)
		if err != nil || n < 0 {
			logger.Warn("invalid MIN_PASSWORD_LENGTH, using default", slog.String("value", min))
		} else {
			policy.MinPasswordLength = n
		}
	}

	return policy
}
