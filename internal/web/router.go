package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nhce-portal/accounts/internal/middleware"
	"github.com/nhce-portal/accounts/internal/services/account"
	"github.com/nhce-portal/accounts/internal/web/handler"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	AccountService *account.Service
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler))
	r.Use(middleware.Logging(cfg.Logger))

	homeHandler := handler.NewHomeHandler(cfg.AccountService)
	authHandler := handler.NewAuthHandler(cfg.AccountService)

	r.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/signup", authHandler.SignUpPage).Methods(http.MethodGet)
	r.HandleFunc("/signup", authHandler.SignUp).Methods(http.MethodPost)
	r.HandleFunc("/signin", authHandler.SignInPage).Methods(http.MethodGet)
	r.HandleFunc("/signin", authHandler.SignIn).Methods(http.MethodPost)

	return r
}
