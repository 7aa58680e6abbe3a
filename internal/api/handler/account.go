package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nhce-portal/accounts/internal/api/apierr"
	"github.com/nhce-portal/accounts/internal/api/request"
	"github.com/nhce-portal/accounts/internal/api/response"
	"github.com/nhce-portal/accounts/internal/services/account"
)

// AccountHandler handles account and session endpoints
type AccountHandler struct {
	accountService *account.Service
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService *account.Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Register handles POST /api/v1/accounts
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	acct, err := h.accountService.Register(r.Context(), account.RegistrationInput{
		FullName:        req.FullName,
		Username:        req.Username,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AccountFromModel(*acct))
}

// List handles GET /api/v1/accounts
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts := h.accountService.Accounts(r.Context())
	response.JSON(w, http.StatusOK, response.AccountListFromModel(accounts))
}

// SignIn handles POST /api/v1/session
func (h *AccountHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req request.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	marker, err := h.accountService.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromMarker(marker))
}

// CurrentSession handles GET /api/v1/session
func (h *AccountHandler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	marker, err := h.accountService.CurrentSession(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromMarker(marker))
}
