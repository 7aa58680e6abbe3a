package handler

import (
	"net/http"

	"github.com/nhce-portal/accounts/internal/services/account"
	"github.com/nhce-portal/accounts/internal/web/templates"
)

// HomeHandler renders the home page
type HomeHandler struct {
	accountService *account.Service
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(accountService *account.Service) *HomeHandler {
	return &HomeHandler{
		accountService: accountService,
	}
}

// Home renders the home page with the current session marker, if any
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := templates.HomeData{
		PageData: templates.PageData{Title: "Home"},
	}

	// Absent marker just means nobody is signed in
	if marker, err := h.accountService.CurrentSession(r.Context()); err == nil {
		data.Session = marker
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Home(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
