package handler

import (
	"errors"
	"net/http"

	"github.com/nhce-portal/accounts/internal/services/account"
	"github.com/nhce-portal/accounts/internal/web/templates"
)

// Status messages shown in the form-level message region. Field rules
// carry their own messages; the form-level text differs for two fields.
var statusMessages = map[string]string{
	"full_name": "Please remove numbers from your name.",
	"email":     "Please provide a valid email address.",
}

// AuthHandler handles the sign-up and sign-in pages and submissions
type AuthHandler struct {
	accountService *account.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accountService *account.Service) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
	}
}

// SignUpPage renders the registration form
func (h *AuthHandler) SignUpPage(w http.ResponseWriter, r *http.Request) {
	renderSignUp(w, r, templates.SignUpData{
		PageData: templates.PageData{Title: "Sign Up"},
	})
}

// SignUp handles registration form submission
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderSignUp(w, r, templates.SignUpData{
			PageData: templates.PageData{Title: "Sign Up"},
			Error:    "Invalid form data",
		})
		return
	}

	input := account.RegistrationInput{
		FullName:        r.FormValue("full_name"),
		Username:        r.FormValue("username"),
		Email:           r.FormValue("email"),
		Phone:           r.FormValue("phone"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}

	data := templates.SignUpData{
		PageData: templates.PageData{Title: "Sign Up"},
		FullName: input.FullName,
		Username: input.Username,
		Email:    input.Email,
		Phone:    input.Phone,
	}

	_, err := h.accountService.Register(r.Context(), input)
	if err != nil {
		var ve *account.ValidationError
		switch {
		case errors.As(err, &ve):
			data.FieldErrors = map[string]string{ve.Field: ve.Message}
			data.Error = ve.Message
			if msg, ok := statusMessages[ve.Field]; ok {
				data.Error = msg
			}
		case errors.Is(err, account.ErrEmailExists):
			data.Error = "An account with this email already exists."
		case errors.Is(err, account.ErrUsernameExists):
			data.Error = "Username already taken. Please choose another."
		default:
			data.Error = "Registration failed. Please try again."
		}
		renderSignUp(w, r, data)
		return
	}

	// Deferred redirect to the sign-in page, the form analogue of the
	// original page's fire-and-forget timer
	w.Header().Set("Refresh", "1; url=/signin")
	renderSignUp(w, r, templates.SignUpData{
		PageData: templates.PageData{Title: "Sign Up"},
		Success:  "Registration successful! Redirecting to login…",
	})
}

// SignInPage renders the login form
func (h *AuthHandler) SignInPage(w http.ResponseWriter, r *http.Request) {
	renderSignIn(w, r, templates.SignInData{
		PageData: templates.PageData{Title: "Sign In"},
	})
}

// SignIn handles login form submission
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderSignIn(w, r, templates.SignInData{
			PageData: templates.PageData{Title: "Sign In"},
			Error:    "Invalid form data",
		})
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	_, err := h.accountService.SignIn(r.Context(), email, password)
	if err != nil {
		// One generic message for both unknown email and wrong password
		renderSignIn(w, r, templates.SignInData{
			PageData: templates.PageData{Title: "Sign In"},
			Email:    email,
			Error:    "Invalid email or password.",
		})
		return
	}

	w.Header().Set("Refresh", "1; url=/")
	renderSignIn(w, r, templates.SignInData{
		PageData: templates.PageData{Title: "Sign In"},
		Success:  "Login successful! Redirecting…",
	})
}

func renderSignUp(w http.ResponseWriter, r *http.Request, data templates.SignUpData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.SignUp(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func renderSignIn(w http.ResponseWriter, r *http.Request, data templates.SignInData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.SignIn(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
