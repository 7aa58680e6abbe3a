package request

// RegisterRequest is the body of POST /api/v1/accounts
type RegisterRequest struct {
	FullName        string `json:"full_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SignInRequest is the body of POST /api/v1/session
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
