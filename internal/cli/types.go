package cli

// Account mirrors the API's account representation
type Account struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// AccountList mirrors GET /api/v1/accounts
type AccountList struct {
	Accounts []Account `json:"accounts"`
}

// Session mirrors the API's session marker representation
type Session struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// HealthResult mirrors GET /api/v1/health
type HealthResult struct {
	Status string `json:"status"`
}

// registerRequest is the body of POST /api/v1/accounts
type registerRequest struct {
	FullName        string `json:"full_name"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// signInRequest is the body of POST /api/v1/session
type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
