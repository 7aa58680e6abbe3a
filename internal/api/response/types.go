package response

import "github.com/nhce-portal/accounts/internal/model"

// Account is an account record as exposed over the API.
// The password never leaves the store through this surface.
type Account struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Session is the current session marker
type Session struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// AccountList wraps the stored collection
type AccountList struct {
	Accounts []Account `json:"accounts"`
}

// AccountFromModel converts a model account, dropping the password
func AccountFromModel(acct model.Account) Account {
	return Account{
		FullName: acct.FullName,
		Username: acct.Username,
		Email:    acct.Email,
		Phone:    acct.Phone,
	}
}

// AccountListFromModel converts a stored collection in order
func AccountListFromModel(accounts []model.Account) AccountList {
	list := AccountList{Accounts: make([]Account, 0, len(accounts))}
	for _, acct := range accounts {
		list.Accounts = append(list.Accounts, AccountFromModel(acct))
	}
	return list
}

// SessionFromMarker converts a session marker
func SessionFromMarker(marker *model.SessionMarker) Session {
	return Session{
		FullName: marker.FullName,
		Email:    marker.Email,
	}
}
