package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/nhce-portal/accounts/internal/model"
	"github.com/nhce-portal/accounts/internal/storage"
	"github.com/nhce-portal/accounts/internal/validate"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrUsernameExists     = errors.New("username already taken")
)

// ValidationError reports a field rule failure during registration
type ValidationError struct {
	Field   string // form field name, e.g. "email"
	Message string // user-facing message
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RegistrationInput holds the raw form fields of a registration attempt
type RegistrationInput struct {
	FullName        string
	Username        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Service is the credential store: it owns the account collection and
// the session marker, and runs the registration and sign-in flows.
type Service struct {
	storage storage.Storage
	policy  validate.Policy
	logger  *slog.Logger
}

// New creates a new account service
func New(storage storage.Storage, policy validate.Policy, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		policy:  policy,
		logger:  logger,
	}
}

// Policy returns the validation policy the service was built with
func (s *Service) Policy() validate.Policy {
	return s.policy
}

// Accounts loads the stored collection in insertion order.
// Missing or malformed data degrades to an empty collection: the forms
// stay usable over a corrupted store, and a warning is the only
// observable side effect.
func (s *Service) Accounts(ctx context.Context) []model.Account {
	accounts, err := s.storage.LoadAccounts(ctx)
	if err != nil {
		s.logger.Warn("unable to load stored accounts", slog.String("error", err.Error()))
		return []model.Account{}
	}
	return accounts
}

// FindByCredentials scans for an account with a matching email and an
// exact password match. The email is case-normalized first; the first
// match in insertion order wins if the store somehow holds duplicates.
func (s *Service) FindByCredentials(ctx context.Context, email, password string) (*model.Account, error) {
	email = strings.ToLower(email)
	for _, acct := range s.Accounts(ctx) {
		if strings.ToLower(acct.Email) == email && acct.Password == password {
			found := acct
			return &found, nil
		}
	}
	return nil, model.ErrAccountNotFound
}

// ExistsByEmail reports whether an account with this email is registered
// (case-insensitive)
func (s *Service) ExistsByEmail(ctx context.Context, email string) bool {
	email = strings.ToLower(email)
	for _, acct := range s.Accounts(ctx) {
		if strings.ToLower(acct.Email) == email {
			return true
		}
	}
	return false
}

// ExistsByUsername reports whether this username is already taken
func (s *Service) ExistsByUsername(ctx context.Context, username string) bool {
	for _, acct := range s.Accounts(ctx) {
		if acct.Username == username {
			return true
		}
	}
	return false
}

// Append adds a record to the collection and writes it back whole
func (s *Service) Append(ctx context.Context, acct model.Account) error {
	accounts := s.Accounts(ctx)
	accounts = append(accounts, acct)
	return s.storage.SaveAccounts(ctx, accounts)
}

// SetSession overwrites the session marker unconditionally
func (s *Service) SetSession(ctx context.Context, marker model.SessionMarker) error {
	return s.storage.SaveSession(ctx, &marker)
}

// CurrentSession returns the current session marker, or
// model.ErrNoSession when nobody is signed in. A malformed stored
// marker degrades to "no session" with a warning.
func (s *Service) CurrentSession(ctx context.Context) (*model.SessionMarker, error) {
	marker, err := s.storage.LoadSession(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrNoSession) {
			s.logger.Warn("unable to load session marker", slog.String("error", err.Error()))
		}
		return nil, model.ErrNoSession
	}
	return marker, nil
}

// Register runs the registration flow: normalize, validate field rules
// in order (first failure aborts), check uniqueness (email before
// username), then append the record.
func (s *Service) Register(ctx context.Context, input RegistrationInput) (*model.Account, error) {
	acct := model.Account{
		FullName: strings.TrimSpace(input.FullName),
		Username: strings.TrimSpace(input.Username),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:    validate.NormalizePhone(strings.TrimSpace(input.Phone)),
		Password: input.Password,
	}

	if res := validate.Name(acct.FullName); !res.OK {
		return nil, &ValidationError{Field: "full_name", Message: res.Message}
	}
	if res := validate.Username(acct.Username); !res.OK {
		return nil, &ValidationError{Field: "username", Message: res.Message}
	}
	if res := s.policy.Email(acct.Email); !res.OK {
		return nil, &ValidationError{Field: "email", Message: res.Message}
	}
	if res := validate.PasswordConfirmation(input.Password, input.ConfirmPassword); !res.OK {
		return nil, &ValidationError{Field: "confirm_password", Message: res.Message}
	}
	if res := s.policy.PasswordLength(input.Password); !res.OK {
		return nil, &ValidationError{Field: "password", Message: res.Message}
	}

	if s.ExistsByEmail(ctx, acct.Email) {
		return nil, ErrEmailExists
	}
	if s.ExistsByUsername(ctx, acct.Username) {
		return nil, ErrUsernameExists
	}

	if err := s.Append(ctx, acct); err != nil {
		return nil, err
	}

	return &acct, nil
}

// SignIn runs the sign-in flow: normalize the email (the password is
// significant as entered, trailing spaces included), look up the
// account, and write the session marker. Unknown email and wrong
// password are deliberately indistinguishable.
func (s *Service) SignIn(ctx context.Context, email, password string) (*model.SessionMarker, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	acct, err := s.FindByCredentials(ctx, email, password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	marker := model.SessionMarker{
		FullName: acct.FullName,
		Email:    acct.Email,
	}

	if err := s.SetSession(ctx, marker); err != nil {
		return nil, err
	}

	return &marker, nil
}
