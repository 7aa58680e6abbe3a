package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Email policy constants
const (
	EmailPolicyAllowlist = "allowlist"
	EmailPolicyShape     = "shape"
)

// shapePattern accepts any local@domain.tld-shaped address
var shapePattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Result is the outcome of a single field rule.
// The zero value is invalid with no message; use Valid() / Invalid().
type Result struct {
	OK      bool
	Message string
}

// Valid returns a passing result
func Valid() Result {
	return Result{OK: true}
}

// Invalid returns a failing result with a user-facing message
func Invalid(message string) Result {
	return Result{Message: message}
}

// Policy holds the configurable validation behavior.
// The portal's variants disagreed on the email rule and the password
// minimum; both are settings here rather than separate code paths.
type Policy struct {
	// EmailPolicy selects the email rule: "allowlist" or "shape"
	EmailPolicy string
	// AllowedDomains is the accepted domain list under the allowlist policy
	AllowedDomains []string
	// MinPasswordLength is the minimum password length; 0 disables the check
	MinPasswordLength int
}

// DefaultPolicy returns the allowlist policy with the portal's domain
// list and an 8 character password minimum.
func DefaultPolicy() Policy {
	return Policy{
		EmailPolicy:       EmailPolicyAllowlist,
		AllowedDomains:    []string{"gmail.com", "yahoo.com", "mail.com"},
		MinPasswordLength: 8,
	}
}

// Name rejects names containing any decimal digit
func Name(value string) Result {
	for _, r := range value {
		if unicode.IsDigit(r) {
			return Invalid("Numbers are not allowed!")
		}
	}
	return Valid()
}

// Username rejects usernames containing whitespace
func Username(value string) Result {
	for _, r := range value {
		if unicode.IsSpace(r) {
			return Invalid("Username cannot contain spaces.")
		}
	}
	return Valid()
}

// Email checks the address against the policy's email rule.
// The address is lower-cased before comparison.
func (p Policy) Email(value string) Result {
	addr := strings.ToLower(value)

	switch p.EmailPolicy {
	case EmailPolicyShape:
		if shapePattern.MatchString(addr) {
			return Valid()
		}
	default:
		// Allowlist: the substring after "@" must exactly match an
		// accepted domain
		_, domain, found := strings.Cut(addr, "@")
		if found {
			for _, allowed := range p.AllowedDomains {
				if domain == strings.ToLower(allowed) {
					return Valid()
				}
			}
		}
	}
	return Invalid("Invalid email address (e.g., abc@gmail.com).")
}

// PasswordConfirmation rejects mismatched password pairs
func PasswordConfirmation(password, confirm string) Result {
	if password != confirm {
		return Invalid("Password and Confirm Password must match.")
	}
	return Valid()
}

// PasswordLength checks the policy's minimum password length
func (p Policy) PasswordLength(password string) Result {
	if p.MinPasswordLength > 0 && len(password) < p.MinPasswordLength {
		return Invalid(fmt.Sprintf("Password must be at least %d characters.", p.MinPasswordLength))
	}
	return Valid()
}

// NormalizePhone strips non-digit characters and truncates to 11 digits
func NormalizePhone(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 11 {
				break
			}
		}
	}
	return b.String()
}
