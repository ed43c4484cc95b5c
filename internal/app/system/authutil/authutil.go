// internal/app/system/authutil/authutil.go
package authutil

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// HashPassword returns a bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the site password rules.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 8 characters")
	}
	if strings.TrimSpace(password) != password {
		return errors.New("password must not start or end with spaces")
	}
	return nil
}

// PasswordRules returns the rules text shown next to password fields.
func PasswordRules() string {
	return "At least 8 characters, with no leading or trailing spaces."
}

// ValidEmail does a light structural check: one @, non-empty local part,
// and a dot inside the domain. Real validation happens when mail is sent.
func ValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	if dot <= 0 || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}
