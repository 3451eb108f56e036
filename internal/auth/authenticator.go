package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidScheme rejects an Authorization scheme other than Basic.
	ErrInvalidScheme = errors.New("invalid authentication method")
	// ErrInvalidCredentials is the generic rejection for unknown users, wrong
	// passwords and malformed credential pairs. Callers get no hint which
	// check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// CredentialStore maps username to stored secret. It is built once at startup
// and never mutated afterwards. A secret with a bcrypt prefix is compared as a
// hash; anything else is compared verbatim.
type CredentialStore map[string]string

// DefaultCredentials is the built-in user set.
func DefaultCredentials() CredentialStore {
	return CredentialStore{
		"aurelia": "augustina",
		"cassius": "cato",
		"admin":   "admin",
	}
}

type Authenticator struct {
	creds CredentialStore
}

func NewAuthenticator(creds CredentialStore) *Authenticator {
	if creds == nil {
		creds = DefaultCredentials()
	}
	return &Authenticator{creds: creds}
}

// Authenticate checks an Authorization header value of the form
// "Basic user:pass" against the credential store and returns the username.
// The scheme is matched case-insensitively; every other parse failure
// collapses into ErrInvalidCredentials.
func (a *Authenticator) Authenticate(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 {
		return "", ErrInvalidCredentials
	}
	if !strings.EqualFold(parts[0], "basic") {
		return "", ErrInvalidScheme
	}
	pair := strings.Split(parts[1], ":")
	if len(pair) != 2 {
		return "", ErrInvalidCredentials
	}
	username, password := pair[0], pair[1]

	stored, ok := a.creds[username]
	if !ok {
		return "", ErrInvalidCredentials
	}
	if strings.HasPrefix(stored, "$2") {
		if bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) != nil {
			return "", ErrInvalidCredentials
		}
		return username, nil
	}
	if stored != password {
		return "", ErrInvalidCredentials
	}
	return username, nil
}
