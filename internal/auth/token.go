package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and parses short-lived HS256 tokens so clients can
// avoid resending Basic credentials on every request.
type TokenService struct{ hmac []byte }

func NewTokenService(secret string) *TokenService { return &TokenService{hmac: []byte(secret)} }

type Claims struct {
	Sub string `json:"sub"`
	jwt.RegisteredClaims
}

func (t *TokenService) Issue(sub string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Sub: sub,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "questionbank",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(8 * time.Hour)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.hmac)
}

func (t *TokenService) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(tk *jwt.Token) (interface{}, error) {
		return t.hmac, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidCredentials
	}
	c, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return c, nil
}

// TokenHandler exchanges Basic credentials for a bearer token.
// POST /auth/token with an Authorization: Basic user:pass header.
func TokenHandler(a *Authenticator, t *TokenService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, err := a.Authenticate(r.Header.Get("Authorization"))
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, err.Error())
			return
		}
		tok, err := t.Issue(sub)
		if err != nil {
			writeDetail(w, http.StatusInternalServerError, "issue token")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": tok})
	}
}
