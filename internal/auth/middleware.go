package auth

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Middleware gates a route group behind the Authorization header. Basic
// credentials go through the Authenticator; "Bearer" tokens go through the
// TokenService when one is configured, otherwise they fall through to the
// Authenticator and fail its scheme check. The authenticated username is
// attached to the request context.
func Middleware(a *Authenticator, tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			if tokens != nil {
				if raw, ok := strings.CutPrefix(header, "Bearer "); ok {
					claims, err := tokens.Parse(raw)
					if err != nil {
						writeDetail(w, http.StatusUnauthorized, ErrInvalidCredentials.Error())
						return
					}
					next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), claims.Sub)))
					return
				}
			}

			sub, err := a.Authenticate(header)
			if err != nil {
				writeDetail(w, http.StatusUnauthorized, err.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), sub)))
		})
	}
}

func writeDetail(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}
