package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/itchan-dev/msgboard/shared/domain"
	jwt_internal "github.com/itchan-dev/msgboard/shared/jwt"
	"github.com/itchan-dev/msgboard/shared/utils"
)

const AccessTokenCookie = "accessToken"

// Key to store the caller identity in the request context
type key int

const IdentityKey key = 0

type Auth struct {
	jwtService    jwt_internal.JwtService
	secureCookies bool
}

func NewAuth(jwtService jwt_internal.JwtService, secureCookies bool) *Auth {
	return &Auth{jwtService: jwtService, secureCookies: secureCookies}
}

// NeedAuth rejects requests without a valid token with 401 and
// stores the token subject as the caller identity otherwise.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, fromCookie := extractToken(r)
			if tokenString == "" {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			}

			identity, err := a.jwtService.DecodeToken(tokenString)
			if err != nil {
				if fromCookie {
					// drop the stale cookie so browsers stop sending it
					http.SetCookie(w, &http.Cookie{
						Path:     "/",
						Name:     AccessTokenCookie,
						Value:    "",
						MaxAge:   -1,
						HttpOnly: true,
						Secure:   a.secureCookies,
						SameSite: http.SameSiteLaxMode,
					})
				}
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken prefers the Authorization header (API clients) over the cookie (browsers).
func extractToken(r *http.Request) (token string, fromCookie bool) {
	if t, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		return strings.TrimSpace(t), false
	}
	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		return c.Value, true
	}
	return "", false
}

// GetIdentityFromContext returns the caller set by NeedAuth, "" if absent.
func GetIdentityFromContext(r *http.Request) domain.Identity {
	identity, _ := r.Context().Value(IdentityKey).(domain.Identity)
	return identity
}
