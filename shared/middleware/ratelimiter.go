package middleware

import (
	"errors"
	"net/http"

	"github.com/itchan-dev/msgboard/shared/logger"
	"github.com/itchan-dev/msgboard/shared/middleware/ratelimiter"
	"github.com/itchan-dev/msgboard/shared/utils"
)

func RateLimit(rl *ratelimiter.UserRateLimiter, getKey func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, err := getKey(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(key) {
				logger.Log.Debug("rate limited", "key", key, "path", r.URL.Path)
				http.Error(w, "Rate limit exceeded, try again later", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetIdentityKey keys the limiter by the authenticated caller. Must run after NeedAuth.
func GetIdentityKey(r *http.Request) (string, error) {
	identity := GetIdentityFromContext(r)
	if identity == "" {
		return "", errors.New("no identity in request context")
	}
	return "identity:" + identity, nil
}
