package middleware

import (
	"fmt"
	"net"
	"net/http"

	"github.com/itchan-dev/kanban/shared/errors"
	"github.com/itchan-dev/kanban/shared/middleware/ratelimiter"
	"github.com/itchan-dev/kanban/shared/utils"
)

func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				http.Error(w, "Rate limit exceeded, try again later", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext works only behind NeedAuth
func GetUserIDFromContext(r *http.Request) (string, error) {
	user := GetUserFromContext(r)
	if user == nil {
		return "", errors.New(errors.Unauthenticated, "Please sign-in")
	}
	return fmt.Sprintf("user_%d", user.Id), nil
}

// GetIP extracts the client IP from RemoteAddr only; forwarding headers are spoofable.
func GetIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without port
		ip = r.RemoteAddr
	}

	if net.ParseIP(ip) == nil {
		return "", errors.Newf(errors.ValidationFailed, "invalid IP address: %s", ip)
	}
	return ip, nil
}
