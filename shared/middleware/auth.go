package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
	jwt_internal "github.com/itchan-dev/kanban/shared/jwt"
	"github.com/itchan-dev/kanban/shared/utils"
)

// AccessTokenCookie carries the JWT for browser clients.
const AccessTokenCookie = "accessToken"

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth resolves the request principal from a JWT cookie or bearer header.
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth rejects requests without a valid principal.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractUser never trusts anything but the signed claims.
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	var tokenString string
	if accessCookie, err := r.Cookie(AccessTokenCookie); err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return nil, errors.New(errors.Unauthenticated, "Please sign-in")
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New(errors.Unauthenticated, "Invalid token")
	}
	uidFloat, ok := claims["uid"].(float64)
	if !ok {
		return nil, errors.New(errors.Unauthenticated, "Invalid token")
	}
	username, _ := claims["username"].(string)

	return &domain.User{Id: int64(uidFloat), Username: username}, nil
}

// GetUserFromContext retrieves the user stored by NeedAuth, nil if there is none.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
