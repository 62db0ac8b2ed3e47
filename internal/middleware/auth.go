package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campusboard/campusboard/internal/domain"
	internal_errors "github.com/campusboard/campusboard/internal/errors"
	jwt_internal "github.com/campusboard/campusboard/internal/jwt"
	"github.com/campusboard/campusboard/internal/logger"
	"github.com/campusboard/campusboard/internal/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires a valid bearer token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				switch err {
				case errNoToken:
					utils.WriteError(w, &internal_errors.ErrorWithStatusCode{Message: "Please sign-in", StatusCode: http.StatusUnauthorized})
				case errInvalidClaims:
					logger.Log.Error("invalid jwt claims")
					utils.WriteError(w, &internal_errors.ErrorWithStatusCode{Message: "Invalid token", StatusCode: http.StatusUnauthorized})
				default:
					utils.WriteError(w, err)
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractUser extracts and validates the user identity from the request token.
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	var tokenString string
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	} else if accessCookie, err := r.Cookie("accessToken"); err == nil {
		// Fallback for browser clients keeping the token in a cookie.
		tokenString = accessCookie.Value
	}

	if tokenString == "" {
		return nil, errNoToken
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return nil, errInvalidClaims
	}

	sid, ok := claims["sid"].(string)
	if !ok {
		return nil, errInvalidClaims
	}

	return &domain.User{Id: uid, StudentId: sid}, nil
}

var (
	errNoToken       = errorString("no token")
	errInvalidClaims = errorString("invalid claims")
)

type errorString string

func (e errorString) Error() string { return string(e) }

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
