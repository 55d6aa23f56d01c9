package middlewares

import (
	"context"
	"net/http"
	"strings"

	"aiwallet/aiwallet/utils/apperr"
	httputils "aiwallet/aiwallet/utils/http"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// UserID returns the authenticated user id AuthMiddleware stored on ctx.
func UserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// ParseUserID verifies an HS256 token and returns its subject.
func ParseUserID(secret, tokenStr string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", apperr.ErrUnauthorized
	}
	return claims.Subject, nil
}

func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			parts := strings.Split(auth, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				httputils.WriteError(w, r, apperr.ErrUnauthorized)
				return
			}
			userID, err := ParseUserID(secret, parts[1])
			if err != nil {
				httputils.WriteError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
