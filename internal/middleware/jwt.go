package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	OperatorIDKey contextKey = "operator_id"

	RoleAdmin = "admin"
)

var ErrEmptySecretKey = errors.New("operator token secret key is empty")

// IssueOperatorToken signs an HS256 token for a back-office operator.
func IssueOperatorToken(secretKey, operatorID string, ttl time.Duration) (string, error) {
	if secretKey == "" {
		return "", ErrEmptySecretKey
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  operatorID,
		"role": RoleAdmin,
		"exp":  time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secretKey))
}

// AdminMiddleware admits requests that carry a valid operator bearer token and
// stores the operator id in the request context. With an empty key every
// request is refused.
func AdminMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secretKey == "" {
				jsonError(w, "operator authentication is not configured", http.StatusUnauthorized)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				jsonError(w, "authorization header missing", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				jsonError(w, "authorization header format must be Bearer {token}", http.StatusUnauthorized)
				return
			}
			tokenString := parts[1]

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return []byte(secretKey), nil
			})

			if err != nil || !token.Valid {
				jsonError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				jsonError(w, "invalid token claims", http.StatusUnauthorized)
				return
			}

			if role, _ := claims["role"].(string); role != RoleAdmin {
				jsonError(w, "operator role required", http.StatusForbidden)
				return
			}

			operatorID, err := claims.GetSubject()
			if err != nil || operatorID == "" {
				jsonError(w, "subject missing in token claims", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), OperatorIDKey, operatorID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetOperatorID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(OperatorIDKey).(string)
	return id, ok && id != ""
}
