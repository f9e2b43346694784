package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/a2sh3r/fundledger/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const PrincipalKey contextKey = "principal"

// legacyApproverRole is the adminRole claim value that grants review rights.
const legacyApproverRole = "approver"

func JWTMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "authorization header missing")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "authorization header format must be Bearer {token}")
				return
			}

			principal, err := ParseToken(parts[1], secretKey)
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				WriteError(w, http.StatusUnauthorized, CodeSessionExpired, "session expired, please sign in again")
				return
			case err != nil:
				WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// ParseToken verifies an HS256 token and resolves the principal it carries.
func ParseToken(tokenString, secretKey string) (models.Principal, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Principal{}, err
	}

	id := subject(claims)
	if id == "" {
		return models.Principal{}, errors.New("subject missing in token claims")
	}

	principal := models.Principal{ID: id}
	if email, ok := claims["email"].(string); ok {
		principal.Email = email
	}
	if raw, ok := claims["capabilities"].([]interface{}); ok {
		for _, c := range raw {
			if s, ok := c.(string); ok && s != "" {
				principal.Capabilities = append(principal.Capabilities, s)
			}
		}
	}
	if role, _ := claims["adminRole"].(string); role == legacyApproverRole && !principal.HasCapability(models.CapabilityReviewWithdrawals) {
		principal.Capabilities = append(principal.Capabilities, models.CapabilityReviewWithdrawals)
	}
	return principal, nil
}

func subject(claims jwt.MapClaims) string {
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub
	}
	for _, key := range []string{"id", "user_id"} {
		switch v := claims[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		}
	}
	return ""
}

func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

func GetPrincipal(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(models.Principal)
	return p, ok
}

// RequireCapability rejects authenticated callers lacking the capability with 403.
func RequireCapability(capability string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipal(r.Context())
			if !ok {
				WriteError(w, http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
				return
			}
			if !principal.HasCapability(capability) {
				WriteError(w, http.StatusForbidden, CodeForbidden, "missing required capability")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
