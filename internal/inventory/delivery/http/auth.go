package http

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tair/inventory-information/pkg/logger"
)

// RoleAdmin is required for every mutating inventory route.
const RoleAdmin = "admin"

type contextKey string

const claimsKey contextKey = "claims"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

// Claims are the bearer token claims accepted by the service.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

// HasRole reports whether the claims grant role.
func (c *Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// Authenticator validates HS256 bearer tokens. With an empty secret it lets
// every request through.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

// Enabled reports whether a signing secret is configured.
func (a *Authenticator) Enabled() bool {
	return len(a.secret) > 0
}

// GenerateToken signs a token for subject with the given roles.
func (a *Authenticator) GenerateToken(subject string, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Roles: roles,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// ValidateToken parses and verifies a signed token.
func (a *Authenticator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

// ClaimsFromContext returns the claims of a request that passed RequireRole.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// RequireRole validates the bearer token and checks that it carries role.
func (a *Authenticator) RequireRole(role string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if !a.Enabled() {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn(ctx).Msg("Missing authorization header")
				respondError(w, http.StatusUnauthorized, "Authorization header required")
				return
			}

			// Extract token from "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Warn(ctx).Msg("Invalid authorization header format")
				respondError(w, http.StatusUnauthorized, "Invalid authorization header format")
				return
			}

			claims, err := a.ValidateToken(parts[1])
			if err != nil {
				logger.Warn(ctx).Err(err).Msg("Invalid token")
				respondError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			if !claims.HasRole(role) {
				logger.Warn(ctx).
					Str("subject", claims.Subject).
					Strs("roles", claims.Roles).
					Str("required_role", role).
					Msg("Access denied")
				respondError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			ctx = context.WithValue(ctx, claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}
