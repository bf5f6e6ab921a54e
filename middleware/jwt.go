package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dopagraming/wastewater-records/models"
)

// Claims are the custom payload in the bearer token.
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// unexported type prevents collisions in context
type ctxKey int

const (
	userClaimsKey ctxKey = iota
	userKey
)

// UserFinder resolves a token subject to a user record.
type UserFinder interface {
	FindUserByID(id string) (*models.User, error)
}

// Auth verifies bearer tokens and re-resolves their subject on every request.
type Auth struct {
	secret []byte
	users  UserFinder
}

func NewAuth(secret []byte, users UserFinder) *Auth {
	return &Auth{secret: secret, users: users}
}

// GenerateToken creates a signed JWT valid for 24 h.
func GenerateToken(secret []byte, userID, username, role string) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,

		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Middleware validates the token, looks the subject up and stashes both the
// claims and the user in the request context. A token whose subject no longer
// exists is rejected the same as an invalid one.
func (a *Auth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			unauthorized(w, "missing Authorization header")
			return
		}
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			unauthorized(w, "invalid auth header")
			return
		}

		token, err := jwt.ParseWithClaims(parts[1], &Claims{}, func(t *jwt.Token) (interface{}, error) {
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			unauthorized(w, "invalid or expired token")
			return
		}
		claims, ok := token.Claims.(*Claims)
		if !ok {
			unauthorized(w, "invalid token claims")
			return
		}

		user, err := a.users.FindUserByID(claims.UserID)
		if err != nil {
			unauthorized(w, "user not found")
			return
		}

		ctx := context.WithValue(r.Context(), userClaimsKey, claims)
		ctx = context.WithValue(ctx, userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a handler behind an allow-list of roles. No route uses it
// yet; differentiating roles is a route-table change, not a rewrite.
func RequireRole(roles []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if slices.Contains(roles, GetRole(r)) {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "forbidden"})
	})
}

// GetClaims pulls the *Claims out of the request context (or nil).
func GetClaims(r *http.Request) *Claims {
	if c, ok := r.Context().Value(userClaimsKey).(*Claims); ok {
		return c
	}
	return nil
}

// GetUser returns the resolved user stashed by Middleware (or nil).
func GetUser(r *http.Request) *models.User {
	if u, ok := r.Context().Value(userKey).(*models.User); ok {
		return u
	}
	return nil
}

func GetRole(r *http.Request) string {
	if c := GetClaims(r); c != nil {
		return c.Role
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
