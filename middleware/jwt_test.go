package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dopagraming/wastewater-records/models"
	"github.com/dopagraming/wastewater-records/pkg/apperr"
)

var testSecret = []byte("test-secret")

type fakeUserFinder struct {
	users map[string]*models.User
}

func (f *fakeUserFinder) FindUserByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, apperr.NotFound("user")
}

func newTestAuth(users ...*models.User) *Auth {
	finder := &fakeUserFinder{users: map[string]*models.User{}}
	for _, u := range users {
		finder.users[u.ID.String()] = u
	}
	return NewAuth(testSecret, finder)
}

func okHandler(t *testing.T, wantRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaims(r)
		require.NotNil(t, claims)
		assert.Equal(t, wantRole, claims.Role)
		require.NotNil(t, GetUser(r))
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "inspector", Role: "user"}
	auth := newTestAuth(user)

	token, err := GenerateToken(testSecret, user.ID.String(), user.Username, user.Role)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/sectors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	auth.Middleware(okHandler(t, "user")).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	auth := newTestAuth()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"no token", "Bearer"},
		{"garbage token", "Bearer not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/sectors", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			auth.Middleware(next).ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "inspector", Role: "user"}
	auth := newTestAuth(user)

	claims := Claims{
		UserID: user.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/sectors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	auth.Middleware(okHandler(t, "")).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsDeletedSubject(t *testing.T) {
	// Token is valid but the user record is gone.
	auth := newTestAuth()
	token, err := GenerateToken(testSecret, uuid.NewString(), "ghost", "user")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/sectors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	auth.Middleware(okHandler(t, "")).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "inspector", Role: "user"}
	auth := newTestAuth(user)
	token, err := GenerateToken(testSecret, user.ID.String(), user.Username, user.Role)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		roles    []string
		expected int
	}{
		{"role allowed", []string{"admin", "user"}, http.StatusOK},
		{"role not allowed", []string{"admin"}, http.StatusForbidden},
		{"empty allow list", nil, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/sectors", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			auth.Middleware(RequireRole(tt.roles, next)).ServeHTTP(rec, req)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
