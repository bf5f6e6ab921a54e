package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dopagraming/wastewater-records/middleware"
	"github.com/dopagraming/wastewater-records/models"
	"github.com/dopagraming/wastewater-records/pkg/apperr"
	"github.com/dopagraming/wastewater-records/services"
)

// AuthHandler serves register, login and the current-user lookup.
type AuthHandler struct {
	users  *services.UserService
	secret []byte
}

func NewAuthHandler(users *services.UserService, secret []byte) *AuthHandler {
	return &AuthHandler{users: users, secret: secret}
}

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type userPayload struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid JSON", nil))
		return
	}
	if req.Password == "" {
		writeError(w, apperr.Validation("password is required", map[string]string{"password": "required"}))
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, err)
		return
	}
	u := models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := h.users.Create(&u); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, userPayload{ID: u.ID, Username: u.Username, Role: u.Role})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Validation("invalid JSON", nil))
		return
	}
	u, err := h.users.FindByUsername(req.Username)
	if err != nil {
		writeError(w, apperr.Unauthenticated("invalid credentials"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, apperr.Unauthenticated("invalid credentials"))
		return
	}
	token, err := middleware.GenerateToken(h.secret, u.ID.String(), u.Username, u.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResp{
		Token: token,
		User:  userPayload{ID: u.ID, Username: u.Username, Role: u.Role},
	})
}

// Me returns the user resolved by the auth middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		writeError(w, apperr.Unauthenticated("not authenticated"))
		return
	}
	writeJSON(w, http.StatusOK, userPayload{ID: user.ID, Username: user.Username, Role: user.Role})
}
