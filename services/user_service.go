package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dopagraming/wastewater-records/models"
	"github.com/dopagraming/wastewater-records/pkg/apperr"
)

// UserService backs registration, login and the auth middleware's subject
// lookup.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Create(u *models.User) error {
	u.Username = strings.TrimSpace(u.Username)
	if u.Username == "" {
		return apperr.Validation("username is required", map[string]string{"username": "required"})
	}
	if u.Role == "" {
		u.Role = "user"
	}
	if err := s.db.Create(u).Error; err != nil {
		return writeErr(err, "username")
	}
	return nil
}

func (s *UserService) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, storeErr(err, "user")
	}
	return &user, nil
}

// FindUserByID resolves a token subject back to a user record.
func (s *UserService) FindUserByID(id string) (*models.User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.InvalidID(id)
	}
	var user models.User
	if err := s.db.First(&user, "id = ?", uid).Error; err != nil {
		return nil, storeErr(err, "user")
	}
	return &user, nil
}
