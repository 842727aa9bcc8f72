package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/models"
	"github.com/abdul8704/Cookify-server/internal/types"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService manages account records outside the auth flow.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ListUsers returns every account, password hashes excluded by the model's
// JSON tags.
func (s *UserService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByIdentifier looks a user up by email when the identifier looks like
// one, otherwise by username.
func (s *UserService) GetByIdentifier(identifier string) (*models.User, error) {
	var user models.User
	if err := s.identifierQuery(identifier).First(&user).Error; err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

// Update changes name/username/email on an account, enforcing uniqueness.
func (s *UserService) Update(identifier string, req types.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.identifierQuery(identifier).First(&user).Error; err != nil {
		return nil, ErrNotFound
	}

	if req.Email != nil && strings.ToLower(*req.Email) != user.Email {
		var other models.User
		if err := s.db.Where("email = ? AND id <> ?", strings.ToLower(*req.Email), user.ID).First(&other).Error; err == nil {
			return nil, fmt.Errorf("%w: email already in use", ErrConflict)
		}
	}
	if req.Username != nil && strings.ToLower(*req.Username) != user.Username {
		var other models.User
		if err := s.db.Where("username = ? AND id <> ?", strings.ToLower(*req.Username), user.ID).First(&other).Error; err == nil {
			return nil, fmt.Errorf("%w: username already in use", ErrConflict)
		}
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Username != nil && strings.TrimSpace(*req.Username) != "" {
		user.Username = strings.ToLower(strings.TrimSpace(*req.Username))
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes an account. Users may only delete themselves.
func (s *UserService) Delete(identifier string, requesterID uuid.UUID) error {
	var user models.User
	if err := s.identifierQuery(identifier).First(&user).Error; err != nil {
		return ErrNotFound
	}
	if user.ID != requesterID {
		return fmt.Errorf("%w: you can only delete your own account", ErrForbidden)
	}
	return s.db.Delete(&user).Error
}

func (s *UserService) identifierQuery(identifier string) *gorm.DB {
	if emailPattern.MatchString(identifier) {
		return s.db.Where("email = ?", strings.ToLower(identifier))
	}
	return s.db.Where("username = ?", strings.ToLower(identifier))
}
