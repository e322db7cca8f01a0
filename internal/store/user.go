package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/taskforge-dev/taskforge/internal/models"
)

// NormalizeEmail applies the store's email equality policy: addresses are
// compared case-insensitively, implemented by lowercasing on the way in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser persists a new user record. The email is normalized before the
// uniqueness check so that "Ann@x.com" and "ann@x.com" collide.
func (s *Store) CreateUser(name, email, passwordHash string) (*models.User, error) {
	if err := validateUser(name, email); err != nil {
		return nil, err
	}

	email = NormalizeEmail(email)

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error

	if err == nil {
		return nil, ErrDuplicateEmail
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeError(err)
	}

	user := models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := s.db.Create(&user).Error; err != nil {
		// Concurrent registration can slip past the lookup above; the
		// unique index is the backstop.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, storeError(err)
	}

	return &user, nil
}

func (s *Store) UserByEmail(email string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", NormalizeEmail(email)).First(&user).Error; err != nil {
		return nil, lookupError(err)
	}

	return &user, nil
}

func (s *Store) UserByID(id uint) (*models.User, error) {
	var user models.User

	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, lookupError(err)
	}

	return &user, nil
}

func validateUser(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(name) > 50 {
		return fmt.Errorf("%w: name cannot exceed 50 characters", ErrValidation)
	}
	if NormalizeEmail(email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	return nil
}
