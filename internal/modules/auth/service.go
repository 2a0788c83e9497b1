package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chetanraj-2002/portfolio/internal/shared/apperr"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Authenticate verifies the credentials. Unknown email and wrong
// password return the same error so the login form does not leak which
// one was wrong.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u User
	err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, apperr.UnauthorizedErr("Invalid email or password.")
	}
	if err != nil {
		return User{}, apperr.Wrap(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, apperr.UnauthorizedErr("Invalid email or password.")
	}
	return u, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (User, error) {
	var u User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, apperr.NotFoundErr("User not found.")
	}
	if err != nil {
		return User{}, apperr.Wrap(err)
	}
	return u, nil
}

// CreateUser registers an account with a hashed password. Used by the
// seeding tool; the site itself has no public signup.
func (s *Service) CreateUser(ctx context.Context, email, password, role, fullName string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return User{}, apperr.InvalidErr("Email and password are required.", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, apperr.Wrap(err)
	}

	u := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		FullName:     fullName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return User{}, apperr.Wrap(err)
	}
	return u, nil
}
