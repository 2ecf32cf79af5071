package service

import (
	"context"
	"fmt"

	"github.com/shenikar/location_sharing_system/internal/auth"
	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks

// AuthService определяет контракт регистрации и входа
type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

type authService struct {
	users  UserRepository
	tokens *auth.TokenManager
	logger *logrus.Logger
}

func NewAuthService(users UserRepository, tokens *auth.TokenManager, logger *logrus.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Register создает пользователя с bcrypt-хэшем пароля и выдает токен
func (s *authService) Register(ctx context.Context, email, password string) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   email,
	})
	log.Info("Attempting to register a new user")

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to check existing user")
		return nil, "", fmt.Errorf("service: could not check existing user: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, "", fmt.Errorf("service: could not hash password: %w", err)
	}

	user, err := s.users.Create(ctx, email, string(hash))
	if err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, "", fmt.Errorf("service: could not create user: %w", err)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		log.WithError(err).Error("Failed to generate token")
		return nil, "", fmt.Errorf("service: could not generate token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, token, nil
}

// Login проверяет учетные данные и выдает токен. Неизвестный email и
// неверный пароль дают одинаковую ошибку.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user")
		return nil, "", fmt.Errorf("service: could not look up user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Invalid password attempt")
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		log.WithError(err).Error("Failed to generate token")
		return nil, "", fmt.Errorf("service: could not generate token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return user, token, nil
}
