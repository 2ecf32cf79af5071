package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/shenikar/location_sharing_system/internal/ws"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=location.go -destination=mocks/location.go -package=mocks

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	// UpdateLastLocation пишет позицию только при включенном шаринге,
	// возвращает false если строка не затронута
	UpdateLastLocation(ctx context.Context, userID int64, lat, lng float64) (bool, error)
	SetLocationEnabled(ctx context.Context, userID int64, enabled bool) error
	GetLocationEnabled(ctx context.Context, userID int64) (bool, error)
}

// LocationService определяет контракт ретрансляции локаций и настроек шаринга
type LocationService interface {
	UpdateLocation(ctx context.Context, userID int64, email string, lat, lng float64) error
	FriendLocations(ctx context.Context, userID int64) ([]*models.FriendLocation, error)
	SetLocationEnabled(ctx context.Context, userID int64, enabled bool) error
	LocationEnabled(ctx context.Context, userID int64) (bool, error)
}

type locationService struct {
	users       UserRepository
	friends     FriendRepository
	broadcaster Broadcaster
	logger      *logrus.Logger
}

func NewLocationService(users UserRepository, friends FriendRepository, broadcaster Broadcaster, logger *logrus.Logger) LocationService {
	return &locationService{
		users:       users,
		friends:     friends,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// UpdateLocation - конвейер одного обновления позиции:
// запись в бд -> выборка друзей -> рассылка. Рассылка начинается только
// после успешной записи и выборки; частичного фан-аута не бывает.
func (s *locationService) UpdateLocation(ctx context.Context, userID int64, email string, lat, lng float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "UpdateLocation",
		"user_id": userID,
	})

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("service: coordinates out of range: %f, %f", lat, lng)
	}

	// Условие "шаринг включен" живет в самом UPDATE: выключение, пришедшее
	// раньше обновления, не даст записать устаревшую позицию
	updated, err := s.users.UpdateLastLocation(ctx, userID, lat, lng)
	if err != nil {
		log.WithError(err).Error("Failed to persist location update")
		return fmt.Errorf("service: could not update location: %w", err)
	}
	if !updated {
		log.Info("Location update skipped, sharing disabled")
		return ErrLocationDisabled
	}

	friendIDs, err := s.friends.FriendIDsWithLocationEnabled(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve friend set")
		return fmt.Errorf("service: could not resolve friends: %w", err)
	}

	update := ws.FriendLocationUpdate{
		UserID:    userID,
		Email:     email,
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.Now().UTC(),
	}

	// Доставка по друзьям изолирована: оффлайн или медленный получатель
	// не влияет на остальных
	for _, friendID := range friendIDs {
		s.broadcaster.SendToUser(friendID, ws.EventFriendLocationUpdate, update)
	}

	log.WithField("friends", len(friendIDs)).Debug("Location update fanned out")
	return nil
}

// FriendLocations возвращает разовый снимок позиций друзей с включенным
// шарингом - клиент заполняет им карту до прихода живых обновлений
func (s *locationService) FriendLocations(ctx context.Context, userID int64) ([]*models.FriendLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "FriendLocations",
		"user_id": userID,
	})

	locations, err := s.friends.FriendLocations(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch friend locations")
		return nil, fmt.Errorf("service: could not fetch friend locations: %w", err)
	}
	return locations, nil
}

// SetLocationEnabled включает или выключает шаринг локации пользователя
func (s *locationService) SetLocationEnabled(ctx context.Context, userID int64, enabled bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "SetLocationEnabled",
		"user_id": userID,
		"enabled": enabled,
	})

	if err := s.users.SetLocationEnabled(ctx, userID, enabled); err != nil {
		log.WithError(err).Error("Failed to toggle location sharing")
		return fmt.Errorf("service: could not toggle location sharing: %w", err)
	}
	log.Info("Location sharing toggled")
	return nil
}

// LocationEnabled возвращает текущее состояние шаринга локации
func (s *locationService) LocationEnabled(ctx context.Context, userID int64) (bool, error) {
	enabled, err := s.users.GetLocationEnabled(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("service: could not get location sharing state: %w", err)
	}
	return enabled, nil
}
