package service

import (
	"context"
	"fmt"

	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=friend.go -destination=mocks/friend.go -package=mocks

// FriendRepository определяет контракт для работы с бд дружеских связей.
// Дружба хранится двумя направленными строками (A->B и B->A).
type FriendRepository interface {
	AreFriends(ctx context.Context, userID, otherID int64) (bool, error)
	HasPendingRequest(ctx context.Context, userID, otherID int64) (bool, error)
	CreateRequest(ctx context.Context, senderID, receiverID int64) error
	// RespondToRequest выполняет чтение заявки, вставку пары ребер (при
	// принятии) и обновление статуса в одной транзакции
	RespondToRequest(ctx context.Context, requestID, receiverID int64, accept bool) error
	ReceivedRequests(ctx context.Context, userID int64) ([]*models.ReceivedFriendRequest, error)
	SentRequests(ctx context.Context, userID int64) ([]*models.SentFriendRequest, error)
	Friends(ctx context.Context, userID int64) ([]*models.FriendLocation, error)
	// FriendIDsWithLocationEnabled - симметричная выборка друзей с
	// включенным шарингом локации, используется ретранслятором
	FriendIDsWithLocationEnabled(ctx context.Context, userID int64) ([]int64, error)
	FriendLocations(ctx context.Context, userID int64) ([]*models.FriendLocation, error)
}

// FriendService определяет контракт управления дружескими связями
type FriendService interface {
	SendRequest(ctx context.Context, senderID int64, receiverEmail string) error
	RespondRequest(ctx context.Context, receiverID, requestID int64, accept bool) error
	Friends(ctx context.Context, userID int64) ([]*models.FriendLocation, error)
	Requests(ctx context.Context, userID int64) (*models.FriendRequests, error)
}

type friendService struct {
	users   UserRepository
	friends FriendRepository
	logger  *logrus.Logger
}

func NewFriendService(users UserRepository, friends FriendRepository, logger *logrus.Logger) FriendService {
	return &friendService{
		users:   users,
		friends: friends,
		logger:  logger,
	}
}

// SendRequest создает заявку в друзья по email получателя
func (s *friendService) SendRequest(ctx context.Context, senderID int64, receiverEmail string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "friend",
		"method":    "SendRequest",
		"sender_id": senderID,
	})

	receiver, err := s.users.GetByEmail(ctx, receiverEmail)
	if err != nil {
		log.WithError(err).Error("Failed to look up receiver")
		return fmt.Errorf("service: could not look up user: %w", err)
	}
	if receiver == nil {
		return ErrUserNotFound
	}

	if receiver.ID == senderID {
		return ErrSelfRequest
	}

	friends, err := s.friends.AreFriends(ctx, senderID, receiver.ID)
	if err != nil {
		log.WithError(err).Error("Failed to check existing friendship")
		return fmt.Errorf("service: could not check friendship: %w", err)
	}
	if friends {
		return ErrAlreadyFriends
	}

	pending, err := s.friends.HasPendingRequest(ctx, senderID, receiver.ID)
	if err != nil {
		log.WithError(err).Error("Failed to check pending requests")
		return fmt.Errorf("service: could not check pending requests: %w", err)
	}
	if pending {
		return ErrDuplicateRequest
	}

	if err := s.friends.CreateRequest(ctx, senderID, receiver.ID); err != nil {
		log.WithError(err).Error("Failed to create friend request")
		return fmt.Errorf("service: could not create friend request: %w", err)
	}

	log.WithField("receiver_id", receiver.ID).Info("Friend request sent")
	return nil
}

// RespondRequest принимает или отклоняет заявку. Принятие атомарно:
// чтение заявки, вставка симметричных ребер и смена статуса либо проходят
// целиком, либо откатываются без частичной дружбы.
func (s *friendService) RespondRequest(ctx context.Context, receiverID, requestID int64, accept bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "friend",
		"method":      "RespondRequest",
		"receiver_id": receiverID,
		"request_id":  requestID,
		"accept":      accept,
	})

	if err := s.friends.RespondToRequest(ctx, requestID, receiverID, accept); err != nil {
		log.WithError(err).Error("Failed to respond to friend request")
		return fmt.Errorf("service: could not respond to friend request: %w", err)
	}

	log.Info("Friend request responded")
	return nil
}

// Friends возвращает список друзей с их последними позициями (координаты
// скрыты для друзей с выключенным шарингом)
func (s *friendService) Friends(ctx context.Context, userID int64) ([]*models.FriendLocation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "friend",
		"method":  "Friends",
		"user_id": userID,
	})

	friends, err := s.friends.Friends(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list friends")
		return nil, fmt.Errorf("service: could not list friends: %w", err)
	}
	return friends, nil
}

// Requests возвращает входящие и исходящие заявки со статусом pending
func (s *friendService) Requests(ctx context.Context, userID int64) (*models.FriendRequests, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "friend",
		"method":  "Requests",
		"user_id": userID,
	})

	received, err := s.friends.ReceivedRequests(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list received requests")
		return nil, fmt.Errorf("service: could not list received requests: %w", err)
	}

	sent, err := s.friends.SentRequests(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list sent requests")
		return nil, fmt.Errorf("service: could not list sent requests: %w", err)
	}

	return &models.FriendRequests{Received: received, Sent: sent}, nil
}
