package service

import (
	"context"
	"fmt"

	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=chat.go -destination=mocks/chat.go -package=mocks

// ChatRepository определяет контракт для работы с бд чатов и комментариев
type ChatRepository interface {
	CreateChat(ctx context.Context, chat *models.Chat) error
	NearbyChats(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Chat, error)
	ChatExists(ctx context.Context, chatID int64) (bool, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
	CommentsByChat(ctx context.Context, chatID int64) ([]*models.Comment, error)
}

// ChatService определяет контракт гео-чатов
type ChatService interface {
	CreateChat(ctx context.Context, chat *models.Chat) error
	NearbyChats(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Chat, error)
	AddComment(ctx context.Context, comment *models.Comment) error
	Comments(ctx context.Context, chatID int64) ([]*models.Comment, error)
}

type chatService struct {
	repo   ChatRepository
	logger *logrus.Logger
}

func NewChatService(repo ChatRepository, logger *logrus.Logger) ChatService {
	return &chatService{
		repo:   repo,
		logger: logger,
	}
}

// CreateChat создает гео-привязанный чат
func (s *chatService) CreateChat(ctx context.Context, chat *models.Chat) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "chat",
		"method":  "CreateChat",
		"title":   chat.Title,
	})

	if err := s.repo.CreateChat(ctx, chat); err != nil {
		log.WithError(err).Error("Failed to create chat in repository")
		return fmt.Errorf("service: could not create chat: %w", err)
	}

	log.WithField("chat_id", chat.ID).Info("Chat created successfully")
	return nil
}

// NearbyChats возвращает чаты в радиусе от точки
func (s *chatService) NearbyChats(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Chat, error) {
	chats, err := s.repo.NearbyChats(ctx, lat, lng, radiusMeters)
	if err != nil {
		s.logger.WithError(err).Error("Failed to find nearby chats")
		return nil, fmt.Errorf("service: could not find nearby chats: %w", err)
	}
	return chats, nil
}

// AddComment добавляет комментарий в существующий чат
func (s *chatService) AddComment(ctx context.Context, comment *models.Comment) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "chat",
		"method":  "AddComment",
		"chat_id": comment.ChatID,
	})

	exists, err := s.repo.ChatExists(ctx, comment.ChatID)
	if err != nil {
		log.WithError(err).Error("Failed to check chat existence")
		return fmt.Errorf("service: could not check chat: %w", err)
	}
	if !exists {
		return ErrChatNotFound
	}

	if err := s.repo.CreateComment(ctx, comment); err != nil {
		log.WithError(err).Error("Failed to create comment in repository")
		return fmt.Errorf("service: could not create comment: %w", err)
	}
	return nil
}

// Comments возвращает комментарии чата в хронологическом порядке
func (s *chatService) Comments(ctx context.Context, chatID int64) ([]*models.Comment, error) {
	exists, err := s.repo.ChatExists(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("service: could not check chat: %w", err)
	}
	if !exists {
		return nil, ErrChatNotFound
	}

	comments, err := s.repo.CommentsByChat(ctx, chatID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list comments")
		return nil, fmt.Errorf("service: could not list comments: %w", err)
	}
	return comments, nil
}
