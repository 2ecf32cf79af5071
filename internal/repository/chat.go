package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/shenikar/location_sharing_system/internal/service"
)

type ChatRepository struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) service.ChatRepository {
	return &ChatRepository{
		db: db,
	}
}

// CreateChat создает гео-привязанный чат
func (r *ChatRepository) CreateChat(ctx context.Context, chat *models.Chat) error {
	query := `
		INSERT INTO chats (title, latitude, longitude, location)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($3, $2), 4326))
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, chat.Title, chat.Latitude, chat.Longitude).Scan(
		&chat.ID,
		&chat.CreatedAt,
		&chat.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}
	return nil
}

// NearbyChats находит чаты в радиусе (метры) от точки
func (r *ChatRepository) NearbyChats(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Chat, error) {
	query := `
		SELECT id, title, latitude, longitude, created_at, updated_at
		FROM chats
		WHERE ST_DWithin(
			location::geography,
			ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography,
			$3
		)
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, lat, lng, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby chats: %w", err)
	}
	defer rows.Close()

	chats := make([]*models.Chat, 0)
	for rows.Next() {
		chat := &models.Chat{}
		err := rows.Scan(
			&chat.ID,
			&chat.Title,
			&chat.Latitude,
			&chat.Longitude,
			&chat.CreatedAt,
			&chat.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat row: %w", err)
		}
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in NearbyChats: %w", err)
	}
	return chats, nil
}

// ChatExists проверяет существование чата
func (r *ChatRepository) ChatExists(ctx context.Context, chatID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM chats WHERE id = $1);`
	if err := r.db.QueryRow(ctx, query, chatID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check chat existence: %w", err)
	}
	return exists, nil
}

// CreateComment добавляет комментарий в чат
func (r *ChatRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (chat_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, comment.ChatID, comment.UserID, comment.Content).Scan(
		&comment.ID,
		&comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// CommentsByChat возвращает комментарии чата в хронологическом порядке
func (r *ChatRepository) CommentsByChat(ctx context.Context, chatID int64) ([]*models.Comment, error) {
	query := `
		SELECT c.id, c.chat_id, c.user_id, u.email, c.content, c.created_at
		FROM comments c
		INNER JOIN users u ON c.user_id = u.id
		WHERE c.chat_id = $1
		ORDER BY c.created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		comment := &models.Comment{}
		err := rows.Scan(
			&comment.ID,
			&comment.ChatID,
			&comment.UserID,
			&comment.AuthorEmail,
			&comment.Content,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in CommentsByChat: %w", err)
	}
	return comments, nil
}
