package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/shenikar/location_sharing_system/internal/service"
)

type FriendRepository struct {
	db querier
}

func NewFriendRepository(db *pgxpool.Pool) service.FriendRepository {
	return &FriendRepository{
		db: db,
	}
}

// AreFriends проверяет наличие дружбы в любом направлении
func (r *FriendRepository) AreFriends(ctx context.Context, userID, otherID int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM friends
			WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1)
		);
	`
	if err := r.db.QueryRow(ctx, query, userID, otherID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check friendship: %w", err)
	}
	return exists, nil
}

// HasPendingRequest проверяет наличие необработанной заявки между двумя
// пользователями в любом направлении
func (r *FriendRepository) HasPendingRequest(ctx context.Context, userID, otherID int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM friend_requests
			WHERE status = 'pending'
				AND ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
		);
	`
	if err := r.db.QueryRow(ctx, query, userID, otherID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending request: %w", err)
	}
	return exists, nil
}

// CreateRequest создает заявку в друзья
func (r *FriendRepository) CreateRequest(ctx context.Context, senderID, receiverID int64) error {
	query := `INSERT INTO friend_requests (sender_id, receiver_id) VALUES ($1, $2);`
	if _, err := r.db.Exec(ctx, query, senderID, receiverID); err != nil {
		return fmt.Errorf("failed to create friend request: %w", err)
	}
	return nil
}

// RespondToRequest обрабатывает заявку в одной транзакции: чтение заявки,
// вставка пары симметричных ребер (при принятии) и смена статуса. Любая
// ошибка откатывает все шаги - частичной дружбы не остается.
func (r *FriendRepository) RespondToRequest(ctx context.Context, requestID, receiverID int64, accept bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var senderID int64
	err = tx.QueryRow(ctx, `
		SELECT sender_id FROM friend_requests
		WHERE id = $1 AND receiver_id = $2 AND status = 'pending';
	`, requestID, receiverID).Scan(&senderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.ErrRequestNotFound
		}
		return fmt.Errorf("failed to read friend request: %w", err)
	}

	status := models.RequestStatusRejected
	if accept {
		status = models.RequestStatusAccepted
		// Ребра идемпотентны: повторное принятие не создает дубликатов
		_, err = tx.Exec(ctx, `
			INSERT INTO friends (user_id, friend_id)
			VALUES ($1, $2), ($2, $1)
			ON CONFLICT DO NOTHING;
		`, receiverID, senderID)
		if err != nil {
			return fmt.Errorf("failed to insert friend edges: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		UPDATE friend_requests SET status = $1, updated_at = NOW() WHERE id = $2;
	`, status, requestID)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit friend request response: %w", err)
	}
	return nil
}

// ReceivedRequests возвращает входящие необработанные заявки
func (r *FriendRepository) ReceivedRequests(ctx context.Context, userID int64) ([]*models.ReceivedFriendRequest, error) {
	query := `
		SELECT fr.id, u.email as sender_email
		FROM friend_requests fr
		INNER JOIN users u ON fr.sender_id = u.id
		WHERE fr.receiver_id = $1 AND fr.status = 'pending';
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list received requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.ReceivedFriendRequest, 0)
	for rows.Next() {
		req := &models.ReceivedFriendRequest{}
		if err := rows.Scan(&req.ID, &req.SenderEmail); err != nil {
			return nil, fmt.Errorf("failed to scan received request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ReceivedRequests: %w", err)
	}
	return requests, nil
}

// SentRequests возвращает исходящие необработанные заявки
func (r *FriendRepository) SentRequests(ctx context.Context, userID int64) ([]*models.SentFriendRequest, error) {
	query := `
		SELECT fr.id, u.email as receiver_email
		FROM friend_requests fr
		INNER JOIN users u ON fr.receiver_id = u.id
		WHERE fr.sender_id = $1 AND fr.status = 'pending';
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*models.SentFriendRequest, 0)
	for rows.Next() {
		req := &models.SentFriendRequest{}
		if err := rows.Scan(&req.ID, &req.ReceiverEmail); err != nil {
			return nil, fmt.Errorf("failed to scan sent request row: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in SentRequests: %w", err)
	}
	return requests, nil
}

// Friends возвращает список друзей с позициями; координаты отдаются только
// при включенном шаринге локации у друга
func (r *FriendRepository) Friends(ctx context.Context, userID int64) ([]*models.FriendLocation, error) {
	query := `
		SELECT
			u.id,
			u.email,
			u.is_location_enabled,
			CASE WHEN u.is_location_enabled = true THEN ST_X(u.last_location::geometry) ELSE NULL END as longitude,
			CASE WHEN u.is_location_enabled = true THEN ST_Y(u.last_location::geometry) ELSE NULL END as latitude,
			u.last_location_timestamp
		FROM users u
		INNER JOIN friends f ON f.friend_id = u.id
		WHERE f.user_id = $1;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	friends := make([]*models.FriendLocation, 0)
	for rows.Next() {
		friend := &models.FriendLocation{}
		err := rows.Scan(
			&friend.ID,
			&friend.Email,
			&friend.IsLocationEnabled,
			&friend.Longitude,
			&friend.Latitude,
			&friend.LastLocationTimestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friend row: %w", err)
		}
		friends = append(friends, friend)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in Friends: %w", err)
	}
	return friends, nil
}

// FriendIDsWithLocationEnabled - симметричная выборка id друзей с включенным
// шарингом, используется ретранслятором для фан-аута
func (r *FriendRepository) FriendIDsWithLocationEnabled(ctx context.Context, userID int64) ([]int64, error) {
	query := `
		SELECT DISTINCT
			CASE WHEN f.user_id = $1 THEN f.friend_id ELSE f.user_id END as friend_id
		FROM friends f
		INNER JOIN users u ON
			(CASE WHEN f.user_id = $1 THEN f.friend_id ELSE f.user_id END) = u.id
		WHERE (f.user_id = $1 OR f.friend_id = $1)
			AND u.is_location_enabled = true;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friend ids: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan friend id row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in FriendIDsWithLocationEnabled: %w", err)
	}
	return ids, nil
}

// FriendLocations - снимок позиций друзей для начального состояния клиента:
// только друзья с включенным шарингом и известной позицией
func (r *FriendRepository) FriendLocations(ctx context.Context, userID int64) ([]*models.FriendLocation, error) {
	query := `
		SELECT DISTINCT
			u.id,
			u.email,
			ST_X(u.last_location::geometry) as longitude,
			ST_Y(u.last_location::geometry) as latitude,
			u.last_location_timestamp,
			u.is_location_enabled
		FROM users u
		INNER JOIN friends f ON (f.friend_id = u.id OR f.user_id = u.id)
		WHERE (f.user_id = $1 OR f.friend_id = $1)
			AND u.id != $1
			AND u.is_location_enabled = true
			AND u.last_location IS NOT NULL;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch friend locations: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.FriendLocation, 0)
	for rows.Next() {
		loc := &models.FriendLocation{}
		err := rows.Scan(
			&loc.ID,
			&loc.Email,
			&loc.Longitude,
			&loc.Latitude,
			&loc.LastLocationTimestamp,
			&loc.IsLocationEnabled,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friend location row: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in FriendLocations: %w", err)
	}
	return locations, nil
}
