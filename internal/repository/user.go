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

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create создает нового пользователя
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	user := &models.User{Email: email}
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, is_location_enabled, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, email, passwordHash).Scan(
		&user.ID,
		&user.IsLocationEnabled,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetByEmail возвращает пользователя по email, nil если не найден
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT
			id,
			email,
			password_hash,
			is_location_enabled,
			ST_Y(last_location::geometry) as latitude,
			ST_X(last_location::geometry) as longitude,
			last_location_timestamp,
			created_at,
			updated_at
		FROM users
		WHERE email = $1;
	`
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.IsLocationEnabled,
		&user.Latitude,
		&user.Longitude,
		&user.LastLocationTimestamp,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetByID возвращает пользователя по его id, nil если не найден
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT
			id,
			email,
			password_hash,
			is_location_enabled,
			ST_Y(last_location::geometry) as latitude,
			ST_X(last_location::geometry) as longitude,
			last_location_timestamp,
			created_at,
			updated_at
		FROM users
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.IsLocationEnabled,
		&user.Latitude,
		&user.Longitude,
		&user.LastLocationTimestamp,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// UpdateLastLocation обновляет последнюю позицию пользователя. Условие на
// is_location_enabled стоит в самом запросе: при выключенном шаринге запись
// не происходит и возвращается false.
func (r *UserRepository) UpdateLastLocation(ctx context.Context, userID int64, lat, lng float64) (bool, error) {
	query := `
		UPDATE users
		SET last_location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			last_location_timestamp = CURRENT_TIMESTAMP
		WHERE id = $3 AND is_location_enabled = true;
	`
	cmdTag, err := r.db.Exec(ctx, query, lng, lat, userID)
	if err != nil {
		return false, fmt.Errorf("failed to update last location: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// SetLocationEnabled переключает флаг шаринга локации
func (r *UserRepository) SetLocationEnabled(ctx context.Context, userID int64, enabled bool) error {
	query := `UPDATE users SET is_location_enabled = $1 WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, enabled, userID)
	if err != nil {
		return fmt.Errorf("failed to set location enabled: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %d not found", userID)
	}
	return nil
}

// GetLocationEnabled возвращает текущее состояние флага шаринга
func (r *UserRepository) GetLocationEnabled(ctx context.Context, userID int64) (bool, error) {
	var enabled bool
	query := `SELECT is_location_enabled FROM users WHERE id = $1;`
	err := r.db.QueryRow(ctx, query, userID).Scan(&enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("user with id %d not found", userID)
		}
		return false, fmt.Errorf("failed to get location enabled: %w", err)
	}
	return enabled, nil
}
