package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/shenikar/location_sharing_system/internal/service"
)

type IncidentRepository struct {
	db querier
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{
		db: db,
	}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (latitude, longitude, location, type, description, severity)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($2, $1), 4326), $3, $4, $5)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Latitude,
		incident.Longitude,
		incident.Type,
		incident.Description,
		incident.Severity,
	).Scan(&incident.ID, &incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// FindNearby находит инциденты в радиусе (метры) от точки,
// сортировка: серьезность по убыванию, затем свежесть
func (r *IncidentRepository) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Incident, error) {
	query := `
		SELECT
			id,
			latitude,
			longitude,
			type,
			description,
			severity,
			created_at,
			ST_Distance(
				location::geography,
				ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
			) as distance
		FROM incidents
		WHERE ST_DWithin(
			location::geography,
			ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography,
			$3
		)
		ORDER BY severity DESC, created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, lat, lng, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		// description допускает NULL в схеме
		var description *string
		err := rows.Scan(
			&incident.ID,
			&incident.Latitude,
			&incident.Longitude,
			&incident.Type,
			&description,
			&incident.Severity,
			&incident.CreatedAt,
			&incident.DistanceMeters,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row in FindNearby: %w", err)
		}
		if description != nil {
			incident.Description = *description
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in FindNearby: %w", err)
	}
	return incidents, nil
}

// List возвращает все инциденты, новые первыми
func (r *IncidentRepository) List(ctx context.Context) ([]*models.Incident, error) {
	query := `
		SELECT id, latitude, longitude, type, description, severity, created_at
		FROM incidents
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		// description допускает NULL в схеме
		var description *string
		err := rows.Scan(
			&incident.ID,
			&incident.Latitude,
			&incident.Longitude,
			&incident.Type,
			&description,
			&incident.Severity,
			&incident.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		if description != nil {
			incident.Description = *description
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}
