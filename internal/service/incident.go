package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/shenikar/location_sharing_system/internal/webhook"
	"github.com/shenikar/location_sharing_system/internal/ws"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/incident.go -package=mocks

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Incident, error)
	List(ctx context.Context) ([]*models.Incident, error)
}

// Broadcaster - возможность доставки событий на живые socket-соединения.
// Передается сервисам при конструировании, глобального io-хендла нет.
type Broadcaster interface {
	SendToUser(userID int64, event string, payload any)
	Broadcast(event string, payload any)
}

// IncidentService определяет контракт бизнес-логики инцидентов
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	NearbyIncidents(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Incident, error)
	RefreshNearbyIncidents(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Incident, error)
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
}

type incidentService struct {
	repo        IncidentRepository
	cache       *LocationCache
	broadcaster Broadcaster
	webhooks    webhook.Publisher
	logger      *logrus.Logger
	cacheTTL    time.Duration
}

func NewIncidentService(repo IncidentRepository, cache *LocationCache, broadcaster Broadcaster, webhooks webhook.Publisher, logger *logrus.Logger, cacheTTL time.Duration) IncidentService {
	return &incidentService{
		repo:        repo,
		cache:       cache,
		broadcaster: broadcaster,
		webhooks:    webhooks,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// CreateIncident вставляет инцидент, рассылает его всем подключенным
// клиентам, сбрасывает задетые гео-бакеты кэша и ставит webhook-событие в
// очередь. Ошибки рассылки и вебхука не откатывают запись.
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"type":    incident.Type,
	})
	log.Info("Attempting to create a new incident")

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	// Единая рассылка без гео-фильтрации: каждое соединение получает инцидент
	s.broadcaster.Broadcast(ws.EventNewIncident, incident)

	invalidated, err := s.cache.InvalidateAround(ctx, incident.Latitude, incident.Longitude)
	if err != nil {
		log.WithError(err).Warn("Failed to invalidate cache buckets for new incident")
	} else if invalidated > 0 {
		log.WithField("buckets", invalidated).Info("Invalidated cache buckets for new incident")
	}

	if err := s.webhooks.Publish(ctx, webhook.IncidentEvent{
		Incident:  incident,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		log.WithError(err).Warn("Failed to publish incident webhook event")
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// NearbyIncidents возвращает инциденты в радиусе от точки. Результат
// обслуживается через гео-кэш: промах считает запрос в бд и наполняет бакет.
func (s *incidentService) NearbyIncidents(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "NearbyIncidents",
		"lat":     lat,
		"lng":     lng,
		"radius":  radiusMeters,
	})

	key := s.cache.Key(lat, lng, radiusMeters)
	data, err := s.cache.GetOrCompute(ctx, key, s.cacheTTL, func(ctx context.Context) ([]byte, error) {
		incidents, err := s.repo.FindNearby(ctx, lat, lng, radiusMeters)
		if err != nil {
			return nil, fmt.Errorf("service: failed to find nearby incidents: %w", err)
		}
		log.WithField("count", len(incidents)).Info("Nearby incidents fetched from repository")
		return json.Marshal(incidents)
	})
	if err != nil {
		log.WithError(err).Error("Failed to get nearby incidents")
		return nil, err
	}

	incidents := make([]*models.Incident, 0)
	if err := json.Unmarshal(data, &incidents); err != nil {
		return nil, fmt.Errorf("service: failed to unmarshal cached incidents: %w", err)
	}
	return incidents, nil
}

// RefreshNearbyIncidents принудительно сбрасывает бакет и возвращает свежий список
func (s *incidentService) RefreshNearbyIncidents(ctx context.Context, lat, lng, radiusMeters float64) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "RefreshNearbyIncidents",
	})

	key := s.cache.Key(lat, lng, radiusMeters)
	if err := s.cache.Invalidate(ctx, key); err != nil {
		// Кэш не является зависимостью корректности, продолжаем
		log.WithError(err).Warn("Failed to invalidate cache bucket on refresh")
	}

	return s.NearbyIncidents(ctx, lat, lng, radiusMeters)
}

// ListIncidents возвращает все инциденты, новые первыми
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	incidents, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}
