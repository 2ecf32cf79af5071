package ws

import (
	"encoding/json"
	"fmt"
	"time"
)

// Имена событий socket-протокола. Клиент и сервер обмениваются
// конвертами {"event": <имя>, "data": <объект>}.
const (
	// клиент -> сервер
	EventGetFriendLocations = "get-friend-locations"
	EventUpdateLocation     = "update-location"

	// сервер -> клиент
	EventFriendLocations      = "friend-locations"
	EventFriendLocationUpdate = "friend-location-update"
	EventNewIncident          = "new-incident"
	EventError                = "error"
)

// Envelope - конверт входящего сообщения. Data декодируется по имени
// события до передачи в бизнес-логику, произвольные payload не допускаются.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// UpdateLocationPayload - координаты от клиента. Указатели, чтобы отличать
// отсутствующее поле от нулевой координаты.
type UpdateLocationPayload struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// FriendLocationUpdate - уведомление друзьям о новой позиции пользователя
type FriendLocationUpdate struct {
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// DecodeUpdateLocation разбирает и проверяет payload события update-location
func DecodeUpdateLocation(data json.RawMessage) (*UpdateLocationPayload, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("missing payload")
	}

	var payload UpdateLocationPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode update-location payload: %w", err)
	}

	if payload.Latitude == nil || payload.Longitude == nil {
		return nil, fmt.Errorf("latitude and longitude are required")
	}
	if *payload.Latitude < -90 || *payload.Latitude > 90 {
		return nil, fmt.Errorf("latitude out of range: %f", *payload.Latitude)
	}
	if *payload.Longitude < -180 || *payload.Longitude > 180 {
		return nil, fmt.Errorf("longitude out of range: %f", *payload.Longitude)
	}
	return &payload, nil
}

// decodeEnvelope разбирает входящий конверт и требует имя события
func decodeEnvelope(raw []byte, env *Envelope) error {
	if err := json.Unmarshal(raw, env); err != nil {
		return fmt.Errorf("failed to decode envelope: %w", err)
	}
	if env.Event == "" {
		return fmt.Errorf("missing event name")
	}
	return nil
}

// NewEnvelope сериализует исходящее событие в конверт протокола
func NewEnvelope(event string, payload any) ([]byte, error) {
	var data json.RawMessage
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", event, err)
		}
		data = raw
	}
	msg, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s envelope: %w", event, err)
	}
	return msg, nil
}
