package models

import (
	"time"
)

// Incident - неизменяемая запись об инциденте. После вставки не обновляется и не удаляется.
type Incident struct {
	ID          int64     `json:"id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Severity    int       `json:"severity"`
	CreatedAt   time.Time `json:"created_at"`

	// DistanceMeters заполняется только в гео-запросах (расстояние до точки поиска)
	DistanceMeters *float64 `json:"distance,omitempty"`
}
