package models

import (
	"time"
)

// User представляет пользователя системы. Последняя известная позиция
// хранится прямо в строке пользователя, история не ведется.
type User struct {
	ID                    int64      `json:"id"`
	Email                 string     `json:"email"`
	PasswordHash          string     `json:"-"`
	IsLocationEnabled     bool       `json:"is_location_enabled"`
	Latitude              *float64   `json:"latitude,omitempty"`
	Longitude             *float64   `json:"longitude,omitempty"`
	LastLocationTimestamp *time.Time `json:"last_location_timestamp,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// FriendLocation - срез данных друга для карты. Координаты NULL,
// если друг отключил шаринг локации или еще не отправлял позицию.
type FriendLocation struct {
	ID                    int64      `json:"id"`
	Email                 string     `json:"email"`
	Longitude             *float64   `json:"longitude"`
	Latitude              *float64   `json:"latitude"`
	LastLocationTimestamp *time.Time `json:"last_location_timestamp"`
	IsLocationEnabled     bool       `json:"is_location_enabled"`
}
