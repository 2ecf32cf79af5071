package v1

import (
	"time"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse DTO с публичными данными пользователя
// @Description DTO с публичными данными пользователя
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// AuthResponse DTO для ответа с токеном
// @Description DTO для ответа с токеном
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Type        string   `json:"type" validate:"required,min=2,max=50"`
	Description string   `json:"description,omitempty"`
	Severity    int      `json:"severity" validate:"required,min=1,max=5"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID             int64     `json:"id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	Type           string    `json:"type"`
	Description    string    `json:"description,omitempty"`
	Severity       int       `json:"severity"`
	CreatedAt      time.Time `json:"created_at"`
	DistanceMeters *float64  `json:"distance,omitempty"`
}

// SendFriendRequestRequest DTO для отправки заявки в друзья
// @Description DTO для отправки заявки в друзья
type SendFriendRequestRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// RespondFriendRequestRequest DTO для ответа на заявку в друзья
// @Description DTO для ответа на заявку в друзья
type RespondFriendRequestRequest struct {
	RequestID int64  `json:"request_id" validate:"required"`
	Action    string `json:"action" validate:"required,oneof=accept reject"`
}

// LocationToggleRequest DTO для переключения шаринга локации
// @Description DTO для переключения шаринга локации
type LocationToggleRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// LocationUpdateRequest DTO для обновления позиции через HTTP
// @Description DTO для обновления позиции через HTTP
type LocationUpdateRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// CreateChatRequest DTO для создания гео-чата
// @Description DTO для создания гео-чата
type CreateChatRequest struct {
	Title     string   `json:"title" validate:"required,min=1,max=255"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// CreateCommentRequest DTO для добавления комментария в чат
// @Description DTO для добавления комментария в чат
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}
