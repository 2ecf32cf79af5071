package models

import (
	"time"
)

// Статусы заявки в друзья
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// FriendRequest - заявка в друзья. Дружба симметрична и материализуется
// двумя направленными строками в таблице friends при принятии заявки.
type FriendRequest struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	ReceiverID int64     `json:"receiver_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReceivedFriendRequest - входящая заявка для списка в профиле
type ReceivedFriendRequest struct {
	ID          int64  `json:"id"`
	SenderEmail string `json:"sender_email"`
}

// SentFriendRequest - исходящая заявка для списка в профиле
type SentFriendRequest struct {
	ID            int64  `json:"id"`
	ReceiverEmail string `json:"receiver_email"`
}

// FriendRequests - входящие и исходящие заявки пользователя
type FriendRequests struct {
	Received []*ReceivedFriendRequest `json:"received"`
	Sent     []*SentFriendRequest     `json:"sent"`
}
