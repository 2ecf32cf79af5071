package service

import "errors"

// Ошибки уровня бизнес-логики, по которым хендлеры выбирают HTTP-статус
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRequestNotFound    = errors.New("friend request not found")
	ErrAlreadyFriends     = errors.New("users are already friends")
	ErrDuplicateRequest   = errors.New("friend request already exists")
	ErrSelfRequest        = errors.New("cannot send friend request to yourself")
	ErrLocationDisabled   = errors.New("location sharing is disabled")
	ErrChatNotFound       = errors.New("chat not found")
)
