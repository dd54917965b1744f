package model

import "errors"

var (
	// Аутентификация
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")

	// Колесо
	ErrAlreadySpun     = errors.New("already spun")
	ErrInvalidPrize    = errors.New("invalid prize")
	ErrProfileNotFound = errors.New("profile not found")

	// CMS
	ErrPostNotFound = errors.New("post not found")
	ErrSlugTaken    = errors.New("slug already taken")
	ErrInvalidPost  = errors.New("invalid post")
)
