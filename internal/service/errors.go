package service

import "errors"

var (
	ErrInvalidInput            = errors.New("invalid input")
	ErrEmailAlreadyRegistered  = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("incorrect username or password")
	ErrInvalidToken            = errors.New("could not validate credentials")
	ErrUserNotFound            = errors.New("user not found")
	ErrSessionNotFound         = errors.New("session not found")
	ErrInvalidSessionID        = errors.New("invalid session id")
	ErrInvalidUserID           = errors.New("invalid user id")
	ErrSessionAlreadyCompleted = errors.New("session already completed")
	ErrPersistence             = errors.New("persistence failure")
)
