package storage

import "errors"

var (
	ErrNoConnection = errors.New("can't establish connection to db")

	ErrInternal = errors.New("internal error")

	ErrUserNotFound      = errors.New("user is not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrTokenNotFound     = errors.New("token is not found")
	ErrChatNotFound      = errors.New("chat is not found")
	ErrTagNotFound       = errors.New("tag is not found")
	ErrJobNotFound       = errors.New("import job is not found")
	ErrProgressNotFound  = errors.New("import progress is not found")

	ErrNoOutbox = errors.New("have no outbox to send")
)
