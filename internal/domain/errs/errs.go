package errs

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidCreds      = errors.New("invalid credentials")

	ErrAccessDenied = errors.New("Access denied. This feature requires chat user or admin privileges.")

	ErrChatNotFound = errors.New("chat not found")
	ErrTagNotFound  = errors.New("tag not found")

	ErrImportNotFailed  = errors.New("only failed import jobs can be retried")
	ErrImportBadPayload = errors.New("export payload is not a valid conversation")
)
