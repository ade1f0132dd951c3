package adapter

import "errors"

var (
	ErrInvalidConnectionString = errors.New("invalid connection string")
	ErrClientClosed            = errors.New("registry client is closed")
	ErrInvalidMaxCount         = errors.New("invalid max count")

	ErrDeviceNotFound      = errors.New("device not found")
	ErrDeviceAlreadyExists = errors.New("device already exists")

	ErrNotDeviceScoped  = errors.New("connection string is not device-scoped")
	ErrInvalidLockToken = errors.New("invalid lock token")
	ErrMessageLockLost  = errors.New("message lock lost")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPreconditionFailed  = errors.New("precondition failed")
	ErrThrottled           = errors.New("throttled")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
