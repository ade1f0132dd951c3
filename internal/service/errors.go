package service

import "errors"

var (
	ErrInvalidDeviceID = errors.New("invalid device id")

	ErrAccessDenied        = errors.New("registry access denied")
	ErrRegistryBusy        = errors.New("registry is throttling requests")
	ErrRegistryUnavailable = errors.New("registry is unavailable")
	ErrRequestRejected     = errors.New("registry rejected the request")
	ErrSessionClosed       = errors.New("registry session is closed")
)
