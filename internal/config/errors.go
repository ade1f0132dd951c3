package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidRegistryConfigs indicates invalid registry transport settings
	// (for example, a zero request timeout or an out-of-range retry count).
	ErrInvalidRegistryConfigs = errors.New("invalid registry configuration")
	// ErrInvalidDeviceConfigs indicates invalid device client settings.
	ErrInvalidDeviceConfigs = errors.New("invalid device configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
