// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Empty connection strings pass; each binary reports a missing one when it
// opens its connection.
func (cfg *StructuredConfig) validate() error {
	r := cfg.Registry
	if r.APIVersion == "" {
		return fmt.Errorf("%w: api version is empty", ErrInvalidRegistryConfigs)
	}
	if r.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidRegistryConfigs)
	}
	if r.TokenTTL <= 0 {
		return fmt.Errorf("%w: token ttl must be positive", ErrInvalidRegistryConfigs)
	}
	if r.RetryCount < 0 || r.RetryCount > MaxRetryCount {
		return fmt.Errorf("%w: retry count must be within 0..%d", ErrInvalidRegistryConfigs, MaxRetryCount)
	}
	if r.RetryCount > 0 && r.RetryWait <= 0 {
		return fmt.Errorf("%w: retry wait must be positive", ErrInvalidRegistryConfigs)
	}

	if cfg.Device.TokenTTL <= 0 {
		return fmt.Errorf("%w: token ttl must be positive", ErrInvalidDeviceConfigs)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}
