// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-registry-manager/internal/adapter"
)

// mapAdapterError classifies an unexpected adapter error under a service
// sentinel. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	case errors.Is(err, adapter.ErrThrottled):
		return fmt.Errorf("%w: %w", ErrRegistryBusy, err)
	case errors.Is(err, adapter.ErrInternalServerError), errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrPreconditionFailed),
		errors.Is(err, adapter.ErrInvalidMaxCount):
		return fmt.Errorf("%w: %w", ErrRequestRejected, err)
	case errors.Is(err, adapter.ErrClientClosed):
		return fmt.Errorf("%w: %w", ErrSessionClosed, err)
	default:
		return err
	}
}
