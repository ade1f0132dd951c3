// Package service implements the device actions offered by the console:
// add, remove, and list devices in the identity registry.
//
// Expected registry outcomes ("already registered", "not registered") are
// reported as named outcomes in [AddResult] and [RemoveResult], not as
// errors. Only unexpected failures carry an error, already mapped to one of
// the service sentinels in errors.go.
package service

import (
	"context"

	"github.com/MKhiriev/go-registry-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/device_service_mock.go -package=mock

// DeviceService defines the device actions available in a registry session.
type DeviceService interface {
	// Add registers deviceID. If the id is already registered the existing
	// record is fetched instead, so the caller can show its key either way.
	Add(ctx context.Context, deviceID string) AddResult

	// Remove deletes deviceID from the registry unconditionally.
	Remove(ctx context.Context, deviceID string) RemoveResult

	// List returns up to maxCount devices in registry order. Every call
	// queries the registry afresh.
	List(ctx context.Context, maxCount int) ([]models.Device, error)
}
