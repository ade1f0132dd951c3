package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-registry-manager/internal/adapter"
	"github.com/MKhiriev/go-registry-manager/internal/logger"
	"github.com/MKhiriev/go-registry-manager/internal/validators"
	"github.com/MKhiriev/go-registry-manager/models"
)

type deviceService struct {
	registry  adapter.RegistryAdapter
	validator validators.Validator
}

// NewDeviceService returns a DeviceService backed by registry. Device ids are
// checked with validator before any remote call.
func NewDeviceService(registry adapter.RegistryAdapter, validator validators.Validator) DeviceService {
	return &deviceService{registry: registry, validator: validator}
}

func (s *deviceService) Add(ctx context.Context, deviceID string) AddResult {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, deviceID, validators.FieldDeviceID); err != nil {
		return AddResult{Outcome: AddFailed, Err: fmt.Errorf("%w: %w", ErrInvalidDeviceID, err)}
	}

	device, err := s.registry.AddDevice(ctx, deviceID)
	if err == nil {
		log.Info().Str("device_id", deviceID).Msg("device created")
		return AddResult{Outcome: AddCreated, Device: device}
	}
	if !errors.Is(err, adapter.ErrDeviceAlreadyExists) {
		log.Err(err).Str("device_id", deviceID).Msg("device creation failed")
		return AddResult{Outcome: AddFailed, Err: mapAdapterError(err)}
	}

	log.Info().Str("device_id", deviceID).Msg("device already registered, fetching existing record")

	existing, err := s.registry.GetDevice(ctx, deviceID)
	if errors.Is(err, adapter.ErrDeviceNotFound) {
		log.Warn().Str("device_id", deviceID).Msg("existing device disappeared before lookup")
		return AddResult{Outcome: AddAlreadyExisted}
	}
	if err != nil {
		log.Err(err).Str("device_id", deviceID).Msg("existing device lookup failed")
		return AddResult{Outcome: AddFailed, Err: mapAdapterError(err)}
	}

	return AddResult{Outcome: AddAlreadyExisted, Device: existing}
}

func (s *deviceService) Remove(ctx context.Context, deviceID string) RemoveResult {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, deviceID, validators.FieldDeviceID); err != nil {
		return RemoveResult{Outcome: RemoveFailed, Err: fmt.Errorf("%w: %w", ErrInvalidDeviceID, err)}
	}

	err := s.registry.RemoveDevice(ctx, deviceID)
	switch {
	case err == nil:
		log.Info().Str("device_id", deviceID).Msg("device removed")
		return RemoveResult{Outcome: RemoveRemoved}
	case errors.Is(err, adapter.ErrDeviceNotFound):
		log.Info().Str("device_id", deviceID).Msg("device to remove is not registered")
		return RemoveResult{Outcome: RemoveNotFound}
	default:
		log.Err(err).Str("device_id", deviceID).Msg("device removal failed")
		return RemoveResult{Outcome: RemoveFailed, Err: mapAdapterError(err)}
	}
}

func (s *deviceService) List(ctx context.Context, maxCount int) ([]models.Device, error) {
	devices, err := s.registry.ListDevices(ctx, maxCount)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("max_count", maxCount).Msg("device listing failed")
		return nil, mapAdapterError(err)
	}

	logger.FromContext(ctx).Debug().Int("count", len(devices)).Msg("devices listed")
	return devices, nil
}
