// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-registry-manager/internal/adapter"
	"github.com/MKhiriev/go-registry-manager/internal/mock"
	"github.com/MKhiriev/go-registry-manager/internal/service"
	"github.com/MKhiriev/go-registry-manager/internal/validators"
	"github.com/MKhiriev/go-registry-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDeviceSvc(t *testing.T) (service.DeviceService, *mock.MockRegistryAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistryAdapter(ctrl)

	return service.NewDeviceService(registry, validators.NewDeviceValidator()), registry
}

func sasDevice(id, key string) *models.Device {
	return &models.Device{
		DeviceID: id,
		Status:   models.DeviceStatusEnabled,
		Authentication: &models.Authentication{
			Type:         models.AuthenticationTypeSAS,
			SymmetricKey: &models.SymmetricKey{PrimaryKey: key},
		},
	}
}

// ── Add ──────────────────────────────────────────────────────────────────────

func TestDeviceService_Add_Created(t *testing.T) {
	svc, registry := newTestDeviceSvc(t)
	ctx := context.Background()

	registry.EXPECT().AddDevice(ctx, "sensor-01").Return(sasDevice("sensor-01", "key-1"), nil)

	res := svc.Add(ctx, "sensor-01")

	assert.Equal(t, service.AddCreated, res.Outcome)
	require.NotNil(t, res.Device)
	assert.Equal(t, "key-1", res.Device.PrimaryKey())
	assert.NoError(t, res.Err)
}

func TestDeviceService_Add_AlreadyExisted(t *testing.T) {
	svc, registry := newTestDeviceSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		registry.EXPECT().AddDevice(ctx, "sensor-01").
			Return(nil, fmt.Errorf("add device: %w", adapter.ErrDeviceAlreadyExists)),
		registry.EXPECT().GetDevice(ctx, "sensor-01").Return(sasDevice("sensor-01", "key-1"), nil),
	)

	res := svc.Add(ctx, "sensor-01")

	assert.Equal(t, service.AddAlreadyExisted, res.Outcome)
	require.NotNil(t, res.Device)
	assert.Equal(t, "key-1", res.Device.PrimaryKey())
	assert.NoError(t, res.Err)
}

func TestDeviceService_Add_AlreadyExistedButVanished(t *testing.T) {
	svc, registry := newTestDeviceSvc(t)
	ctx := context.Background()

	registry.EXPECT().AddDevice(ctx, "sensor-01").Return(nil, adapter.ErrDeviceAlreadyExists)
	registry.EXPECT().GetDevice(ctx, "sensor-01").Return(nil, adapter.ErrDeviceNotFound)

	res := svc.Add(ctx, "sensor-01")

	assert.Equal(t, service.AddAlreadyExisted, res.Outcome)
	assert.Nil(t, res.Device)
	assert.NoError(t, res.Err)
}

func TestDeviceService_Add_LookupFails(t *testing.T) {
	svc, registry := newTestDeviceSvc(t)
	ctx := context.Background()

	registry.EXPECT().AddDevice(ctx, "sensor-01").Return(nil, adapter.ErrDeviceAlreadyExists)
	registry.EXPECT().GetDevice(ctx, "sensor-01").Return(nil, adapter.ErrThrottled)

	res := svc.Add(ctx, "sensor-01")

	assert.Equal(t, service.AddFailed, res.Outcome)
	assert.ErrorIs(t, res.Err, service.ErrRegistryBusy)
	assert.ErrorIs(t, res.Err, adapter.ErrThrottled)
}

func TestDeviceService_Add_Failed(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "unauthorized", err: adapter.ErrUnauthorized, wantErr: service.ErrAccessDenied},
		{name: "forbidden", err: adapter.ErrForbidden, wantErr: service.ErrAccessDenied},
		{name: "unavailable", err: adapter.ErrServiceUnavailable, wantErr: service.ErrRegistryUnavailable},
		{name: "bad request", err: adapter.ErrBadRequest, wantErr: service.ErrRequestRejected},
		{name: "closed", err: adapter.ErrClientClosed, wantErr: service.ErrSessionClosed},
		{name: "transport", err: errors.New("dial tcp: connection refused"), wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, registry := newTestDeviceSvc(t)
			ctx := context.Background()

			registry.EXPECT().AddDevice(ctx, "sensor-01").Return(nil, tt.err)

			res := svc.Add(ctx, "sensor-01")

			assert.Equal(t, service.AddFailed, res.Outcome)
			assert.Nil(t, res.Device)
			require.Error(t, res.Err)
			assert.ErrorIs(t, res.Err, tt.err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, res.Err, tt.wantErr)
			}
		})
	}
}

func TestDeviceService_Add_InvalidIDMakesNoRemoteCall(t *testing.T) {
	svc, _ := newTestDeviceSvc(t)

	for _, id := range []string{"", "my device", "bad/id"} {
		res := svc.Add(context.Background(), id)

		assert.Equal(t, service.AddFailed, res.Outcome, id)
		assert.ErrorIs(t, res.Err, service.ErrInvalidDeviceID, id)
	}
}

// ── Remove ───────────────────────────────────────────────────────────────────

func TestDeviceService_Remove(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantOutcome service.RemoveOutcome
		wantErr     error
	}{
		{name: "removed", wantOutcome: service.RemoveRemoved},
		{name: "not registered", err: fmt.Errorf("remove device: %w", adapter.ErrDeviceNotFound), wantOutcome: service.RemoveNotFound},
		{name: "throttled", err: adapter.ErrThrottled, wantOutcome: service.RemoveFailed, wantErr: service.ErrRegistryBusy},
		{name: "precondition", err: adapter.ErrPreconditionFailed, wantOutcome: service.RemoveFailed, wantErr: service.ErrRequestRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, registry := newTestDeviceSvc(t)
			ctx := context.Background()

			registry.EXPECT().RemoveDevice(ctx, "sensor-01").Return(tt.err)

			res := svc.Remove(ctx, "sensor-01")

			assert.Equal(t, tt.wantOutcome, res.Outcome)
			if tt.wantErr == nil {
				assert.NoError(t, res.Err)
				return
			}
			assert.ErrorIs(t, res.Err, tt.wantErr)
		})
	}
}

func TestDeviceService_Remove_InvalidIDMakesNoRemoteCall(t *testing.T) {
	svc, _ := newTestDeviceSvc(t)

	res := svc.Remove(context.Background(), "my device")

	assert.Equal(t, service.RemoveFailed, res.Outcome)
	assert.ErrorIs(t, res.Err, service.ErrInvalidDeviceID)
	assert.ErrorIs(t, res.Err, validators.ErrDeviceIDContainsSpace)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestDeviceService_List(t *testing.T) {
	svc, registry := newTestDeviceSvc(t)
	ctx := context.Background()

	devices := []models.Device{{DeviceID: "c"}, {DeviceID: "a"}, {DeviceID: "b"}}
	registry.EXPECT().ListDevices(ctx, 100).Return(devices, nil)

	got, err := svc.List(ctx, 100)

	require.NoError(t, err)
	assert.Equal(t, devices, got, "registry order is kept")
}

func TestDeviceService_List_Error(t *testing.T) {
	svc, registry := newTestDeviceSvc(t)
	ctx := context.Background()

	registry.EXPECT().ListDevices(ctx, 100).Return(nil, adapter.ErrInternalServerError)

	got, err := svc.List(ctx, 100)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, service.ErrRegistryUnavailable)
}

func TestOutcomeStrings(t *testing.T) {
	assert.Equal(t, "created", service.AddCreated.String())
	assert.Equal(t, "already_existed", service.AddAlreadyExisted.String())
	assert.Equal(t, "failed", service.AddFailed.String())
	assert.Equal(t, "removed", service.RemoveRemoved.String())
	assert.Equal(t, "not_found", service.RemoveNotFound.String())
	assert.Equal(t, "failed", service.RemoveFailed.String())
}
