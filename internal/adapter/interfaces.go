// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer client for the IoT Hub
// identity registry.
//
// The primary abstraction is [RegistryAdapter], which decouples the device
// actions from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRegistryAdapter]) that authenticates every request
// with a shared access signature derived from the hub connection string.
// [DeviceAdapter] is the device side of the hub: telemetry and
// cloud-to-device messages over the same transport, signed with a device key.
//
// Error values defined in errors.go are mapped from HTTP status codes and the
// registry error code by mapHTTPError so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrDeviceAlreadyExists] for 409,
// [ErrDeviceNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-registry-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/registry_adapter_mock.go -package=mock

// RegistryAdapter defines transport-agnostic access to the device identity
// registry. Every call blocks until the registry answers or ctx is done.
type RegistryAdapter interface {
	// AddDevice creates a device identity with the given ID and lets the
	// registry generate its symmetric keys. Returns the created record, or
	// [ErrDeviceAlreadyExists] (wrapped) if the ID is taken. A nil device
	// with a nil error means the registry acknowledged the call without
	// returning a record.
	AddDevice(ctx context.Context, deviceID string) (*models.Device, error)

	// GetDevice fetches the device identity with the given ID. Returns
	// [ErrDeviceNotFound] (wrapped) if no such device is registered.
	GetDevice(ctx context.Context, deviceID string) (*models.Device, error)

	// RemoveDevice deletes the device identity regardless of its ETag.
	// Returns [ErrDeviceNotFound] (wrapped) if no such device is registered.
	RemoveDevice(ctx context.Context, deviceID string) error

	// ListDevices returns up to maxCount device identities in the order the
	// registry produces them. Each call is a fresh snapshot. maxCount must be
	// within 1..[MaxListCount].
	ListDevices(ctx context.Context, maxCount int) ([]models.Device, error)

	// Close releases the resources held by the client. Any call made after
	// Close returns [ErrClientClosed]. Close is idempotent.
	Close() error
}

// DeviceAdapter is the messaging endpoint of a single device identity.
type DeviceAdapter interface {
	// SendEvent posts payload as one JSON telemetry message. properties are
	// sent as application properties.
	SendEvent(ctx context.Context, payload []byte, properties map[string]string) error

	// ReceiveMessage locks and returns the next pending cloud-to-device
	// message. A nil message with a nil error means the queue is empty.
	ReceiveMessage(ctx context.Context) (*models.CloudMessage, error)

	// CompleteMessage removes a locked message from the device queue.
	CompleteMessage(ctx context.Context, lockToken string) error

	// RejectMessage removes a locked message and dead-letters it.
	RejectMessage(ctx context.Context, lockToken string) error

	// AbandonMessage releases the lock so the message is delivered again.
	AbandonMessage(ctx context.Context, lockToken string) error

	// Close behaves like [RegistryAdapter.Close].
	Close() error
}
