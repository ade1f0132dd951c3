// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeviceStatus is the registry-side enablement state of a device identity.
type DeviceStatus string

const (
	// DeviceStatusEnabled allows the device to connect to the hub.
	DeviceStatusEnabled DeviceStatus = "enabled"
	// DeviceStatusDisabled rejects connections from the device.
	DeviceStatusDisabled DeviceStatus = "disabled"
)

// AuthenticationType identifies how a device proves its identity to the hub.
type AuthenticationType string

const (
	AuthenticationTypeSAS                  AuthenticationType = "sas"
	AuthenticationTypeSelfSigned           AuthenticationType = "selfSigned"
	AuthenticationTypeCertificateAuthority AuthenticationType = "certificateAuthority"
	AuthenticationTypeNone                 AuthenticationType = "none"
)

// Device is a device identity as stored in the IoT Hub identity registry.
//
// Field names and JSON tags follow the registry's REST schema so that the
// adapter can decode responses directly. The application never persists a
// Device locally; it only requests, displays, or deletes it.
type Device struct {
	// DeviceID is the unique, case-sensitive identifier of the device.
	DeviceID string `json:"deviceId"`
	// GenerationID distinguishes devices that reuse a previously deleted ID.
	GenerationID string `json:"generationId,omitempty"`
	// ETag is the registry's concurrency token for the identity record.
	ETag string `json:"etag,omitempty"`
	// Status tells whether the device may connect.
	Status DeviceStatus `json:"status,omitempty"`
	// StatusReason is an optional free-form explanation for Status.
	StatusReason string `json:"statusReason,omitempty"`
	// ConnectionState is "Connected" or "Disconnected" as last seen by the hub.
	ConnectionState string `json:"connectionState,omitempty"`
	// CloudToDeviceMessageCount is the number of queued cloud-to-device messages.
	CloudToDeviceMessageCount int `json:"cloudToDeviceMessageCount,omitempty"`
	// Authentication holds the device credentials.
	Authentication *Authentication `json:"authentication,omitempty"`
}

// Authentication describes the credential material attached to a device.
type Authentication struct {
	Type         AuthenticationType `json:"type,omitempty"`
	SymmetricKey *SymmetricKey      `json:"symmetricKey,omitempty"`
}

// SymmetricKey is the shared access key pair generated for SAS devices.
type SymmetricKey struct {
	PrimaryKey   string `json:"primaryKey,omitempty"`
	SecondaryKey string `json:"secondaryKey,omitempty"`
}

// PrimaryKey returns the device's primary symmetric key, or an empty string
// if the device does not authenticate with a symmetric key.
func (d Device) PrimaryKey() string {
	if d.Authentication == nil || d.Authentication.SymmetricKey == nil {
		return ""
	}
	return d.Authentication.SymmetricKey.PrimaryKey
}
