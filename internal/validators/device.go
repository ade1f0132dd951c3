package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-registry-manager/models"
)

// FieldDeviceID targets the device identifier.
const FieldDeviceID = "device_id"

// MaxDeviceIDLength is the longest device id the registry accepts.
const MaxDeviceIDLength = 128

// deviceIDSymbols are the non-alphanumeric ASCII characters the registry
// allows in a device id.
const deviceIDSymbols = "-.+%_#*?!(),:=@$'"

// DeviceValidator implements Validator for device identifiers. It accepts a
// bare id string, models.Device, or *models.Device.
type DeviceValidator struct {
}

// NewDeviceValidator constructs a DeviceValidator and returns it as the
// Validator interface.
func NewDeviceValidator() Validator {
	return &DeviceValidator{}
}

// Validate checks obj against the registry's device id rules. The only
// supported field is FieldDeviceID, which is also the default.
func (v *DeviceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	for _, field := range fields {
		if field != FieldDeviceID {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	switch value := obj.(type) {
	case string:
		return ValidateDeviceID(value)
	case models.Device:
		return ValidateDeviceID(value.DeviceID)
	case *models.Device:
		if value == nil {
			return ErrEmptyDeviceID
		}
		return ValidateDeviceID(value.DeviceID)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// ValidateDeviceID reports whether id is acceptable as a device identifier:
// non-empty, free of whitespace, at most MaxDeviceIDLength characters, and
// made only of ASCII letters, digits, and deviceIDSymbols.
func ValidateDeviceID(id string) error {
	if id == "" {
		return ErrEmptyDeviceID
	}
	if strings.IndexFunc(id, unicode.IsSpace) >= 0 {
		return ErrDeviceIDContainsSpace
	}
	if len(id) > MaxDeviceIDLength {
		return fmt.Errorf("%w: %d characters, at most %d allowed", ErrDeviceIDTooLong, len(id), MaxDeviceIDLength)
	}
	for _, r := range id {
		if !isDeviceIDRune(r) {
			return fmt.Errorf("%w: %q", ErrDeviceIDInvalidCharacter, r)
		}
	}

	return nil
}

func isDeviceIDRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	default:
		return strings.ContainsRune(deviceIDSymbols, r)
	}
}
