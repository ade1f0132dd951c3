package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyDeviceID            = errors.New("device id is empty")
	ErrDeviceIDContainsSpace    = errors.New("device id contains whitespace")
	ErrDeviceIDTooLong          = errors.New("device id is too long")
	ErrDeviceIDInvalidCharacter = errors.New("device id contains an invalid character")
)
