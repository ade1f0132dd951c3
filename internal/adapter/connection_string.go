package adapter

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	csHostName            = "HostName"
	csSharedAccessKeyName = "SharedAccessKeyName"
	csSharedAccessKey     = "SharedAccessKey"
	csDeviceID            = "DeviceId"
)

// ConnectionString is a parsed IoT Hub connection string. Policy strings
// have the form "HostName=<host>;SharedAccessKeyName=<policy>;SharedAccessKey=<key>"
// and authorize registry calls. Device strings carry DeviceId instead of
// SharedAccessKeyName and authorize that device's messaging endpoints only.
type ConnectionString struct {
	HostName            string
	SharedAccessKeyName string
	SharedAccessKey     string
	DeviceID            string
}

// ParseConnectionString parses and validates a policy or device connection
// string.
//
// Segments are separated by ';' and split on the first '=' only, because
// base64 keys end with '='. Key names are case-sensitive and unknown keys are
// ignored. SharedAccessKeyName is required unless DeviceId is present.
//
// Returned errors wrap [ErrInvalidConnectionString] and never contain the key.
func ParseConnectionString(s string) (ConnectionString, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ConnectionString{}, fmt.Errorf("%w: connection string is empty", ErrInvalidConnectionString)
	}

	values := make(map[string]string)
	for _, segment := range strings.Split(s, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		name, value, ok := strings.Cut(segment, "=")
		if !ok {
			return ConnectionString{}, fmt.Errorf("%w: malformed segment, expected key=value", ErrInvalidConnectionString)
		}
		values[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	cs := ConnectionString{
		HostName:            values[csHostName],
		SharedAccessKeyName: values[csSharedAccessKeyName],
		SharedAccessKey:     values[csSharedAccessKey],
		DeviceID:            values[csDeviceID],
	}

	type field struct{ name, value string }

	identity := field{csSharedAccessKeyName, cs.SharedAccessKeyName}
	if _, ok := values[csDeviceID]; ok {
		identity = field{csDeviceID, cs.DeviceID}
	}

	for _, f := range []field{{csHostName, cs.HostName}, identity, {csSharedAccessKey, cs.SharedAccessKey}} {
		if f.value == "" {
			return ConnectionString{}, fmt.Errorf("%w: %s is missing", ErrInvalidConnectionString, f.name)
		}
	}

	if _, err := base64.StdEncoding.DecodeString(cs.SharedAccessKey); err != nil {
		return ConnectionString{}, fmt.Errorf("%w: %s is not valid base64", ErrInvalidConnectionString, csSharedAccessKey)
	}

	return cs, nil
}

// IsDeviceScoped reports whether the string identifies a single device.
func (cs ConnectionString) IsDeviceScoped() bool {
	return cs.DeviceID != ""
}

// decodedKey returns the raw bytes of SharedAccessKey. ParseConnectionString
// guarantees the key decodes.
func (cs ConnectionString) decodedKey() []byte {
	key, _ := base64.StdEncoding.DecodeString(cs.SharedAccessKey)
	return key
}
