package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Registry error codes that select a more specific sentinel than the HTTP
// status alone.
const (
	errorCodeDeviceNotFound      = "DeviceNotFound"
	errorCodeDeviceAlreadyExists = "DeviceAlreadyExists"
	errorCodeMessageLockLost     = "DeviceMessageLockLost"

	errorCodeHeader = "iothub-errorcode"
	errorCodePrefix = "ErrorCode:"
)

// registryErrorBody is the error envelope returned by the registry.
type registryErrorBody struct {
	Message          string `json:"Message"`
	ExceptionMessage string `json:"ExceptionMessage"`
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	code, msg := parseRegistryError(resp.Header().Get(errorCodeHeader), resp.Body())
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case http.StatusNotFound:
		if code == "" || code == errorCodeDeviceNotFound {
			return fmt.Errorf("%w: %s", ErrDeviceNotFound, msg)
		}
		return fmt.Errorf("%w: %s: %s", ErrNotFound, code, msg)
	case http.StatusConflict:
		if code == "" || code == errorCodeDeviceAlreadyExists {
			return fmt.Errorf("%w: %s", ErrDeviceAlreadyExists, msg)
		}
		return fmt.Errorf("%w: %s: %s", ErrConflict, code, msg)
	case http.StatusPreconditionFailed:
		if code == errorCodeMessageLockLost {
			return fmt.Errorf("%w: %s", ErrMessageLockLost, msg)
		}
		return fmt.Errorf("%w: %s", ErrPreconditionFailed, msg)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrThrottled, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, msg)
	default:
		return fmt.Errorf("http %d: %s", status, msg)
	}
}

// parseRegistryError extracts the registry error code and a human-readable
// message. The code comes from the iothub-errorcode header when present,
// otherwise from an "ErrorCode:<code>;<message>" prefix in the body Message.
func parseRegistryError(headerCode string, body []byte) (code, msg string) {
	code = strings.TrimSpace(headerCode)

	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return code, ""
	}

	var envelope registryErrorBody
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Message == "" {
		return code, raw
	}

	msg = envelope.Message
	if rest, ok := strings.CutPrefix(msg, errorCodePrefix); ok {
		bodyCode, text, _ := strings.Cut(rest, ";")
		if code == "" {
			code = strings.TrimSpace(bodyCode)
		}
		msg = strings.TrimSpace(text)
	}
	if msg == "" {
		msg = raw
	}

	return code, msg
}
