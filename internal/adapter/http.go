package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-registry-manager/internal/config"
	"github.com/MKhiriev/go-registry-manager/internal/logger"
	"github.com/MKhiriev/go-registry-manager/models"
	"github.com/go-resty/resty/v2"
)

// MaxListCount is the largest page the registry returns for a device query.
const MaxListCount = 1000

const (
	devicePath  = "/devices/{id}"
	devicesPath = "/devices"
)

type httpRegistryAdapter struct {
	*restTransport
}

// NewHTTPRegistryAdapter constructs an HTTP/REST implementation of
// [RegistryAdapter] from cfg.ConnectionString. It validates the connection
// string, resolves the base URL, and configures the request timeout and the
// retry policy for throttled or unavailable responses.
//
// Returns an error wrapping [ErrInvalidConnectionString] if the connection
// string is missing, malformed, or device-scoped. No network call is made.
func NewHTTPRegistryAdapter(cfg config.Registry, log *logger.Logger, opts ...Option) (RegistryAdapter, error) {
	cs, err := ParseConnectionString(cfg.ConnectionString)
	if err != nil {
		return nil, err
	}
	if cs.IsDeviceScoped() {
		return nil, fmt.Errorf("%w: device connection strings cannot access the registry", ErrInvalidConnectionString)
	}

	transport, err := newRESTTransport(cs, cfg, cfg.TokenTTL, log, opts)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("host", cs.HostName).
		Str("policy", cs.SharedAccessKeyName).
		Str("api_version", cfg.APIVersion).
		Msg("registry client created")

	return &httpRegistryAdapter{restTransport: transport}, nil
}

// AddDevice implements [RegistryAdapter]. It PUTs {"deviceId": id} to
// /devices/{id}; the registry generates SAS keys for the new identity.
func (h *httpRegistryAdapter) AddDevice(ctx context.Context, deviceID string) (*models.Device, error) {
	var device models.Device

	_, err := h.send(ctx, http.MethodPut, devicePath, func(r *resty.Request) {
		r.SetPathParam("id", deviceID).
			SetHeader(headerContentType, contentTypeJSON).
			SetBody(models.Device{DeviceID: deviceID}).
			SetResult(&device)
	})
	if err != nil {
		return nil, fmt.Errorf("add device: %w", err)
	}

	return deviceOrNil(device), nil
}

// GetDevice implements [RegistryAdapter].
func (h *httpRegistryAdapter) GetDevice(ctx context.Context, deviceID string) (*models.Device, error) {
	var device models.Device

	_, err := h.send(ctx, http.MethodGet, devicePath, func(r *resty.Request) {
		r.SetPathParam("id", deviceID).
			SetResult(&device)
	})
	if err != nil {
		return nil, fmt.Errorf("get device: %w", err)
	}

	return deviceOrNil(device), nil
}

// RemoveDevice implements [RegistryAdapter]. The delete is unconditional
// (If-Match: "*").
func (h *httpRegistryAdapter) RemoveDevice(ctx context.Context, deviceID string) error {
	_, err := h.send(ctx, http.MethodDelete, devicePath, func(r *resty.Request) {
		r.SetPathParam("id", deviceID).
			SetHeader(headerIfMatch, `"*"`)
	})
	if err != nil {
		return fmt.Errorf("remove device: %w", err)
	}

	return nil
}

// ListDevices implements [RegistryAdapter]. It GETs /devices?top=maxCount.
func (h *httpRegistryAdapter) ListDevices(ctx context.Context, maxCount int) ([]models.Device, error) {
	if maxCount < 1 || maxCount > MaxListCount {
		return nil, fmt.Errorf("%w: %d is outside 1..%d", ErrInvalidMaxCount, maxCount, MaxListCount)
	}

	var devices []models.Device

	_, err := h.send(ctx, http.MethodGet, devicesPath, func(r *resty.Request) {
		r.SetQueryParam("top", strconv.Itoa(maxCount)).
			SetResult(&devices)
	})
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}

	if devices == nil {
		devices = []models.Device{}
	}
	if len(devices) > maxCount {
		devices = devices[:maxCount]
	}

	return devices, nil
}

// Close implements [RegistryAdapter].
func (h *httpRegistryAdapter) Close() error {
	if h.close() {
		h.logger.Debug().Msg("registry client closed")
	}
	return nil
}

// deviceOrNil reports an empty response body as no record.
func deviceOrNil(device models.Device) *models.Device {
	if device.DeviceID == "" {
		return nil
	}
	return &device
}
