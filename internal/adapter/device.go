package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-registry-manager/internal/config"
	"github.com/MKhiriev/go-registry-manager/internal/logger"
	"github.com/MKhiriev/go-registry-manager/models"
	"github.com/go-resty/resty/v2"
)

const (
	eventsPath      = "/devices/{id}/messages/events"
	deviceBoundPath = "/devices/{id}/messages/devicebound"
	messageLockPath = "/devices/{id}/messages/devicebound/{lockToken}"
	abandonPath     = "/devices/{id}/messages/devicebound/{lockToken}/abandon"

	headerMessageID      = "iothub-messageid"
	headerCorrelationID  = "iothub-correlationid"
	headerTo             = "iothub-to"
	headerSequenceNumber = "iothub-sequencenumber"
	headerEnqueuedTime   = "iothub-enqueuedtime"
	headerDeliveryCount  = "iothub-deliverycount"
	headerPropertyPrefix = "iothub-app-"
)

type httpDeviceAdapter struct {
	*restTransport
	deviceID string
}

// NewHTTPDeviceAdapter constructs an HTTP/REST implementation of
// [DeviceAdapter] from device.ConnectionString. API version, timeout and
// retries come from transport; tokens live for device.TokenTTL.
//
// Returns an error wrapping [ErrInvalidConnectionString] if the string is
// missing or malformed, and [ErrNotDeviceScoped] if it carries no DeviceId.
func NewHTTPDeviceAdapter(transport config.Registry, device config.Device, log *logger.Logger, opts ...Option) (DeviceAdapter, error) {
	cs, err := ParseConnectionString(device.ConnectionString)
	if err != nil {
		return nil, err
	}
	if !cs.IsDeviceScoped() {
		return nil, fmt.Errorf("%w: %s is missing", ErrNotDeviceScoped, csDeviceID)
	}

	t, err := newRESTTransport(cs, transport, device.TokenTTL, log, opts)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("host", cs.HostName).
		Str("device_id", cs.DeviceID).
		Str("api_version", transport.APIVersion).
		Msg("device client created")

	return &httpDeviceAdapter{restTransport: t, deviceID: cs.DeviceID}, nil
}

// SendEvent implements [DeviceAdapter]. The hub answers 204 No Content.
func (d *httpDeviceAdapter) SendEvent(ctx context.Context, payload []byte, properties map[string]string) error {
	_, err := d.send(ctx, http.MethodPost, eventsPath, func(r *resty.Request) {
		r.SetPathParam("id", d.deviceID).
			SetHeader(headerContentType, contentTypeJSON).
			SetBody(payload)
		for name, value := range properties {
			r.SetHeader(headerPropertyPrefix+name, value)
		}
	})
	if err != nil {
		return fmt.Errorf("send event: %w", err)
	}

	return nil
}

// ReceiveMessage implements [DeviceAdapter]. The lock token is the ETag of
// the response with its quotes removed.
func (d *httpDeviceAdapter) ReceiveMessage(ctx context.Context) (*models.CloudMessage, error) {
	resp, err := d.send(ctx, http.MethodGet, deviceBoundPath, func(r *resty.Request) {
		r.SetPathParam("id", d.deviceID)
	})
	if err != nil {
		return nil, fmt.Errorf("receive message: %w", err)
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}

	msg := messageFromResponse(resp)
	if msg.LockToken == "" {
		return nil, fmt.Errorf("receive message: %w: response has no ETag", ErrInvalidLockToken)
	}

	d.logger.Debug().
		Str("message_id", msg.MessageID).
		Int("delivery_count", msg.DeliveryCount).
		Msg("cloud-to-device message locked")

	return msg, nil
}

// CompleteMessage implements [DeviceAdapter].
func (d *httpDeviceAdapter) CompleteMessage(ctx context.Context, lockToken string) error {
	if err := d.settle(ctx, http.MethodDelete, messageLockPath, lockToken, nil); err != nil {
		return fmt.Errorf("complete message: %w", err)
	}
	return nil
}

// RejectMessage implements [DeviceAdapter].
func (d *httpDeviceAdapter) RejectMessage(ctx context.Context, lockToken string) error {
	err := d.settle(ctx, http.MethodDelete, messageLockPath, lockToken, func(r *resty.Request) {
		r.SetQueryParam("reject", "")
	})
	if err != nil {
		return fmt.Errorf("reject message: %w", err)
	}
	return nil
}

// AbandonMessage implements [DeviceAdapter].
func (d *httpDeviceAdapter) AbandonMessage(ctx context.Context, lockToken string) error {
	if err := d.settle(ctx, http.MethodPost, abandonPath, lockToken, nil); err != nil {
		return fmt.Errorf("abandon message: %w", err)
	}
	return nil
}

// Close implements [DeviceAdapter].
func (d *httpDeviceAdapter) Close() error {
	if d.close() {
		d.logger.Debug().Msg("device client closed")
	}
	return nil
}

func (d *httpDeviceAdapter) settle(ctx context.Context, method, path, lockToken string, prepare func(*resty.Request)) error {
	lockToken = strings.Trim(strings.TrimSpace(lockToken), `"`)
	if lockToken == "" {
		return ErrInvalidLockToken
	}

	_, err := d.send(ctx, method, path, func(r *resty.Request) {
		r.SetPathParam("id", d.deviceID).
			SetPathParam("lockToken", lockToken)
		if prepare != nil {
			prepare(r)
		}
	})
	return err
}

// messageFromResponse reads the system and application properties that the
// hub sends as iothub-* headers. Malformed numeric headers are left zero.
func messageFromResponse(resp *resty.Response) *models.CloudMessage {
	h := resp.Header()

	msg := &models.CloudMessage{
		LockToken:     strings.Trim(h.Get(headerETag), `"`),
		MessageID:     h.Get(headerMessageID),
		CorrelationID: h.Get(headerCorrelationID),
		To:            h.Get(headerTo),
		Properties:    make(map[string]string),
		Body:          resp.Body(),
	}

	msg.SequenceNumber, _ = strconv.ParseInt(h.Get(headerSequenceNumber), 10, 64)
	msg.DeliveryCount, _ = strconv.Atoi(h.Get(headerDeliveryCount))
	if enqueued, err := http.ParseTime(h.Get(headerEnqueuedTime)); err == nil {
		msg.EnqueuedTime = enqueued
	} else if enqueued, err := time.Parse(time.RFC3339, h.Get(headerEnqueuedTime)); err == nil {
		msg.EnqueuedTime = enqueued
	}

	for name, values := range h {
		if len(values) == 0 {
			continue
		}
		if prop, ok := strings.CutPrefix(strings.ToLower(name), headerPropertyPrefix); ok && prop != "" {
			msg.Properties[prop] = values[0]
		}
	}

	return msg
}
