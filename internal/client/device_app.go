package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-registry-manager/internal/adapter"
	"github.com/MKhiriev/go-registry-manager/internal/config"
	"github.com/MKhiriev/go-registry-manager/internal/logger"
	"github.com/MKhiriev/go-registry-manager/models"
)

// Fixed sample values reported by the device client.
const (
	sampleTemperature = 21
	sampleHumidity    = 30
)

// DeviceApp sends one telemetry reading as a device, then receives and
// completes at most one cloud-to-device message.
type DeviceApp struct {
	connect func() (adapter.DeviceAdapter, error)
	reading func() models.Telemetry

	out    io.Writer
	logger *logger.Logger
}

// NewDeviceApp returns the device client. The device connection is built
// from device when Run starts; transport supplies the API version, timeout
// and retry settings.
func NewDeviceApp(transport config.Registry, device config.Device, out io.Writer, log *logger.Logger, opts ...adapter.Option) *DeviceApp {
	return &DeviceApp{
		connect: func() (adapter.DeviceAdapter, error) {
			return adapter.NewHTTPDeviceAdapter(transport, device, log, opts...)
		},
		reading: func() models.Telemetry {
			return models.Telemetry{
				SensorID:    device.SensorID,
				Temperature: sampleTemperature,
				Humidity:    sampleHumidity,
				Date:        time.Now().UTC(),
			}
		},
		out:    out,
		logger: log,
	}
}

// Run performs the exchange and reports each step on out. Unlike [App.Run]
// every failure is returned, since there is no console loop to fall back to.
func (a *DeviceApp) Run(ctx context.Context) error {
	device, err := a.connect()
	if err != nil {
		return fmt.Errorf("device access: %w", err)
	}
	defer func() {
		if err := device.Close(); err != nil {
			a.logger.Err(err).Msg("closing device client failed")
		}
	}()

	payload, err := json.Marshal(a.reading())
	if err != nil {
		return fmt.Errorf("encode telemetry: %w", err)
	}
	if err = device.SendEvent(ctx, payload, nil); err != nil {
		return err
	}
	a.logger.Info().RawJSON("payload", payload).Msg("telemetry sent")
	_, _ = fmt.Fprintf(a.out, "Telemetry sent: %s\n", payload)

	msg, err := device.ReceiveMessage(ctx)
	if err != nil {
		return err
	}
	if msg == nil {
		_, _ = fmt.Fprintln(a.out, "No cloud-to-device message pending")
		return nil
	}
	a.logger.Info().
		Str("message_id", msg.MessageID).
		Int("delivery_count", msg.DeliveryCount).
		Msg("cloud-to-device message received")
	_, _ = fmt.Fprintf(a.out, "Message received: %s\n", msg.Body)

	if err = device.CompleteMessage(ctx, msg.LockToken); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(a.out, "Message completed")

	return nil
}
