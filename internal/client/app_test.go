package client

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-registry-manager/internal/adapter"
	"github.com/MKhiriev/go-registry-manager/internal/config"
	"github.com/MKhiriev/go-registry-manager/internal/logger"
	"github.com/MKhiriev/go-registry-manager/internal/mock"
	"github.com/MKhiriev/go-registry-manager/internal/registrytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const banner = "*****************************************************\n" +
	"===== Welcome to the Azure IoT Registry Manager =====\n" +
	"\n" +
	"++ Successfully connected to the IoT Hub registry ++\n"

var keyLine = regexp.MustCompile(`Generated device key: (\S+)`)

// closeTracker records whether the session closed its registry client.
type closeTracker struct {
	adapter.RegistryAdapter
	closed atomic.Bool
}

func (c *closeTracker) Close() error {
	c.closed.Store(true)
	return c.RegistryAdapter.Close()
}

func newHubApp(t *testing.T, hub *registrytest.Hub, input string) (*App, *bytes.Buffer, *closeTracker) {
	t.Helper()

	cfg := config.Registry{
		ConnectionString: hub.ConnectionString(),
		APIVersion:       config.DefaultAPIVersion,
		RequestTimeout:   5 * time.Second,
		TokenTTL:         time.Hour,
	}
	out := &bytes.Buffer{}
	app := NewApp(cfg, strings.NewReader(input), out, logger.Nop(), adapter.WithBaseURL(hub.URL()))

	tracker := &closeTracker{}
	connect := app.connect
	app.connect = func() (adapter.RegistryAdapter, error) {
		registry, err := connect()
		if err != nil {
			return nil, err
		}
		tracker.RegistryAdapter = registry
		return tracker, nil
	}

	return app, out, tracker
}

func TestApp_Run_EndToEnd(t *testing.T) {
	hub := registrytest.NewHub(t)
	app, out, tracker := newHubApp(t, hub, "1\nsensor-01\n3\n2\nsensor-01\n4\n")

	require.NoError(t, app.Run(context.Background()))

	console := out.String()
	assert.True(t, strings.HasPrefix(console, banner))
	assert.Contains(t, console, "Device: sensor-01 added successfully!\n")
	assert.Regexp(t, keyLine, console)
	assert.Contains(t, console, "Devices listed successfully!\n1: Id: sensor-01, status: $enabled\n")
	assert.Contains(t, console, "Device: sensor-01 removed successfully!\n")

	assert.Empty(t, hub.DeviceIDs())
	assert.True(t, tracker.closed.Load())
}

func TestApp_Run_PercentEncodedLookingID(t *testing.T) {
	hub := registrytest.NewHub(t)
	app, out, _ := newHubApp(t, hub, "1\na%2Fb\n3\n2\na%2Fb\n4\n")

	require.NoError(t, app.Run(context.Background()))

	console := out.String()
	assert.Contains(t, console, "Device: a%2Fb added successfully!\n")
	assert.Contains(t, console, "1: Id: a%2Fb, status: $enabled\n")
	assert.Contains(t, console, "Device: a%2Fb removed successfully!\n")
	assert.NotContains(t, console, "Operation failed")
	assert.Empty(t, hub.DeviceIDs())
}

func TestApp_Run_AddTwiceYieldsSameKey(t *testing.T) {
	hub := registrytest.NewHub(t)
	app, out, _ := newHubApp(t, hub, "1\nsensor-01\n1\nsensor-01\n4\n")

	require.NoError(t, app.Run(context.Background()))

	console := out.String()
	keys := keyLine.FindAllStringSubmatch(console, -1)
	require.Len(t, keys, 2)
	assert.Equal(t, keys[0][1], keys[1][1])
	assert.Contains(t, console, "---\nThis device has already been registered...\n---\n")

	stored, ok := hub.Device("sensor-01")
	require.True(t, ok)
	assert.Equal(t, stored.PrimaryKey(), keys[0][1])
}

func TestApp_Run_RemoveUnknownDevice(t *testing.T) {
	hub := registrytest.NewHub(t)
	app, out, _ := newHubApp(t, hub, "2\nghost\n4\n")

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "---\nThis device has not been registered into this registry!\n---\n")
}

func TestApp_Run_InvalidNamesNeverReachRegistry(t *testing.T) {
	hub := registrytest.NewHub(t)
	app, out, _ := newHubApp(t, hub, "1\n\n1\nmy device\n4\n")

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, 2, strings.Count(out.String(), "Enter valid name!"))
	assert.Empty(t, hub.Requests())
}

func TestApp_Run_RegistryFailureDoesNotEndLoop(t *testing.T) {
	hub := registrytest.NewHub(t)
	hub.FailNext(1, 503, "ServiceUnavailable")
	app, out, tracker := newHubApp(t, hub, "3\n1\nsensor-01\n4\n")

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "---\nOperation failed: registry is unavailable")
	assert.Contains(t, out.String(), "Device: sensor-01 added successfully!")
	assert.True(t, tracker.closed.Load())
}

func TestApp_Run_BootstrapFailure(t *testing.T) {
	out := &bytes.Buffer{}
	app := NewApp(config.Registry{}, strings.NewReader("1\nsensor-01\n4\n"), out, logger.Nop())

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, "Registry access failed!  invalid connection string: connection string is empty\n", out.String())
}

func TestApp_Run_CloseErrorIsOnlyLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistryAdapter(ctrl)
	registry.EXPECT().Close().Return(errors.New("close failed"))

	out := &bytes.Buffer{}
	app := &App{
		connect: func() (adapter.RegistryAdapter, error) { return registry, nil },
		in:      strings.NewReader("4\n"),
		out:     out,
		logger:  logger.Nop(),
	}

	require.NoError(t, app.Run(context.Background()))
	assert.True(t, strings.HasPrefix(out.String(), banner))
	assert.NotContains(t, out.String(), "close failed")
}

func TestApp_ImplementsClient(t *testing.T) {
	var _ Client = NewApp(config.Registry{}, strings.NewReader(""), &bytes.Buffer{}, logger.Nop())
}
