package client

import (
	"errors"
	"sync"

	"github.com/MKhiriev/go-registry-manager/internal/adapter"
)

// StatusConnected is the session status shown in the banner.
const StatusConnected = "Successfully connected to the IoT Hub registry"

var ErrNoRegistry = errors.New("connector returned no registry client")

// Connector constructs the registry client for a session.
type Connector func() (adapter.RegistryAdapter, error)

// Session is the single binding of the process to one registry. Device
// services can only be built from an open session.
type Session struct {
	registry adapter.RegistryAdapter
	status   string

	closeOnce sync.Once
	closeErr  error
}

// OpenSession makes one attempt to construct the registry client. There is
// no retry; the connector's error is returned as is.
func OpenSession(connect Connector) (*Session, error) {
	registry, err := connect()
	if err != nil {
		return nil, err
	}
	if registry == nil {
		return nil, ErrNoRegistry
	}

	return &Session{registry: registry, status: StatusConnected}, nil
}

// Status returns the human-readable connection status.
func (s *Session) Status() string {
	return s.status
}

// Registry returns the registry client owned by the session.
func (s *Session) Registry() adapter.RegistryAdapter {
	return s.registry
}

// Close releases the registry client. Only the first call has an effect.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.registry.Close()
	})
	return s.closeErr
}
