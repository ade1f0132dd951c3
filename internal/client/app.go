package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-registry-manager/internal/adapter"
	"github.com/MKhiriev/go-registry-manager/internal/config"
	"github.com/MKhiriev/go-registry-manager/internal/logger"
	"github.com/MKhiriev/go-registry-manager/internal/service"
	"github.com/MKhiriev/go-registry-manager/internal/tui"
)

type App struct {
	connect Connector

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// NewApp returns the registry manager reading commands from in and writing
// the console protocol to out. The registry client is built from
// cfg.Registry when Run opens the session.
func NewApp(cfg config.Registry, in io.Reader, out io.Writer, log *logger.Logger, opts ...adapter.Option) *App {
	return &App{
		connect: func() (adapter.RegistryAdapter, error) {
			return adapter.NewHTTPRegistryAdapter(cfg, log, opts...)
		},
		in:     in,
		out:    out,
		logger: log,
	}
}

// Run opens the session and runs the console until the user exits.
//
// A session that cannot be opened is reported on the console and Run returns
// nil without entering the loop. The session is always closed before Run
// returns; a close failure is only logged.
func (a *App) Run(ctx context.Context) error {
	session, err := OpenSession(a.connect)
	if err != nil {
		a.logger.Err(err).Msg("registry access failed")
		_, _ = fmt.Fprintf(a.out, "Registry access failed!  %s\n", err)
		return nil
	}
	a.logger.Info().Msg("registry session opened")

	defer func() {
		if err := session.Close(); err != nil {
			a.logger.Err(err).Msg("closing registry session failed")
			return
		}
		a.logger.Info().Msg("registry session closed")
	}()

	services := service.NewServices(session.Registry())
	ui := tui.New(services, a.in, a.out, a.logger)

	ui.Banner(session.Status())
	if err = ui.MainLoop(ctx); err != nil {
		return fmt.Errorf("main loop: %w", err)
	}

	return nil
}
