// Package tui implements the line-based console of the registry manager: the
// startup banner, the numbered menu, and the device action dialogs.
//
// The console reads from an io.Reader and writes to an io.Writer so it can be
// driven by a terminal or by tests. Its output is a fixed text protocol; all
// diagnostics go to the logger instead.
package tui

import (
	"bufio"
	"context"
	"io"

	"github.com/MKhiriev/go-registry-manager/internal/logger"
	"github.com/MKhiriev/go-registry-manager/internal/service"
	"github.com/MKhiriev/go-registry-manager/internal/validators"
)

// ListCap is the number of devices requested by the list action.
const ListCap = 100

// TUI is the interactive console. It is not safe for concurrent use.
type TUI struct {
	services  *service.Services
	validator validators.Validator

	in  *bufio.Reader
	out io.Writer

	logger *logger.Logger
}

// New returns a console over in and out that dispatches to services.
func New(services *service.Services, in io.Reader, out io.Writer, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		validator: validators.NewDeviceValidator(),
		in:        bufio.NewReader(in),
		out:       out,
		logger:    log,
	}
}

// Banner prints the welcome header followed by the session status line.
func (t *TUI) Banner(status string) {
	t.println("*****************************************************")
	t.println("===== Welcome to the Azure IoT Registry Manager =====")
	t.println("")
	t.printf("++ %s ++\n", status)
}

// MainLoop shows the menu and runs the selected actions until the user picks
// SelectionExit or the input is closed. Failed actions are reported on the
// console and do not end the loop. The returned error is non-nil only if
// reading the input fails for a reason other than end of input.
func (t *TUI) MainLoop(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)

	for {
		t.printMenu()

		line, err := t.readLine()
		if err != nil {
			return t.stopReason(err)
		}
		t.println("")

		selection := parseSelection(line)
		t.logger.Debug().Int("selection", int(selection)).Msg("menu selection")

		if selection == SelectionExit {
			t.logger.Info().Msg("exit selected")
			return nil
		}

		if err = t.dispatch(ctx, selection); err != nil {
			return t.stopReason(err)
		}
	}
}

func (t *TUI) dispatch(ctx context.Context, selection Selection) error {
	switch selection {
	case SelectionAdd:
		return t.guard(ctx, "add", t.addDevice)
	case SelectionRemove:
		return t.guard(ctx, "remove", t.removeDevice)
	case SelectionList:
		return t.guard(ctx, "list", t.listDevices)
	default:
		t.printBlock("Choose valid entry!")
		return nil
	}
}

func (t *TUI) stopReason(err error) error {
	if isInputClosed(err) {
		t.logger.Info().Msg("input closed, leaving main loop")
		return nil
	}

	t.logger.Err(err).Msg("reading console input failed")
	return err
}
