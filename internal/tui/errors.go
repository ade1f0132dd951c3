// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/MKhiriev/go-registry-manager/internal/logger"
)

var errUnknownFailure = errors.New("unknown failure")

// failure returns err, or errUnknownFailure if a failed outcome came without
// a cause.
func failure(err error) error {
	if err == nil {
		return errUnknownFailure
	}
	return err
}

// guard runs action and turns a failure or panic into an "Operation failed"
// block. Only the end of input is passed through to the caller.
func (t *TUI) guard(ctx context.Context, name string, action func(context.Context) error) (err error) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("action", name).
				Any("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("action panicked")
			t.printFailure(fmt.Errorf("%v", r))
			err = nil
		}
	}()

	err = action(ctx)
	if err == nil || isInputClosed(err) {
		return err
	}

	log.Err(err).Str("action", name).Msg("action failed")
	t.printFailure(err)
	return nil
}

func (t *TUI) printFailure(err error) {
	t.printBlock("Operation failed: " + humanizeError(err))
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "the registry did not answer in time"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return "network is down or the registry is unreachable"
	}

	return err.Error()
}
