// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the registry manager application runtime.
//
// It opens the registry session, wires the device services into the console,
// runs the menu loop, and closes the session before the process exits.
// [DeviceApp] is the device-side runtime used by cmd/device-client.
package client
