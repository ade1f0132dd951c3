package tui

import (
	"context"

	"github.com/MKhiriev/go-registry-manager/internal/logger"
	"github.com/MKhiriev/go-registry-manager/internal/service"
	"github.com/MKhiriev/go-registry-manager/internal/validators"
)

const (
	addPrompt    = "Enter device name that you want to register: "
	removePrompt = "Enter name of the device to be removed: "
)

// readDeviceID prompts for a device id. ok is false if the answer was
// rejected, in which case the rejection has already been printed.
func (t *TUI) readDeviceID(ctx context.Context, prompt string) (id string, ok bool, err error) {
	t.print(prompt)

	id, err = t.readLine()
	if err != nil {
		return "", false, err
	}
	t.println("")

	if err = t.validator.Validate(ctx, id, validators.FieldDeviceID); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("device id rejected")
		t.printBlock("Enter valid name!")
		return "", false, nil
	}

	return id, true, nil
}

func (t *TUI) addDevice(ctx context.Context) error {
	id, ok, err := t.readDeviceID(ctx, addPrompt)
	if err != nil || !ok {
		return err
	}

	res := t.services.DeviceService.Add(ctx, id)
	switch res.Outcome {
	case service.AddCreated:
		t.printf("Device: %s added successfully!\n", id)
	case service.AddAlreadyExisted:
		t.printBlock("This device has already been registered...")
	default:
		return failure(res.Err)
	}

	t.println("")
	if res.Device == nil {
		t.printf("Could not get already existing device with id %s\n", id)
	} else {
		t.printf("Generated device key: %s\n", res.Device.PrimaryKey())
	}
	t.println("")

	return nil
}

func (t *TUI) removeDevice(ctx context.Context) error {
	id, ok, err := t.readDeviceID(ctx, removePrompt)
	if err != nil || !ok {
		return err
	}

	res := t.services.DeviceService.Remove(ctx, id)
	switch res.Outcome {
	case service.RemoveRemoved:
		t.printf("Device: %s removed successfully!\n", id)
	case service.RemoveNotFound:
		t.printBlock("This device has not been registered into this registry!")
	default:
		return failure(res.Err)
	}

	return nil
}

func (t *TUI) listDevices(ctx context.Context) error {
	t.println("")

	devices, err := t.services.DeviceService.List(ctx, ListCap)
	if err != nil {
		return err
	}

	t.println("Devices listed successfully!")
	for i, d := range devices {
		t.printf("%d: Id: %s, status: $%s\n", i+1, d.DeviceID, d.Status)
	}

	return nil
}
