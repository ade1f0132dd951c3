package service

import (
	"github.com/MKhiriev/go-registry-manager/internal/adapter"
	"github.com/MKhiriev/go-registry-manager/internal/validators"
)

type Services struct {
	DeviceService DeviceService
}

func NewServices(registry adapter.RegistryAdapter) *Services {
	return &Services{
		DeviceService: NewDeviceService(registry, validators.NewDeviceValidator()),
	}
}
