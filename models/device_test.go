package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevice_PrimaryKey(t *testing.T) {
	tests := []struct {
		name   string
		device Device
		want   string
	}{
		{
			name:   "no authentication",
			device: Device{DeviceID: "sensor-01"},
			want:   "",
		},
		{
			name: "x509 device without symmetric key",
			device: Device{
				DeviceID:       "sensor-02",
				Authentication: &Authentication{Type: AuthenticationTypeSelfSigned},
			},
			want: "",
		},
		{
			name: "sas device",
			device: Device{
				DeviceID: "sensor-03",
				Authentication: &Authentication{
					Type:         AuthenticationTypeSAS,
					SymmetricKey: &SymmetricKey{PrimaryKey: "cHJpbWFyeQ==", SecondaryKey: "c2Vjb25kYXJ5"},
				},
			},
			want: "cHJpbWFyeQ==",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.device.PrimaryKey())
		})
	}
}

// TestDevice_DecodeRegistryPayload verifies that a device identity returned by
// the registry REST API decodes into Device with the fields the console uses.
func TestDevice_DecodeRegistryPayload(t *testing.T) {
	payload := `{
		"deviceId": "sensor-01",
		"generationId": "638000000000000000",
		"etag": "MTIzNDU2Nzg=",
		"connectionState": "Disconnected",
		"status": "enabled",
		"statusReason": null,
		"connectionStateUpdatedTime": "0001-01-01T00:00:00Z",
		"cloudToDeviceMessageCount": 0,
		"authentication": {
			"symmetricKey": {
				"primaryKey": "cHJpbWFyeS1rZXk=",
				"secondaryKey": "c2Vjb25kYXJ5LWtleQ=="
			},
			"x509Thumbprint": {"primaryThumbprint": null, "secondaryThumbprint": null},
			"type": "sas"
		},
		"capabilities": {"iotEdge": false}
	}`

	var d Device
	require.NoError(t, json.Unmarshal([]byte(payload), &d))

	assert.Equal(t, "sensor-01", d.DeviceID)
	assert.Equal(t, DeviceStatusEnabled, d.Status)
	assert.Equal(t, "Disconnected", d.ConnectionState)
	assert.Equal(t, AuthenticationTypeSAS, d.Authentication.Type)
	assert.Equal(t, "cHJpbWFyeS1rZXk=", d.PrimaryKey())
}
