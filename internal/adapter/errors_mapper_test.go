package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseFor(t *testing.T, status int, headerCode, body string) *resty.Response {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if headerCode != "" {
			w.Header().Set(errorCodeHeader, headerCode)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		headerCode string
		body       string
		wantErr    error
		wantMsg    string
	}{
		{name: "ok", status: http.StatusOK, body: `{}`},
		{name: "no content", status: http.StatusNoContent},
		{
			name:    "bad request",
			status:  http.StatusBadRequest,
			body:    `{"Message":"ErrorCode:ArgumentInvalid;deviceId is invalid"}`,
			wantErr: ErrBadRequest,
			wantMsg: "deviceId is invalid",
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"Message":"ErrorCode:IotHubUnauthorizedAccess;Unauthorized"}`,
			wantErr: ErrUnauthorized,
		},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden, wantMsg: "Forbidden"},
		{
			name:    "device not found from body",
			status:  http.StatusNotFound,
			body:    `{"Message":"ErrorCode:DeviceNotFound;Device sensor-01 not registered"}`,
			wantErr: ErrDeviceNotFound,
			wantMsg: "Device sensor-01 not registered",
		},
		{
			name:    "not found without code is a missing device",
			status:  http.StatusNotFound,
			wantErr: ErrDeviceNotFound,
		},
		{
			name:       "hub not found is not a missing device",
			status:     http.StatusNotFound,
			headerCode: "IotHubNotFound",
			body:       `{"Message":"ErrorCode:IotHubNotFound;IoT hub not found"}`,
			wantErr:    ErrNotFound,
			wantMsg:    "IotHubNotFound",
		},
		{
			name:       "device already exists from header",
			status:     http.StatusConflict,
			headerCode: "DeviceAlreadyExists",
			body:       `{"Message":"A device with ID 'sensor-01' is already registered."}`,
			wantErr:    ErrDeviceAlreadyExists,
			wantMsg:    "already registered",
		},
		{
			name:    "other conflict",
			status:  http.StatusConflict,
			body:    `{"Message":"ErrorCode:DeviceLocked;locked"}`,
			wantErr: ErrConflict,
		},
		{name: "precondition failed", status: http.StatusPreconditionFailed, wantErr: ErrPreconditionFailed},
		{
			name:       "message lock lost",
			status:     http.StatusPreconditionFailed,
			headerCode: "DeviceMessageLockLost",
			body:       `{"Message":"ErrorCode:DeviceMessageLockLost;lock token expired"}`,
			wantErr:    ErrMessageLockLost,
			wantMsg:    "lock token expired",
		},
		{
			name:    "throttled",
			status:  http.StatusTooManyRequests,
			body:    `{"Message":"ErrorCode:ThrottlingException;slow down"}`,
			wantErr: ErrThrottled,
		},
		{name: "internal error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
		{name: "gateway timeout", status: http.StatusGatewayTimeout, wantErr: ErrServiceUnavailable},
		{name: "plain text body", status: http.StatusTeapot, body: "short and stout", wantMsg: "http 418: short and stout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapHTTPError(responseFor(t, tt.status, tt.headerCode, tt.body))

			if tt.wantErr == nil && tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseRegistryError(t *testing.T) {
	code, msg := parseRegistryError("", []byte(`{"Message":"ErrorCode:DeviceNotFound;Device x not registered","ExceptionMessage":"Tracking ID:abc"}`))
	assert.Equal(t, "DeviceNotFound", code)
	assert.Equal(t, "Device x not registered", msg)

	code, msg = parseRegistryError("DeviceAlreadyExists", []byte(`{"Message":"ErrorCode:Other;text"}`))
	assert.Equal(t, "DeviceAlreadyExists", code, "header code takes precedence")
	assert.Equal(t, "text", msg)

	code, msg = parseRegistryError("", nil)
	assert.Empty(t, code)
	assert.Empty(t, msg)
}
