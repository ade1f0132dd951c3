// Package registrytest provides an in-memory IoT Hub identity registry served
// over HTTP for use in tests.
//
// The fake implements the subset of the hub REST API that the adapters use:
// the registry (create, get, delete, and query devices) signed with its own
// policy key, and the device messaging endpoints (telemetry and
// cloud-to-device messages) signed with each device's key. It answers with
// the same status codes and error envelopes as the real service.
package registrytest

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-registry-manager/internal/utils"
	"github.com/MKhiriev/go-registry-manager/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// HostName is the hub host the fake signs tokens for.
	HostName = "test-hub.azure-devices.net"
	// KeyName is the shared access policy accepted by the fake.
	KeyName = "registryReadWrite"
)

const (
	clientRequestIDHeader = "x-ms-client-request-id"
	requestIDHeader       = "x-ms-request-id"
	appPropertyPrefix     = "iothub-app-"
)

// Key is the base64 policy key accepted by the fake.
var Key = base64.StdEncoding.EncodeToString([]byte("registry-test-policy-key-32bytes"))

// Request is a request observed by the hub.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Header    http.Header
	RequestID string
}

// Event is a telemetry message received from a device.
type Event struct {
	Body        []byte
	ContentType string
	Properties  map[string]string
}

// Hub is an in-memory registry behind an httptest.Server.
type Hub struct {
	Server *httptest.Server

	hasher *utils.Hasher

	mu          sync.Mutex
	devices     map[string]models.Device
	order       []string
	events      map[string][]Event
	inbox       map[string][]*queuedMessage
	deadLetters map[string][]models.CloudMessage
	requests    []Request
	failures    []failure
	seq         int
}

type queuedMessage struct {
	models.CloudMessage
	locked bool
}

type failure struct {
	status int
	code   string
}

// NewHub starts a hub that is shut down when t finishes.
func NewHub(t testing.TB) *Hub {
	t.Helper()

	key, _ := base64.StdEncoding.DecodeString(Key)
	h := &Hub{
		hasher:      utils.NewHasher(key),
		devices:     make(map[string]models.Device),
		events:      make(map[string][]Event),
		inbox:       make(map[string][]*queuedMessage),
		deadLetters: make(map[string][]models.CloudMessage),
	}

	h.Server = httptest.NewServer(h.routes())
	t.Cleanup(h.Server.Close)

	return h
}

func (h *Hub) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(withRequestID)
	router.Use(h.record)

	router.Group(func(r chi.Router) {
		r.Use(h.registryAuth, h.injectFailures)

		r.Put("/devices/{id}", h.handleCreate)
		r.Get("/devices/{id}", h.handleGet)
		r.Delete("/devices/{id}", h.handleDelete)
		r.Get("/devices", h.handleList)
	})

	router.Route("/devices/{id}/messages", func(r chi.Router) {
		r.Use(h.deviceAuth, h.injectFailures)

		r.Post("/events", h.handleEvent)
		r.Get("/devicebound", h.handleReceive)
		r.Delete("/devicebound/{lockToken}", h.handleSettle)
		r.Post("/devicebound/{lockToken}/abandon", h.handleAbandon)
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "MethodNotAllowed", r.Method+" is not allowed on "+r.URL.Path)
	})

	return router
}

// withRequestID echoes the client request id, generating one when absent.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(clientRequestIDHeader)
		if requestID == "" {
			requestID = utils.NewUUIDGenerator().Generate()
		}

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

// deviceID returns the {id} route parameter.
func deviceID(r *http.Request) string {
	return pathParam(r, "id")
}

// pathParam returns a route parameter unescaped exactly once. chi matches on
// RawPath when the request has one and on the already decoded Path otherwise.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// URL is the base URL of the hub.
func (h *Hub) URL() string {
	return h.Server.URL
}

// ConnectionString returns a valid policy connection string for the hub.
func (h *Hub) ConnectionString() string {
	return fmt.Sprintf("HostName=%s;SharedAccessKeyName=%s;SharedAccessKey=%s", HostName, KeyName, Key)
}

// DeviceConnectionString returns a connection string signed with the
// device's primary key, or false if the device is not registered.
func (h *Hub) DeviceConnectionString(id string) (string, bool) {
	d, ok := h.Device(id)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("HostName=%s;DeviceId=%s;SharedAccessKey=%s", HostName, id, d.PrimaryKey()), true
}

// Seed registers devices directly, bypassing the API.
func (h *Hub) Seed(ids ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, id := range ids {
		h.createLocked(id)
	}
}

// Device returns the stored device with the given ID.
func (h *Hub) Device(id string) (models.Device, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	d, ok := h.devices[id]
	return d, ok
}

// DeviceIDs returns the IDs of all stored devices in creation order.
func (h *Hub) DeviceIDs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]string(nil), h.order...)
}

// Requests returns every request the hub has received.
func (h *Hub) Requests() []Request {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Request(nil), h.requests...)
}

// SendToDevice queues a cloud-to-device message and returns its message ID.
func (h *Hub) SendToDevice(id string, body []byte, properties map[string]string) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	msg := &queuedMessage{CloudMessage: models.CloudMessage{
		MessageID:      utils.NewUUIDGenerator().Generate(),
		To:             "/devices/" + id + "/messages/devicebound",
		SequenceNumber: int64(h.seq),
		EnqueuedTime:   time.Now().UTC().Truncate(time.Second),
		Properties:     properties,
		Body:           body,
	}}
	h.inbox[id] = append(h.inbox[id], msg)

	return msg.MessageID
}

// Events returns the telemetry received from the device in arrival order.
func (h *Hub) Events(id string) []Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Event(nil), h.events[id]...)
}

// PendingMessages returns the number of cloud-to-device messages that are
// queued or locked for the device.
func (h *Hub) PendingMessages(id string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.inbox[id])
}

// DeadLetters returns the messages the device rejected.
func (h *Hub) DeadLetters(id string) []models.CloudMessage {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]models.CloudMessage(nil), h.deadLetters[id]...)
}

// FailNext makes the next n authorized requests fail with status and the
// registry error code.
func (h *Hub) FailNext(n int, status int, code string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for range n {
		h.failures = append(h.failures, failure{status: status, code: code})
	}
}

func (h *Hub) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		h.requests = append(h.requests, Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			Query:     r.URL.Query(),
			Header:    r.Header.Clone(),
			RequestID: r.Header.Get(clientRequestIDHeader),
		})
		h.mu.Unlock()

		if r.URL.Query().Get("api-version") == "" {
			writeError(w, http.StatusBadRequest, "ApiVersionRequired", "api-version query parameter is required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// registryAuth accepts tokens for the hub resource signed with the policy key.
func (h *Hub) registryAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := verifyToken(r.Header.Get("Authorization"), HostName, KeyName, h.hasher); err != nil {
			writeError(w, http.StatusUnauthorized, "IotHubUnauthorizedAccess", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// deviceAuth accepts tokens for <host>/devices/<id> signed with one of the
// device's keys. Unknown devices are unauthorized.
func (h *Hub) deviceAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := deviceID(r)

		h.mu.Lock()
		device, ok := h.devices[id]
		h.mu.Unlock()

		var keys []*utils.Hasher
		if ok && device.Authentication != nil && device.Authentication.SymmetricKey != nil {
			for _, k := range []string{device.Authentication.SymmetricKey.PrimaryKey, device.Authentication.SymmetricKey.SecondaryKey} {
				if raw, err := base64.StdEncoding.DecodeString(k); err == nil && k != "" {
					keys = append(keys, utils.NewHasher(raw))
				}
			}
		}

		resource := strings.ToLower(HostName + "/devices/" + url.PathEscape(id))
		if err := verifyToken(r.Header.Get("Authorization"), resource, "", keys...); err != nil {
			writeError(w, http.StatusUnauthorized, "IotHubUnauthorizedAccess", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Hub) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		var f *failure
		if len(h.failures) > 0 {
			f = &h.failures[0]
			h.failures = h.failures[1:]
		}
		h.mu.Unlock()
		if f != nil {
			writeError(w, f.status, f.code, http.StatusText(f.status))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// verifyToken checks a shared access signature for resource. keyName is the
// expected skn; an empty keyName requires a token without one.
func verifyToken(header, resource, keyName string, keys ...*utils.Hasher) error {
	raw, ok := strings.CutPrefix(header, "SharedAccessSignature ")
	if !ok {
		return fmt.Errorf("missing shared access signature")
	}
	fields, err := url.ParseQuery(raw)
	if err != nil {
		return fmt.Errorf("malformed shared access signature")
	}

	if fields.Get("sr") != resource {
		return fmt.Errorf("token resource %q does not match %q", fields.Get("sr"), resource)
	}
	if fields.Get("skn") != keyName {
		return fmt.Errorf("unknown policy %q", fields.Get("skn"))
	}

	se, err := strconv.ParseInt(fields.Get("se"), 10, 64)
	if err != nil || time.Unix(se, 0).Before(time.Now()) {
		return fmt.Errorf("token expired")
	}

	signed := []byte(url.QueryEscape(resource) + "\n" + fields.Get("se"))
	for _, key := range keys {
		if fields.Get("sig") == key.SumBase64(signed) {
			return nil
		}
	}

	return fmt.Errorf("invalid signature")
}

func (h *Hub) handleCreate(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r)

	var body models.Device
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.DeviceID != id {
		writeError(w, http.StatusBadRequest, "ArgumentInvalid", "device id in body does not match path")
		return
	}

	h.mu.Lock()
	if _, ok := h.devices[id]; ok {
		h.mu.Unlock()
		writeError(w, http.StatusConflict, "DeviceAlreadyExists", fmt.Sprintf("A device with ID '%s' is already registered.", id))
		return
	}
	device := h.createLocked(id)
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, device)
}

func (h *Hub) handleGet(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r)

	h.mu.Lock()
	device, ok := h.devices[id]
	h.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "DeviceNotFound", fmt.Sprintf("Device %s not registered", id))
		return
	}

	writeJSON(w, http.StatusOK, device)
}

func (h *Hub) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r)

	if r.Header.Get("If-Match") == "" {
		writeError(w, http.StatusPreconditionFailed, "PreconditionFailed", "If-Match header is required")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.devices[id]; !ok {
		writeError(w, http.StatusNotFound, "DeviceNotFound", fmt.Sprintf("Device %s not registered", id))
		return
	}
	delete(h.devices, id)
	delete(h.events, id)
	delete(h.inbox, id)
	delete(h.deadLetters, id)
	for i, stored := range h.order {
		if stored == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Hub) handleList(w http.ResponseWriter, r *http.Request) {
	top, err := strconv.Atoi(r.URL.Query().Get("top"))
	if err != nil || top < 1 || top > 1000 {
		writeError(w, http.StatusBadRequest, "ArgumentInvalid", "top must be within 1..1000")
		return
	}

	h.mu.Lock()
	devices := make([]models.Device, 0, min(top, len(h.order)))
	for _, id := range h.order {
		if len(devices) == top {
			break
		}
		devices = append(devices, h.devices[id])
	}
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, devices)
}

func (h *Hub) handleEvent(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ArgumentInvalid", "unreadable body")
		return
	}

	event := Event{
		Body:        body,
		ContentType: r.Header.Get("Content-Type"),
		Properties:  make(map[string]string),
	}
	for name := range r.Header {
		if prop, ok := strings.CutPrefix(strings.ToLower(name), appPropertyPrefix); ok {
			event.Properties[prop] = r.Header.Get(name)
		}
	}

	h.mu.Lock()
	h.events[id] = append(h.events[id], event)
	h.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// handleReceive locks the oldest unlocked message. The lock lasts until the
// message is completed, rejected, or abandoned.
func (h *Hub) handleReceive(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r)

	h.mu.Lock()
	var msg *queuedMessage
	for _, queued := range h.inbox[id] {
		if !queued.locked {
			msg = queued
			break
		}
	}
	if msg == nil {
		h.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
		return
	}
	msg.locked = true
	msg.LockToken = utils.NewUUIDGenerator().Generate()
	delivered := msg.CloudMessage
	msg.DeliveryCount++
	h.mu.Unlock()

	header := w.Header()
	header.Set("ETag", `"`+delivered.LockToken+`"`)
	header.Set("iothub-messageid", delivered.MessageID)
	header.Set("iothub-to", delivered.To)
	header.Set("iothub-sequencenumber", strconv.FormatInt(delivered.SequenceNumber, 10))
	header.Set("iothub-enqueuedtime", delivered.EnqueuedTime.Format(http.TimeFormat))
	header.Set("iothub-deliverycount", strconv.Itoa(delivered.DeliveryCount))
	for name, value := range delivered.Properties {
		header.Set(appPropertyPrefix+name, value)
	}
	header.Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(delivered.Body)
}

// handleSettle completes a locked message, or dead-letters it when the
// reject query parameter is present.
func (h *Hub) handleSettle(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r)

	h.mu.Lock()
	defer h.mu.Unlock()

	i, ok := h.findLockLocked(id, pathParam(r, "lockToken"))
	if !ok {
		writeError(w, http.StatusPreconditionFailed, "DeviceMessageLockLost", "lock token is not valid for device "+id)
		return
	}

	msg := h.inbox[id][i]
	h.inbox[id] = append(h.inbox[id][:i], h.inbox[id][i+1:]...)
	if r.URL.Query().Has("reject") {
		h.deadLetters[id] = append(h.deadLetters[id], msg.CloudMessage)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Hub) handleAbandon(w http.ResponseWriter, r *http.Request) {
	id := deviceID(r)

	h.mu.Lock()
	defer h.mu.Unlock()

	i, ok := h.findLockLocked(id, pathParam(r, "lockToken"))
	if !ok {
		writeError(w, http.StatusPreconditionFailed, "DeviceMessageLockLost", "lock token is not valid for device "+id)
		return
	}

	msg := h.inbox[id][i]
	msg.locked = false
	msg.LockToken = ""

	w.WriteHeader(http.StatusNoContent)
}

// findLockLocked finds the locked message holding lockToken. h.mu must be held.
func (h *Hub) findLockLocked(id, lockToken string) (int, bool) {
	for i, msg := range h.inbox[id] {
		if msg.locked && msg.LockToken == lockToken {
			return i, true
		}
	}
	return 0, false
}

func (h *Hub) createLocked(id string) models.Device {
	h.seq++
	device := models.Device{
		DeviceID:        id,
		GenerationID:    strconv.Itoa(638000000000000000 + h.seq),
		ETag:            base64.StdEncoding.EncodeToString([]byte(strconv.Itoa(h.seq))),
		Status:          models.DeviceStatusEnabled,
		ConnectionState: "Disconnected",
		Authentication: &models.Authentication{
			Type: models.AuthenticationTypeSAS,
			SymmetricKey: &models.SymmetricKey{
				PrimaryKey:   randomKey(),
				SecondaryKey: randomKey(),
			},
		},
	}
	h.devices[id] = device
	h.order = append(h.order, id)

	return device
}

func randomKey() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("iothub-errorcode", code)
	writeJSON(w, status, map[string]string{
		"Message":          fmt.Sprintf("ErrorCode:%s;%s", code, message),
		"ExceptionMessage": "Tracking ID:00000000000000000000000000000000-G:0-TimeStamp:" + time.Now().UTC().Format(time.RFC3339),
	})
}
