package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-registry-manager/internal/config"
	"github.com/MKhiriev/go-registry-manager/internal/logger"
	"github.com/MKhiriev/go-registry-manager/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	headerAuthorization   = "Authorization"
	headerClientRequestID = "x-ms-client-request-id"
	headerIfMatch         = "If-Match"
	headerContentType     = "Content-Type"
	headerETag            = "ETag"

	contentTypeJSON = "application/json"
)

// Option customises the HTTP adapters.
type Option func(*options)

type options struct {
	baseURL string
}

// WithBaseURL sends requests to baseURL instead of https://<HostName>.
// The SAS resource is still derived from HostName.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// restTransport is the authorized resty client shared by the registry and
// device adapters.
type restTransport struct {
	client     *utils.HTTPClient
	tokens     *sasTokenSource
	requestIDs *utils.UUIDGenerator
	apiVersion string

	mu     sync.RWMutex
	closed bool

	logger *logger.Logger
}

func newRESTTransport(cs ConnectionString, cfg config.Registry, tokenTTL time.Duration, log *logger.Logger, opts []Option) (*restTransport, error) {
	o := options{baseURL: cs.HostName}
	for _, opt := range opts {
		opt(&o)
	}

	baseURL, err := normalizeBaseURL(o.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s: %w", ErrInvalidConnectionString, csHostName, err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", contentTypeJSON)

	if cfg.RetryCount > 0 {
		client.
			SetRetryCount(cfg.RetryCount).
			SetRetryWaitTime(cfg.RetryWait).
			SetRetryMaxWaitTime(cfg.RetryWait * 8).
			AddRetryCondition(func(resp *resty.Response, err error) bool {
				if err != nil {
					return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
				}
				return resp != nil && utils.IsRetryableStatus(resp.StatusCode())
			})
	}

	return &restTransport{
		client:     client,
		tokens:     newSASTokenSource(cs, tokenTTL),
		requestIDs: utils.NewUUIDGenerator(),
		apiVersion: cfg.APIVersion,
		logger:     log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// close marks the transport closed and reports whether this call closed it.
func (t *restTransport) close() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return false
	}
	t.closed = true
	t.client.CloseIdleConnections()

	return true
}

func (t *restTransport) isClosed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.closed
}

// send executes one authorized hub request. prepare sets the
// operation-specific parts of the request. Non-2xx responses are returned as
// mapped sentinel errors.
func (t *restTransport) send(ctx context.Context, method, path string, prepare func(*resty.Request)) (*resty.Response, error) {
	if t.isClosed() {
		return nil, ErrClientClosed
	}

	requestID := t.requestIDs.Generate()

	req := t.client.R().
		SetContext(ctx).
		SetHeader(headerAuthorization, t.tokens.Token()).
		SetHeader(headerClientRequestID, requestID).
		SetQueryParam("api-version", t.apiVersion)
	if prepare != nil {
		prepare(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		t.logger.Error().Err(err).
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Msg("hub request failed")
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	t.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("hub request completed")

	return resp, mapHTTPError(resp)
}
