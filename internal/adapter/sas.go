package adapter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-registry-manager/internal/utils"
)

// tokenRefreshMargin is how long before expiry a cached token is replaced.
const tokenRefreshMargin = time.Minute

// sasTokenSource issues shared access signatures for the hub or a single
// device and caches the current one until it is about to expire.
type sasTokenSource struct {
	resource string
	keyName  string
	hasher   *utils.Hasher
	ttl      time.Duration
	now      func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func newSASTokenSource(cs ConnectionString, ttl time.Duration) *sasTokenSource {
	return &sasTokenSource{
		resource: tokenResource(cs),
		keyName:  cs.SharedAccessKeyName,
		hasher:   utils.NewHasher(cs.decodedKey()),
		ttl:      ttl,
		now:      time.Now,
	}
}

// tokenResource is the lower-case resource URI a token grants access to:
// the hub host for policy strings, <host>/devices/<id> for device strings.
func tokenResource(cs ConnectionString) string {
	resource := cs.HostName
	if cs.IsDeviceScoped() {
		resource += "/devices/" + url.PathEscape(cs.DeviceID)
	}
	return strings.ToLower(resource)
}

// Token returns a valid Authorization header value.
func (s *sasTokenSource) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	margin := min(tokenRefreshMargin, s.ttl/2)
	if s.token != "" && now.Add(margin).Before(s.expiry) {
		return s.token
	}

	s.expiry = now.Add(s.ttl)
	s.token = s.sign(s.expiry.Unix())

	return s.token
}

// sign builds the token for the given expiry in Unix seconds:
// sig = base64(HMAC-SHA256(key, urlencode(resource) + "\n" + expiry)).
// skn is omitted when the key belongs to a device rather than a policy.
func (s *sasTokenSource) sign(expiry int64) string {
	se := strconv.FormatInt(expiry, 10)
	sr := url.QueryEscape(s.resource)
	sig := s.hasher.SumBase64([]byte(sr + "\n" + se))

	token := fmt.Sprintf("SharedAccessSignature sr=%s&sig=%s&se=%s", sr, url.QueryEscape(sig), se)
	if s.keyName != "" {
		token += "&skn=" + url.QueryEscape(s.keyName)
	}
	return token
}
