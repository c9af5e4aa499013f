package portalsdk

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// SDKClient is a client for the portal gateway.
// It provides access to the public catalogue endpoints and creates
// authenticated Sessions. The underlying http.Client carries a cookie
// jar: the gateway's httpOnly session and CSRF cookies are stored and
// replayed automatically, the same way a browser would.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new gateway client with an empty cookie jar.
func NewSDKClient(baseURL string) *SDKClient {
	jar, _ := cookiejar.New(nil)
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// NewSession creates a session in the loading state. Call CheckSession
// to resolve it against whatever cookies the jar holds.
func (c *SDKClient) NewSession() *Session {
	return &Session{client: c, status: StatusLoading}
}
