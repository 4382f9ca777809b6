// Package medium provides a client for Medium's OAuth2 publishing API.
package medium

import (
	"context"
	"net/http"
	"time"

	"github.com/mediumkit/medium-go/medium/internal/api"
)

const (
	defaultBaseURL = "https://api.medium.com"
	authorizeURL   = "https://medium.com/m/oauth/authorize"
)

// Client issues signed calls against the Medium API. A Client is immutable
// after construction: token exchanges return the new token instead of
// storing it, and WithAccessToken derives a new Client around a token.
// A Client is therefore safe for concurrent use.
type Client struct {
	baseURL     string
	appID       string
	appSecret   string
	accessToken string
	http        *http.Client
	base        http.RoundTripper // transport beneath the bearer wrapper
}

// New constructs a Client with the given application credentials. Both may be
// empty when only token-authenticated calls will be made. Additional options
// can be provided via functional arguments.
func New(applicationID, applicationSecret string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:   defaultBaseURL,
		appID:     applicationID,
		appSecret: applicationSecret,
		http:      &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap the transport to sign every request with the bearer token.
	c.wrapTransportWithBearer()

	return c, nil
}

// WithAccessToken returns a copy of the client that authenticates with tok.
// The receiver is not modified.
func (c *Client) WithAccessToken(tok string) *Client {
	dc := *c
	dc.accessToken = tok
	dc.http = &http.Client{
		Timeout:   c.http.Timeout,
		Transport: &bearerTransport{base: c.base, token: tok},
	}
	return &dc
}

// wrapTransportWithBearer wraps the HTTP client's transport so every request
// carries the Accept headers and the Authorization bearer header. The header
// is sent even when no token is configured; the server, not the client,
// decides whether the call needed one.
func (c *Client) wrapTransportWithBearer() {
	c.base = c.http.Transport
	if c.base == nil {
		c.base = http.DefaultTransport
	}
	c.http = &http.Client{
		Timeout:   c.http.Timeout,
		Transport: &bearerTransport{base: c.base, token: c.accessToken},
	}
}

// bearerTransport wraps an http.RoundTripper to sign outgoing requests.
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Accept", "application/json")
	cloned.Header.Set("Accept-Charset", "utf-8")
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// User operations - delegated to internal/api
// --------------------------------------------------------------------

// CurrentUser fetches the profile identified by the client's access token.
// Requires the basicProfile scope.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	u, err := api.CurrentUser(ctx, c.http, c.baseURL)
	countRequest("get_current_user", err)
	return u, err
}

// --------------------------------------------------------------------
// Post operations - delegated to internal/api
// --------------------------------------------------------------------

// CreatePost creates a post on userID's profile. Requires the publishPost
// scope. Optional fields left at their zero value are omitted so the server
// applies its own defaults.
func (c *Client) CreatePost(ctx context.Context, userID string, req CreatePostRequest) (*Post, error) {
	p, err := api.CreatePost(ctx, c.http, c.baseURL, userID, req)
	countRequest("create_post", err)
	return p, err
}

// --------------------------------------------------------------------
// Image operations - delegated to internal/api
// --------------------------------------------------------------------

// UploadImage uploads a local image for use in a post. Requires the
// uploadImage scope.
func (c *Client) UploadImage(ctx context.Context, req UploadImageRequest) (*Image, error) {
	img, err := api.UploadImage(ctx, c.http, c.baseURL, req)
	countRequest("upload_image", err)
	return img, err
}
