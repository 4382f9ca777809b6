package medium

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the bearer transport wrapper is installed, so
// transport-related options (like debug logging) are placed underneath the
// signing wrapper.
type Option func(*Client) error

// WithBaseURL overrides the API base URL. Intended for tests and proxies.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if u == "" {
			return fmt.Errorf("base URL must not be empty")
		}
		c.baseURL = u
		return nil
	}
}

// WithAccessToken sets the bearer token the client signs requests with.
// Equivalent to deriving a client via Client.WithAccessToken after New.
func WithAccessToken(tok string) Option {
	return func(c *Client) error {
		c.accessToken = tok
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// The debug transport is installed beneath the bearer wrapper. Do not enable
// this option in production environments: dumps include headers and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}
