package medium

import (
	"context"
	"net/url"
	"strings"

	"github.com/mediumkit/medium-go/medium/internal/api"
)

// Scopes that may be requested during authorization.
const (
	ScopeBasicProfile = "basicProfile"
	ScopePublishPost  = "publishPost"
	ScopeUploadImage  = "uploadImage"
)

// AuthorizationURL builds the URL an application sends a user to in order to
// acquire authorization. state is passed back to redirectURL unchanged;
// scopes are joined with commas. No network call is made and no validation is
// performed on the inputs.
func (c *Client) AuthorizationURL(state, redirectURL string, scopes []string) string {
	v := url.Values{
		"client_id":     {c.appID},
		"response_type": {"code"},
		"redirect_uri":  {redirectURL},
		"scope":         {strings.Join(scopes, ",")},
		"state":         {state},
	}
	return authorizeURL + "?" + v.Encode()
}

// ExchangeAuthorizationCode exchanges the code supplied to the redirect URL
// for a long-lived token pair. The returned token is not retained by the
// client; thread it into subsequent calls with WithAccessToken.
func (c *Client) ExchangeAuthorizationCode(ctx context.Context, code, redirectURL string) (*Token, error) {
	v := url.Values{
		"client_id":     {c.appID},
		"client_secret": {c.appSecret},
		"code":          {code},
		"grant_type":    {"authorization_code"},
		"redirect_uri":  {redirectURL},
	}
	tok, err := api.ExchangeToken(ctx, c.http, c.baseURL, v)
	countRequest("exchange_authorization_code", err)
	return tok, err
}

// ExchangeRefreshToken exchanges a refresh token for a new token pair.
func (c *Client) ExchangeRefreshToken(ctx context.Context, refreshToken string) (*Token, error) {
	v := url.Values{
		"client_id":     {c.appID},
		"client_secret": {c.appSecret},
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}
	tok, err := api.ExchangeToken(ctx, c.http, c.baseURL, v)
	countRequest("exchange_refresh_token", err)
	return tok, err
}
