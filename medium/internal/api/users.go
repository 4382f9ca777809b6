package api

import (
	"context"
	"net/http"

	"github.com/mediumkit/medium-go/medium/internal/types"
)

// CurrentUser fetches the profile identified by the client's access token.
// No token check happens locally; an unset token is simply rejected by the
// server and surfaces as an *apierr.APIError.
func CurrentUser(ctx context.Context, hc HTTPClient, baseURL string) (*types.User, error) {
	var u types.User
	if err := do(ctx, hc, baseURL, http.MethodGet, "/v1/me", body{}, wrapped, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
