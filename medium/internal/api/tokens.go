package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mediumkit/medium-go/medium/internal/types"
)

// ExchangeToken posts a form-encoded grant to the token endpoint. The caller
// supplies the full field set; the two grant types differ only in which
// fields are present. The token endpoint is the one route whose payload is
// not wrapped under data.
func ExchangeToken(ctx context.Context, hc HTTPClient, baseURL string, form url.Values) (*types.Token, error) {
	var tok types.Token
	if err := do(ctx, hc, baseURL, http.MethodPost, "/v1/tokens", formBody(form), unwrapped, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}
