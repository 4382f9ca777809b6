package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mediumkit/medium-go/medium/internal/types"
)

// CreatePost creates a post on userID's profile and returns the server's
// representation, including the assigned id, url, and authorId.
func CreatePost(ctx context.Context, hc HTTPClient, baseURL, userID string, req types.CreatePostRequest) (*types.Post, error) {
	var p types.Post
	path := fmt.Sprintf("/v1/users/%s/posts", userID)
	if err := do(ctx, hc, baseURL, http.MethodPost, path, jsonBody(req), wrapped, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
