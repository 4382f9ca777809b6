package api

import (
	"context"
	"net/http"

	"github.com/mediumkit/medium-go/medium/internal/types"
)

// UploadImage streams the file at req.FilePath as a single multipart part
// named "image", with the file's base name and the supplied content type.
// The file handle is released before the call returns, whether the request
// succeeds or fails.
func UploadImage(ctx context.Context, hc HTTPClient, baseURL string, req types.UploadImageRequest) (*types.Image, error) {
	var img types.Image
	b := fileBody("image", req.FilePath, req.ContentType)
	if err := do(ctx, hc, baseURL, http.MethodPost, "/v1/images", b, wrapped, &img); err != nil {
		return nil, err
	}
	return &img, nil
}
