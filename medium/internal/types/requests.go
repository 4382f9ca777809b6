package types

// ------------------------------
// Request Types
// ------------------------------

// CreatePostRequest holds parameters for a new post. Optional fields left at
// their zero value are omitted from the outgoing JSON entirely, so the server
// applies its own defaults. The remote API caps Tags at three; no local
// validation is performed.
type CreatePostRequest struct {
	Title         string        `json:"title"`
	Content       string        `json:"content"`
	ContentFormat ContentFormat `json:"contentFormat"`
	Tags          []string      `json:"tags,omitempty"`
	CanonicalURL  string        `json:"canonicalUrl,omitempty"`
	PublishStatus PublishStatus `json:"publishStatus,omitempty"`
	License       License       `json:"license,omitempty"`
}

// UploadImageRequest holds parameters for an image upload. FilePath is read
// from disk at request time; ContentType should be an image MIME type such as
// image/png.
type UploadImageRequest struct {
	FilePath    string
	ContentType string
}
