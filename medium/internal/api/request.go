package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mediumkit/medium-go/medium/internal/apierr"
)

// HTTPClient is the transport surface the endpoint functions depend on.
// The medium package injects an *http.Client whose transport signs requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response payloads arrive in one of two shapes, selected per endpoint: the
// token endpoint returns the payload as the top-level document, everything
// else wraps it under the envelope's data key.
const (
	wrapped   = true
	unwrapped = false
)

// bodyKind selects the request body encoding. Exactly one kind is used per
// call site; the kinds are never combined.
type bodyKind int

const (
	bodyNone bodyKind = iota
	bodyJSON
	bodyForm
	bodyFile
)

type filePart struct {
	fieldName   string
	path        string
	contentType string
}

// body is a tagged union over the three request body encodings.
type body struct {
	kind bodyKind
	json any
	form url.Values
	file filePart
}

func jsonBody(v any) body        { return body{kind: bodyJSON, json: v} }
func formBody(v url.Values) body { return body{kind: bodyForm, form: v} }
func fileBody(field, path, contentType string) body {
	return body{kind: bodyFile, file: filePart{fieldName: field, path: path, contentType: contentType}}
}

// encode renders the body into a reader and its Content-Type. For bodyFile
// the file is opened, copied into the multipart buffer, and closed before
// encode returns, on success and failure.
func (b body) encode() (io.Reader, string, error) {
	switch b.kind {
	case bodyNone:
		return nil, "", nil

	case bodyJSON:
		buf, err := json.Marshal(b.json)
		if err != nil {
			return nil, "", fmt.Errorf("marshal request body: %w", err)
		}
		return bytes.NewReader(buf), "application/json", nil

	case bodyForm:
		return strings.NewReader(b.form.Encode()), "application/x-www-form-urlencoded", nil

	case bodyFile:
		f, err := os.Open(b.file.path)
		if err != nil {
			return nil, "", fmt.Errorf("open upload file: %w", err)
		}
		defer func() { _ = f.Close() }()

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
			b.file.fieldName, filepath.Base(b.file.path)))
		h.Set("Content-Type", b.file.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create form part: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", fmt.Errorf("copy upload file: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, "", err
		}
		return &buf, w.FormDataContentType(), nil
	}
	return nil, "", fmt.Errorf("unknown body kind %d", b.kind)
}

// envelope is the API's success/error wrapper.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []apierr.Entry  `json:"errors"`
}

// do issues exactly one request and decodes the response into out. There are
// no retries; transport errors pass through as the underlying error, while
// non-2xx responses become *apierr.APIError.
func do(ctx context.Context, hc HTTPClient, baseURL, method, path string, b body, isWrapped bool, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rd, contentType, err := b.encode()
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, rd)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// Note: Accept and Authorization headers are added by the transport layer.

	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	return decode(resp.StatusCode, raw, isWrapped, out)
}

// decode normalizes the API's JSON envelope. The body is parsed as JSON
// unconditionally; the API returns JSON even for errors.
func decode(status int, raw []byte, isWrapped bool, out any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	if status < 200 || status >= 300 {
		return apierr.FromResponse(status, raw, env.Errors)
	}
	if out == nil {
		return nil
	}
	payload := raw
	if isWrapped {
		if env.Data == nil {
			return fmt.Errorf("response missing data field")
		}
		payload = env.Data
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("parse response payload: %w", err)
	}
	return nil
}
