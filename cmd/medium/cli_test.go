package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newStubServer fakes the Medium API routes the CLI exercises.
func newStubServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/tokens", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token_type":    "Bearer",
			"access_token":  "exchanged-access",
			"refresh_token": "exchanged-refresh",
		})
	})
	mux.HandleFunc("/v1/me", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]string{"id": "user-1", "name": "Nicki Minaj", "username": "nicki"},
		})
	})
	mux.HandleFunc("/v1/users/user-1/posts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]string{"id": "post-1", "url": "https://medium.com/@nicki/post-1"},
		})
	})
	mux.HandleFunc("/v1/images", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]string{"url": "https://cdn-images-1.medium.com/0*abc.png", "md5": "d87e"},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	b := &strings.Builder{}
	root := NewRootCmd()
	root.SetOut(b)
	root.SetErr(b)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return b.String()
}

func TestCLI_TokenLifecycleAndCalls(t *testing.T) {
	srv := newStubServer(t)
	t.Setenv("MEDIUM_CREDENTIALS_PATH", filepath.Join(t.TempDir(), "credentials.db"))

	// config set-token / get-token
	out := runCmd(t, "config", "set-token", "stored-token")
	if !strings.Contains(out, "Token set successfully") {
		t.Fatalf("set-token output: %q", out)
	}
	out = runCmd(t, "config", "get-token")
	if !strings.Contains(out, "Token: stored-token") {
		t.Fatalf("get-token output: %q", out)
	}

	// whoami picks up the stored token
	out = runCmd(t, "whoami", "--api-url", srv.URL)
	if !strings.Contains(out, "Authenticated as Nicki Minaj (@nicki)") {
		t.Fatalf("whoami output: %q", out)
	}

	// login exchange overwrites the stored pair
	runCmd(t, "login", "exchange", "--api-url", srv.URL, "--code", "mycode", "--redirect-url", "http://example.com/cb")
	out = runCmd(t, "config", "get-token")
	if !strings.Contains(out, "Token: exchanged-access") {
		t.Fatalf("token not updated after exchange: %q", out)
	}

	// login refresh consumes the stored refresh token
	out = runCmd(t, "login", "refresh", "--api-url", srv.URL)
	if !strings.Contains(out, "Access token refreshed") {
		t.Fatalf("refresh output: %q", out)
	}

	// config rm-token
	runCmd(t, "config", "rm-token")
	root := NewRootCmd()
	root.SetArgs([]string{"config", "get-token"})
	if err := root.Execute(); err == nil {
		t.Fatal("get-token should fail after rm-token")
	}
}

func TestCLI_CreatePostFromMarkdownFile(t *testing.T) {
	srv := newStubServer(t)
	t.Setenv("MEDIUM_CREDENTIALS_PATH", filepath.Join(t.TempDir(), "credentials.db"))

	postPath := filepath.Join(t.TempDir(), "post.md")
	if err := os.WriteFile(postPath, []byte("# Hello\n\nBody."), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out := runCmd(t, "create-post", "My Title", postPath,
		"--api-url", srv.URL, "--token", "direct-token", "--tags", "go,sdk")
	if !strings.Contains(out, "Post created successfully: https://medium.com/@nicki/post-1") {
		t.Fatalf("create-post output: %q", out)
	}
}

func TestCLI_CreatePostRawContentRequiresFormat(t *testing.T) {
	t.Setenv("MEDIUM_CREDENTIALS_PATH", filepath.Join(t.TempDir(), "credentials.db"))

	root := NewRootCmd()
	root.SetArgs([]string{"create-post", "Title", "raw body with no format", "--token", "tok"})
	if err := root.Execute(); err == nil {
		t.Fatal("raw content without --content-format should fail")
	}
}

func TestCLI_UploadImage(t *testing.T) {
	srv := newStubServer(t)
	t.Setenv("MEDIUM_CREDENTIALS_PATH", filepath.Join(t.TempDir(), "credentials.db"))

	imgPath := filepath.Join(t.TempDir(), "cat.png")
	if err := os.WriteFile(imgPath, []byte{0x89, 'P', 'N', 'G'}, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out := runCmd(t, "upload-image", imgPath, "--api-url", srv.URL, "--token", "direct-token")
	if !strings.Contains(out, "Image uploaded successfully: https://cdn-images-1.medium.com/0*abc.png") {
		t.Fatalf("upload-image output: %q", out)
	}

	// Unsupported extension is rejected before any request.
	badPath := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(badPath, []byte("%PDF"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	root := NewRootCmd()
	root.SetArgs([]string{"upload-image", badPath, "--token", "tok"})
	if err := root.Execute(); err == nil {
		t.Fatal("unsupported image format should fail")
	}
}

func TestCLI_LoginURL(t *testing.T) {
	t.Setenv("MEDIUM_APPLICATION_ID", "myclientid")
	out := runCmd(t, "login", "url", "--redirect-url", "http://example.com/cb", "--state", "secretstate")
	if !strings.Contains(out, "https://medium.com/m/oauth/authorize?") {
		t.Fatalf("login url output: %q", out)
	}
	if !strings.Contains(out, "client_id=myclientid") || !strings.Contains(out, "state=secretstate") {
		t.Fatalf("login url missing query parameters: %q", out)
	}
}
