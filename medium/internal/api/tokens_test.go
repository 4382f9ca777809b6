package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestExchangeToken_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/tokens" || r.Method != http.MethodPost {
			t.Errorf("unexpected route: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.PostFormValue("grant_type"); got != "authorization_code" {
			t.Errorf("grant_type = %q", got)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token_type":   "Bearer",
			"access_token": "myaccesstoken",
		})
	}))
	defer srv.Close()

	form := url.Values{"grant_type": {"authorization_code"}, "code": {"mycode"}}
	tok, err := ExchangeToken(context.Background(), srv.Client(), srv.URL, form)
	if err != nil || tok == nil || tok.AccessToken != "myaccesstoken" {
		t.Fatalf("ExchangeToken unexpected: got=%+v err=%v", tok, err)
	}
}

func TestExchangeToken_Error(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"message": "Invalid code.", "code": 6000}},
		})
	}))
	defer srv.Close()

	_, err := ExchangeToken(context.Background(), srv.Client(), srv.URL, url.Values{})
	if err == nil {
		t.Fatal("expected error")
	}
}
