package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"tagcomposer/api"
	"tagcomposer/composer"
	"tagcomposer/status"
	"tagcomposer/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv, _ := newTestServerWithComposer(t)
	return srv
}

func newTestServerWithComposer(t *testing.T) (*httptest.Server, *composer.Composer) {
	t.Helper()
	n := status.New(time.Minute)
	t.Cleanup(n.Close)
	c := composer.New(context.Background(), storage.NewMemory(), n)
	staticFS := fstest.MapFS{
		"index.html": {Data: []byte("<html></html>")},
	}
	srv := httptest.NewServer(api.RegisterRoutes(c, n, staticFS))
	t.Cleanup(srv.Close)
	return srv, c
}

func doJSON(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
