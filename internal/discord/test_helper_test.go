package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// apiPath is the path discordgo requests for an API route
func apiPath(route string) string {
	return "/api/v" + discordgo.APIVersion + route
}

// newTestServer starts a fake Discord API and returns an HTTP client that
// sends every request, whatever its host, to that server.
func newTestServer(t *testing.T, mux *http.ServeMux) *http.Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	target, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("Failed to parse test server url: %v", err)
	}
	return &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			r := req.Clone(req.Context())
			r.URL.Scheme = target.Scheme
			r.URL.Host = target.Host
			r.Host = target.Host
			return http.DefaultTransport.RoundTrip(r)
		},
	}}
}

func newTestClient(t *testing.T, mux *http.ServeMux) Client {
	t.Helper()
	client, err := NewBotClient("test-token", WithHTTPClient(newTestServer(t, mux)))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("Failed to encode response: %v", err)
	}
}
