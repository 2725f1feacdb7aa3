//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/version", nil, false)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var info struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if info.Version == "" {
		t.Error("Expected a version string")
	}
}

func TestLoginRedirectsToDiscord(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/auth/login", nil, false)

	if resp.StatusCode == http.StatusServiceUnavailable {
		t.Skip("OAuth not configured on this deployment")
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("Expected status 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); !strings.HasPrefix(loc, "https://discord.com/") {
		t.Errorf("Expected redirect to Discord, got %q", loc)
	}
}

func TestAPIRequiresSession(t *testing.T) {
	for _, path := range []string{"/api/v1/me", "/api/v1/wallet", "/api/v1/guilds"} {
		resp, _ := makeRequest(t, "GET", path, nil, false)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s: expected status 401, got %d", path, resp.StatusCode)
		}
	}
}
