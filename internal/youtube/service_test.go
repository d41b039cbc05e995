// Service tests exercise the Google API client library path against mock
// servers, mirroring the REST client tests.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/api/option"
)

// newTestService builds a Service whose typed client and resolver both
// point at the test server.
func newTestService(t *testing.T, serverURL string) *Service {
	t.Helper()

	resolver := NewClient("test-key", WithBaseURL(serverURL))
	svc, err := NewService(context.Background(), "test-key", resolver, option.WithEndpoint(serverURL))
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

func TestService_ListVideos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{
				searchItem("video1", "First Video"),
				searchItem("video2", "Second Video"),
			},
		})
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)

	videos, err := svc.ListVideos(context.Background(), "UC123", ListOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(videos))
	}
	if videos[0].ID != "video1" || videos[0].Title != "First Video" {
		t.Errorf("unexpected first video: %+v", videos[0])
	}
	if videos[1].PublishedAt != "2024-01-15T12:00:00Z" {
		t.Errorf("expected publishedAt carried through, got %q", videos[1].PublishedAt)
	}
}

func TestService_ListVideos_Pagination(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"items": []map[string]interface{}{
				searchItem(fmt.Sprintf("video%d", requests), "v"),
			},
		}
		if requests == 0 {
			resp["nextPageToken"] = "page2"
		} else if got := r.URL.Query().Get("pageToken"); got != "page2" {
			t.Errorf("expected pageToken=page2 on second request, got %q", got)
		}
		requests++

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)

	videos, err := svc.ListVideos(context.Background(), "UC123", ListOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 2 {
		t.Errorf("expected 2 requests, got %d", requests)
	}
	if len(videos) != 2 {
		t.Errorf("expected 2 videos, got %d", len(videos))
	}
}

// Library errors must be translated into the package's taxonomy so callers
// handle one closed set regardless of which source they picked.
func TestService_ListVideos_TranslatesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error":{"code":403,"message":"quotaExceeded","errors":[{"reason":"quotaExceeded"}]}}`)
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)

	_, err := svc.ListVideos(context.Background(), "UC123", ListOptions{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != http.StatusForbidden {
		t.Errorf("expected code 403, got %d", apiErr.Code)
	}
}

func TestService_ResolveHandle_DelegatesToClient(t *testing.T) {
	var channelsHit bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/youtube/v3/channels" {
			channelsHit = true
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]interface{}{{"id": "UC123"}},
		})
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)

	id, err := svc.ResolveHandle(context.Background(), "@gocon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "UC123" {
		t.Errorf("expected UC123, got %q", id)
	}
	if !channelsHit {
		t.Error("expected resolution to go through the channels endpoint")
	}
}
