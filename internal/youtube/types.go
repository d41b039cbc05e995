// Package youtube provides clients for the YouTube Data API v3.
//
// This package enables ytcsv to:
// - Resolve a channel handle to its channel ID
// - Page through a channel's full video list via the search endpoint
// - Distinguish transport, API, and response-shape failures
package youtube

import "context"

// Video is one search result item, flattened to the fields ytcsv exports.
// All fields are kept as the API returned them; absent fields stay empty.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"published_at"`
}

// ListOptions controls how much of a channel's catalog is fetched.
type ListOptions struct {
	// MaxPages caps the number of search pages requested. 0 means no cap.
	MaxPages int
}

// Source resolves handles and lists videos. It is implemented by the REST
// Client and by the Service built on the Google API client library, so the
// CLI can switch between them.
type Source interface {
	ResolveHandle(ctx context.Context, handle string) (string, error)
	ListVideos(ctx context.Context, channelID string, opts ListOptions) ([]Video, error)
}
