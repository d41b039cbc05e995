package youtube

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// Service implements Source on top of the Google API client library. Handle
// resolution is delegated to the raw Client because the typed surface lags
// the forHandle parameter; the search pagination goes through the library.
type Service struct {
	svc      *ytapi.Service
	resolver *Client
}

// NewService creates a Service authenticated with apiKey. The resolver
// handles the channels endpoint; extra options (such as option.WithEndpoint
// in tests) are passed to the underlying library.
func NewService(ctx context.Context, apiKey string, resolver *Client, opts ...option.ClientOption) (*Service, error) {
	all := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := ytapi.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Service{svc: svc, resolver: resolver}, nil
}

// ResolveHandle looks up the channel ID for a handle.
func (s *Service) ResolveHandle(ctx context.Context, handle string) (string, error) {
	return s.resolver.ResolveHandle(ctx, handle)
}

// ListVideos pages through the channel's videos, newest first. Like
// Client.ListVideos, it returns whatever was accumulated before a
// mid-pagination failure together with the error.
func (s *Service) ListVideos(ctx context.Context, channelID string, opts ListOptions) ([]Video, error) {
	var all []Video
	pageToken := ""
	pages := 0
	for {
		call := s.svc.Search.List([]string{"snippet", "id"}).
			ChannelId(channelID).
			Order("date").
			MaxResults(pageSize).
			Type("video").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return all, translateGoogleError(err)
		}

		for _, item := range resp.Items {
			v := Video{}
			if item.Id != nil {
				v.ID = item.Id.VideoId
			}
			if item.Snippet != nil {
				v.Title = item.Snippet.Title
				v.Description = item.Snippet.Description
				v.PublishedAt = item.Snippet.PublishedAt
			}
			all = append(all, v)
		}

		pages++
		if opts.MaxPages > 0 && pages >= opts.MaxPages {
			break
		}
		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return all, nil
}

// translateGoogleError maps library errors onto the package's error
// taxonomy so callers handle one closed set regardless of transport.
func translateGoogleError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Message != "" {
			return &APIError{Code: gerr.Code, Message: gerr.Message}
		}
		return &StatusError{StatusCode: gerr.Code, Body: string(gerr.Body)}
	}
	return err
}
