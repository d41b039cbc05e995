package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

const (
	defaultBaseURL = "https://www.googleapis.com"

	// pageSize is the maximum the search endpoint allows per request.
	pageSize = 50
)

// HTTPClient interface for making HTTP requests (allows injection for testing).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// Client is a YouTube Data API client using API-key authentication.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPClient
}

// NewClient creates a new YouTube API client with the given API key.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ResolveHandle looks up the channel ID for a handle. The handle is sent
// verbatim; a leading @ is accepted by the API.
func (c *Client) ResolveHandle(ctx context.Context, handle string) (string, error) {
	q := url.Values{}
	q.Set("part", "id")
	q.Set("forHandle", handle)
	q.Set("key", c.apiKey)

	body, err := c.get(ctx, "/youtube/v3/channels", q)
	if err != nil {
		return "", err
	}

	var resp channelListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &ShapeError{Endpoint: "channels", Err: err}
	}
	if resp.Error != nil {
		return "", &APIError{Code: resp.Error.Code, Message: resp.Error.Message}
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("%w: %s", ErrChannelNotFound, handle)
	}

	return resp.Items[0].ID, nil
}

// Videos returns a pager over the channel's video list, newest first.
func (c *Client) Videos(channelID string) *Pager {
	return &Pager{client: c, channelID: channelID}
}

// ListVideos drains the pager for channelID and returns every video in
// arrival order. On a mid-pagination failure the videos fetched so far are
// returned alongside the error so the caller can decide whether to keep them.
func (c *Client) ListVideos(ctx context.Context, channelID string, opts ListOptions) ([]Video, error) {
	pager := c.Videos(channelID)

	var all []Video
	pages := 0
	for pager.More() {
		page, err := pager.Next(ctx)
		if err != nil {
			return all, err
		}
		all = append(all, page...)
		pages++
		if opts.MaxPages > 0 && pages >= opts.MaxPages {
			break
		}
	}

	return all, nil
}

// Pager pulls one search page at a time. It is finite and cannot be
// restarted after a failure; create a new one to retry.
type Pager struct {
	client    *Client
	channelID string
	pageToken string
	done      bool
}

// More reports whether another page may be available.
func (p *Pager) More() bool {
	return !p.done
}

// Next fetches the next page of videos. It returns an empty slice without
// error once the pager is exhausted.
func (p *Pager) Next(ctx context.Context) ([]Video, error) {
	if p.done {
		return nil, nil
	}

	q := url.Values{}
	q.Set("part", "snippet,id")
	q.Set("channelId", p.channelID)
	q.Set("order", "date")
	q.Set("maxResults", strconv.Itoa(pageSize))
	q.Set("type", "video")
	q.Set("pageToken", p.pageToken)
	q.Set("key", p.client.apiKey)

	body, err := p.client.get(ctx, "/youtube/v3/search", q)
	if err != nil {
		p.done = true
		return nil, err
	}

	var resp searchListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		p.done = true
		return nil, &ShapeError{Endpoint: "search", Err: err}
	}
	if resp.Error != nil {
		p.done = true
		return nil, &APIError{Code: resp.Error.Code, Message: resp.Error.Message}
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		videos = append(videos, Video{
			ID:          item.ID.VideoID,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			PublishedAt: item.Snippet.PublishedAt,
		})
	}

	p.pageToken = resp.NextPageToken
	if p.pageToken == "" {
		p.done = true
	}

	return videos, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// API response types (private - implementation detail)

type apiErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type channelListResponse struct {
	Items []struct {
		ID string `json:"id"`
	} `json:"items"`
	Error *apiErrorPayload `json:"error"`
}

type searchListResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishedAt string `json:"publishedAt"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string           `json:"nextPageToken"`
	Error         *apiErrorPayload `json:"error"`
}
