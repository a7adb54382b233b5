package captions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"subvocab/internal/config"
	"subvocab/internal/services"
)

const defaultHTTPTimeout = 30 * time.Second

// HTTPDoer describes the HTTP client used by the caption service.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches English caption tracks for a video.
type Client struct {
	apiKey       string
	baseURL      string
	timedTextURL string
	httpClient   HTTPDoer
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client (useful for tests/mocks).
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a caption client from configuration.
func NewClient(cfg config.YouTube, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		apiKey:       strings.TrimSpace(cfg.APIKey),
		baseURL:      strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		timedTextURL: strings.TrimRight(strings.TrimSpace(cfg.TimedTextURL), "/"),
		httpClient:   &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type captionListing struct {
	Items []captionItem `json:"items"`
}

type captionItem struct {
	ID      string `json:"id"`
	Snippet struct {
		VideoID   string `json:"videoId"`
		Language  string `json:"language"`
		TrackKind string `json:"trackKind"`
		BaseURL   string `json:"baseUrl"`
	} `json:"snippet"`
}

// FetchEnglishCaptions lists caption tracks for the video, selects the first
// English one, downloads its payload, and parses it into timed cues. The
// returned slice is guaranteed non-empty on success.
func (c *Client) FetchEnglishCaptions(ctx context.Context, videoID string) ([]Line, error) {
	videoID = strings.TrimSpace(videoID)
	if c.apiKey == "" {
		return nil, services.Wrap(services.ErrCredentialMissing, "captions", "list", "youtube api key not configured", nil)
	}
	if videoID == "" {
		return nil, services.Wrap(services.ErrParsing, "captions", "list", "video id required", nil)
	}

	track, err := c.selectEnglishTrack(ctx, videoID)
	if err != nil {
		return nil, err
	}

	payload, err := c.downloadTrack(ctx, videoID, track)
	if err != nil {
		return nil, err
	}

	lines := ParseWebVTT(payload)
	if len(lines) == 0 {
		return nil, services.Wrap(services.ErrParsing, "captions", "parse", "payload contained no usable cues", nil)
	}
	return lines, nil
}

func (c *Client) selectEnglishTrack(ctx context.Context, videoID string) (captionItem, error) {
	var empty captionItem

	query := url.Values{}
	query.Set("part", "snippet")
	query.Set("videoId", videoID)
	query.Set("key", c.apiKey)
	endpoint := c.baseURL + "/captions?" + query.Encode()

	body, err := c.get(ctx, endpoint, "list")
	if err != nil {
		return empty, err
	}

	var listing captionListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return empty, services.Wrap(services.ErrParsing, "captions", "list", "decode listing", err)
	}

	for _, item := range listing.Items {
		if isEnglish(item.Snippet.Language) {
			return item, nil
		}
	}
	return empty, services.Wrap(services.ErrNoCaptions, "captions", "select", fmt.Sprintf("no English caption track for video %s", videoID), nil)
}

func (c *Client) downloadTrack(ctx context.Context, videoID string, track captionItem) (string, error) {
	downloadURL := track.Snippet.BaseURL
	// Auto-generated tracks are not downloadable via baseUrl; use the
	// timed-text endpoint instead.
	if strings.EqualFold(track.Snippet.TrackKind, "asr") {
		query := url.Values{}
		query.Set("v", videoID)
		query.Set("lang", track.Snippet.Language)
		query.Set("fmt", "srv1")
		downloadURL = c.timedTextURL + "?" + query.Encode()
	}
	if strings.TrimSpace(downloadURL) == "" {
		return "", services.Wrap(services.ErrParsing, "captions", "download", "caption track has no download url", nil)
	}

	body, err := c.get(ctx, downloadURL, "download")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, endpoint, operation string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrNetwork, "captions", operation, "build request", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrNetwork, "captions", operation, "request failed", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, services.Wrap(services.ErrNetwork, "captions", operation, "read body", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, services.Wrap(services.ErrNetwork, "captions", operation,
			fmt.Sprintf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(body))), nil)
	}
	return body, nil
}

// isEnglish reports whether a track language code denotes English, covering
// "en" and regional variants like "en-US" or "en-GB".
func isEnglish(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	tag, err := language.Parse(code)
	if err != nil {
		lower := strings.ToLower(code)
		return lower == "en" || strings.HasPrefix(lower, "en-")
	}
	base, _ := tag.Base()
	return base.String() == "en"
}
