package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"subvocab/internal/config"
	"subvocab/internal/services"
)

const defaultHTTPTimeout = 120 * time.Second

// Safety categories relaxed for children's educational content; the default
// thresholds reject harmless transcript snippets too aggressively.
var safetyCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

// HTTPDoer describes the HTTP client used for enrichment requests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// WordDefinition is one enriched vocabulary entry returned by the model.
type WordDefinition struct {
	Word               string `json:"word"`
	Definition         string `json:"definition"`
	OriginalSentence   string `json:"original_sentence"`
	TranslatedSentence string `json:"translated_sentence"`
}

// Client wraps the Gemini generateContent API.
type Client struct {
	cfg        config.Gemini
	httpClient HTTPDoer
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs an enrichment client from configuration.
func NewClient(cfg config.Gemini, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	cfg.Model = strings.TrimSpace(cfg.Model)
	client := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type generateRequest struct {
	Contents         []content       `json:"contents"`
	GenerationConfig generationCfg   `json:"generationConfig"`
	SafetySettings   []safetySetting `json:"safetySettings"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationCfg struct {
	Temperature float64 `json:"temperature"`
	TopK        int     `json:"topK"`
	TopP        float64 `json:"topP"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type apiErrorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Enrich requests definitions and example sentences for the supplied words in
// one batched call. The transcript gives the model context for sentence
// selection. Results preserve whatever subset the model returned; callers
// should not assume every requested word comes back.
func (c *Client) Enrich(ctx context.Context, wordList []string, transcript string) ([]WordDefinition, error) {
	if c.cfg.APIKey == "" {
		return nil, services.Wrap(services.ErrCredentialMissing, "gemini", "enrich", "gemini api key not configured", nil)
	}
	if len(wordList) == 0 {
		return nil, services.Wrap(services.ErrEmptyCandidates, "gemini", "enrich", "no words to enrich", nil)
	}

	payload := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: BuildPrompt(wordList, transcript, c.cfg.TargetLanguage)}}},
		},
		GenerationConfig: generationCfg{
			Temperature: c.cfg.Temperature,
			TopK:        c.cfg.TopK,
			TopP:        c.cfg.TopP,
		},
		SafetySettings: blockNoneSettings(),
	}

	text, err := c.generate(ctx, payload)
	if err != nil {
		return nil, err
	}

	var definitions []WordDefinition
	if err := decodeModelJSON(text, &definitions); err != nil {
		return nil, services.Wrap(services.ErrParsing, "gemini", "enrich", "decode model payload", err)
	}

	cleaned := make([]WordDefinition, 0, len(definitions))
	for _, def := range definitions {
		def.Word = strings.ToLower(strings.TrimSpace(def.Word))
		def.Definition = strings.TrimSpace(def.Definition)
		def.OriginalSentence = strings.TrimSpace(def.OriginalSentence)
		def.TranslatedSentence = strings.TrimSpace(def.TranslatedSentence)
		if def.Word == "" {
			continue
		}
		cleaned = append(cleaned, def)
	}
	if len(cleaned) == 0 {
		return nil, services.Wrap(services.ErrParsing, "gemini", "enrich", "model returned no usable definitions", nil)
	}
	return cleaned, nil
}

func (c *Client) generate(ctx context.Context, payload generateRequest) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", services.Wrap(services.ErrParsing, "gemini", "generate", "encode request", err)
	}

	query := url.Values{}
	query.Set("key", c.cfg.APIKey)
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?%s", c.cfg.BaseURL, c.cfg.Model, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", services.Wrap(services.ErrNetwork, "gemini", "generate", "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", services.Wrap(services.ErrNetwork, "gemini", "generate", "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", services.Wrap(services.ErrNetwork, "gemini", "generate", "read body", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", services.Wrap(services.ErrNetwork, "gemini", "generate", formatAPIError(resp.StatusCode, body), nil)
	}

	var decoded generateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", services.Wrap(services.ErrParsing, "gemini", "generate", "decode response envelope", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", services.Wrap(services.ErrParsing, "gemini", "generate", "response contained no candidates", nil)
	}
	text := strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", services.Wrap(services.ErrParsing, "gemini", "generate", "candidate text empty", nil)
	}
	return text, nil
}

func blockNoneSettings() []safetySetting {
	settings := make([]safetySetting, 0, len(safetyCategories))
	for _, category := range safetyCategories {
		settings = append(settings, safetySetting{Category: category, Threshold: "BLOCK_NONE"})
	}
	return settings
}

func formatAPIError(statusCode int, body []byte) string {
	var envelope apiErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return fmt.Sprintf("api error %d (%s): %s", statusCode, envelope.Error.Status, envelope.Error.Message)
	}
	return fmt.Sprintf("http %d: %s", statusCode, strings.TrimSpace(string(body)))
}
