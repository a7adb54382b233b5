package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"subvocab/internal/config"
	"subvocab/internal/gemini"
	"subvocab/internal/services"
)

const definitionsJSON = `[
	{"word":"adventure","definition":"an exciting trip","original_sentence":"What an adventure!","translated_sentence":"多么棒的冒险！"},
	{"word":"forest","definition":"a place with many trees","original_sentence":"They walked into the forest.","translated_sentence":"他们走进了森林。"}
]`

func newTestConfig(baseURL string) config.Gemini {
	return config.Gemini{
		APIKey:         "gm-key",
		BaseURL:        baseURL,
		Model:          "gemini-pro",
		TargetLanguage: "Chinese",
		Temperature:    0.3,
		TopK:           30,
		TopP:           0.7,
	}
}

func candidateEnvelope(text string) string {
	encoded, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return string(encoded)
}

func TestEnrichDecodesDefinitions(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-pro:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "gm-key" {
			t.Errorf("unexpected key %q", r.URL.Query().Get("key"))
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte(candidateEnvelope(definitionsJSON)))
	}))
	defer server.Close()

	client := gemini.NewClient(newTestConfig(server.URL))
	defs, err := client.Enrich(context.Background(), []string{"adventure", "forest"}, "They walked into the forest. What an adventure!")
	if err != nil {
		t.Fatalf("Enrich failed: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	if defs[0].Word != "adventure" || defs[0].TranslatedSentence != "多么棒的冒险！" {
		t.Fatalf("unexpected definition: %#v", defs[0])
	}

	genCfg, ok := gotBody["generationConfig"].(map[string]any)
	if !ok {
		t.Fatalf("missing generationConfig in request: %#v", gotBody)
	}
	if genCfg["temperature"] != 0.3 {
		t.Errorf("unexpected temperature %v", genCfg["temperature"])
	}
	settings, ok := gotBody["safetySettings"].([]any)
	if !ok || len(settings) != 4 {
		t.Fatalf("expected 4 safety settings, got %#v", gotBody["safetySettings"])
	}
}

func TestEnrichStripsMarkdownFences(t *testing.T) {
	fenced := "```json\n" + definitionsJSON + "\n```"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateEnvelope(fenced)))
	}))
	defer server.Close()

	client := gemini.NewClient(newTestConfig(server.URL))
	defs, err := client.Enrich(context.Background(), []string{"adventure", "forest"}, "transcript")
	if err != nil {
		t.Fatalf("Enrich failed on fenced payload: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
}

func TestEnrichMissingKeySkipsNetwork(t *testing.T) {
	cfg := newTestConfig("http://example.invalid")
	cfg.APIKey = ""
	client := gemini.NewClient(cfg, gemini.WithHTTPClient(failingDoer{t: t}))

	_, err := client.Enrich(context.Background(), []string{"adventure"}, "transcript")
	if !errors.Is(err, services.ErrCredentialMissing) {
		t.Fatalf("expected credential marker, got %v", err)
	}
}

func TestEnrichEmptyWordList(t *testing.T) {
	client := gemini.NewClient(newTestConfig("http://example.invalid"),
		gemini.WithHTTPClient(failingDoer{t: t}))

	_, err := client.Enrich(context.Background(), nil, "transcript")
	if !errors.Is(err, services.ErrEmptyCandidates) {
		t.Fatalf("expected empty-candidate marker, got %v", err)
	}
}

func TestEnrichSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	client := gemini.NewClient(newTestConfig(server.URL))
	_, err := client.Enrich(context.Background(), []string{"adventure"}, "transcript")
	if !errors.Is(err, services.ErrNetwork) {
		t.Fatalf("expected network marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "API key not valid") {
		t.Fatalf("expected api message in error, got %v", err)
	}
}

func TestEnrichNoCandidatesIsParsingError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := gemini.NewClient(newTestConfig(server.URL))
	_, err := client.Enrich(context.Background(), []string{"adventure"}, "transcript")
	if !errors.Is(err, services.ErrParsing) {
		t.Fatalf("expected parsing marker, got %v", err)
	}
}

func TestEnrichGarbagePayloadIsParsingError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateEnvelope("I could not produce JSON for that request.")))
	}))
	defer server.Close()

	client := gemini.NewClient(newTestConfig(server.URL))
	_, err := client.Enrich(context.Background(), []string{"adventure"}, "transcript")
	if !errors.Is(err, services.ErrParsing) {
		t.Fatalf("expected parsing marker, got %v", err)
	}
}

func TestBuildPromptMentionsWordsAndLanguage(t *testing.T) {
	prompt := gemini.BuildPrompt([]string{"adventure", "forest"}, "the transcript text", "Spanish")
	for _, want := range []string{"- adventure", "- forest", "the transcript text", "Spanish", "original_sentence", "translated_sentence"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

type failingDoer struct {
	t *testing.T
}

func (d failingDoer) Do(req *http.Request) (*http.Response, error) {
	d.t.Fatalf("unexpected network request to %s", req.URL)
	return nil, errors.New("unreachable")
}
