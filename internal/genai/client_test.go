package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := New(Config{
		APIKey:   "test-key",
		Model:    "gemini-1.5-flash",
		Endpoint: srv.URL,
	})
	return client, srv
}

func TestComplete(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		json.NewDecoder(r.Body).Decode(&gotBody)

		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{
				{Content: content{Parts: []part{{Text: "cleaned "}, {Text: "text"}}}},
			},
		})
	})
	defer srv.Close()

	got, err := client.Complete(context.Background(), "clean this up")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "cleaned text" {
		t.Errorf("Complete() = %q, want %q", got, "cleaned text")
	}

	if gotPath != "/models/gemini-1.5-flash:generateContent" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q, want %q", gotKey, "test-key")
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "clean this up" {
		t.Errorf("request body did not carry the prompt: %+v", gotBody)
	}
}

func TestComplete_APIError(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	})
	defer srv.Close()

	_, err := client.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Complete() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "PERMISSION_DENIED") {
		t.Errorf("Complete() error = %v, want PERMISSION_DENIED mention", err)
	}
}

func TestComplete_NoCandidates(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})
	defer srv.Close()

	_, err := client.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("Complete() error = nil, want error for empty candidates")
	}
}

func TestComplete_ContextCancelled(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Complete(ctx, "prompt"); err == nil {
		t.Fatal("Complete() error = nil, want context error")
	}
}
