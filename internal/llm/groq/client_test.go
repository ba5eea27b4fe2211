package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/shopspring/decimal"

	"github.com/OnteruYallaiah21/StrcuctIq/internal/llm"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		ID:     "chatcmpl-123",
		Object: "chat.completion",
		Model:  "test-model",
		Choices: []openai.ChatCompletionChoice{
			{
				Index:        0,
				Message:      openai.ChatCompletionMessage{Role: "assistant", Content: content},
				FinishReason: "stop",
			},
		},
	}
}

func TestClient_ExtractRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected auth header %s", r.Header.Get("Authorization"))
		}
		content := "```json\n" +
			`{"store_name": "Walmart", "date": "2024-03-15", "subtotal": "10.00", "tax": 0.8, "total": 10.8,` +
			`"items": [{"item_name": "Milk", "item_price": 3.48}]}` + "\n```"
		_ = json.NewEncoder(w).Encode(chatResponse(content))
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, Timeout: 5 * time.Second}, nil, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	rec, err := client.ExtractRecord(context.Background(), "WALMART\nMilk $3.48")
	if err != nil {
		t.Fatalf("ExtractRecord failed: %v", err)
	}
	if rec.StoreName != "Walmart" {
		t.Errorf("store = %q", rec.StoreName)
	}
	if rec.Total == nil || !rec.Total.Equal(decimalFromString(t, "10.8")) {
		t.Errorf("total = %v", rec.Total)
	}
	if len(rec.Items) != 1 || rec.Items[0].Name != "Milk" {
		t.Errorf("items = %v", rec.Items)
	}
}

func TestClient_CacheSkipsSecondCall(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		_ = json.NewEncoder(w).Encode(chatResponse(`{"store_name": "Costco"}`))
	}))
	defer server.Close()

	cache := llm.NewMemoryCache(time.Minute)
	client, err := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, cache, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		rec, err := client.ExtractRecord(context.Background(), "same receipt text")
		if err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
		if rec.StoreName != "Costco" {
			t.Errorf("call %d: store = %q", i, rec.StoreName)
		}
	}
	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Errorf("API calls = %d, want 1", got)
	}
}

func TestClient_APIErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "boom", "type": "server_error"}}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, nil, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if _, err := client.ExtractRecord(context.Background(), "text"); err == nil {
		t.Error("expected error from failing API")
	}
}

func TestClient_MalformedPayloadRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse(`{"items": "definitely not an array"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, nil, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if _, err := client.ExtractRecord(context.Background(), "text"); err == nil {
		t.Error("expected schema rejection")
	}
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	if _, err := NewClient(Config{}, nil, nil); err == nil {
		t.Error("expected error without API key")
	}
}
