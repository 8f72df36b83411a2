package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmertens/haulsched/core/logger"
)

type fakeCompleter struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func newTestClient(c completer) *Client {
	return &Client{completer: c, log: logger.NopLogger{}}
}

func TestDecideTransportFailure(t *testing.T) {
	c := newTestClient(&fakeCompleter{err: fmt.Errorf("connection refused")})
	rec, include := c.Decide(context.Background(), "204", "payload")
	if !include {
		t.Fatalf("failed call must still be included")
	}
	if rec.VehicleID != "204" || rec.SelectedJobs == nil || len(rec.SelectedJobs) != 0 {
		t.Fatalf("expected empty fallback, got %#v", rec)
	}
}

func TestDecideUnparseableReply(t *testing.T) {
	c := newTestClient(&fakeCompleter{text: "no json here"})
	rec, include := c.Decide(context.Background(), "219", "payload")
	if !include || rec.VehicleID != "219" || len(rec.SelectedJobs) != 0 {
		t.Fatalf("expected empty fallback, got %#v include=%v", rec, include)
	}
}

func TestDecideMissingJobsKeyExcluded(t *testing.T) {
	c := newTestClient(&fakeCompleter{text: `{"truck": "204"}`})
	_, include := c.Decide(context.Background(), "204", "payload")
	if include {
		t.Fatalf("reply without recommended_jobs must be excluded")
	}
}

func TestDecideParsedReply(t *testing.T) {
	c := newTestClient(&fakeCompleter{text: `Recommendation below.
{"truck": "204", "recommended_jobs": [{"job_name": "Riverwalk", "material": "Pine", "bid_qty": 35, "start_time": "7:00 AM", "address": "9 River Rd"}]}`})
	rec, include := c.Decide(context.Background(), "204", "payload")
	if !include || len(rec.SelectedJobs) != 1 || rec.SelectedJobs[0].JobName != "Riverwalk" {
		t.Fatalf("unexpected recommendation %#v", rec)
	}
}

func TestClientAgainstStubEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content := `{"truck": "204", "recommended_jobs": []}`
		resp := map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 0,
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer srv.Close()

	t.Setenv("ORACLE_TEST_KEY", "test-key")
	cfg := Config{BaseURL: srv.URL, APIKeyEnv: "ORACLE_TEST_KEY"}
	cfg.SetDefaults()
	cfg.BaseURL = srv.URL
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	c := New(cfg, nil)
	rec, include := c.Decide(context.Background(), "204", "payload")
	if !include || rec.VehicleID != "204" || len(rec.SelectedJobs) != 0 {
		t.Fatalf("unexpected recommendation %#v include=%v", rec, include)
	}
}

func TestClientErrorStatusDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	cfg := Config{BaseURL: srv.URL}
	cfg.SetDefaults()
	cfg.BaseURL = srv.URL

	c := New(cfg, nil)
	rec, include := c.Decide(context.Background(), "219", "payload")
	if !include || rec.VehicleID != "219" || len(rec.SelectedJobs) != 0 {
		t.Fatalf("expected empty fallback, got %#v", rec)
	}
}

func TestConfigDefaultsAndValidate(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	if cfg.Model == "" || cfg.BaseURL == "" || cfg.TimeoutSeconds != 30 || cfg.Temperature != 0.3 {
		t.Fatalf("defaults not applied: %#v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	bad := Config{BaseURL: "x", Model: "m"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected timeout validation error")
	}
}
