package log

import (
	"context"
	"testing"
)

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	if got := GetTraceID(ctx); got != "" {
		t.Errorf("expected empty trace id, got %q", got)
	}

	ctx = SetTraceID(ctx, "req-123")
	if got := GetTraceID(ctx); got != "req-123" {
		t.Errorf("expected req-123, got %q", got)
	}
}

func TestLogw(t *testing.T) {
	var structuredMsg string
	var structuredKV []any
	var plainArgs []any

	structured := func(msg string, kv ...any) {
		structuredMsg = msg
		structuredKV = kv
	}
	plain := func(a ...any) { plainArgs = a }

	t.Run("message with pairs", func(t *testing.T) {
		structuredMsg, structuredKV, plainArgs = "", nil, nil
		logw(structured, plain, []any{"done", "provider", "openai"})
		if structuredMsg != "done" || len(structuredKV) != 2 {
			t.Errorf("expected structured call, got msg=%q kv=%v", structuredMsg, structuredKV)
		}
		if plainArgs != nil {
			t.Errorf("plain should not be called")
		}
	})

	t.Run("plain values", func(t *testing.T) {
		structuredMsg, structuredKV, plainArgs = "", nil, nil
		logw(structured, plain, []any{"a", "b"})
		if len(plainArgs) != 2 {
			t.Errorf("expected plain call with 2 args, got %v", plainArgs)
		}
		if structuredMsg != "" {
			t.Errorf("structured should not be called")
		}
	})
}

func TestInit(t *testing.T) {
	for _, cfg := range []ZapConfig{
		{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON},
		{Level: "not-a-level"},
	} {
		if l := Init(cfg); l == nil {
			t.Fatalf("Init(%+v) returned nil", cfg)
		}
	}
}
