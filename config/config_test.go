package config

import (
	"strings"
	"testing"
)

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr string
	}{
		{
			name:    "no providers",
			cfg:     LLMConfig{},
			wantErr: "no LLM providers configured",
		},
		{
			name: "missing name",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Enabled: true, Priority: 1},
			}},
			wantErr: "name is required",
		},
		{
			name: "non-positive priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 0},
			}},
			wantErr: "priority must be positive",
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1},
				{Name: "deepseek", Enabled: true, Priority: 1},
			}},
			wantErr: "duplicate priority",
		},
		{
			name: "all disabled",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "openai", Enabled: false, Priority: 1},
			}},
			wantErr: "no enabled LLM providers",
		},
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-3.5-turbo"},
				{Name: "deepseek", Enabled: true, Priority: 2},
				{Name: "qwen", Enabled: false},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("SKILL_TEST_KEY", "sk-test")

	if got := expandEnvVar("${SKILL_TEST_KEY}"); got != "sk-test" {
		t.Errorf("expected sk-test, got %q", got)
	}
	if got := expandEnvVar("plain-value"); got != "plain-value" {
		t.Errorf("expected plain-value, got %q", got)
	}
	if got := expandEnvVar(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestMapHelpers(t *testing.T) {
	m := map[string]interface{}{
		"name":     "openai",
		"enabled":  true,
		"priority": 2,
		"float":    float64(3),
	}

	if got := getStringFromMap(m, "name"); got != "openai" {
		t.Errorf("getStringFromMap = %q", got)
	}
	if got := getStringFromMap(m, "enabled"); got != "" {
		t.Errorf("expected empty string for non-string value, got %q", got)
	}
	if !getBoolFromMap(m, "enabled") {
		t.Errorf("getBoolFromMap = false")
	}
	if got := getIntFromMap(m, "priority"); got != 2 {
		t.Errorf("getIntFromMap = %d", got)
	}
	if got := getIntFromMap(m, "float"); got != 3 {
		t.Errorf("getIntFromMap(float) = %d", got)
	}
	if got := getIntFromMap(m, "missing"); got != 0 {
		t.Errorf("getIntFromMap(missing) = %d", got)
	}
}
