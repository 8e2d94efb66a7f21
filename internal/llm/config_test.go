package llm

import (
	"errors"
	"testing"
)

func TestResolveCredential_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		stored   string
		explicit string
		want     string
	}{
		{"explicit wins over all", "env-key", "stored-key", "explicit-key", "explicit-key"},
		{"stored wins over env", "env-key", "stored-key", "", "stored-key"},
		{"env as last resort", "env-key", "", "", "env-key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Gemini.APIKey = tt.env

			if err := cfg.ResolveCredential(tt.explicit, tt.stored); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Gemini.APIKey != tt.want {
				t.Errorf("resolved key = %q, want %q", cfg.Gemini.APIKey, tt.want)
			}
		})
	}
}

func TestResolveCredential_Missing(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ResolveCredential("", "")
	var merr *ErrMissingCredential
	if !errors.As(err, &merr) {
		t.Fatalf("expected *ErrMissingCredential, got %v", err)
	}
	if merr.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", merr.Provider)
	}
}

func TestResolveCredential_MockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.ResolveCredential("", ""); err != nil {
		t.Fatalf("mock provider must not require a key: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error with no API key set")
	}

	cfg.Gemini.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}
