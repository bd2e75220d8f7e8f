package config

import (
	"strings"
	"testing"
)

// Test struct for validating custom validators
type BaseURLTestStruct struct {
	URL string `validate:"omitempty,base_url"`
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"empty URL (optional)", "", true},
		{"plain http", "http://users", true},
		{"http with port", "http://users:8080", true},
		{"https", "https://stores.example.com", true},
		{"with path", "http://localhost:3000/payment", true},
		{"missing scheme", "users", false},
		{"unsupported scheme", "ftp://users", false},
		{"scheme only", "http://", false},
		{"host with space", "http://bad host", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := BaseURLTestStruct{URL: tt.url}
			err := validate.Struct(s)
			if tt.expected && err != nil {
				t.Errorf("expected valid, got error: %v", err)
			}
			if !tt.expected && err == nil {
				t.Errorf("expected invalid for URL %q, got valid", tt.url)
			}
		})
	}
}

func TestValidateWithDetails(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := ValidateWithDetails(cfg); err != nil {
			t.Errorf("expected default config to be valid, got: %v", err)
		}
	})

	t.Run("reports field namespace", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Services.Billing = "not-a-url"

		err := ValidateWithDetails(cfg)
		if err == nil {
			t.Fatal("expected validation error")
		}

		details, ok := err.(ValidationErrors)
		if !ok {
			t.Fatalf("expected ValidationErrors, got %T", err)
		}
		if len(details) != 1 {
			t.Fatalf("expected 1 error, got %d: %v", len(details), details)
		}
		if !strings.Contains(details[0].Field, "Services.Billing") {
			t.Errorf("expected field namespace to contain Services.Billing, got %q", details[0].Field)
		}
		if details[0].Value != "not-a-url" {
			t.Errorf("expected offending value to be reported, got %v", details[0].Value)
		}
	})

	t.Run("collects multiple errors", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Server.Port = 0
		cfg.Log.Level = "verbose"
		cfg.Services.Users = ""

		err := ValidateWithDetails(cfg)
		if err == nil {
			t.Fatal("expected validation error")
		}

		details, ok := err.(ValidationErrors)
		if !ok {
			t.Fatalf("expected ValidationErrors, got %T", err)
		}
		if len(details) != 3 {
			t.Errorf("expected 3 errors, got %d: %v", len(details), details)
		}

		msg := details.Error()
		if !strings.Contains(msg, "configuration validation failed") {
			t.Errorf("expected summary header in %q", msg)
		}
	})
}

func TestFormatValidationError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.App.Environment = "qa"

	err := ValidateWithDetails(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}

	details := err.(ValidationErrors)
	if len(details) != 1 {
		t.Fatalf("expected 1 error, got %d", len(details))
	}
	if !strings.Contains(details[0].Message, "must be one of") {
		t.Errorf("expected oneof message, got %q", details[0].Message)
	}
}
