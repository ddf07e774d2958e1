package ai

import (
	"errors"
	"testing"
)

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name     string
		chatHost string
		want     string
	}{
		{name: "adds v1 suffix", chatHost: "http://localhost:11434", want: "http://localhost:11434/v1"},
		{name: "strips trailing slash", chatHost: "http://localhost:11434/", want: "http://localhost:11434/v1"},
		{name: "keeps existing v1", chatHost: "http://localhost:11434/v1", want: "http://localhost:11434/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(WithChatHost(tt.chatHost))
			cfg.Normalize()
			if cfg.ChatHost != tt.want {
				t.Errorf("ChatHost = %q, want %q", cfg.ChatHost, tt.want)
			}
		})
	}
}

func TestConfigNormalize_TranscriptionHost(t *testing.T) {
	cfg := NewConfig(WithTranscriptionHost("https://api.deepgram.com/"))
	cfg.Normalize()
	if cfg.TranscriptionHost != "https://api.deepgram.com" {
		t.Errorf("TranscriptionHost = %q", cfg.TranscriptionHost)
	}
}

func TestConfigValidateCredentials(t *testing.T) {
	cfg := NewConfig()
	err := cfg.ValidateCredentials()
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("ValidateCredentials() error = %v, want ErrNotConfigured", err)
	}

	cfg = NewConfig(WithTranscriptionKey("dg-key"))
	if err := cfg.ValidateCredentials(); err != nil {
		t.Errorf("ValidateCredentials() error = %v, want nil", err)
	}

	cfg = NewConfig(WithTranscriptionKey("dg-key"), WithChatToken(""))
	if err := cfg.ValidateCredentials(); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("ValidateCredentials() error = %v, want ErrNotConfigured", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := NewConfig(WithTranscriptionKey("dg-key"))
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	cfg = NewConfig(WithTranscriptionKey("dg-key"), WithChatModel(""))
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() expected error for missing chat model")
	}
}
