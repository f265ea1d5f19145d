package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/psidex/kiu/internal/lib"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"missing url", func(c *Config) { c.URL = "" }, true},
		{"file url", func(c *Config) { c.URL = "file:///etc/passwd" }, true},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"no timeout", func(c *Config) { c.Timeout = lib.DurationFrom(0) }, true},
		{"quality", func(c *Config) { c.Quality = 101 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig("http://127.0.0.1:8080/")
			tt.modify(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestImageFormat(t *testing.T) {
	tests := []struct {
		quality int
		ext     string
	}{
		{DefaultQuality, ".png"},
		{100, ".png"},
		{90, ".jpg"},
		{0, ".jpg"},
	}
	for _, tt := range tests {
		cfg := DefaultConfig("http://127.0.0.1:8080/")
		cfg.Quality = tt.quality
		if got := cfg.Ext(); got != tt.ext {
			t.Errorf("quality %d: got %s, want %s", tt.quality, got, tt.ext)
		}
	}
}

func TestCaptureRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig("")
	cfg.Timeout = lib.DurationFrom(time.Second)
	if _, err := Capture(context.Background(), cfg); err == nil {
		t.Error("expected an error for a config without a url")
	}
}
