package config

import (
	"testing"

	"github.com/thoreinstein/cctarget/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		wantN   int
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
			wantN:  0,
		},
		{
			name:    "version too high",
			mutate:  func(c *Config) { c.Version = 3 },
			wantErr: ErrUnsupportedVersion,
			wantN:   1,
		},
		{
			name:   "unknown level",
			mutate: func(c *Config) { c.Log.Level = "chatty" },
			wantN:  1,
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Log.Format = "logfmt" },
			wantErr: ErrInvalidLogFormat,
			wantN:   1,
		},
		{
			name:   "unknown color",
			mutate: func(c *Config) { c.Color = "rainbow" },
			wantN:  1,
		},
		{
			name:    "null byte in log file",
			mutate:  func(c *Config) { c.Log.File = "bad\x00path" },
			wantErr: ErrInvalidPath,
			wantN:   1,
		},
		{
			name: "several problems reported together",
			mutate: func(c *Config) {
				c.Version = 0
				c.Color = "rainbow"
			},
			wantN: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := Validate(cfg)
			if len(errs) != tt.wantN {
				t.Fatalf("Validate() returned %d errors (%v), want %d", len(errs), errs, tt.wantN)
			}
			if tt.wantErr != nil && !errors.Is(errs[0], tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", errs[0], tt.wantErr)
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	if errs := Validate(nil); len(errs) != 1 {
		t.Errorf("Validate(nil) returned %d errors, want 1", len(errs))
	}
}
