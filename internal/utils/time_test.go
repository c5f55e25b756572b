package utils

import (
	"testing"
	"time"
)

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"nope", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeToMinutes(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeToMinutes(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeToMinutes(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidFormats(t *testing.T) {
	if !ValidTimeFormat("08:15") || ValidTimeFormat("8:15pm") {
		t.Error("ValidTimeFormat misjudged input")
	}
	if !ValidDateFormat("2025-03-10") || ValidDateFormat("03/10/2025") {
		t.Error("ValidDateFormat misjudged input")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0m"},
		{-time.Minute, "0m"},
		{30 * time.Second, "<1m"},
		{5 * time.Minute, "5m"},
		{90 * time.Minute, "1h 30m"},
		{25 * time.Hour, "25h 0m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := ExpandHome("~/x/y")
	if err != nil {
		t.Fatalf("ExpandHome failed: %v", err)
	}
	if home == "~/x/y" {
		t.Error("expected ~ expanded")
	}

	plain, err := ExpandHome("/abs/path")
	if err != nil {
		t.Fatalf("ExpandHome failed: %v", err)
	}
	if plain != "/abs/path" {
		t.Errorf("expected absolute path untouched, got %q", plain)
	}
}
