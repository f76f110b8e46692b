package utils

import (
	"testing"
	"time"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		current int64
		max     int64
		width   int
		want    string
	}{
		{"empty", 0, 100, 10, "░░░░░░░░░░"},
		{"half", 50, 100, 10, "█████░░░░░"},
		{"full", 100, 100, 10, "██████████"},
		{"overflow clamps", 150, 100, 10, "██████████"},
		{"negative clamps", -5, 100, 10, "░░░░░░░░░░"},
		{"zero max", 10, 0, 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressBar(tt.current, tt.max, tt.width); got != tt.want {
				t.Errorf("ProgressBar(%d, %d, %d) = %q, want %q",
					tt.current, tt.max, tt.width, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{360000, "360,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{25 * time.Minute, "25m"},
		{90 * time.Minute, "1h 30m"},
		{4 * time.Hour, "4h 0m"},
		{-time.Minute, "0m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
