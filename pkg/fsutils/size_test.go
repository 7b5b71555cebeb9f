package fsutils

import (
	"testing"
)

func TestGetSizeShortText(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{-1, "0B"},
		{0, "0B"},
		{500, "500B"},
		{1023, "1023B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{10 * 1024, "10KB"},
		{1024 * 1024, "1.0MB"},
		{300 * 1024 * 1024, "300MB"},
		{1024 * 1024 * 1024, "1.0GB"},
		{1024 * 1024 * 1024 * 1024, "1.0TB"},
		{2048 * 1024 * 1024 * 1024 * 1024, "2048TB"},
	}
	for _, tt := range tests {
		if got := GetSizeShortText(tt.size); got != tt.expected {
			t.Errorf("GetSizeShortText(%d) = %q, want %q", tt.size, got, tt.expected)
		}
	}
}
