package utils

import (
	"encoding/hex"
	"testing"
)

func TestNewSupportLinkID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := NewSupportLinkID()
		if err != nil {
			t.Fatalf("NewSupportLinkID() error = %v", err)
		}
		if len(id) != 24 {
			t.Fatalf("NewSupportLinkID() = %q, want 24 chars", id)
		}
		if _, err := hex.DecodeString(id); err != nil {
			t.Fatalf("NewSupportLinkID() = %q is not hex", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("NewSupportLinkID() returned duplicate %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNormalizeHandle(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Alice", "alice"},
		{"  @Bob_99 ", "bob_99"},
		{"carol", "carol"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeHandle(tt.input); got != tt.want {
				t.Errorf("NormalizeHandle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidHandle(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		comment string
	}{
		{"alice", true, "letters"},
		{"bob_99", true, "underscore and digits"},
		{"ab", false, "too short"},
		{"abcdefghijklmnopqrstuvwxyz0123456", false, "too long"},
		{"Alice", false, "upper case"},
		{"al ice", false, "space"},
		{"al-ice", false, "dash"},
		{"", false, "empty string"},
	}

	for _, tt := range tests {
		t.Run(tt.input+"_"+tt.comment, func(t *testing.T) {
			if got := IsValidHandle(tt.input); got != tt.want {
				t.Errorf("IsValidHandle(%q) = %v, want %v (%s)", tt.input, got, tt.want, tt.comment)
			}
		})
	}
}
