package hash

import (
	"testing"
)

func TestCalculateHash(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		key       string
		wantEmpty bool
	}{
		{"empty key", "data", "", true},
		{"empty data", "", "key", false},
		{"csv body", "name,email\nJane,jane@example.org", "key", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHash(tt.data, tt.key)
			if tt.wantEmpty && got != "" {
				t.Errorf("CalculateHash(%q, %q) = %q, want empty string", tt.data, tt.key, got)
			}
			if !tt.wantEmpty && len(got) != 64 {
				t.Errorf("CalculateHash(%q, %q) = %q, want 64 hex chars", tt.data, tt.key, got)
			}
		})
	}
}

func TestCalculateHash_Deterministic(t *testing.T) {
	if CalculateHash("data", "key") != CalculateHash("data", "key") {
		t.Error("same input produced different hashes")
	}
	if CalculateHash("data", "key") == CalculateHash("data", "other") {
		t.Error("different keys produced the same hash")
	}
}

func TestVerifyHash(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		key       string
		hash      string
		wantError bool
	}{
		{"empty key", "data", "", "any", false},
		{"correct hash", "data", "key", CalculateHash("data", "key"), false},
		{"wrong hash", "data", "key", "wronghash", true},
		{"tampered data", "data2", "key", CalculateHash("data", "key"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyHash(tt.data, tt.key, tt.hash)
			if (err != nil) != tt.wantError {
				t.Errorf("VerifyHash(%q, %q, %q) error = %v, wantError %v", tt.data, tt.key, tt.hash, err, tt.wantError)
			}
		})
	}
}
