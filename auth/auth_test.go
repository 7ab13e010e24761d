// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

package auth

import "testing"

func TestValidateAdminToken(t *testing.T) {
	tests := []struct {
		name       string
		provided   string
		configured string
		wantErr    bool
	}{
		{"matching token", "secret-token", "secret-token", false},
		{"wrong token", "wrong", "secret-token", true},
		{"empty provided", "", "secret-token", true},
		{"empty configured never validates", "", "", true},
		{"prefix is not enough", "secret", "secret-token", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminToken(tt.provided, tt.configured)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdminToken(%q, %q) error = %v, wantErr %v",
					tt.provided, tt.configured, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateAdminToken(t *testing.T) {
	tok, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}
	if tok == "" {
		t.Error("Expected non-empty token")
	}

	other, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("GenerateAdminToken failed: %v", err)
	}
	if tok == other {
		t.Error("Expected distinct tokens from consecutive calls")
	}

	// Generated tokens validate against themselves
	if err := ValidateAdminToken(tok, tok); err != nil {
		t.Errorf("Generated token should validate: %v", err)
	}
}
