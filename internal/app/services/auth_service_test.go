package services

import (
	"errors"
	"testing"

	"github.com/oguzk/studenthub/internal/pkg/apperrors"
)

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
		wantErr   bool
	}{
		{"simple", "John Doe", "John", "Doe", false},
		{"extra spaces", "  John   Doe  ", "John", "Doe", false},
		{"tab separated", "John\tDoe", "John", "Doe", false},
		{"single token", "John", "", "", true},
		{"three tokens", "John Middle Doe", "", "", true},
		{"empty", "", "", "", true},
		{"whitespace only", "   ", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last, err := SplitFullName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitFullName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, apperrors.ErrValidationFailed) {
					t.Errorf("SplitFullName(%q) error = %v, want ErrValidationFailed", tt.input, err)
				}
				return
			}
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("SplitFullName(%q) = (%q, %q), want (%q, %q)",
					tt.input, first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "password1", false},
		{"valid mixed", "Abcdef12", false},
		{"too short", "pass1", true},
		{"no digit", "passwordabc", true},
		{"no letter", "12345678", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("validatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperrors.ErrInvalidPassword) {
				t.Errorf("validatePassword(%q) error = %v, want ErrInvalidPassword", tt.password, err)
			}
		})
	}
}

func TestEncodeDecodeUserID(t *testing.T) {
	for _, id := range []int64{1, 42, 1000000, 9223372036854775807} {
		encoded := EncodeUserID(id)
		decoded, err := DecodeUserID(encoded)
		if err != nil {
			t.Fatalf("DecodeUserID(%q) error = %v", encoded, err)
		}
		if decoded != id {
			t.Errorf("round trip of %d gave %d", id, decoded)
		}
	}
}

func TestDecodeUserIDInvalid(t *testing.T) {
	for _, encoded := range []string{"", "!!!not-base64!!!", "bm90LWEtbnVtYmVy"} {
		if _, err := DecodeUserID(encoded); err == nil {
			t.Errorf("DecodeUserID(%q) expected error, got nil", encoded)
		}
	}
}
