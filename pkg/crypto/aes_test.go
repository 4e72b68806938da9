package crypto

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := KeyFromHex(strings.Repeat("ab", 32))
	if err != nil {
		t.Fatalf("KeyFromHex() error = %v", err)
	}
	return key
}

func TestKeyFromHex(t *testing.T) {
	tests := []struct {
		name    string
		hexKey  string
		wantErr error
	}{
		{"valid 32-byte key", strings.Repeat("00", 32), nil},
		{"too short", strings.Repeat("00", 16), ErrInvalidKey},
		{"too long", strings.Repeat("00", 33), ErrInvalidKey},
		{"not hex", strings.Repeat("zz", 32), nil}, // wrapped hex error, checked below
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := KeyFromHex(tt.hexKey)
			if tt.name == "not hex" {
				if err == nil {
					t.Fatal("KeyFromHex() error = nil, want hex decode error")
				}
				return
			}
			if !errors.Is(err, tt.wantErr) && err != tt.wantErr {
				t.Errorf("KeyFromHex() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := testKey(t)

	plaintexts := []string{
		"123.456.789-09", // CPF format
		"",
		"ação e saúde", // multibyte
	}

	for _, plain := range plaintexts {
		enc, err := Encrypt(key, plain)
		if err != nil {
			t.Fatalf("Encrypt(%q) error = %v", plain, err)
		}
		got, err := Decrypt(key, enc)
		if err != nil {
			t.Fatalf("Decrypt() error = %v", err)
		}
		if got != plain {
			t.Errorf("round trip = %q, want %q", got, plain)
		}
	}
}

func TestEncryptNonceRandomness(t *testing.T) {
	key := testKey(t)

	a, _ := Encrypt(key, "same input")
	b, _ := Encrypt(key, "same input")
	if a == b {
		t.Error("Encrypt() produced identical ciphertexts for same input")
	}
}

func TestDecryptRejectsWrongKey(t *testing.T) {
	key := testKey(t)
	other, _ := KeyFromHex(strings.Repeat("cd", 32))

	enc, err := Encrypt(key, "secret")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if _, err := Decrypt(other, enc); err == nil {
		t.Error("Decrypt() with wrong key error = nil, want auth failure")
	}
}

func TestDecryptRejectsTampering(t *testing.T) {
	key := testKey(t)

	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{"not base64", "%%%not-base64%%%", nil},
		{"too short", "YWJj", ErrCiphertextTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decrypt(key, tt.encoded)
			if err == nil {
				t.Fatal("Decrypt() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Decrypt() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEncryptRejectsBadKey(t *testing.T) {
	if _, err := Encrypt([]byte("short"), "x"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Encrypt() error = %v, want ErrInvalidKey", err)
	}
	if _, err := Decrypt([]byte("short"), "x"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("Decrypt() error = %v, want ErrInvalidKey", err)
	}
}

func TestHash(t *testing.T) {
	got := Hash("12345678909")

	if len(got) != 64 {
		t.Fatalf("Hash() length = %d, want 64", len(got))
	}
	if _, err := hex.DecodeString(got); err != nil {
		t.Errorf("Hash() is not hex: %v", err)
	}
	if got != Hash("12345678909") {
		t.Error("Hash() is not deterministic")
	}
	if got == Hash("12345678900") {
		t.Error("Hash() collided for different inputs")
	}
}
