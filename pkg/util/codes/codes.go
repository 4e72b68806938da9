// Package codes generates the human-shareable random codes used across
// the product: care-link invite codes and opaque URL tokens.
package codes

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var ErrInvalidLength = errors.New("invalid code length")

const (
	// InviteCodeByteLength yields 16 URL-safe chars, long enough that a
	// care-link invite cannot be guessed before it expires.
	InviteCodeByteLength = 12

	// TokenByteLength yields 32 hex chars for verification URLs.
	TokenByteLength = 16
)

// GenerateInviteCode creates a care-link invite code: a 16-character
// URL-safe base64 string, safe to embed in an accept link or read out
// over the phone at the front desk.
func GenerateInviteCode() (string, error) {
	return GenerateURLSafeToken(InviteCodeByteLength)
}

// GenerateVerificationToken creates an opaque token for verification
// URLs. Returns a 32-character hex string.
func GenerateVerificationToken() (string, error) {
	return GenerateSecureToken(TokenByteLength)
}

// GenerateSecureToken creates a cryptographically secure hex token of
// 2*byteLength characters.
func GenerateSecureToken(byteLength int) (string, error) {
	if byteLength < 1 {
		return "", ErrInvalidLength
	}

	b := make([]byte, byteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateURLSafeToken creates a URL-safe base64 token from byteLength
// random bytes.
func GenerateURLSafeToken(byteLength int) (string, error) {
	if byteLength < 1 {
		return "", ErrInvalidLength
	}

	b := make([]byte, byteLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GenerateNumericCode creates a numeric-only code of the given length,
// zero-padded.
func GenerateNumericCode(length int) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}

	max := new(big.Int)
	max.Exp(big.NewInt(10), big.NewInt(int64(length)), nil)

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate random number: %w", err)
	}

	format := fmt.Sprintf("%%0%dd", length)
	return fmt.Sprintf(format, n), nil
}

// FormatCode groups a code with dashes for readability:
// "ABCD1234" -> "ABCD-1234" with groupSize 4.
func FormatCode(code string, groupSize int) string {
	if groupSize < 1 || len(code) <= groupSize {
		return code
	}

	var parts []string
	for i := 0; i < len(code); i += groupSize {
		end := i + groupSize
		if end > len(code) {
			end = len(code)
		}
		parts = append(parts, code[i:end])
	}
	return strings.Join(parts, "-")
}

// ParseCode strips the formatting FormatCode added plus any whitespace
// a user pasted along.
func ParseCode(formatted string) string {
	code := strings.ReplaceAll(formatted, "-", "")
	code = strings.ReplaceAll(code, " ", "")
	return strings.TrimSpace(code)
}
