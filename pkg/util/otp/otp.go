// Package otp generates and verifies the numeric one-time codes sent by
// SMS and email. Only the SHA-256 hash of a code is stored; comparison
// is constant-time.
package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrInvalidLength = errors.New("OTP length must be between 4 and 10")
	ErrMismatch      = errors.New("OTP does not match")
)

const (
	DefaultLength = 6
	MinLength     = 4
	MaxLength     = 10
)

// Generate creates a cryptographically secure numeric OTP of the given
// length, zero-padded.
func Generate(length int) (string, error) {
	if length < MinLength || length > MaxLength {
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

// GenerateDefault creates a 6-digit OTP.
func GenerateDefault() (string, error) {
	return Generate(DefaultLength)
}

// Hash returns the hex SHA-256 digest of a code, whitespace-trimmed so a
// code pasted with surrounding spaces still matches.
func Hash(code string) string {
	h := sha256.Sum256([]byte(strings.TrimSpace(code)))
	return hex.EncodeToString(h[:])
}

// Verify compares a plaintext code against a stored hash in constant
// time. Returns ErrMismatch when they differ.
func Verify(hash, code string) error {
	computed := Hash(code)
	if subtle.ConstantTimeCompare([]byte(hash), []byte(computed)) != 1 {
		return ErrMismatch
	}
	return nil
}
