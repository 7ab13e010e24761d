// Copyright (c) 2026 the pollsite authors.
// MIT licensed; see LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAdminToken = errors.New("invalid admin token")

// ValidateAdminToken checks a presented token against the configured
// one. The comparison is constant-time, and an empty configured token
// never validates.
func ValidateAdminToken(provided, configured string) error {
	if configured == "" {
		return ErrInvalidAdminToken
	}
	if !hmac.Equal([]byte(provided), []byte(configured)) {
		return ErrInvalidAdminToken
	}
	return nil
}

// GenerateAdminToken creates a random token suitable for ADMIN_TOKEN.
// Exposed for operators bootstrapping a deployment; the server itself
// only validates.
func GenerateAdminToken() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate admin token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}
