package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const supportLinkBytes = 12

// NewSupportLinkID returns 24 random hex characters used in public support URLs.
func NewSupportLinkID() (string, error) {
	b := make([]byte, supportLinkBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func NormalizeHandle(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "@")))
}

// IsValidHandle accepts 3 to 32 characters of [a-z0-9_].
func IsValidHandle(s string) bool {
	if len(s) < 3 || len(s) > 32 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') && c != '_' {
			return false
		}
	}
	return true
}
