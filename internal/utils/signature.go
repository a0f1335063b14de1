package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Sign generates a hex encoded HMAC-SHA256 of payload
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// Verify checks a signature produced by Sign in constant time
func Verify(payload []byte, signature, secret string) error {
	got, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("failed to decode signature: %w", err)
	}
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	if !hmac.Equal(got, h.Sum(nil)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}
