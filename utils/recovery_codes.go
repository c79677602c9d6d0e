package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateRecoveryCodes creates one-time 2FA recovery codes.
func GenerateRecoveryCodes(count int) ([]string, error) {
	codes := make([]string, count)
	for i := range codes {
		buf := make([]byte, 5)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("failed to generate recovery code: %w", err)
		}
		codes[i] = hex.EncodeToString(buf)
	}
	return codes, nil
}
