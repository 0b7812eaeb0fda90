// Package token issues and validates the capability tokens that let an
// unauthenticated customer act on one specific quote. Possession of a
// valid token is the entire authorization boundary for self-service.
package token

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Length is the canonical token length. One length everywhere; input of
// any other length is rejected before the database is touched.
const Length = 16

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// New generates a token from a cryptographically adequate random
// source: Length characters drawn uniformly from the uppercase
// alphanumeric alphabet. Collision checking against stored tokens is
// the caller's job.
func New() (string, error) {
	var b strings.Builder
	b.Grow(Length)
	buf := make([]byte, 1)
	for b.Len() < Length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		// Reject bytes past the largest multiple of len(alphabet) so
		// every character stays equally likely.
		if buf[0] >= byte(256-256%len(alphabet)) {
			continue
		}
		b.WriteByte(alphabet[int(buf[0])%len(alphabet)])
	}
	return b.String(), nil
}

// Normalize upper-cases and trims a candidate token exactly once.
// Comparison after Normalize is exact; there is no partial or
// case-insensitive matching beyond this step.
func Normalize(candidate string) string {
	return strings.ToUpper(strings.TrimSpace(candidate))
}

// ValidFormat checks length and alphabet only. It is the cheap
// pre-database rejection for malformed input; it says nothing about
// whether the token exists.
func ValidFormat(candidate string) bool {
	if len(candidate) != Length {
		return false
	}
	for i := 0; i < len(candidate); i++ {
		if !strings.ContainsRune(alphabet, rune(candidate[i])) {
			return false
		}
	}
	return true
}
