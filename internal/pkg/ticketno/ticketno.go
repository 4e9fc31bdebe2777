// Package ticketno generates the human-readable numbers printed on
// admission tickets. The format is a display concern; the only contract is
// uniqueness, which the tickets table enforces with a unique constraint.
// Callers retry generation on a duplicate-key insert.
package ticketno

import (
	"crypto/rand"
	"fmt"
	"time"
)

const prefix = "PP"

// alphabet omits 0/O, 1/I and vowels so numbers read unambiguously over the
// counter and never spell anything.
const alphabet = "23456789BCDFGHJKLMNPQRSTVWXZ"

const suffixLen = 6

// Generate returns a number like "PP-20250110-K7Q2M4".
func Generate(now time.Time) (string, error) {
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), string(buf)), nil
}
