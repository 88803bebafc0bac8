// Package couponcode generates donation reward coupon codes.
package couponcode

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

const (
	Prefix       = "DONATE"
	randomLength = 6
	alphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var pattern = regexp.MustCompile(`^` + Prefix + `[A-Z0-9]{` + fmt.Sprint(randomLength) + `}$`)

// Generate returns a fresh code: the fixed prefix plus 6 random symbols
// drawn from the 36-character uppercase alphanumeric alphabet. Uniqueness
// against stored codes is the caller's concern.
func Generate() (string, error) {
	buf := make([]byte, randomLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return Prefix + string(buf), nil
}

func IsWellFormed(code string) bool {
	return pattern.MatchString(code)
}
