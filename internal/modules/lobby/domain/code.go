package domain

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand"
	"regexp"
	"strings"
)

const (
	CodeLength   = 6
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	minNameLength = 1
	maxNameLength = 20
)

var codePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// GenerateCode produces one candidate lobby code. Uniqueness against live
// lobbies is the caller's job - generation itself is blind.
func GenerateCode() string {
	code := make([]byte, CodeLength)
	for i := range code {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			// fall back to math/rand if crypto fails
			code[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
			continue
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code)
}

// NormalizeCode uppercases a caller-typed code and validates its shape.
func NormalizeCode(raw string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if !codePattern.MatchString(code) {
		return "", fmt.Errorf("invalid lobby code - '%s'", raw)
	}
	return code, nil
}

// NormalizeName trims a participant name and bounds its length.
func NormalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if len(name) < minNameLength || len(name) > maxNameLength {
		return "", fmt.Errorf("name must be between %d and %d characters", minNameLength, maxNameLength)
	}
	return name, nil
}
