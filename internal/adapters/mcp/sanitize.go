package mcp

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 4KB, the common PATH_MAX.
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "DATAGATE_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
	ErrControlChar   = errors.New("input contains control characters")
)

// SanitizePath checks a path received from an agent before it reaches the filesystem.
// Surrounding whitespace is trimmed. Oversized input, invalid UTF-8 and any control
// character are rejected rather than repaired.
func SanitizePath(input string) (string, error) {
	limit := maxInputSize()
	if len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	for _, r := range input {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("%w: %U", ErrControlChar, r)
		}
	}
	return strings.TrimSpace(input), nil
}

func maxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
