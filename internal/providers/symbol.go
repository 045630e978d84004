package providers

import (
	"fmt"
	"strings"
)

// NormalizeSymbol canonicalizes a user-supplied asset symbol: trims
// whitespace and uppercases. Returns an error for an empty result or
// characters outside the ticker alphabet.
func NormalizeSymbol(raw string) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if symbol == "" {
		return "", fmt.Errorf("symbol is empty")
	}
	if len(symbol) > 16 {
		return "", fmt.Errorf("symbol %q exceeds 16 characters", symbol)
	}

	for _, r := range symbol {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '^' || r == '=':
		default:
			return "", fmt.Errorf("symbol %q contains invalid character %q", symbol, r)
		}
	}

	return symbol, nil
}
