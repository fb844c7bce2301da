package surface

import "strings"

// SplitParams splits raw parameter-list text into individual parameter tokens.
// Only top-level commas split: commas nested inside matching angle brackets,
// parentheses, square brackets, or braces belong to the enclosing parameter.
// Each token is trimmed and stripped of a trailing type annotation (":" up to
// the next top-level comma) and default-value suffix ("=" onward). Empty or
// whitespace-only input yields no tokens.
//
// Tokens are only meaningful as countable units; parameter naming conventions
// differ too much across languages for identity comparison.
func SplitParams(raw string) []string {
	var tokens []string
	for _, part := range splitTopLevel(raw) {
		if tok := cleanParam(part); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Arity returns the number of parameters declared by raw parameter-list text.
func Arity(raw string) int {
	return len(SplitParams(raw))
}

// TrimReceiver drops a leading receiver token (such as "self", "cls" or
// "&mut self") from raw parameter-list text. The receiver is an artifact of
// the declaration syntax, not part of the callable arity.
func TrimReceiver(raw string, receivers ...string) string {
	parts := splitTopLevel(raw)
	if len(parts) == 0 {
		return raw
	}

	first := strings.TrimSpace(parts[0])
	// Annotated receivers ("self: Self") still count as receivers.
	if idx := strings.IndexByte(first, ':'); idx >= 0 {
		first = strings.TrimSpace(first[:idx])
	}

	for _, recv := range receivers {
		if first == recv {
			rest := parts[1:]
			trimmed := make([]string, 0, len(rest))
			for _, p := range rest {
				trimmed = append(trimmed, strings.TrimSpace(p))
			}
			return strings.Join(trimmed, ", ")
		}
	}
	return raw
}

// splitTopLevel splits on commas not nested inside bracket pairs, preserving
// the raw token text.
func splitTopLevel(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var parts []string
	depth := 0
	start := 0
	for i, r := range raw {
		switch r {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, raw[start:i])
				start = i + len(",")
			}
		}
	}
	parts = append(parts, raw[start:])
	return parts
}

// cleanParam strips a type annotation and default value from one raw token,
// leaving the countable parameter unit.
func cleanParam(raw string) string {
	depth := 0
	for i, r := range raw {
		switch r {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			if depth > 0 {
				depth--
			}
		case ':', '=':
			if depth == 0 {
				return strings.TrimSpace(raw[:i])
			}
		}
	}
	return strings.TrimSpace(raw)
}
