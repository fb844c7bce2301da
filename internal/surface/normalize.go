package surface

import (
	"fmt"
	"strings"
	"unicode"
)

// Convention identifies the naming convention a language declares operations in.
type Convention int

const (
	// Snake is snake_case (Python, PHP, Ruby, Rust).
	Snake Convention = iota
	// Camel is camelCase (TypeScript, Java, Dart).
	Camel
	// Pascal is PascalCase (Go exported methods).
	Pascal
)

// ParseConvention parses a convention tag as written in profile configuration.
func ParseConvention(s string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "snake_case", "snake":
		return Snake, nil
	case "camelcase", "camel":
		return Camel, nil
	case "pascalcase", "pascal":
		return Pascal, nil
	default:
		return Snake, fmt.Errorf("unknown naming convention: %q", s)
	}
}

// String returns the configuration spelling of the convention.
func (c Convention) String() string {
	switch c {
	case Camel:
		return "camelCase"
	case Pascal:
		return "PascalCase"
	default:
		return "snake_case"
	}
}

// Normalize converts a raw declared name to its canonical snake_case key.
// Snake names pass through unchanged. Camel and Pascal names get an underscore
// inserted before every uppercase letter that directly follows a lowercase
// letter or digit, then the whole name is lowercased. Normalizing an
// already-normalized key is a no-op.
func Normalize(raw string, conv Convention) Key {
	if conv == Snake {
		return Key(raw)
	}

	var b strings.Builder
	b.Grow(len(raw) + 4)

	runes := []rune(raw)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return Key(b.String())
}
