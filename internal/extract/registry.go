package extract

import (
	"fmt"
	"strings"
)

// ForProfile picks the extractor for a profile. Explicit declaration patterns
// always win; otherwise the language's structural extractor is used.
func ForProfile(language string, patterns []string) (Extractor, error) {
	if len(patterns) > 0 {
		return NewPattern(patterns)
	}

	switch strings.ToLower(language) {
	case "python":
		return NewPython(), nil
	case "typescript":
		return NewTypeScript(), nil
	case "java":
		return NewJava(), nil
	case "php":
		return NewPHP(), nil
	case "ruby":
		return NewRuby(), nil
	case "rust":
		return NewRust(), nil
	case "go", "golang":
		return NewGo(), nil
	default:
		return nil, fmt.Errorf("%w: %s (supply declaration patterns to use the pattern extractor)", ErrUnsupportedLanguage, language)
	}
}
