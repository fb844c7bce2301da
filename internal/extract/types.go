// Package extract discovers declared operations in generated SDK source text.
// Each supported language implements the same capability, so the comparison
// core stays language-agnostic.
package extract

import (
	"context"
	"errors"
)

// Operation is one declared operation found in a source text: the raw declared
// name and the raw parameter-list text of that single declaration occurrence.
type Operation struct {
	Name   string
	Params string
}

// Extractor turns one language's source text into its declared operations,
// scanning top-to-bottom. Implementations are pure: no side effects, no I/O.
type Extractor interface {
	Extract(ctx context.Context, source []byte) ([]Operation, error)
}

// ErrUnsupportedLanguage is returned when no extractor exists for a profile's
// language and the profile supplies no declaration patterns to fall back on.
var ErrUnsupportedLanguage = errors.New("unsupported language")
