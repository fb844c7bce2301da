package extract

import (
	"context"
	"fmt"
	"regexp"
)

// patternExtractor applies configured declaration-matching regular expressions
// against the source text. It is the fallback for languages without a wired
// grammar (and for reference bundles that mix languages in one file). The
// first capture group is the declared name; an optional second group is the
// raw parameter-list text.
type patternExtractor struct {
	patterns []*regexp.Regexp
}

// NewPattern compiles declaration patterns into an extractor. Every pattern
// must capture the declared name in its first group.
func NewPattern(patterns []string) (Extractor, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("pattern extractor requires at least one pattern")
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid declaration pattern %q: %w", p, err)
		}
		if re.NumSubexp() < 1 {
			return nil, fmt.Errorf("declaration pattern %q has no name capture group", p)
		}
		compiled = append(compiled, re)
	}

	return &patternExtractor{patterns: compiled}, nil
}

func (e *patternExtractor) Extract(ctx context.Context, source []byte) ([]Operation, error) {
	text := string(source)

	var ops []Operation
	for _, re := range e.patterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			op := Operation{Name: match[1]}
			if len(match) > 2 {
				op.Params = match[2]
			}
			ops = append(ops, op)
		}
	}

	return ops, nil
}
