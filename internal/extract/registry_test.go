package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for extractor selection:
// - Every wired language resolves to an extractor, case-insensitively
// - Explicit patterns override the structural extractor
// - Unknown languages without patterns return ErrUnsupportedLanguage

func TestForProfile_WiredLanguages(t *testing.T) {
	t.Parallel()

	for _, language := range []string{
		"python", "typescript", "java", "php", "ruby", "rust", "go", "golang",
		"Python", "TypeScript", "GO",
	} {
		ex, err := ForProfile(language, nil)
		require.NoError(t, err, "language %s", language)
		assert.NotNil(t, ex, "language %s", language)
	}
}

func TestForProfile_PatternsWin(t *testing.T) {
	t.Parallel()

	ex, err := ForProfile("python", []string{`def\s+(\w+)`})
	require.NoError(t, err)

	_, isPattern := ex.(*patternExtractor)
	assert.True(t, isPattern, "explicit patterns must select the pattern extractor")
}

func TestForProfile_UnknownLanguage(t *testing.T) {
	t.Parallel()

	_, err := ForProfile("dart", nil)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	ex, err := ForProfile("dart", []string{`Future<[^>]+>\s+(\w+)\s*\(([^)]*)\)`})
	require.NoError(t, err)
	assert.NotNil(t, ex)
}
