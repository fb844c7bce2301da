package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the pattern extractor:
// - Match declarations with the configured regular expressions against the
//   reference bundle and the Dart fixture
// - Capture the name from group one and parameter text from group two
// - Reject pattern sets with no name capture group or invalid syntax
// - Apply multiple patterns in order, concatenating their matches

func TestPatternExtractor_ReferenceBundle(t *testing.T) {
	t.Parallel()

	ex, err := NewPattern([]string{
		`async\s+(\w+)\s*\((.*?)\)`,
		`(\w+)\s*:\s*async\s+function\s*\((.*?)\)`,
	})
	require.NoError(t, err)

	source := readFixture(t, "reference", "api.js")
	ops, err := ex.Extract(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"checkWallet",
		"getWallet",
		"getLatestTransactions",
		"sendTransaction",
		"getBlock",
		"getFormattedTimestamp",
	}, opNames(ops))

	assert.Equal(t, "blockchain, address", paramsFor(t, ops, "checkWallet"))
	assert.Equal(t, "tx", paramsFor(t, ops, "sendTransaction"))
	assert.Equal(t, "", paramsFor(t, ops, "getFormattedTimestamp"))
}

func TestPatternExtractor_DartFixture(t *testing.T) {
	t.Parallel()

	ex, err := NewPattern([]string{
		`(?m)^\s+Future<[^>]+>\s+([a-z][a-zA-Z0-9]*)\s*\(([^)]*)\)`,
	})
	require.NoError(t, err)

	source := readFixture(t, "dart", "client.dart")
	ops, err := ex.Extract(context.Background(), source)
	require.NoError(t, err)

	// The private _request helper never matches the name group.
	assert.Equal(t, []string{
		"checkWallet",
		"getWallet",
		"getLatestTransactions",
		"sendTransaction",
		"getBlock",
	}, opNames(ops))

	assert.Equal(t, "String blockchain, String address", paramsFor(t, ops, "getWallet"))
}

func TestPatternExtractor_RejectsBadPatterns(t *testing.T) {
	t.Parallel()

	_, err := NewPattern([]string{`async \w+`})
	assert.Error(t, err, "pattern without a capture group must be rejected")

	_, err = NewPattern([]string{`(\w+`})
	assert.Error(t, err, "invalid regular expression must be rejected")

	_, err = NewPattern(nil)
	assert.Error(t, err)
}

func TestPatternExtractor_NameOnlyGroup(t *testing.T) {
	t.Parallel()

	ex, err := NewPattern([]string{`def\s+(\w+)`})
	require.NoError(t, err)

	ops, err := ex.Extract(context.Background(), []byte("def alpha()\ndef beta(x)\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "beta"}, opNames(ops))
	assert.Equal(t, "", paramsFor(t, ops, "beta"))
}
