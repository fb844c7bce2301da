package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Ruby extractor:
// - Extract instance methods from class bodies, including initialize and
//   underscore-prefixed names (visibility filtering happens downstream)
// - Extract top-level methods
// - Extract methods declared inside modules

func TestRubyExtractor_ClientFixture(t *testing.T) {
	t.Parallel()

	source := readFixture(t, "ruby", "client.rb")
	ops, err := NewRuby().Extract(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"initialize",
		"check_wallet",
		"get_wallet",
		"get_latest_transactions",
		"send_transaction",
		"get_block",
		"_request_signer",
		"format_timestamp",
	}, opNames(ops))
}

func TestRubyExtractor_Params(t *testing.T) {
	t.Parallel()

	source := readFixture(t, "ruby", "client.rb")
	ops, err := NewRuby().Extract(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, "blockchain, address", paramsFor(t, ops, "check_wallet"))
	assert.Equal(t, "tx", paramsFor(t, ops, "send_transaction"))
}

func TestRubyExtractor_ModuleMethods(t *testing.T) {
	t.Parallel()

	source := []byte(`module Helpers
  def checksum(payload)
    payload.hash
  end
end
`)
	ops, err := NewRuby().Extract(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, []string{"checksum"}, opNames(ops))
	assert.Equal(t, "payload", paramsFor(t, ops, "checksum"))
}
