package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Python extractor:
// - Extract class methods including dunder and underscore-prefixed ones
//   (visibility filtering happens downstream, not here)
// - Extract module-level functions
// - Trim the self receiver so it never counts as a parameter
// - Preserve raw parameter text with annotations and defaults
// - Handle empty source without errors

func TestPythonExtractor_ClientFixture(t *testing.T) {
	t.Parallel()

	source := readFixture(t, "python", "client.py")
	ops, err := NewPython().Extract(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"__init__",
		"check_wallet",
		"get_wallet",
		"get_latest_transactions",
		"send_transaction",
		"get_block",
		"_make_request",
		"format_timestamp",
	}, opNames(ops))
}

func TestPythonExtractor_TrimsSelf(t *testing.T) {
	t.Parallel()

	source := readFixture(t, "python", "client.py")
	ops, err := NewPython().Extract(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, "blockchain: str, address: str", paramsFor(t, ops, "check_wallet"))
	assert.Equal(t, "tx: Dict[str, Any]", paramsFor(t, ops, "send_transaction"))
	assert.Equal(t, "base_url: str, api_key: Optional[str] = None", paramsFor(t, ops, "__init__"))
	assert.Equal(t, "value: float", paramsFor(t, ops, "format_timestamp"))
}

func TestPythonExtractor_DecoratedMethod(t *testing.T) {
	t.Parallel()

	source := []byte(`class Client:
    @staticmethod
    def from_env():
        return Client()

    @property
    def base_url(self):
        return self._base_url
`)
	ops, err := NewPython().Extract(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, []string{"from_env", "base_url"}, opNames(ops))
	assert.Equal(t, "", paramsFor(t, ops, "base_url"))
}

func TestPythonExtractor_NestedFunctionsSkipped(t *testing.T) {
	t.Parallel()

	source := []byte(`def outer():
    def inner():
        pass
    return inner
`)
	ops, err := NewPython().Extract(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, []string{"outer"}, opNames(ops))
}

func TestPythonExtractor_EmptySource(t *testing.T) {
	t.Parallel()

	ops, err := NewPython().Extract(context.Background(), []byte(""))
	require.NoError(t, err)
	assert.Empty(t, ops)
}
