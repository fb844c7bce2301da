package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the Java extractor:
// - Extract only explicitly public methods
// - Skip private and package-private methods
// - Skip constructors (they carry no operation name of their own)
// - Keep nested generic types intact in parameter text

func TestJavaExtractor_ClientFixture(t *testing.T) {
	t.Parallel()

	source := readFixture(t, "java", "Client.java")
	ops, err := NewJava().Extract(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"checkWallet",
		"getWallet",
		"getLatestTransactions",
		"sendTransaction",
		"getBlock",
		"setTimeout",
	}, opNames(ops))
}

func TestJavaExtractor_Params(t *testing.T) {
	t.Parallel()

	source := readFixture(t, "java", "Client.java")
	ops, err := NewJava().Extract(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, "String blockchain, String address", paramsFor(t, ops, "checkWallet"))
	assert.Equal(t, "Map<String, Object> tx", paramsFor(t, ops, "sendTransaction"))
	assert.Equal(t, "int millis", paramsFor(t, ops, "setTimeout"))
}

func TestJavaExtractor_StaticPublic(t *testing.T) {
	t.Parallel()

	source := []byte(`public class Util {
    public static String join(String a, String b) {
        return a + b;
    }

    static String hidden() {
        return "";
    }
}
`)
	ops, err := NewJava().Extract(context.Background(), source)
	require.NoError(t, err)

	assert.Equal(t, []string{"join"}, opNames(ops))
}
