package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// readFixture loads one generated-SDK sample from the shared testdata tree.
func readFixture(t *testing.T, parts ...string) []byte {
	t.Helper()

	path := filepath.Join(append([]string{"..", "..", "testdata", "sdks"}, parts...)...)
	source, err := os.ReadFile(path)
	require.NoError(t, err)
	return source
}

// opNames projects extracted operations onto their declared names.
func opNames(ops []Operation) []string {
	names := make([]string, 0, len(ops))
	for _, op := range ops {
		names = append(names, op.Name)
	}
	return names
}

// paramsFor returns the parameter text of the named operation, failing the
// test if the name was not extracted.
func paramsFor(t *testing.T, ops []Operation, name string) string {
	t.Helper()

	for _, op := range ops {
		if op.Name == name {
			return op.Params
		}
	}
	t.Fatalf("operation %q not extracted", name)
	return ""
}
