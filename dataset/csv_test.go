package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFileSkipsBlankLines(t *testing.T) {
	path := writeTemp(t, "a,b,true\n\nc,d,false\n")
	g, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 3, g.Arity())
}

func TestReadFileRejectsMismatchedArity(t *testing.T) {
	path := writeTemp(t, "a,b,true\nc,true\n")
	_, err := ReadFile(path)
	assert.Error(t, err)
}

func TestReadFileMissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	path := writeTemp(t, "v1,v2,true\nv3,v4,false\n")
	g, err := ReadFile(path)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteFile(out, g))

	g2, err := ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, g.Records(), g2.Records())
}

func TestLabels(t *testing.T) {
	g, err := NewRecordGroup([]Record{
		{"v1", "v2", "true"},
		{"v1", "v3", "false"},
	})
	require.NoError(t, err)

	labels, err := Labels(g)
	require.NoError(t, err)
	assert.Equal(t, []Label{Valid, Invalid}, labels)
	assert.Equal(t, []Record{{"v1", "v2", "true"}, {"v1", "v3", "false"}}, g.Records())
}

func TestLabelsRejectsBadLiteral(t *testing.T) {
	g, err := NewRecordGroup([]Record{{"v1", "maybe"}})
	require.NoError(t, err)
	_, err = Labels(g)
	assert.Error(t, err)
}

func TestLabelsRejectsShortArity(t *testing.T) {
	g, err := NewRecordGroup([]Record{{"true"}})
	require.NoError(t, err)
	_, err = Labels(g)
	assert.Error(t, err)
}
