package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordGroupRejectsEmpty(t *testing.T) {
	_, err := NewRecordGroup(nil)
	assert.Error(t, err)
}

func TestNewRecordGroupRejectsZeroArity(t *testing.T) {
	_, err := NewRecordGroup([]Record{{}})
	assert.Error(t, err)
}

func TestAppendFieldInPlace(t *testing.T) {
	g, err := NewRecordGroup([]Record{{"a", "b"}, {"c", "d"}})
	require.NoError(t, err)

	require.NoError(t, g.AppendField([]string{"true", "false"}))
	assert.Equal(t, Record{"a", "b", "true"}, g.Records()[0])
	assert.Equal(t, Record{"c", "d", "false"}, g.Records()[1])
	assert.Equal(t, 3, g.Arity())
}

func TestAppendFieldWrongCount(t *testing.T) {
	g, err := NewRecordGroup([]Record{{"a", "b"}})
	require.NoError(t, err)
	assert.Error(t, g.AppendField([]string{"x", "y"}))
}

func TestStripLastField(t *testing.T) {
	g, err := NewRecordGroup([]Record{{"a", "b", "true"}})
	require.NoError(t, err)

	removed, err := g.StripLastField()
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, removed)
	assert.Equal(t, Record{"a", "b"}, g.Records()[0])
	assert.Equal(t, 2, g.Arity())
}

func TestFieldOutOfRange(t *testing.T) {
	r := Record{"a", "b"}
	_, ok := r.Field(5)
	assert.False(t, ok)
	v, ok := r.Field(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}
