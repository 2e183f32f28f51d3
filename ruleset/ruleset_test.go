package ruleset

import (
	"testing"

	"github.com/filterdef/filterdef/dataset"
	"github.com/filterdef/filterdef/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func group(t *testing.T, field int, value string) predicate.Group {
	t.Helper()
	p, err := predicate.New(field, value)
	require.NoError(t, err)
	return predicate.FromPredicate(p)
}

func TestEmptyRuleSetNeverPasses(t *testing.T) {
	rs := New()
	assert.False(t, rs.Passes(dataset.Record{"a", "b"}))
}

func TestPassesIsLogicalOr(t *testing.T) {
	rs := New()
	rs.Append(group(t, 1, "value3"))
	rs.Append(group(t, 0, "zzz"))

	assert.True(t, rs.Passes(dataset.Record{"value1", "value3"}))
	assert.True(t, rs.Passes(dataset.Record{"zzz", "whatever"}))
	assert.False(t, rs.Passes(dataset.Record{"value5", "value4"}))
}

func TestStringPreservesInsertionOrder(t *testing.T) {
	rs := New()
	rs.Append(group(t, 1, "value3"))
	rs.Append(group(t, 0, "value9"))

	assert.Equal(t, "[1->value3]\n[0->value9]", rs.String())
}
