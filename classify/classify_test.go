package classify

import (
	"testing"

	"github.com/filterdef/filterdef/dataset"
	"github.com/filterdef/filterdef/predicate"
	"github.com/filterdef/filterdef/ruleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGroup(t *testing.T, field int, value string) predicate.Group {
	t.Helper()
	p, err := predicate.New(field, value)
	require.NoError(t, err)
	return predicate.FromPredicate(p)
}

func TestRecordInvalidWhenRuleSetPasses(t *testing.T) {
	rs := ruleset.New()
	rs.Append(mustGroup(t, 1, "test3"))

	assert.Equal(t, dataset.Invalid, Record(rs, dataset.Record{"a", "test3"}))
	assert.Equal(t, dataset.Valid, Record(rs, dataset.Record{"a", "test4"}))
}

// S6: a record too short for a rule's field cannot match it, so it remains
// valid — this is deliberate, not an error.
func TestRecordPartialToleranceNeverFails(t *testing.T) {
	rs := ruleset.New()
	rs.Append(mustGroup(t, 3, "x"))
	assert.Equal(t, dataset.Valid, Record(rs, dataset.Record{"a", "b"}))
}

func TestGroupAppendsLabelInPlaceWithoutReordering(t *testing.T) {
	rs := ruleset.New()
	rs.Append(mustGroup(t, 0, "bad"))

	g, err := dataset.NewRecordGroup([]dataset.Record{{"bad", "x"}, {"good", "y"}})
	require.NoError(t, err)

	require.NoError(t, Group(rs, g))
	assert.Equal(t, dataset.Record{"bad", "x", "false"}, g.Records()[0])
	assert.Equal(t, dataset.Record{"good", "y", "true"}, g.Records()[1])
}

// P6: classifying twice (after stripping the appended label) yields the
// same labels.
func TestIdempotence(t *testing.T) {
	rs := ruleset.New()
	rs.Append(mustGroup(t, 0, "bad"))

	g, err := dataset.NewRecordGroup([]dataset.Record{{"bad", "x"}, {"good", "y"}})
	require.NoError(t, err)

	require.NoError(t, Group(rs, g))
	first := append([]dataset.Record{}, g.Records()...)

	_, err = g.StripLastField()
	require.NoError(t, err)
	require.NoError(t, Group(rs, g))

	assert.Equal(t, first, g.Records())
}
