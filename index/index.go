// Package index implements TrainingIndex, the bipartite index between
// candidate PredicateGroups and the training records they cover. It is the
// data structure the Inducer drives to discover rules: selection and
// deletion remove explained records, and specificity increment lifts every
// group to one more field when no explaining group exists yet.
//
// Training records are stored once, in an arena owned by the Index, and
// addressed everywhere else by a stable integer position into that arena.
// Neither the forward nor the reverse map ever holds a copy of a record.
package index

import (
	"fmt"

	"github.com/filterdef/filterdef/dataset"
	"github.com/filterdef/filterdef/errs"
	"github.com/filterdef/filterdef/predicate"
	"github.com/filterdef/filterdef/util"
)

type entry struct {
	group   predicate.Group
	records map[int]struct{}
}

// Index is the dual index over one label class's training records.
type Index struct {
	arena          []dataset.Record
	classifyFields []int
	arity          int

	forward map[string]*entry
	reverse map[int]map[string]struct{}
	ignore  map[string]struct{}

	cursorKey string
	hasCursor bool
}

// New builds an Index from a non-empty group of same-arity records. The
// final field of every record is always excluded from classify_fields (it
// is the label column, per the Record data model); additional field
// indices may be excluded via exclude.
func New(records []dataset.Record, exclude []int) (*Index, error) {
	if len(records) == 0 {
		return nil, errs.Input("training record group is empty")
	}
	arity := len(records[0])
	if arity == 0 {
		return nil, errs.Input("training records have zero arity")
	}
	for i, r := range records {
		if len(r) != arity {
			return nil, errs.Input("record %d has arity %d, expected %d", i, len(r), arity)
		}
	}

	labelCol := arity - 1
	excluded := map[int]struct{}{labelCol: {}}
	for _, f := range exclude {
		if f >= 0 && f < arity {
			excluded[f] = struct{}{}
		}
	}
	var classifyFields []int
	for f := 0; f < arity; f++ {
		if _, ok := excluded[f]; !ok {
			classifyFields = append(classifyFields, f)
		}
	}
	if len(classifyFields) == 0 {
		return nil, errs.Input("exclusion list leaves no fields to classify on")
	}

	idx := &Index{
		arena:          records,
		classifyFields: classifyFields,
		arity:          1,
		forward:        map[string]*entry{},
		reverse:        map[int]map[string]struct{}{},
		ignore:         map[string]struct{}{},
	}
	for i, r := range records {
		for _, f := range classifyFields {
			p, err := predicate.New(f, r[f])
			if err != nil {
				return nil, err
			}
			idx.insert(predicate.FromPredicate(p), i)
		}
	}
	return idx, nil
}

func (idx *Index) insert(g predicate.Group, recordIdx int) {
	key := g.Key()
	e, ok := idx.forward[key]
	if !ok {
		e = &entry{group: g, records: map[int]struct{}{}}
		idx.forward[key] = e
	}
	e.records[recordIdx] = struct{}{}
	if idx.reverse[recordIdx] == nil {
		idx.reverse[recordIdx] = map[string]struct{}{}
	}
	idx.reverse[recordIdx][key] = struct{}{}
}

// ClassifyFields returns the sorted classify field indices. The caller must
// not mutate the returned slice.
func (idx *Index) ClassifyFields() []int { return idx.classifyFields }

// Arity is the predicate count shared by every group currently in the
// forward index.
func (idx *Index) Arity() int { return idx.arity }

// IsEmpty reports whether the forward index has no keys left.
func (idx *Index) IsEmpty() bool { return len(idx.forward) == 0 }

// OneFiltersAllFields reports whether a further IncrArity would necessarily
// abort: arity has reached the classify field count.
func (idx *Index) OneFiltersAllFields() bool {
	return idx.arity >= len(idx.classifyFields)
}

// Explain renders every forward group and its covered-record count in
// stable, sorted-key order — Go's map iteration order would otherwise make
// repeated dumps of the same index differ from run to run.
func (idx *Index) Explain() []string {
	lines := make([]string, 0, len(idx.forward))
	for _, e := range util.CanonicalMapIter(idx.forward) {
		lines = append(lines, fmt.Sprintf("%s (%d records)", e.group.String(), len(e.records)))
	}
	return lines
}

// HasGroup reports whether g exists as a forward key.
func (idx *Index) HasGroup(g predicate.Group) bool {
	_, ok := idx.forward[g.Key()]
	return ok
}

// selectBest scans the forward index for the key, not present in excluded,
// with the largest covered-record count. Ties break by ascending last
// field, then by ascending Key — a total order, so the result does not
// depend on Go's randomized map iteration order. This also gives the index
// its determinism property (P5): two runs over identical training data
// make identical selections.
func (idx *Index) selectBest(excluded map[string]struct{}) (string, bool) {
	var bestKey string
	var bestEntry *entry
	found := false
	for key, e := range idx.forward {
		if _, skip := excluded[key]; skip {
			continue
		}
		if !found || better(key, e, bestKey, bestEntry) {
			bestKey, bestEntry, found = key, e, true
		}
	}
	return bestKey, found
}

func better(key string, e *entry, bestKey string, best *entry) bool {
	if len(e.records) != len(best.records) {
		return len(e.records) > len(best.records)
	}
	if e.group.LastField() != best.group.LastField() {
		return e.group.LastField() < best.group.LastField()
	}
	return key < bestKey
}

// SelectLargest resets the ignore set and cursor, then returns the group
// covering the most records.
func (idx *Index) SelectLargest() (predicate.Group, bool) {
	idx.ignore = map[string]struct{}{}
	idx.hasCursor = false
	return idx.selectAndAdvance()
}

// SelectNextLargest adds the cursor (if any) to the ignore set, then
// returns the largest group not yet ignored.
func (idx *Index) SelectNextLargest() (predicate.Group, bool) {
	if idx.hasCursor {
		idx.ignore[idx.cursorKey] = struct{}{}
		idx.hasCursor = false
	}
	return idx.selectAndAdvance()
}

func (idx *Index) selectAndAdvance() (predicate.Group, bool) {
	key, ok := idx.selectBest(idx.ignore)
	if !ok {
		return predicate.Group{}, false
	}
	idx.cursorKey = key
	idx.hasCursor = true
	return idx.forward[key].group, true
}

// DeleteLast removes the cursor group and every record it covered from
// both indexes, propagating the removal to every other group that covered
// those records, then returns SelectNextLargest() so callers can drive the
// induction loop with one call per iteration.
func (idx *Index) DeleteLast() (predicate.Group, bool, error) {
	if !idx.hasCursor {
		return predicate.Group{}, false, errs.Invariant("DeleteLast called with no cursor set")
	}
	key := idx.cursorKey
	e, ok := idx.forward[key]
	if !ok {
		return predicate.Group{}, false, errs.Invariant("cursor group %s missing from forward index", key)
	}

	delete(idx.forward, key)
	delete(idx.ignore, key)

	for r := range e.records {
		groupsForR, ok := idx.reverse[r]
		if !ok {
			return predicate.Group{}, false, errs.Invariant("record %d missing from reverse index", r)
		}
		for gk := range groupsForR {
			if gk == key {
				continue
			}
			other, ok := idx.forward[gk]
			if !ok {
				return predicate.Group{}, false, errs.Invariant("group %s in reverse[%d] missing from forward index", gk, r)
			}
			if _, ok := other.records[r]; !ok {
				return predicate.Group{}, false, errs.Invariant("record %d not present in forward[%s] despite reverse link", r, gk)
			}
			delete(other.records, r)
			if len(other.records) == 0 {
				delete(idx.forward, gk)
				delete(idx.ignore, gk)
			}
		}
		delete(idx.reverse, r)
	}

	idx.hasCursor = false
	g, ok := idx.SelectNextLargest()
	return g, ok, nil
}

// IncrArity rebuilds the forward and reverse indexes so every group has one
// more predicate than before, still covering the same records, by
// extending each (group, record) pair over every classify field strictly
// greater than the group's last field, taken from a record it covers. If
// extending some (group, record) pair would drop the record from the index
// entirely — every classify field is already accounted for and the group
// is already at the ceiling arity — the operation aborts and the index is
// left unchanged.
func (idx *Index) IncrArity() error {
	newForward := map[string]*entry{}
	newReverse := map[int]map[string]struct{}{}
	insertNew := func(g predicate.Group, recordIdx int) {
		key := g.Key()
		e, ok := newForward[key]
		if !ok {
			e = &entry{group: g, records: map[int]struct{}{}}
			newForward[key] = e
		}
		e.records[recordIdx] = struct{}{}
		if newReverse[recordIdx] == nil {
			newReverse[recordIdx] = map[string]struct{}{}
		}
		newReverse[recordIdx][key] = struct{}{}
	}

	for _, e := range idx.forward {
		g := e.group
		for r := range e.records {
			rec := idx.arena[r]
			var nextFields []int
			for _, f := range idx.classifyFields {
				if f > g.LastField() {
					nextFields = append(nextFields, f)
				}
			}
			if len(nextFields) == 0 {
				if g.Arity() == len(idx.classifyFields) {
					return errs.Invariant("extending %s would drop record %d from the index", g.String(), r)
				}
				continue
			}
			for _, f := range nextFields {
				v, ok := rec.Field(f)
				if !ok {
					return errs.Invariant("record %d missing classify field %d", r, f)
				}
				p, err := predicate.New(f, v)
				if err != nil {
					return err
				}
				extended, err := g.Extend(p)
				if err != nil {
					return err
				}
				insertNew(extended, r)
			}
		}
	}

	idx.forward = newForward
	idx.reverse = newReverse
	idx.ignore = map[string]struct{}{}
	idx.hasCursor = false
	idx.arity++
	return nil
}

// checkInvariants is a self-check used only by tests: it verifies I1-I5
// against the index's current state.
func (idx *Index) checkInvariants() error {
	for key, e := range idx.forward {
		if len(e.records) == 0 {
			return fmt.Errorf("I3: forward[%s] has empty record set", key)
		}
		if e.group.Arity() != idx.arity {
			return fmt.Errorf("I4: forward[%s] has arity %d, index arity %d", key, e.group.Arity(), idx.arity)
		}
		for r := range e.records {
			if !e.group.Passes(idx.arena[r]) {
				return fmt.Errorf("I1: %s does not pass record %d", key, r)
			}
			if _, ok := idx.reverse[r][key]; !ok {
				return fmt.Errorf("I1: %s not linked back from reverse[%d]", key, r)
			}
		}
	}
	for r, groups := range idx.reverse {
		for key := range groups {
			e, ok := idx.forward[key]
			if !ok {
				return fmt.Errorf("I2: reverse[%d] references missing forward[%s]", r, key)
			}
			if _, ok := e.records[r]; !ok {
				return fmt.Errorf("I2: record %d not present in forward[%s]", r, key)
			}
		}
	}
	for key := range idx.ignore {
		if _, ok := idx.forward[key]; !ok {
			return fmt.Errorf("I5: ignore set references missing forward[%s]", key)
		}
	}
	return nil
}
