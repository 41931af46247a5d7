// Package layers holds the per-layer tweak rules and resolves which of
// them apply at a given height.
package layers

import (
	"fmt"
	"sort"
	"strconv"
)

// Rule is one configured height range with an optional flow multiplier
// and an optional extruding speed. Zero or negative values mean "unset".
type Rule struct {
	Start float64
	End   float64
	Open  bool    // no upper bound; End is ignored
	Flow  float64 // multiplier
	Speed int     // units per minute
}

// Contains reports whether z lies within the rule's inclusive range.
func (r Rule) Contains(z float64) bool {
	return z >= r.Start && (r.Open || z <= r.End)
}

// HasOverride reports whether the rule sets anything. Rules without an
// override are never stored in a Table.
func (r Rule) HasOverride() bool {
	return r.Flow > 0 || r.Speed > 0
}

func (r Rule) String() string {
	sel := strconv.FormatFloat(r.Start, 'f', -1, 64)
	switch {
	case r.Open:
		sel += "+"
	case r.End != r.Start:
		sel += "-" + strconv.FormatFloat(r.End, 'f', -1, 64)
	}
	return fmt.Sprintf("L%s flow=%g speed=%d", sel, r.Flow, r.Speed)
}

// Tweak is the effective override for one move. The zero value means no
// tweak.
type Tweak struct {
	Flow  float64
	Speed int
}

// Active reports whether either override is set.
func (t Tweak) Active() bool {
	return t.Flow != 0 || t.Speed != 0
}

// Table is the ordered, read-only rule list.
type Table struct {
	rules []Rule
}

// NewTable builds a table from rules in declaration order, dropping rules
// that set nothing.
func NewTable(rules ...Rule) *Table {
	t := &Table{}
	for _, r := range rules {
		if r.HasOverride() {
			t.rules = append(t.rules, r)
		}
	}
	return t
}

// Rules returns a copy of the rules in table order.
func (t *Table) Rules() []Rule {
	return append([]Rule(nil), t.rules...)
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// Resolve scans the rules in table order and merges every rule whose
// range holds z, the last positive flow and the last positive speed
// winning. The scan stops at the first rule starting above z, so it is
// only complete when rules are in ascending start order (see Ascending).
func (t *Table) Resolve(z float64) Tweak {
	var tw Tweak
	for _, r := range t.rules {
		if z < r.Start {
			break
		}
		if !r.Contains(z) {
			continue
		}
		if r.Flow > 0 {
			tw.Flow = r.Flow
		}
		if r.Speed > 0 {
			tw.Speed = r.Speed
		}
	}
	return tw
}

// Ascending reports whether rule starts never decrease in table order.
func (t *Table) Ascending() bool {
	return sort.SliceIsSorted(t.rules, func(i, j int) bool {
		return t.rules[i].Start < t.rules[j].Start
	})
}

// Sorted returns a copy ordered by start height. Rules with equal starts
// keep their declaration order, so last-positive-wins merging among them
// is unchanged.
func (t *Table) Sorted() *Table {
	rules := t.Rules()
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Start < rules[j].Start
	})
	return &Table{rules: rules}
}
