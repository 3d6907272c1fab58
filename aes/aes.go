// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aes resolves aesthetic bindings against a data table.
//
// An aesthetic is a named visual property of a mark, such as "x",
// "stroke", or "size". A binding maps an aesthetic to a column of a
// data table; a default supplies a fixed per-mark value for an
// aesthetic the data doesn't provide. Resolve merges the two so that
// downstream consumers can read every aesthetic as a column.
package aes

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/table"
)

// A MissingColumnError reports a binding that names a column the data
// does not have.
type MissingColumnError struct {
	Aesthetic string
	Column    string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("aesthetic %q is bound to column %q, which is not in the data", e.Aesthetic, e.Column)
}

// Resolve merges bindings and defaults into g column-wise and returns
// the merged grouping.
//
// For each binding aesthetic -> column, the column is renamed to the
// aesthetic, replacing any column already named after the aesthetic.
// For each default, a constant column is added only if the data (after
// bindings are applied) does not already have a column named after the
// aesthetic. Resolve never modifies g in place.
func Resolve(bindings map[string]string, defaults map[string]interface{}, g table.Grouping) (table.Grouping, error) {
	for _, a := range sortKeys(bindings) {
		col := bindings[a]
		if !hasColumn(g, col) {
			return nil, &MissingColumnError{Aesthetic: a, Column: col}
		}
		if col == a {
			continue
		}
		if hasColumn(g, a) {
			// The binding wins over a column that happens to
			// share the aesthetic's name.
			g = table.Remove(g, a)
		}
		g = table.Rename(g, col, a)
	}

	var add []string
	for a := range defaults {
		if !hasColumn(g, a) {
			add = append(add, a)
		}
	}
	if len(add) == 0 {
		return g, nil
	}
	sort.Strings(add)
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		b := table.NewBuilder(t)
		for _, a := range add {
			b.AddConst(a, defaults[a])
		}
		return b.Done()
	}), nil
}

func hasColumn(g table.Grouping, col string) bool {
	for _, c := range g.Columns() {
		if c == col {
			return true
		}
	}
	return false
}

func sortKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
