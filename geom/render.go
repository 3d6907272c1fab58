// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"sync/atomic"

	"github.com/aclements/go-gg/table"

	"github.com/gogram/gram/coord"
	"github.com/gogram/gram/grob"
)

// RenderOptions configures one Render call.
type RenderOptions struct {
	// Munch asks the geom to subdivide its data before drawing.
	// Callers set it when coord.RequiresMunching reports true for
	// the active coordinate system.
	Munch bool

	// Coord is the active coordinate system, passed through to
	// Grob implementations. nil means Cartesian.
	Coord coord.System
}

// Render runs the pipeline for one geom over one dataset and returns
// the named primitive tree. The stages are: grouping, ResolveData,
// optionally Munch (whose result replaces both the geom and the data
// for the remaining stages), Grob, and node naming. Any stage failure
// is returned unchanged; there are no retries and no partial results.
func Render(g *Geom, data table.Grouping, opts RenderOptions) (grob.Grob, error) {
	info := lookup(g.Kind())
	if info == nil {
		return nil, &CapabilityError{Kind: g.Kind()}
	}

	data = ensureGroups(g, data)

	data, err := info.def.Caps.ResolveData(g, data)
	if err != nil {
		return nil, err
	}

	if opts.Munch {
		g2, data2, err := info.def.Caps.Munch(g, data)
		if err != nil {
			return nil, err
		}
		g, data = g2, data2
		info = lookup(g.Kind())
		if info == nil {
			return nil, &CapabilityError{Kind: g.Kind()}
		}
	}

	node, err := info.grobber.Grob(g, data, &Context{Coord: opts.Coord})
	if err != nil {
		return nil, err
	}
	node.SetName(grobName(DisplayName(g)))
	return node, nil
}

// Preview renders a small illustrative glyph for g in the unit-square
// preview space. The geom's icon dataset is merged into an empty
// dataset (icon values fill every column the empty dataset lacks) and
// rendered without munching.
func Preview(g *Geom) (grob.Grob, error) {
	info := lookup(g.Kind())
	if info == nil {
		return nil, &CapabilityError{Kind: g.Kind()}
	}
	data := mergeIcon(new(table.Table), info.def.Caps.IconData(g))
	return Render(g, data, RenderOptions{})
}

// ensureGroups gives data a deterministic grouping. Data that is
// already divided into groups is left alone. Otherwise, the geom's
// "group" binding or a literal "group" column divides the rows; with
// neither, every row becomes its own group.
func ensureGroups(g *Geom, data table.Grouping) table.Grouping {
	if len(data.Tables()) > 1 {
		return data
	}
	col, ok := g.Binding("group")
	if !ok {
		col = "group"
	}
	if hasColumn(data, col) {
		return table.GroupBy(data, col)
	}
	t := table.Flatten(data)
	if t.Len() == 0 {
		return data
	}
	ids := make([]int, t.Len())
	for i := range ids {
		ids[i] = i
	}
	data = table.NewBuilder(t).Add("group", ids).Done()
	return table.GroupBy(data, "group")
}

// mergeIcon merges icon into base column-wise: icon columns fill in
// wherever base lacks a column. Since previews start from an empty
// base, in practice the icon supplies everything.
func mergeIcon(base *table.Table, icon table.Grouping) table.Grouping {
	flat := table.Flatten(icon)
	b := table.NewBuilder(base)
	for _, col := range flat.Columns() {
		if base.Column(col) == nil {
			b.Add(col, flat.Column(col))
		}
	}
	return b.Done()
}

// grobSeq distinguishes the nodes of repeated renders in one scene.
var grobSeq uint64

func grobName(name string) string {
	return fmt.Sprintf("%s.%d", name, atomic.AddUint64(&grobSeq, 1))
}
