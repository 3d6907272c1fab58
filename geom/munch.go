// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/vec"
)

// defaultMunchPoints is the number of interpolated points per segment
// when a geom munches its data. The "segments" style parameter
// overrides it.
const defaultMunchPoints = 10

func munchPoints(g *Geom) int {
	n := int(g.StyleFloat("segments", defaultMunchPoints))
	if n < 2 {
		n = 2
	}
	return n
}

// munchSegments linearly interpolates n points along every segment of
// the polyline (xs, ys), keeping the original points. The result has
// (len(xs)-1)*(n-1)+1 points.
func munchSegments(xs, ys []float64, n int) ([]float64, []float64) {
	if len(xs) < 2 {
		return xs, ys
	}
	outx := make([]float64, 0, (len(xs)-1)*(n-1)+1)
	outy := make([]float64, 0, cap(outx))
	for i := 0; i < len(xs)-1; i++ {
		sx := vec.Linspace(xs[i], xs[i+1], n)
		sy := vec.Linspace(ys[i], ys[i+1], n)
		if i > 0 {
			// The joint is already in the output.
			sx, sy = sx[1:], sy[1:]
		}
		outx = append(outx, sx...)
		outy = append(outy, sy...)
	}
	return outx, outy
}

// munchTables subdivides the x and y columns of every group of data
// into n points per segment. Columns other than x and y collapse to
// their first value, since subdivision changes the row count; this
// matches how per-group aesthetics are consumed downstream.
func munchTables(data table.Grouping, n int) table.Grouping {
	return table.MapTables(data, func(_ table.GroupID, t *table.Table) *table.Table {
		if t.Len() < 2 {
			return t
		}
		var xs, ys []float64
		slice.Convert(&xs, t.MustColumn("x"))
		slice.Convert(&ys, t.MustColumn("y"))
		mx, my := munchSegments(xs, ys, n)

		var b table.Builder
		b.Add("x", mx).Add("y", my)
		for _, col := range t.Columns() {
			if col == "x" || col == "y" {
				continue
			}
			first := reflect.ValueOf(t.Column(col)).Index(0).Interface()
			b.AddConst(col, first)
		}
		return b.Done()
	})
}
