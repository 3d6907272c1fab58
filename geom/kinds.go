// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"image/color"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"

	"github.com/gogram/gram/grob"
)

// positionAes are the aesthetics shared by all path-like kinds.
var positionAes = []string{"x", "y", "group", "stroke", "fill", "opacity", "size"}

func init() {
	MustRegister(KindDef{
		Name:     "path",
		Caps:     pathKind{},
		Aes:      positionAes,
		Required: []string{"x", "y"},
		Defaults: map[string]interface{}{"stroke": color.Color(color.Black)},
	})
	MustRegister(KindDef{
		Name: "line",
		Base: "path",
		Caps: lineKind{},
	})
	MustRegister(KindDef{
		Name: "step",
		Base: "line",
		Caps: stepKind{},
	})
	MustRegister(KindDef{
		Name:     "polygon",
		Base:     "path",
		Caps:     polygonKind{},
		Defaults: map[string]interface{}{"fill": color.Color(color.Gray{Y: 0x33})},
	})
	MustRegister(KindDef{
		Name:     "point",
		Caps:     pointKind{},
		Aes:      positionAes,
		Required: []string{"x", "y"},
		Defaults: map[string]interface{}{"stroke": color.Color(color.Black)},
	})
	MustRegister(KindDef{
		Name:     "rect",
		Caps:     rectKind{},
		Aes:      []string{"x", "y", "xmin", "xmax", "ymin", "ymax", "width", "height", "group", "stroke", "fill", "opacity"},
		Defaults: map[string]interface{}{"fill": color.Color(color.Gray{Y: 0x59})},
	})
	MustRegister(KindDef{
		Name: "blank",
		Caps: blankKind{},
		Aes:  positionAes,
	})
}

// pathKind connects the rows of each group with an open path, in row
// order.
type pathKind struct{ Base }

func (pathKind) Grob(g *Geom, data table.Grouping, ctx *Context) (grob.Grob, error) {
	group := new(grob.Group)
	for _, gid := range data.Tables() {
		t := data.Table(gid)
		group.Add(&grob.Line{
			Pts:    xyPoints(t),
			Stroke: firstColor(t, "stroke", color.Black),
			Width:  g.StyleFloat("width", 0),
		})
	}
	if len(group.Children) == 1 {
		return group.Children[0], nil
	}
	return group, nil
}

func (pathKind) Munch(g *Geom, data table.Grouping) (*Geom, table.Grouping, error) {
	return g, munchTables(data, munchPoints(g)), nil
}

func (pathKind) IconData(*Geom) table.Grouping {
	return iconXY(
		[]float64{0.1, 0.35, 0.55, 0.8, 0.9},
		[]float64{0.2, 0.7, 0.35, 0.8, 0.3},
	)
}

// lineKind is a path whose points are connected in order by x rather
// than in row order.
type lineKind struct{ pathKind }

func (k lineKind) ResolveData(g *Geom, data table.Grouping) (table.Grouping, error) {
	data, err := k.pathKind.ResolveData(g, data)
	if err != nil {
		return nil, err
	}
	return table.SortBy(data, "x"), nil
}

func (lineKind) IconData(*Geom) table.Grouping {
	return iconXY(
		[]float64{0.1, 0.3, 0.5, 0.7, 0.9},
		[]float64{0.2, 0.5, 0.35, 0.7, 0.85},
	)
}

// stepKind is a line drawn with only horizontal and vertical
// segments. The "direction" style parameter chooses the corner:
// "hv" (the default) goes horizontal then vertical, "vh" the
// opposite.
type stepKind struct{ lineKind }

func (k stepKind) Grob(g *Geom, data table.Grouping, ctx *Context) (grob.Grob, error) {
	group := new(grob.Group)
	for _, gid := range data.Tables() {
		t := data.Table(gid)
		group.Add(&grob.Line{
			Pts:    stepPoints(xyPoints(t), g.StyleString("direction", "hv")),
			Stroke: firstColor(t, "stroke", color.Black),
			Width:  g.StyleFloat("width", 0),
		})
	}
	if len(group.Children) == 1 {
		return group.Children[0], nil
	}
	return group, nil
}

func (stepKind) IconData(*Geom) table.Grouping {
	return iconXY(
		[]float64{0.1, 0.3, 0.5, 0.7, 0.9},
		[]float64{0.15, 0.35, 0.5, 0.7, 0.9},
	)
}

// stepPoints inserts an intermediate point between each pair of
// successive points so the path moves only horizontally and
// vertically.
func stepPoints(pts []grob.Point, dir string) []grob.Point {
	if len(pts) < 2 {
		return pts
	}
	out := make([]grob.Point, 0, 2*len(pts)-1)
	out = append(out, pts[0])
	for i := 1; i < len(pts); i++ {
		prev, cur := pts[i-1], pts[i]
		if dir == "vh" {
			out = append(out, grob.Point{X: prev.X, Y: cur.Y})
		} else {
			out = append(out, grob.Point{X: cur.X, Y: prev.Y})
		}
		out = append(out, cur)
	}
	return out
}

// polygonKind closes each group's path and fills it.
type polygonKind struct{ pathKind }

func (polygonKind) Grob(g *Geom, data table.Grouping, ctx *Context) (grob.Grob, error) {
	group := new(grob.Group)
	for _, gid := range data.Tables() {
		t := data.Table(gid)
		group.Add(&grob.Polygon{
			Pts:    xyPoints(t),
			Stroke: firstColor(t, "stroke", color.Transparent),
			Fill:   firstColor(t, "fill", color.Gray{Y: 0x33}),
		})
	}
	if len(group.Children) == 1 {
		return group.Children[0], nil
	}
	return group, nil
}

func (polygonKind) IconData(*Geom) table.Grouping {
	return iconXY(
		[]float64{0.5, 0.12, 0.26, 0.74, 0.88},
		[]float64{0.9, 0.62, 0.18, 0.18, 0.62},
	)
}

// pointKind draws a circle at each row.
type pointKind struct{ Base }

func (pointKind) Grob(g *Geom, data table.Grouping, ctx *Context) (grob.Grob, error) {
	group := new(grob.Group)
	for _, gid := range data.Tables() {
		t := data.Table(gid)
		group.Add(&grob.Points{
			Pts:  xyPoints(t),
			Fill: firstColor(t, "stroke", color.Black),
			Size: g.StyleFloat("size", firstFloat(t, "size", 0)),
		})
	}
	if len(group.Children) == 1 {
		return group.Children[0], nil
	}
	return group, nil
}

func (pointKind) IconData(*Geom) table.Grouping {
	return iconXY(
		[]float64{0.2, 0.4, 0.55, 0.7, 0.85},
		[]float64{0.3, 0.7, 0.25, 0.55, 0.8},
	)
}

// rectKind draws an axis-aligned rectangle per row. Rectangles can be
// given as xmin/xmax/ymin/ymax columns or as centers with
// width/height; Reparameterize folds the latter into the former.
// Under a non-linear coordinate system a rectangle's edges curve, so
// rectKind munches by converting each rectangle to a subdivided
// polygon and substituting the polygon kind.
type rectKind struct{ Base }

func (rectKind) DefaultStat(*Geom) StatID     { return StatBin }
func (rectKind) DefaultAdjust(*Geom) AdjustID { return AdjustStack }

func (k rectKind) Reparameterize(g *Geom, data table.Grouping) (table.Grouping, error) {
	data, err := reparAxis(g, data, "x", "width")
	if err != nil {
		return nil, err
	}
	return reparAxis(g, data, "y", "height")
}

func (k rectKind) Grob(g *Geom, data table.Grouping, ctx *Context) (grob.Grob, error) {
	data, err := k.Reparameterize(g, data)
	if err != nil {
		return nil, err
	}
	group := new(grob.Group)
	for _, gid := range data.Tables() {
		t := data.Table(gid)
		stroke := firstColor(t, "stroke", color.Transparent)
		fill := firstColor(t, "fill", color.Gray{Y: 0x59})
		xmin, xmax := colFloats(t, "xmin"), colFloats(t, "xmax")
		ymin, ymax := colFloats(t, "ymin"), colFloats(t, "ymax")
		for i := range xmin {
			group.Add(&grob.Polygon{
				Pts: []grob.Point{
					{X: xmin[i], Y: ymin[i]},
					{X: xmax[i], Y: ymin[i]},
					{X: xmax[i], Y: ymax[i]},
					{X: xmin[i], Y: ymax[i]},
				},
				Stroke: stroke,
				Fill:   fill,
			})
		}
	}
	return group, nil
}

func (k rectKind) Munch(g *Geom, data table.Grouping) (*Geom, table.Grouping, error) {
	data, err := k.Reparameterize(g, data)
	if err != nil {
		return nil, nil, err
	}
	g2, err := g.As("polygon")
	if err != nil {
		return nil, nil, err
	}
	n := munchPoints(g)

	var b table.GroupingBuilder
	rect := 0
	for _, gid := range data.Tables() {
		t := data.Table(gid)
		xmin, xmax := colFloats(t, "xmin"), colFloats(t, "xmax")
		ymin, ymax := colFloats(t, "ymin"), colFloats(t, "ymax")
		for i := range xmin {
			// Corner path, closed, with subdivided edges.
			cx := []float64{xmin[i], xmax[i], xmax[i], xmin[i], xmin[i]}
			cy := []float64{ymin[i], ymin[i], ymax[i], ymax[i], ymin[i]}
			mx, my := munchSegments(cx, cy, n)

			var tb table.Builder
			tb.Add("x", mx).Add("y", my)
			for _, col := range t.Columns() {
				switch col {
				case "x", "y", "xmin", "xmax", "ymin", "ymax", "width", "height":
					continue
				}
				first := reflect.ValueOf(t.Column(col)).Index(i).Interface()
				tb.AddConst(col, first)
			}
			b.Add(table.RootGroupID.Extend(rect), tb.Done())
			rect++
		}
	}
	return g2, b.Done(), nil
}

func (rectKind) IconData(*Geom) table.Grouping {
	var b table.Builder
	b.Add("xmin", []float64{0.1, 0.4, 0.7})
	b.Add("xmax", []float64{0.3, 0.6, 0.9})
	b.Add("ymin", []float64{0.1, 0.1, 0.1})
	b.Add("ymax", []float64{0.5, 0.9, 0.65})
	b.AddConst("group", 1)
	return b.Done()
}

// reparAxis derives the <axis>min/<axis>max columns from a center
// column and an extent (width or height), taken from a column or a
// style parameter. Data that already has min/max columns is left
// alone.
func reparAxis(g *Geom, data table.Grouping, axis, extent string) (table.Grouping, error) {
	lo, hi := axis+"min", axis+"max"
	if hasColumn(data, lo) && hasColumn(data, hi) {
		return data, nil
	}
	if !hasColumn(data, axis) {
		return nil, &DataShapeError{Kind: g.Kind(), Column: lo}
	}
	styleExtent, hasStyle := g.Style(extent)
	if !hasColumn(data, extent) && !hasStyle {
		return nil, &DataShapeError{Kind: g.Kind(), Column: extent}
	}
	return table.MapTables(data, func(_ table.GroupID, t *table.Table) *table.Table {
		centers := colFloats(t, axis)
		var extents []float64
		if hasColumn(data, extent) {
			extents = colFloats(t, extent)
		} else {
			e, _ := toFloat(styleExtent)
			extents = make([]float64, len(centers))
			for i := range extents {
				extents[i] = e
			}
		}
		los := make([]float64, len(centers))
		his := make([]float64, len(centers))
		for i, c := range centers {
			los[i] = c - extents[i]/2
			his[i] = c + extents[i]/2
		}
		return table.NewBuilder(t).Add(lo, los).Add(hi, his).Done()
	}), nil
}

// blankKind draws nothing. It exists so a layer can be switched off
// without removing it.
type blankKind struct{ Base }

func (blankKind) Grob(*Geom, table.Grouping, *Context) (grob.Grob, error) {
	return new(grob.Group), nil
}

func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func colFloats(t *table.Table, col string) []float64 {
	var xs []float64
	slice.Convert(&xs, t.MustColumn(col))
	return xs
}

func xyPoints(t *table.Table) []grob.Point {
	xs, ys := colFloats(t, "x"), colFloats(t, "y")
	pts := make([]grob.Point, len(xs))
	for i := range pts {
		pts[i] = grob.Point{X: xs[i], Y: ys[i]}
	}
	return pts
}

// firstColor returns the first value of col as a color, or def if the
// column is absent, empty, or not a color.
func firstColor(t *table.Table, col string, def color.Color) color.Color {
	c := t.Column(col)
	if c == nil || t.Len() == 0 {
		return def
	}
	if v, ok := reflect.ValueOf(c).Index(0).Interface().(color.Color); ok {
		return v
	}
	return def
}

func firstFloat(t *table.Table, col string, def float64) float64 {
	c := t.Column(col)
	if c == nil || t.Len() == 0 {
		return def
	}
	if v, ok := toFloat(reflect.ValueOf(c).Index(0).Interface()); ok {
		return v
	}
	return def
}

func iconXY(xs, ys []float64) table.Grouping {
	var b table.Builder
	b.Add("x", xs).Add("y", ys).AddConst("group", 1)
	return b.Done()
}
