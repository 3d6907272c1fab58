// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"errors"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"

	"github.com/gogram/gram/grob"
)

func TestMunchSegments(t *testing.T) {
	xs, ys := munchSegments([]float64{0, 1}, []float64{0, 2}, 3)
	if !de(xs, []float64{0, 0.5, 1}) {
		t.Fatalf("xs should be [0 0.5 1]; got %v", xs)
	}
	if !de(ys, []float64{0, 1, 2}) {
		t.Fatalf("ys should be [0 1 2]; got %v", ys)
	}

	// Joints are not duplicated across segments.
	xs, ys = munchSegments([]float64{0, 1, 2}, []float64{0, 0, 0}, 5)
	if v, w := len(xs), 2*4+1; v != w {
		t.Fatalf("len(xs) should be %d; got %d", w, v)
	}
	if xs[0] != 0 || xs[4] != 1 || xs[8] != 2 {
		t.Fatalf("endpoints and joints should be preserved; got %v", xs)
	}

	// Degenerate inputs pass through.
	xs, ys = munchSegments([]float64{7}, []float64{8}, 4)
	if !de(xs, []float64{7}) || !de(ys, []float64{8}) {
		t.Fatalf("single points should pass through; got %v, %v", xs, ys)
	}
}

func TestPathMunchSubdivides(t *testing.T) {
	data := new(table.Builder).
		Add("x", []float64{0, 1}).
		Add("y", []float64{0, 1}).
		Add("group", []int{1, 1}).Done()
	g, err := Construct("path", Params{Style: map[string]interface{}{"segments": 5}})
	if err != nil {
		t.Fatal(err)
	}
	node, err := Render(g, data, RenderOptions{Munch: true})
	if err != nil {
		t.Fatal(err)
	}
	line, ok := node.(*grob.Line)
	if !ok {
		t.Fatalf("want a *grob.Line; got %T", node)
	}
	if v, w := len(line.Pts), 5; v != w {
		t.Fatalf("munched line should have %d points; got %d", w, v)
	}
	if line.Pts[0] != (grob.Point{X: 0, Y: 0}) || line.Pts[4] != (grob.Point{X: 1, Y: 1}) {
		t.Fatalf("munching should preserve endpoints; got %v", line.Pts)
	}
}

func TestRectReparameterize(t *testing.T) {
	data := new(table.Builder).
		Add("x", []float64{1, 2}).
		Add("y", []float64{1, 1}).Done()
	g, err := Construct("rect", Params{
		Style: map[string]interface{}{"width": 0.5, "height": 2.0},
	})
	if err != nil {
		t.Fatal(err)
	}
	var k rectKind
	out, err := k.Reparameterize(g, data)
	if err != nil {
		t.Fatal(err)
	}
	tab := table.Flatten(out)
	if v := tab.MustColumn("xmin"); !de(v, []float64{0.75, 1.75}) {
		t.Fatalf("xmin should be [0.75 1.75]; got %v", v)
	}
	if v := tab.MustColumn("xmax"); !de(v, []float64{1.25, 2.25}) {
		t.Fatalf("xmax should be [1.25 2.25]; got %v", v)
	}
	if v := tab.MustColumn("ymin"); !de(v, []float64{0, 0}) {
		t.Fatalf("ymin should be [0 0]; got %v", v)
	}
	if v := tab.MustColumn("ymax"); !de(v, []float64{2, 2}) {
		t.Fatalf("ymax should be [2 2]; got %v", v)
	}
}

func TestRectReparameterizeWidthColumn(t *testing.T) {
	data := new(table.Builder).
		Add("x", []float64{1}).
		Add("width", []float64{4}).
		Add("ymin", []float64{0}).
		Add("ymax", []float64{1}).Done()
	g, err := Construct("rect", Params{})
	if err != nil {
		t.Fatal(err)
	}
	var k rectKind
	out, err := k.Reparameterize(g, data)
	if err != nil {
		t.Fatal(err)
	}
	tab := table.Flatten(out)
	if v := tab.MustColumn("xmin"); !de(v, []float64{-1.0}) {
		t.Fatalf("xmin should be [-1]; got %v", v)
	}
	if v := tab.MustColumn("xmax"); !de(v, []float64{3.0}) {
		t.Fatalf("xmax should be [3]; got %v", v)
	}
}

func TestRectReparameterizeMissingExtent(t *testing.T) {
	data := new(table.Builder).
		Add("x", []float64{1}).
		Add("y", []float64{1}).Done()
	g, err := Construct("rect", Params{})
	if err != nil {
		t.Fatal(err)
	}
	var k rectKind
	_, err = k.Reparameterize(g, data)
	var derr *DataShapeError
	if !errors.As(err, &derr) {
		t.Fatalf("want *DataShapeError; got %v", err)
	}
	if derr.Column != "width" {
		t.Fatalf("error should name the missing extent; got %v", derr)
	}
}

func TestRectMunchSubstitutesPolygon(t *testing.T) {
	data := new(table.Builder).
		Add("xmin", []float64{0, 2}).
		Add("xmax", []float64{1, 3}).
		Add("ymin", []float64{0, 0}).
		Add("ymax", []float64{1, 2}).Done()
	g, err := Construct("rect", Params{Style: map[string]interface{}{"segments": 3}})
	if err != nil {
		t.Fatal(err)
	}
	node, err := Render(g, data, RenderOptions{Munch: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(node.Name(), "polygon.") {
		t.Fatalf("munched rects should render as polygons; got %q", node.Name())
	}
	var polys int
	grob.Walk(node, func(n grob.Grob) {
		p, ok := n.(*grob.Polygon)
		if !ok {
			return
		}
		polys++
		// 4 closed-path edges at 3 points per segment.
		if v, w := len(p.Pts), 4*2+1; v != w {
			t.Fatalf("each rect should munch to %d points; got %d", w, v)
		}
	})
	if polys != 2 {
		t.Fatalf("each rect should become one polygon; got %d", polys)
	}
}

func TestMunchDefaultIsIdentity(t *testing.T) {
	data := new(table.Builder).
		Add("x", []float64{1, 2}).
		Add("y", []float64{3, 4}).Done()
	g, err := Construct("point", Params{})
	if err != nil {
		t.Fatal(err)
	}
	g2, out, err := (Base{}).Munch(g, data)
	if err != nil {
		t.Fatal(err)
	}
	if g2 != g {
		t.Fatalf("default Munch should return the same geom")
	}
	if out != table.Grouping(data) {
		t.Fatalf("default Munch should return the same data")
	}
}
