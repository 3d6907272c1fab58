// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grob

import (
	"bytes"
	"image/color"
	"math"
	"strings"
	"testing"
)

func TestEnvMapping(t *testing.T) {
	env := &Env{Width: 100, Height: 50, XMin: 0, XMax: 10, YMin: 0, YMax: 10}
	if v := env.px(0); v != 0 {
		t.Fatalf("px(0) should be 0; got %v", v)
	}
	if v := env.px(10); v != 100 {
		t.Fatalf("px(10) should be 100; got %v", v)
	}
	// Y is flipped.
	if v := env.py(0); v != 50 {
		t.Fatalf("py(0) should be 50; got %v", v)
	}
	if v := env.py(10); v != 0 {
		t.Fatalf("py(10) should be 0; got %v", v)
	}
	// A degenerate span maps to the canvas center.
	deg := &Env{Width: 100, Height: 50}
	if v := deg.px(7); v != 50 {
		t.Fatalf("px on a zero span should be 50; got %v", v)
	}
	if v := deg.py(7); v != 25 {
		t.Fatalf("py on a zero span should be 25; got %v", v)
	}
}

func TestUnitEnv(t *testing.T) {
	env := UnitEnv(200, 100)
	if v := env.px(0.5); v != 100 {
		t.Fatalf("px(0.5) should be 100; got %v", v)
	}
	if v := env.py(1); v != 0 {
		t.Fatalf("py(1) should be 0; got %v", v)
	}
	if v := env.MinDim(); v != 100 {
		t.Fatalf("MinDim should be 100; got %v", v)
	}
}

func TestWalk(t *testing.T) {
	line := &Line{Pts: []Point{{0, 0}, {1, 1}}}
	pts := &Points{Pts: []Point{{0.5, 0.5}}}
	root := new(Group).Add(line, new(Group).Add(pts))
	var order []Grob
	Walk(root, func(g Grob) { order = append(order, g) })
	if len(order) != 4 {
		t.Fatalf("Walk should visit 4 nodes; got %d", len(order))
	}
	if order[0] != Grob(root) || order[1] != Grob(line) || order[3] != Grob(pts) {
		t.Fatalf("Walk should visit nodes in drawing order; got %v", order)
	}
}

func TestBounds(t *testing.T) {
	g := new(Group).Add(
		&Line{Pts: []Point{{1, 2}, {3, -1}}},
		&Points{Pts: []Point{{-2, 5}, {math.NaN(), 100}}},
	)
	xmin, xmax, ymin, ymax := Bounds(g)
	if xmin != -2 || xmax != 3 || ymin != -1 || ymax != 5 {
		t.Fatalf("bounds should be [-2 3 -1 5]; got [%v %v %v %v]", xmin, xmax, ymin, ymax)
	}

	xmin, _, _, _ = Bounds(new(Group))
	if !math.IsNaN(xmin) {
		t.Fatalf("bounds of an empty tree should be NaN; got %v", xmin)
	}
}

func TestWriteSVG(t *testing.T) {
	line := &Line{Pts: []Point{{0, 0}, {1, 1}}, Stroke: color.Black}
	line.SetName("line.1")
	root := new(Group).Add(line)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, root, 100, 100, UnitEnv(100, 100)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "<path", `id="line.1"`, "stroke:#000000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("SVG output should contain %q; got:\n%s", want, out)
		}
	}
}

func TestWriteSVGAutoFit(t *testing.T) {
	poly := &Polygon{
		Pts:  []Point{{0, 0}, {4, 0}, {4, 2}, {0, 2}},
		Fill: color.Gray{0x33},
	}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, poly, 200, 100, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Z") {
		t.Fatalf("polygon path should be closed; got:\n%s", out)
	}
	if !strings.Contains(out, "fill:#333333") {
		t.Fatalf("polygon should carry its fill; got:\n%s", out)
	}
}

func TestCSSPaint(t *testing.T) {
	if v := cssPaint("fill", color.Transparent); v != "fill:none" {
		t.Fatalf("transparent should be %q; got %q", "fill:none", v)
	}
	if v := cssPaint("stroke", color.Black); v != "stroke:#000000" {
		t.Fatalf("black should be %q; got %q", "stroke:#000000", v)
	}
	if v := cssPaint("fill", color.NRGBA{0xff, 0, 0, 0x80}); !strings.HasPrefix(v, "fill:#ff0000;fill-opacity:") {
		t.Fatalf("translucent red should carry an opacity property; got %q", v)
	}
}
