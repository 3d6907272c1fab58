// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grob provides named primitive-tree nodes and an SVG backend
// for drawing them.
//
// A Grob ("graphical object") is the terminal artifact of a render: an
// opaque tree of lines, polygons, points, and groups, positioned in
// data coordinates. Producers attach a name to each node so that nodes
// in a scene can be traced back to whatever produced them. Consumers
// either walk the tree or hand it to WriteSVG along with an Env that
// maps data coordinates to pixels.
package grob

import (
	"image/color"
	"log"
	"math"
	"os"

	"github.com/aclements/go-moremath/stats"
	svg "github.com/ajstarks/svgo"
)

// Warning is a logger for reporting conditions that don't prevent
// drawing, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[grob] ", log.Lshortfile)

// A Grob is a node in a primitive tree.
type Grob interface {
	// Name returns the node's identity, or "" if it has none.
	Name() string

	// SetName sets the node's identity.
	SetName(name string)

	// Draw draws the node on canvas, mapping data coordinates
	// through env.
	Draw(canvas *svg.SVG, env *Env)
}

// A Point is an x, y pair in data coordinates.
type Point struct {
	X, Y float64
}

func isFinite(x float64) bool {
	return !(math.IsNaN(x) || math.IsInf(x, 0))
}

// An Env maps data coordinates to pixel coordinates on a canvas of
// Width by Height pixels. The data rectangle [XMin, XMax] x [YMin,
// YMax] maps to the full canvas, with Y flipped so larger data values
// are higher on the canvas.
type Env struct {
	Width, Height float64

	XMin, XMax float64
	YMin, YMax float64
}

// UnitEnv returns an Env that maps the unit square to a width by
// height canvas. It is the coordinate space used for preview icons.
func UnitEnv(width, height float64) *Env {
	return &Env{Width: width, Height: height, XMax: 1, YMax: 1}
}

func (e *Env) px(x float64) float64 {
	span := e.XMax - e.XMin
	if span == 0 {
		return e.Width / 2
	}
	return (x - e.XMin) / span * e.Width
}

func (e *Env) py(y float64) float64 {
	span := e.YMax - e.YMin
	if span == 0 {
		return e.Height / 2
	}
	return e.Height - (y-e.YMin)/span*e.Height
}

// MinDim returns the smaller of the canvas dimensions.
func (e *Env) MinDim() float64 {
	return math.Min(e.Width, e.Height)
}

// node provides the name part of a Grob. Concrete nodes embed it.
type node struct {
	name string
}

func (n *node) Name() string        { return n.name }
func (n *node) SetName(name string) { n.name = name }

// A Line connects successive points with an open path.
type Line struct {
	node

	Pts []Point

	// Stroke is the path color. A nil Stroke means black.
	Stroke color.Color

	// Width is the stroke width in pixels. Zero means the default
	// width.
	Width float64
}

// A Polygon connects successive points with a closed, optionally
// filled path.
type Polygon struct {
	node

	Pts []Point

	// Stroke is the outline color. A nil Stroke means no outline.
	Stroke color.Color

	// Fill is the interior color. A nil Fill means no fill.
	Fill color.Color
}

// Points draws a circle at each point.
type Points struct {
	node

	Pts []Point

	// Fill is the circle color. A nil Fill means black.
	Fill color.Color

	// Size is the circle radius as a fraction of the smallest
	// canvas dimension. Zero means 1%.
	Size float64
}

// A Group composites child nodes in order.
type Group struct {
	node

	Children []Grob
}

// Add appends children to g and returns g.
func (g *Group) Add(children ...Grob) *Group {
	g.Children = append(g.Children, children...)
	return g
}

// Walk calls f for g and every node under g in drawing order.
func Walk(g Grob, f func(Grob)) {
	f(g)
	if gr, ok := g.(*Group); ok {
		for _, c := range gr.Children {
			Walk(c, f)
		}
	}
}

// Bounds returns the bounding rectangle of all points under g in data
// coordinates. If g contains no finite points, all four bounds are
// NaN.
func Bounds(g Grob) (xmin, xmax, ymin, ymax float64) {
	var xs, ys []float64
	Walk(g, func(n Grob) {
		var pts []Point
		switch n := n.(type) {
		case *Line:
			pts = n.Pts
		case *Polygon:
			pts = n.Pts
		case *Points:
			pts = n.Pts
		}
		for _, pt := range pts {
			if isFinite(pt.X) && isFinite(pt.Y) {
				xs = append(xs, pt.X)
				ys = append(ys, pt.Y)
			}
		}
	})
	if len(xs) == 0 {
		nan := math.NaN()
		return nan, nan, nan, nan
	}
	xmin, xmax = stats.Bounds(xs)
	ymin, ymax = stats.Bounds(ys)
	return
}
