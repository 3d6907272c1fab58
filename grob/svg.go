// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grob

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
)

// margin is the fraction of the smaller canvas dimension left around
// an automatically fitted plot area.
const margin = 0.05

// WriteSVG writes g to w as an SVG image of the given pixel
// dimensions. If env is nil, the data bounds of g are fitted to the
// canvas with a 5% margin.
func WriteSVG(w io.Writer, g Grob, width, height int, env *Env) error {
	if env == nil {
		xmin, xmax, ymin, ymax := Bounds(g)
		if math.IsNaN(xmin) {
			xmin, xmax, ymin, ymax = 0, 1, 0, 1
		}
		pad := margin * math.Min(float64(width), float64(height))
		xpad := pad / float64(width) * (xmax - xmin)
		ypad := pad / float64(height) * (ymax - ymin)
		env = &Env{
			Width: float64(width), Height: float64(height),
			XMin: xmin - xpad, XMax: xmax + xpad,
			YMin: ymin - ypad, YMax: ymax + ypad,
		}
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	g.Draw(canvas, env)
	canvas.End()
	return nil
}

func (g *Group) Draw(canvas *svg.SVG, env *Env) {
	if g.name != "" {
		canvas.Group(fmt.Sprintf(`id="%s"`, g.name))
	} else {
		canvas.Group()
	}
	for _, c := range g.Children {
		c.Draw(canvas, env)
	}
	canvas.Gend()
}

func (l *Line) Draw(canvas *svg.SVG, env *Env) {
	stroke := l.Stroke
	if stroke == nil {
		stroke = color.Black
	}
	width := l.Width
	if width == 0 {
		width = 2
	}
	style := cssPaint("stroke", stroke) + ";fill:none;stroke-width:" + strconv.FormatFloat(width, 'g', 6, 64)
	drawPath(canvas, mapPts(l.Pts, env), false, style, l.name)
}

func (p *Polygon) Draw(canvas *svg.SVG, env *Env) {
	stroke := p.Stroke
	if stroke == nil {
		stroke = color.Transparent
	}
	fill := p.Fill
	if fill == nil {
		fill = color.Transparent
	}
	style := cssPaint("stroke", stroke) + ";" + cssPaint("fill", fill)
	pts := mapPts(p.Pts, env)
	drawPath(canvas, pts, true, style, p.name)
}

func (p *Points) Draw(canvas *svg.SVG, env *Env) {
	fill := p.Fill
	if fill == nil {
		fill = color.Black
	}
	size := p.Size
	if size == 0 {
		size = 0.01
	}
	r := int(size * env.MinDim())
	if r < 1 {
		r = 1
	}
	style := cssPaint("fill", fill)
	if p.name != "" {
		canvas.Group(fmt.Sprintf(`id="%s"`, p.name))
		defer canvas.Gend()
	}
	for _, pt := range p.Pts {
		if !isFinite(pt.X) || !isFinite(pt.Y) {
			continue
		}
		canvas.Circle(int(env.px(pt.X)), int(env.py(pt.Y)), r, style)
	}
}

func mapPts(pts []Point, env *Env) []Point {
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[i] = Point{env.px(pt.X), env.py(pt.Y)}
	}
	return out
}

// drawPath draws a path through pts, already in pixel coordinates.
// Non-finite points break the path into segments.
func drawPath(canvas *svg.SVG, pts []Point, closed bool, style, name string) {
	switch len(pts) {
	case 0:
		return
	case 1:
		Warning.Print("cannot draw path through 1 point; ignoring")
		return
	}

	var path []byte
	inLine := false
	for _, pt := range pts {
		if !isFinite(pt.X) || !isFinite(pt.Y) {
			inLine = false
			continue
		}
		if !inLine {
			path = append(path, 'M')
			inLine = true
		}
		path = append(path, ' ')
		path = strconv.AppendFloat(path, pt.X, 'g', 6, 64)
		path = append(path, ' ')
		path = strconv.AppendFloat(path, pt.Y, 'g', 6, 64)
	}
	if len(path) == 0 {
		return
	}
	if closed {
		path = append(path, " Z"...)
	}

	if name != "" {
		canvas.Path(string(path), style, fmt.Sprintf(`id="%s"`, name))
	} else {
		canvas.Path(string(path), style)
	}
}

// cssPaint returns a CSS fragment for setting CSS property prop to
// color c.
func cssPaint(prop string, c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		// No paint.
		return prop + ":none"
	}

	if a != 0xffff {
		// Undo alpha pre-multiplication.
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	r, g, b = r>>8, g>>8, b>>8

	css := prop + fmt.Sprintf(":#%02x%02x%02x", r, g, b)
	if a != 0xffff {
		// SVG 1.1 only supports CSS2 color formats, so alpha
		// goes in a separate property.
		css += ";" + prop + "-opacity:" + strconv.FormatFloat(float64(a)/0xffff, 'g', 0, 64)
	}
	return css
}
