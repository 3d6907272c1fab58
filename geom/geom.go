// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"sort"
)

// A Geom is an immutable visual-primitive configuration: a kind, a
// set of aesthetic bindings expected to vary per data row, and a set
// of fixed style parameters. Construct a Geom with Construct or
// Parse; a zero Geom has no kind and cannot be rendered.
type Geom struct {
	kinds []string // most-specific first
	aes   map[string]string
	style []Param
}

// A Param is one fixed style parameter of a Geom.
type Param struct {
	Name  string
	Value interface{}
}

// Params configures a Geom under construction.
type Params struct {
	// Aes maps aesthetic names to data column names. Every key
	// must be an aesthetic the kind recognizes.
	Aes map[string]string

	// Style maps style parameter names to fixed values. Values
	// must be string, bool, int, or float64 so that the Geom can
	// be deconstructed to text and reconstructed.
	Style map[string]interface{}
}

// Construct builds a Geom of the named kind. It fails with a
// *ConfigurationError if the kind is unknown, if an aesthetic binding
// names an aesthetic the kind does not recognize, or if a style value
// has an unsupported type.
func Construct(kind string, p Params) (*Geom, error) {
	info := lookup(kind)
	if info == nil {
		return nil, &ConfigurationError{Kind: kind, Reason: "unknown kind"}
	}

	aesMap := make(map[string]string, len(p.Aes))
	for a, col := range p.Aes {
		if !info.aes[a] {
			return nil, &ConfigurationError{Kind: kind, Aesthetic: a}
		}
		aesMap[a] = col
	}

	style := make([]Param, 0, len(p.Style))
	for name, val := range p.Style {
		switch val.(type) {
		case string, bool, int, float64:
		default:
			return nil, &ConfigurationError{Kind: kind, Reason: fmt.Sprintf("style parameter %q has unsupported type %T", name, val)}
		}
		style = append(style, Param{name, val})
	}
	sort.Slice(style, func(i, j int) bool { return style[i].Name < style[j].Name })

	return &Geom{kinds: info.chain, aes: aesMap, style: style}, nil
}

// Kind returns g's most-specific kind tag.
func (g *Geom) Kind() string {
	if len(g.kinds) == 0 {
		return ""
	}
	return g.kinds[0]
}

// KindChain returns g's kind tags, most-specific first.
func (g *Geom) KindChain() []string {
	return append([]string(nil), g.kinds...)
}

// Is reports whether kind is g's kind or one of its ancestors.
func (g *Geom) Is(kind string) bool {
	for _, k := range g.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Binding returns the column bound to the named aesthetic.
func (g *Geom) Binding(aes string) (col string, ok bool) {
	col, ok = g.aes[aes]
	return
}

// Bindings returns a copy of g's aesthetic bindings.
func (g *Geom) Bindings() map[string]string {
	m := make(map[string]string, len(g.aes))
	for a, col := range g.aes {
		m[a] = col
	}
	return m
}

// Style returns the value of the named style parameter.
func (g *Geom) Style(name string) (val interface{}, ok bool) {
	for _, p := range g.style {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// StyleFloat returns the named style parameter as a float64. Integer
// values are widened. If the parameter is absent or not numeric,
// StyleFloat returns def.
func (g *Geom) StyleFloat(name string, def float64) float64 {
	v, ok := g.Style(name)
	if !ok {
		return def
	}
	switch v := v.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// StyleString returns the named style parameter as a string, or def
// if it is absent or not a string.
func (g *Geom) StyleString(name, def string) string {
	if v, ok := g.Style(name); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// As returns a Geom like g but of the named kind. Bindings the new
// kind does not recognize are dropped; style parameters are carried
// over unchanged. Munch implementations use As to substitute a kind
// that can be drawn after subdivision.
func (g *Geom) As(kind string) (*Geom, error) {
	info := lookup(kind)
	if info == nil {
		return nil, &ConfigurationError{Kind: kind, Reason: "unknown kind"}
	}
	aesMap := make(map[string]string, len(g.aes))
	for a, col := range g.aes {
		if info.aes[a] {
			aesMap[a] = col
		}
	}
	return &Geom{kinds: info.chain, aes: aesMap, style: g.style}, nil
}

// DisplayName returns a human-readable label for g, derived from its
// most-specific kind tag. Render uses it to name the grob tree nodes
// a geom produces.
func DisplayName(g *Geom) string {
	if g.Kind() == "" {
		return "geom"
	}
	return g.Kind()
}
