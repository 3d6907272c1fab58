// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"errors"

	"github.com/aclements/go-gg/table"

	"github.com/gogram/gram/aes"
	"github.com/gogram/gram/coord"
	"github.com/gogram/gram/grob"
)

// A Kind is the capability set of a geom kind. All of these
// operations have defaults supplied by Base; a concrete kind embeds
// Base (or the capability value of its base kind) and overrides what
// it needs. An override that wants its base's behavior must invoke it
// explicitly on the embedded value.
//
// A renderable kind additionally implements Grobber.
type Kind interface {
	// ResolveData merges the data's aesthetic columns with the
	// geom's defaults and applies any kind-specific ordering or
	// filtering. The default delegates to aes.Resolve with the
	// kind's registered defaults and then checks the kind's
	// required aesthetics.
	ResolveData(g *Geom, data table.Grouping) (table.Grouping, error)

	// Munch subdivides data for rendering under a non-linear
	// coordinate system. It may return a different geom to draw
	// in place of g. The default is the identity.
	Munch(g *Geom, data table.Grouping) (*Geom, table.Grouping, error)

	// Reparameterize folds alternative position parameterizations
	// (such as width/height) into the canonical min/max columns.
	// The default is the identity.
	Reparameterize(g *Geom, data table.Grouping) (table.Grouping, error)

	// DefaultStat names the statistical transform the kind is
	// usually paired with. The default is StatIdentity.
	DefaultStat(g *Geom) StatID

	// DefaultAdjust names the position adjustment the kind is
	// usually paired with. The default is AdjustIdentity.
	DefaultAdjust(g *Geom) AdjustID

	// IconData returns a small illustrative dataset in the unit
	// square, used for preview glyphs. The default is an empty
	// dataset.
	IconData(g *Geom) table.Grouping
}

// A Grobber constructs a primitive-tree node from resolved data. It
// is the one capability without a default: a kind registered without
// it is rejected.
type Grobber interface {
	Grob(g *Geom, data table.Grouping, ctx *Context) (grob.Grob, error)
}

// A Context carries render-scoped state into Grob implementations.
type Context struct {
	// Coord is the active coordinate system, or nil for
	// Cartesian.
	Coord coord.System
}

// A StatID identifies a statistical transform. The transforms
// themselves are implemented elsewhere; geoms only name their
// preferred default.
type StatID string

const (
	StatIdentity StatID = "identity"
	StatBin      StatID = "bin"
	StatCount    StatID = "count"
)

// An AdjustID identifies a position adjustment.
type AdjustID string

const (
	AdjustIdentity AdjustID = "identity"
	AdjustStack    AdjustID = "stack"
	AdjustDodge    AdjustID = "dodge"
	AdjustJitter   AdjustID = "jitter"
)

// Base supplies the default implementation of every optional
// capability. Root kinds embed Base; derived kinds embed their base
// kind's capability value, which transitively embeds Base.
type Base struct{}

// ResolveData merges aesthetic bindings and kind defaults into data
// and verifies the kind's required aesthetics are present.
func (Base) ResolveData(g *Geom, data table.Grouping) (table.Grouping, error) {
	info := lookup(g.Kind())
	if info == nil {
		return nil, &CapabilityError{Kind: g.Kind()}
	}
	out, err := aes.Resolve(g.aes, info.defaults, data)
	if err != nil {
		var mc *aes.MissingColumnError
		if errors.As(err, &mc) {
			return nil, &DataShapeError{Kind: g.Kind(), Column: mc.Column, Err: err}
		}
		return nil, err
	}
	for _, a := range info.required {
		if !hasColumn(out, a) {
			return nil, &DataShapeError{Kind: g.Kind(), Column: a}
		}
	}
	return out, nil
}

// Munch returns g and data unchanged.
func (Base) Munch(g *Geom, data table.Grouping) (*Geom, table.Grouping, error) {
	return g, data, nil
}

// Reparameterize returns data unchanged.
func (Base) Reparameterize(g *Geom, data table.Grouping) (table.Grouping, error) {
	return data, nil
}

func (Base) DefaultStat(*Geom) StatID     { return StatIdentity }
func (Base) DefaultAdjust(*Geom) AdjustID { return AdjustIdentity }

// IconData returns an empty dataset positioned in the unit square.
func (Base) IconData(*Geom) table.Grouping {
	return new(table.Builder).Add("x", []float64{}).Add("y", []float64{}).Done()
}

func hasColumn(g table.Grouping, col string) bool {
	for _, c := range g.Columns() {
		if c == col {
			return true
		}
	}
	return false
}
