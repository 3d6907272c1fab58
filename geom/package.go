// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom turns tabular data into renderable primitive trees.
//
// geom is the mark layer of a Grammar of Graphics: a set of visual
// primitive kinds ("geoms", such as lines, points, and polygons) that
// share one pipeline for going from a data table to a named grob tree.
// The pipeline itself (grouping, aesthetic resolution, optional
// munching, grob construction, naming) is fixed; everything a kind can
// vary is expressed through the Kind capability interface, so new
// kinds can be added without touching the pipeline.
//
// Kinds and fallback
//
// Every kind is registered under a name, optionally with a base kind
// it derives from. A derived kind inherits its base's recognized
// aesthetics and defaults and may override any optional capability.
// Overrides delegate to the base explicitly: a kind that wants its
// base's behavior on top of its own embeds the base's capability
// value and calls it by name. This keeps most kinds to a few lines.
// For example, the "line" kind differs from its base "path" only in
// sorting each group by x before delegating.
//
// The one capability without a default is Grob, which constructs the
// primitive tree; registering a kind that cannot produce a grob is an
// error.
//
// Data model
//
// Datasets are go-gg table.Groupings: named, typed columns with rows
// divided into groups. Each pipeline stage is a pure function from
// (geom, grouping) to (geom, grouping); no stage modifies its input,
// so concurrent renders over distinct values need no synchronization.
// The only process-wide state is the kind registry, which must be
// fully populated before the first render.
//
// Aesthetics
//
// geom understands the aesthetics "x", "y", "group", "stroke",
// "fill", "opacity", and "size", plus the rect parameterizations
// "xmin"/"xmax"/"ymin"/"ymax" and "width"/"height". Position
// aesthetics are per-row; paint aesthetics are read per-group.
//
// Munching
//
// Under a non-linear coordinate system (see package coord), straight
// segments must be subdivided before they are drawn. A caller that
// knows its coordinate system requires this passes Munch in
// RenderOptions, and the kind's Munch capability subdivides the data.
// A kind whose shape cannot survive subdivision may substitute a
// different kind for the rest of the render: "rect" reparameterizes
// into corner points and re-renders as "polygon". Substitution is a
// single step; the substituted kind's Munch is not consulted again.
package geom
