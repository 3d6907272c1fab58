// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coord names coordinate systems at the boundary the geom
// pipeline cares about: whether straight lines in data space stay
// straight in the drawn space. The transform math itself lives with
// the drawing backend.
package coord

// A System is an active coordinate system.
type System interface {
	// IsLinear reports whether straight lines in data space
	// remain straight under the system's transform.
	IsLinear() bool
}

// Cartesian is the ordinary linear coordinate system.
type Cartesian struct {
	// Flip swaps the x and y axes.
	Flip bool
}

func (Cartesian) IsLinear() bool { return true }

// Polar maps one position aesthetic to angle and the other to radius.
type Polar struct {
	// Theta names the aesthetic mapped to angle, "x" or "y".
	// An empty Theta means "x".
	Theta string
}

func (Polar) IsLinear() bool { return false }

// RequiresMunching reports whether data drawn under sys must be
// subdivided into short segments before it is rendered. A nil sys is
// treated as Cartesian.
func RequiresMunching(sys System) bool {
	return sys != nil && !sys.IsLinear()
}
