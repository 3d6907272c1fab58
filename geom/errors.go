// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "fmt"

// A ConfigurationError reports an invalid geom construction, such as
// an aesthetic binding the kind does not recognize.
type ConfigurationError struct {
	// Kind is the geom kind being constructed.
	Kind string

	// Aesthetic is the unrecognized aesthetic name, or "" if the
	// problem is not an aesthetic binding.
	Aesthetic string

	// Reason describes the problem when Aesthetic is "".
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Aesthetic != "" {
		return fmt.Sprintf("geom %q: unrecognized aesthetic %q", e.Kind, e.Aesthetic)
	}
	return fmt.Sprintf("geom %q: %s", e.Kind, e.Reason)
}

// A CapabilityError reports an attempt to use a geom kind that does
// not supply a required capability, or a kind that was never
// registered.
type CapabilityError struct {
	Kind       string
	Capability string
}

func (e *CapabilityError) Error() string {
	if e.Capability == "" {
		return fmt.Sprintf("geom kind %q is not registered", e.Kind)
	}
	return fmt.Sprintf("geom kind %q does not implement %s", e.Kind, e.Capability)
}

// A DataShapeError reports data that lacks a column a pipeline stage
// requires and for which no default exists.
type DataShapeError struct {
	// Kind is the geom kind whose stage rejected the data.
	Kind string

	// Column is the missing column.
	Column string

	// Err is the underlying resolution error, if any.
	Err error
}

func (e *DataShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geom %q: %s", e.Kind, e.Err)
	}
	return fmt.Sprintf("geom %q: required column %q is missing", e.Kind, e.Column)
}

func (e *DataShapeError) Unwrap() error { return e.Err }
