// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "sort"

// A KindDef registers one geom kind.
type KindDef struct {
	// Name is the kind tag. It must be unique.
	Name string

	// Base names the kind this kind derives from, or "" for a
	// root kind. The base must already be registered.
	Base string

	// Caps is the kind's capability value. It must implement
	// Grobber; embedding the base kind's capability value (or
	// geom.Base for a root kind) supplies the optional
	// capabilities.
	Caps Kind

	// Aes lists recognized aesthetics beyond those of Base.
	Aes []string

	// Required lists aesthetics that must resolve to a column,
	// beyond those of Base.
	Required []string

	// Defaults maps aesthetics to the fixed values used when the
	// data does not supply them. Keys must be recognized
	// aesthetics. Defaults override those of Base.
	Defaults map[string]interface{}
}

// kindInfo is the registry's resolved view of one kind: its ancestor
// chain and the unions of aesthetics, requirements, and defaults over
// that chain.
type kindInfo struct {
	def      KindDef
	chain    []string // def.Name plus ancestors, most-specific first
	aes      map[string]bool
	required []string
	defaults map[string]interface{}
	grobber  Grobber
}

// registry maps kind tags to their definitions. It is populated
// during startup (builtin kinds in an init step, others via Register
// before the first render) and read-only thereafter. Registering
// concurrently with active renders is not safe.
var registry = make(map[string]*kindInfo)

func lookup(kind string) *kindInfo {
	return registry[kind]
}

// Register adds a kind to the registry. It fails with a
// *CapabilityError if def.Caps does not implement Grobber and a
// *ConfigurationError for other invalid definitions.
func Register(def KindDef) error {
	if def.Name == "" {
		return &ConfigurationError{Kind: def.Name, Reason: "kind has no name"}
	}
	if _, ok := registry[def.Name]; ok {
		return &ConfigurationError{Kind: def.Name, Reason: "kind is already registered"}
	}
	if def.Caps == nil {
		return &ConfigurationError{Kind: def.Name, Reason: "kind has no capability value"}
	}
	grobber, ok := def.Caps.(Grobber)
	if !ok {
		return &CapabilityError{Kind: def.Name, Capability: "Grob"}
	}

	info := &kindInfo{
		def:      def,
		chain:    []string{def.Name},
		aes:      make(map[string]bool),
		defaults: make(map[string]interface{}),
		grobber:  grobber,
	}
	if def.Base != "" {
		base, ok := registry[def.Base]
		if !ok {
			return &ConfigurationError{Kind: def.Name, Reason: "base kind " + def.Base + " is not registered"}
		}
		info.chain = append(info.chain, base.chain...)
		for a := range base.aes {
			info.aes[a] = true
		}
		info.required = append(info.required, base.required...)
		for a, v := range base.defaults {
			info.defaults[a] = v
		}
	}
	for _, a := range def.Aes {
		info.aes[a] = true
	}
	for _, a := range def.Required {
		if !info.aes[a] {
			return &ConfigurationError{Kind: def.Name, Aesthetic: a}
		}
		info.required = append(info.required, a)
	}
	for a, v := range def.Defaults {
		if !info.aes[a] {
			return &ConfigurationError{Kind: def.Name, Aesthetic: a}
		}
		info.defaults[a] = v
	}

	registry[def.Name] = info
	return nil
}

// MustRegister is like Register but panics on error. It is intended
// for registrations from init functions.
func MustRegister(def KindDef) {
	if err := Register(def); err != nil {
		panic(err)
	}
}

// Kinds returns the tags of all registered kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Aesthetics returns the aesthetics recognized by the named kind in
// sorted order, or nil if the kind is not registered.
func Aesthetics(kind string) []string {
	info := lookup(kind)
	if info == nil {
		return nil
	}
	as := make([]string, 0, len(info.aes))
	for a := range info.aes {
		as = append(as, a)
	}
	sort.Strings(as)
	return as
}
