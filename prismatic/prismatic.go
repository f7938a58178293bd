// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prismatic implements closed-form geometric queries (area, wetted
// perimeter, top width, hydraulic radius, hydraulic depth) for the five
// prismatic channel shapes named in spec §3/§4.1: rectangular, trapezoidal,
// triangular, circular and parabolic. Sections are immutable once
// constructed and are only ever built through the package-level
// constructors below, never struct-literal'd by calling code -- the same
// discipline the teacher corpus uses for its constitutive models (construct
// through a named allocator, never reach into the unexported fields).
package prismatic

// Section is a prismatic cross-section: a shape whose geometry depends only
// on depth of flow, not on longitudinal station. All linear dimensions were
// validated to be > 0 (slopes >= 0) at construction time.
type Section interface {
	// Area returns the flow area (m^2) at the given depth (m).
	Area(depth float64) float64
	// WettedPerimeter returns the wetted perimeter (m) at the given depth.
	WettedPerimeter(depth float64) float64
	// TopWidth returns the free-surface width (m) at the given depth.
	TopWidth(depth float64) float64
	// Kind names the shape, for reporting only.
	Kind() string
}

// HydraulicRadius is R = A/P, 0 when P is 0. It is a free function (not a
// Section method) because it is identical for every shape once A and P are
// known -- no shape needs to override it.
func HydraulicRadius(s Section, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	p := s.WettedPerimeter(depth)
	if p <= 0 {
		return 0
	}
	return s.Area(depth) / p
}

// RectangularWidth is implemented only by a rectangular Section, letting
// the critical-depth solver take the spec's closed-form shortcut for that
// one shape instead of always bisecting (spec §4.2).
type RectangularWidth interface {
	BottomWidth() float64
}

// HydraulicDepth is D = A/T, 0 when T is 0.
func HydraulicDepth(s Section, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	t := s.TopWidth(depth)
	if t <= 0 {
		return 0
	}
	return s.Area(depth) / t
}
