// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uniform implements uniform-flow hydraulics (spec §4.2): Manning
// discharge, Froude classification, specific energy and shear, and the
// critical/normal depth (or WSEL) solvers used as boundary conditions and
// reporting primitives throughout the rest of the engine.
package uniform

import (
	"math"

	"github.com/openriver/gochannel/prismatic"
	"github.com/openriver/gochannel/xs"
)

// Gravity is g, m/s^2.
const Gravity = 9.81

// UnitWeightWater is gamma_w, N/m^3.
const UnitWeightWater = 9810.0

// ManningFlowPrismatic is Q = (1/n)*A*R^(2/3)*sqrt(S), zero if any of
// A, R, S is non-positive (spec §4.2).
func ManningFlowPrismatic(s prismatic.Section, depth, slope, n float64) float64 {
	if depth <= 0 || slope <= 0 || n <= 0 {
		return 0
	}
	a := s.Area(depth)
	r := prismatic.HydraulicRadius(s, depth)
	if a <= 0 || r <= 0 {
		return 0
	}
	return (1 / n) * a * math.Pow(r, 2.0/3.0) * math.Sqrt(slope)
}

// ManningFlowIrregular is Q = K_total * sqrt(S) for a composite section
// geometry already evaluated at some WSEL (spec §4.2).
func ManningFlowIrregular(g xs.CrossSectionGeometry, slope float64) float64 {
	if slope <= 0 || g.K <= 0 {
		return 0
	}
	return g.K * math.Sqrt(slope)
}

// FroudeNumber is Fr = V / sqrt(g*D). Returns 0 when D <= 0 rather than
// dividing by zero (spec §7 kind 5: ill-posed input degrades to a
// descriptive zero, never a panic).
func FroudeNumber(v, hydraulicDepth float64) float64 {
	if hydraulicDepth <= 0 {
		return 0
	}
	return v / math.Sqrt(Gravity*hydraulicDepth)
}

// Regime classifies a Froude number per spec §4.2.
func Regime(fr float64) string {
	switch {
	case fr < 0.95:
		return "subcritical"
	case fr > 1.05:
		return "supercritical"
	default:
		return "critical"
	}
}

// SpecificEnergy is E = y + V^2/(2g).
func SpecificEnergy(depth, v float64) float64 {
	return depth + v*v/(2*Gravity)
}

// ShearStress is tau = gamma_w * R * S.
func ShearStress(hydraulicRadius, slope float64) float64 {
	return UnitWeightWater * hydraulicRadius * slope
}

// CompositeFroude is the composite-section Froude approximation used in
// reports (spec §4.2): Fr_comp = sqrt(alpha) * V / sqrt(g*D).
func CompositeFroude(alpha, v, hydraulicDepth float64) float64 {
	if hydraulicDepth <= 0 {
		return 0
	}
	return math.Sqrt(alpha) * v / math.Sqrt(Gravity*hydraulicDepth)
}
