// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xs is the irregular (natural) cross-section data model and its
// geometric queries (spec §3, §4.1). A section is a sorted station-
// elevation polyline split into up to three zones (left overbank, main
// channel, right overbank) by a pair of bank stations, with optional
// ineffective areas, levees and obstructions layered on top. Sections are
// validated once, then treated as immutable for the lifetime of any
// analysis -- the same discipline the teacher applies to its mesh/domain
// data (fem.Domain is built once from a validated fem.Mesh and never
// mutated by the solvers that consume it).
package xs

// Zone identifies one of the three conveyance zones of a cross-section.
type Zone int

const (
	LOB Zone = iota
	Main
	ROB
)

func (z Zone) String() string {
	switch z {
	case LOB:
		return "LOB"
	case Main:
		return "main"
	case ROB:
		return "ROB"
	default:
		return "unknown"
	}
}

// StationElevation is one vertex of the ground polyline. Station increases
// left to right across the section; elevation is absolute. N, when
// non-nil, overrides the zone's Manning n for the segment immediately to
// the right of this point (not used by this engine's geometry, which takes
// the three zone n values from IrregularCrossSection.ManningN, but carried
// through because spec §3 names it as an attribute of the point).
type StationElevation struct {
	Station   float64
	Elevation float64
	N         *float64
}

// BankStations locates the two breaks between LOB/main/ROB, both expressed
// as stations (Left < Right, both inside the section extent).
type BankStations struct {
	Left, Right float64
}

// ManningN holds the three zone roughness coefficients, all required > 0.
type ManningN struct {
	LOB, Main, ROB float64
}

// ReachLengths holds the three zone distances (m) to the next downstream
// section, all >= 0.
type ReachLengths struct {
	LOB, Main, ROB float64
}

// IneffectiveArea is a station range that stores water but conveys none
// (spec §3). A non-permanent area only becomes effective once the water
// surface reaches Threshold; a permanent one never does.
type IneffectiveArea struct {
	Left, Right float64
	Threshold   float64
	Permanent   bool
}

// active reports whether this ineffective area blocks flow at the given
// WSEL: permanent areas always do, non-permanent ones only below threshold.
func (ia IneffectiveArea) active(wsel float64) bool {
	if ia.Permanent {
		return true
	}
	return wsel < ia.Threshold
}

// Obstruction is supplemental (SPEC_FULL §3): a station range that behaves
// exactly like a permanent IneffectiveArea -- it removes area from its
// zone but never perimeter -- used for piers, debris jams and similar
// always-blocking features that are distinct in name from "ineffective
// flow area" but identical in hydraulic effect.
type Obstruction struct {
	Left, Right float64
	GroundElev  float64
}

// Levee fully blocks one overbank (area, perimeter, top width, conveyance
// all zero) while the water surface is below its crest.
type Levee struct {
	Station    float64
	TopElev    float64
	Side       Zone // LOB or ROB only
}

// CoefficientSet holds the optional contraction/expansion eddy-loss
// coefficients used by Standard Step (spec §4.4); zero value means "not
// set", and callers should fall back to the Standard Step defaults
// (Ce=0.3 expansion, Cc=0.1 contraction).
type CoefficientSet struct {
	Contraction *float64
	Expansion   *float64
}

// IrregularCrossSection is one surveyed river station (spec §3).
type IrregularCrossSection struct {
	ID           string
	RiverStation float64
	Points       []StationElevation
	Banks        BankStations
	ManningN     ManningN
	Ineffective  []IneffectiveArea
	Levees       []Levee
	Obstructions []Obstruction
	ReachLengths ReachLengths
	Coeffs       CoefficientSet

	validated bool
}

// ZMin returns the thalweg (lowest point) elevation.
func (xsec *IrregularCrossSection) ZMin() float64 {
	z := xsec.Points[0].Elevation
	for _, p := range xsec.Points[1:] {
		if p.Elevation < z {
			z = p.Elevation
		}
	}
	return z
}

// ZMax returns the highest surveyed elevation.
func (xsec *IrregularCrossSection) ZMax() float64 {
	z := xsec.Points[0].Elevation
	for _, p := range xsec.Points[1:] {
		if p.Elevation > z {
			z = p.Elevation
		}
	}
	return z
}

// ContractionCoef returns the configured contraction coefficient or the
// Standard Step default (0.1, spec §4.4) when unset.
func (xsec *IrregularCrossSection) ContractionCoef() float64 {
	if xsec.Coeffs.Contraction != nil {
		return *xsec.Coeffs.Contraction
	}
	return 0.1
}

// ExpansionCoef returns the configured expansion coefficient or the
// Standard Step default (0.3, spec §4.4) when unset.
func (xsec *IrregularCrossSection) ExpansionCoef() float64 {
	if xsec.Coeffs.Expansion != nil {
		return *xsec.Coeffs.Expansion
	}
	return 0.3
}

// AverageReachLength is the average of the three zone reach lengths, used
// by Standard Step (spec §4.4, open question in §9: reach length is not
// zone-specific in the energy balance -- preserved as-is).
func (rl ReachLengths) AverageReachLength() float64 {
	return (rl.LOB + rl.Main + rl.ROB) / 3
}
