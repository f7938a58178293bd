// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reach composes Standard Step with the structure hooks to analyze a
// full river reach, and composes reaches into a river system (spec §4.6).
// Grounded on fem/domain.go's collection-of-spatially-ordered-entities shape
// for RiverReach/RiverSystem, plus katalvlaran/lvlath's core.Graph/dfs/bfs
// packages for the reach graph's acyclicity check and terminal-upward
// computation order.
package reach

import (
	"github.com/openriver/gochannel/gvf"
	"github.com/openriver/gochannel/structures"
	"github.com/openriver/gochannel/xs"
)

// BridgeAt locates a Bridge hook along a reach (spec §4.6).
type BridgeAt struct {
	Station float64
	Hook    structures.Bridge
}

// CulvertAt locates a Culvert hook along a reach; Diameter is the barrel
// rise used to report HW/D.
type CulvertAt struct {
	Station  float64
	Hook     structures.Culvert
	Diameter float64
}

// WeirAt locates an inline Weir hook at its crest elevation.
type WeirAt struct {
	Station        float64
	CrestElevation float64
	Hook           structures.Weir
}

// LateralWeirAt is the lateral-overflow analogue of WeirAt.
type LateralWeirAt struct {
	Station        float64
	CrestElevation float64
	Hook           structures.LateralWeir
}

// LateralDiversionAt locates a LateralDiversion hook; its input stage is the
// interpolated profile WSEL at Station.
type LateralDiversionAt struct {
	Station float64
	Hook    structures.LateralDiversion
}

// RiverReach is an ordered reach of cross-sections plus its optional
// structures and downstream linkage (spec §3). Sections must be sorted by
// RiverStation ascending, per the spec's literal data-model invariant; in
// the common convention where river station increases going upstream, that
// means Sections[0] is the most downstream section and Sections[last] the
// most upstream -- the opposite order gvf.StandardStep wants, which is why
// Analyze reverses the slice before calling it (see analyze.go).
type RiverReach struct {
	ID       string
	Sections []*xs.IrregularCrossSection

	Bridges           []BridgeAt
	Culverts          []CulvertAt
	Weirs             []WeirAt
	LateralWeirs      []LateralWeirAt
	LateralDiversions []LateralDiversionAt

	DownstreamReachID string
}

// Junction is bookkeeping only -- spec §4.10 explicitly omits junction mass
// balance, so a Junction never changes what flow reaches a tributary or
// mainstem reach.
type Junction struct {
	ID                    string
	Tributaries, Mainstem []string
}

// RiverSystem is a set of reaches and optional junctions (spec §3); the
// directed graph formed by DownstreamReachID pointers must be acyclic.
type RiverSystem struct {
	Reaches   []*RiverReach
	Junctions []Junction
}

// FlowProfile supplies the per-reach design flow and, optionally, an
// explicit boundary condition (spec §3, §4.6). A reach with no entry in
// Supplied gets its boundary condition derived by AnalyzeSystem.
type FlowProfile struct {
	Flows      map[string]float64
	Boundaries map[string]gvf.BoundaryCondition
	Supplied   map[string]bool
}

// Result is the outcome of analyzing a single reach (spec §4.6).
type Result struct {
	ReachID string
	Profile gvf.WaterSurfaceProfile

	BridgeResults    []structures.BridgeResult
	CulvertResults   []structures.CulvertResult
	WeirResults      []structures.WeirResult
	LateralOverflow  float64
	LateralDiversion float64

	MinWSEL, MaxWSEL          float64
	MeanVelocity, MaxVelocity float64
	MeanFroude                float64
}

// FloodplainPoint is the floodplain delineation at one profile station
// (spec §4.6).
type FloodplainPoint struct {
	Station                 float64
	LeftExtent, RightExtent float64
	TopWidth                float64
	MaxDepth, AverageDepth  float64
	Area                    float64
}

// VolumeResult is the flood volume computed between a profile's consecutive
// points (spec §4.6).
type VolumeResult struct {
	Total, Main, LOB, ROB float64
	SurfaceArea           float64
	AverageDepth          float64
}

// RatingCurvePoint is one sample of a single-section rating curve
// (spec §4.6).
type RatingCurvePoint struct {
	Q, WSEL, V, D, Fr, Depth float64
}

// VelocityPoint is the local velocity at one surveyed station of a section
// already evaluated at some WSEL (spec §4.6).
type VelocityPoint struct {
	Station, Elevation, Depth, Velocity float64
}

// ShearPoint is the local shear stress at one surveyed station
// (spec §4.6).
type ShearPoint struct {
	Station, Elevation, Depth, Shear float64
}
