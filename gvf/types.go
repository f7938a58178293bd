// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gvf computes one-dimensional gradually-varied-flow water-surface
// profiles: Direct Step over prismatic channels and Standard Step over
// irregular reaches, with profile-type classification and mixed-regime
// (hydraulic-jump) merging (spec §4.3-§4.6). It is built the way the
// teacher's msolid.Driver marches a constitutive-model load path: a
// preallocated results slice, a step loop that carries state forward from
// sample i-1 to i, and no suspension points or shared state (spec §5).
package gvf

import (
	"math"

	"github.com/openriver/gochannel/xs"
)

// FrictionSlopeAveraging selects how two sections' friction slopes are
// combined into a reach-averaged S_f (spec §4.3, §4.4).
type FrictionSlopeAveraging int

const (
	Arithmetic FrictionSlopeAveraging = iota
	Geometric
	Harmonic
)

// Average combines a and b per the selected rule. Non-positive inputs fall
// back to the arithmetic mean, since geometric/harmonic means are undefined
// (or misleading) for non-positive friction slopes.
func (m FrictionSlopeAveraging) Average(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return 0.5 * (a + b)
	}
	switch m {
	case Geometric:
		return math.Sqrt(a * b)
	case Harmonic:
		return 2 * a * b / (a + b)
	default:
		return 0.5 * (a + b)
	}
}

// BoundaryKind tags the variant held by a BoundaryCondition (spec §4.4,
// §6 options enums).
type BoundaryKind int

const (
	KnownWSEL BoundaryKind = iota
	NormalDepthBC
	CriticalDepthBC
	RatingCurveBC
)

// RatingPoint is one (Q, WSEL) sample of a piecewise-linear rating curve.
type RatingPoint struct {
	Q, WSEL float64
}

// BoundaryCondition resolves the starting WSEL for a Standard Step run
// (spec §4.4). Exactly one of the fields is meaningful, selected by Kind.
type BoundaryCondition struct {
	Kind    BoundaryKind
	WSEL    float64       // KnownWSEL
	Rating  []RatingPoint // RatingCurveBC, sorted by Q ascending
}

// Direction is the order Standard Step walks the section list.
type Direction int

const (
	Upstream Direction = iota
	Downstream
)

// SlopeClass is the bed-slope classification used by profile typing
// (spec §4.5).
type SlopeClass int

const (
	Mild SlopeClass = iota
	Steep
	CriticalSlope
	Horizontal
	Adverse
)

func (c SlopeClass) String() string {
	switch c {
	case Mild:
		return "mild"
	case Steep:
		return "steep"
	case CriticalSlope:
		return "critical"
	case Horizontal:
		return "horizontal"
	case Adverse:
		return "adverse"
	default:
		return "unknown"
	}
}

// ProfileType is the classic M/S/C/H/A x 1/2/3 GVF profile tag (spec
// §4.5). Zero value Unclassified covers depths/slopes for which no
// standard profile type applies (e.g. critical-slope C2 is not a named
// region in the classical scheme).
type ProfileType int

const (
	Unclassified ProfileType = iota
	M1
	M2
	M3
	S1
	S2
	S3
	C1
	C3
	H2
	H3
	A2
	A3
)

func (p ProfileType) String() string {
	names := map[ProfileType]string{
		Unclassified: "unclassified",
		M1: "M1", M2: "M2", M3: "M3",
		S1: "S1", S2: "S2", S3: "S3",
		C1: "C1", C3: "C3",
		H2: "H2", H3: "H3",
		A2: "A2", A3: "A3",
	}
	return names[p]
}

// Trend describes how depth moves along a profile, and which control depth
// it approaches (spec §4.5). ClassifyProfile returns it alongside the
// profile type; DirectStep always takes an explicit end depth and does not
// use Trend to choose one.
type Trend struct {
	Increasing  bool
	ApproachesYn bool
	ApproachesYc bool
}

// LossBreakdown is the per-section-pair loss attribution of a Standard Step
// profile, recorded on the upstream point of each consecutive pair as that
// step is solved (spec §4.4).
type LossBreakdown struct {
	Friction, Contraction, Expansion, Total float64
}

// ProfilePoint is one station of a computed water-surface profile (spec
// §3).
type ProfilePoint struct {
	Station      float64
	WSEL         float64
	EnergyGrade  float64
	BedElevation float64

	Depth         float64
	CriticalDepth float64
	NormalDepth   float64

	Q, A, V, VelocityHead float64
	Fr                    float64
	Regime                string

	SpecificEnergy float64
	FrictionSlope  float64

	Losses LossBreakdown

	Geometry *xs.CrossSectionGeometry // nil for prismatic profiles

	ProfileType ProfileType
	Warnings    []string
}

// WaterSurfaceProfile is an ordered (by increasing station) sequence of
// profile points plus run-level metadata (spec §3).
type WaterSurfaceProfile struct {
	Points []ProfilePoint

	SlopeClass  SlopeClass
	ProfileType ProfileType
	Regime      string
	Direction   Direction
	Boundary    BoundaryCondition

	ReachLength  float64
	AverageSlope float64

	HasJump    bool
	JumpStation float64

	Converged bool
	Iterations int
	ResidualError float64

	Warnings []string
}

// DirectStepOptions configures gvf.DirectStep (spec §4.3).
type DirectStepOptions struct {
	Steps     int // default 50
	Averaging FrictionSlopeAveraging
}

// StandardStepOptions configures gvf.StandardStep (spec §4.4).
type StandardStepOptions struct {
	Direction     *Direction // nil: select from slope classification
	Averaging     FrictionSlopeAveraging
	Tolerance     float64 // default 1e-3 m
	MaxIterations int     // default 50
}
