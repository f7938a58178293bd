// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structures

import "math"

// FixedLossBridge always reports a constant backwater rise. A placeholder
// for callers wiring in a real bridge model later (SPEC_FULL §4.9) -- it
// exists so reach analysis has something concrete to drive in tests
// without depending on an external bridge-hydraulics package.
type FixedLossBridge struct {
	Rise float64
}

func (b FixedLossBridge) Evaluate(downstreamWSEL, q float64) BridgeResult {
	return BridgeResult{
		BackwaterRise: b.Rise,
		UpstreamWSEL:  downstreamWSEL + b.Rise,
	}
}

// RatingCulvert reports headwater elevation by piecewise-linear
// interpolation of a supplied Q->HW curve, tagged inlet control always --
// a stand-in, not a real culvert solver (SPEC_FULL §4.9).
type RatingCulvert struct {
	Curve []RatingPoint
}

// RatingPoint is one (Q, HW elevation) sample of a culvert rating curve.
type RatingPoint struct {
	Q, HeadwaterElevation float64
}

func (c RatingCulvert) Evaluate(tailwaterElev, q, culvertDiameter float64) CulvertResult {
	hw := interpolateCurve(c.Curve, q)
	result := CulvertResult{Control: InletControl, HeadwaterElevation: hw}
	if culvertDiameter > 0 {
		result.HeadwaterOverD = (hw - tailwaterElev) / culvertDiameter
	}
	return result
}

func interpolateCurve(pts []RatingPoint, q float64) float64 {
	if len(pts) == 0 {
		return 0
	}
	if q <= pts[0].Q {
		return pts[0].HeadwaterElevation
	}
	if q >= pts[len(pts)-1].Q {
		return pts[len(pts)-1].HeadwaterElevation
	}
	for i := 0; i < len(pts)-1; i++ {
		if q >= pts[i].Q && q <= pts[i+1].Q {
			t := (q - pts[i].Q) / (pts[i+1].Q - pts[i].Q)
			return pts[i].HeadwaterElevation + t*(pts[i+1].HeadwaterElevation-pts[i].HeadwaterElevation)
		}
	}
	return pts[len(pts)-1].HeadwaterElevation
}

// SharpCrestedWeir implements Q = Cd*L*H^1.5, the standard sharp-crested
// weir equation -- simple enough to ship as a default even though full
// weir hydraulics is named out of scope (SPEC_FULL §4.9).
type SharpCrestedWeir struct {
	Cd, Length float64
}

func (w SharpCrestedWeir) Evaluate(headAboveCrest float64) WeirResult {
	if headAboveCrest <= 0 {
		return WeirResult{}
	}
	return WeirResult{Q: w.Cd * w.Length * math.Pow(headAboveCrest, 1.5)}
}

// StageFlowPoint is one (stage, flow) sample of a diversion curve.
type StageFlowPoint struct {
	Stage, Flow float64
}

// CappedDiversion is a piecewise-linear stage->flow diversion curve capped
// at a configured maximum (spec §4.7).
type CappedDiversion struct {
	Curve []StageFlowPoint
	Max   float64
}

func (d CappedDiversion) Evaluate(stage float64) float64 {
	flow := interpolateStageFlow(d.Curve, stage)
	if d.Max > 0 && flow > d.Max {
		return d.Max
	}
	return flow
}

func interpolateStageFlow(pts []StageFlowPoint, stage float64) float64 {
	if len(pts) == 0 {
		return 0
	}
	if stage <= pts[0].Stage {
		return pts[0].Flow
	}
	if stage >= pts[len(pts)-1].Stage {
		return pts[len(pts)-1].Flow
	}
	for i := 0; i < len(pts)-1; i++ {
		if stage >= pts[i].Stage && stage <= pts[i+1].Stage {
			t := (stage - pts[i].Stage) / (pts[i+1].Stage - pts[i].Stage)
			return pts[i].Flow + t*(pts[i+1].Flow-pts[i].Flow)
		}
	}
	return pts[len(pts)-1].Flow
}
