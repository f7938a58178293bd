// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gvf

import (
	"math"

	"github.com/openriver/gochannel/prismatic"
	"github.com/openriver/gochannel/uniform"
)

// DirectStep marches a prismatic channel's water surface from y_start to
// y_end in discrete depth samples, accumulating station distance from the
// energy equation (spec §4.3). Mirrors the teacher driver's marching loop
// (msolid.Driver.Run): a preallocated results slice, state carried forward
// sample to sample, one pass, no suspension points.
func DirectStep(s prismatic.Section, yStart, yEnd, q, slope, n float64, opts DirectStepOptions) WaterSurfaceProfile {
	steps := opts.Steps
	if steps <= 0 {
		steps = 50
	}

	yn, _ := uniform.NormalDepth(s, q, slope, n, uniform.DefaultTolerance, uniform.DefaultMaxIterations)
	yc, _ := uniform.CriticalDepth(s, q, uniform.DefaultTolerance, uniform.DefaultMaxIterations)
	class := ClassifySlope(slope, yn, yc)

	points := make([]ProfilePoint, steps+1)
	station := 0.0
	var prevE, prevSf float64

	for i := 0; i <= steps; i++ {
		y := yStart + (yEnd-yStart)*float64(i)/float64(steps)
		a := s.Area(y)
		p := s.WettedPerimeter(y)
		t := s.TopWidth(y)
		r := 0.0
		if p > 0 {
			r = a / p
		}
		k := 0.0
		if a > 0 && r > 0 {
			k = (1 / n) * a * math.Pow(r, 2.0/3.0)
		}
		v := 0.0
		if a > 0 {
			v = q / a
		}
		e := uniform.SpecificEnergy(y, v)
		sf := 0.0
		if k > 0 {
			sf = q * q / (k * k)
		}

		if i > 0 {
			sbar := opts.Averaging.Average(prevSf, sf)
			denom := slope - sbar
			dx := 0.0
			if denom != 0 {
				dx = (e - prevE) / denom
			}
			if !math.IsInf(dx, 0) && !math.IsNaN(dx) && math.Abs(dx) <= 10000 {
				station += math.Abs(dx)
			}
		}

		fr := uniform.FroudeNumber(v, prismatic.HydraulicDepth(s, y))
		ptype, _ := ClassifyProfile(class, y, yn, yc)

		points[i] = ProfilePoint{
			Station:        station,
			Depth:          y,
			WSEL:           y,
			CriticalDepth:  yc,
			NormalDepth:    yn,
			Q:              q,
			A:              a,
			V:              v,
			VelocityHead:   v * v / (2 * uniform.Gravity),
			Fr:             fr,
			Regime:         uniform.Regime(fr),
			SpecificEnergy: e,
			FrictionSlope:  sf,
			ProfileType:    ptype,
		}

		prevE, prevSf = e, sf
	}

	return WaterSurfaceProfile{
		Points:      points,
		SlopeClass:  class,
		ProfileType: points[len(points)-1].ProfileType,
		ReachLength: station,
		Converged:   true,
	}
}
