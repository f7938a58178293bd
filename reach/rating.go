// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reach

import (
	"github.com/openriver/gochannel/uniform"
	"github.com/openriver/gochannel/xs"
)

// RatingCurve computes n equally spaced discharges in [qMin, qMax] for a
// single section at the given bed slope, each resolved to its normal WSEL
// (spec §4.6).
func RatingCurve(xsec *xs.IrregularCrossSection, slope, qMin, qMax float64, n int) []RatingCurvePoint {
	if n <= 0 {
		return nil
	}
	step := 0.0
	if n > 1 {
		step = (qMax - qMin) / float64(n-1)
	}

	points := make([]RatingCurvePoint, 0, n)
	for i := 0; i < n; i++ {
		q := qMin + step*float64(i)
		wsel, _ := uniform.NormalWSEL(xsec, q, slope, uniform.DefaultTolerance, uniform.DefaultMaxIterations)
		g := xs.At(xsec, wsel)

		v := 0.0
		if g.A > 0 {
			v = q / g.A
		}
		d := 0.0
		if g.T > 0 {
			d = g.A / g.T
		}
		points = append(points, RatingCurvePoint{
			Q:     q,
			WSEL:  wsel,
			V:     v,
			D:     d,
			Fr:    uniform.FroudeNumber(v, d),
			Depth: wsel - xsec.ZMin(),
		})
	}
	return points
}
