// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xs

import "sort"

// fractionsOf returns each point's position along the section's own
// horizontal extent, normalized to [0, 1].
func fractionsOf(xsec *IrregularCrossSection) []float64 {
	lo, hi := xsec.Points[0].Station, xsec.Points[len(xsec.Points)-1].Station
	span := hi - lo
	out := make([]float64, len(xsec.Points))
	for i, p := range xsec.Points {
		if span <= 0 {
			out[i] = 0
			continue
		}
		out[i] = (p.Station - lo) / span
	}
	return out
}

// pointAtFraction maps a normalized fraction back to (station, elevation)
// within xsec's own extent.
func pointAtFraction(xsec *IrregularCrossSection, f float64) (station, elevation float64) {
	lo, hi := xsec.Points[0].Station, xsec.Points[len(xsec.Points)-1].Station
	station = lo + f*(hi-lo)
	elevation = xsec.elevationAt(station)
	return
}

// Interpolate produces a new cross-section between xs1 (upstream) and xs2
// (downstream) at the given distance along a reach of the given total
// length, by linear blending of station, elevation, bank stations,
// Manning's n and contraction/expansion coefficients, weighted by
// t = distance/totalDistance (spec §4.1). At t=0 the result is
// geometrically equivalent to xs1; at t=1, to xs2.
func Interpolate(xs1, xs2 *IrregularCrossSection, distance, totalDistance float64) *IrregularCrossSection {
	t := 0.0
	if totalDistance != 0 {
		t = distance / totalDistance
	}

	fracSet := map[float64]bool{}
	for _, f := range fractionsOf(xs1) {
		fracSet[f] = true
	}
	for _, f := range fractionsOf(xs2) {
		fracSet[f] = true
	}
	fracs := make([]float64, 0, len(fracSet))
	for f := range fracSet {
		fracs = append(fracs, f)
	}
	sort.Float64s(fracs)

	points := make([]StationElevation, len(fracs))
	for i, f := range fracs {
		s1, e1 := pointAtFraction(xs1, f)
		s2, e2 := pointAtFraction(xs2, f)
		points[i] = StationElevation{
			Station:   (1-t)*s1 + t*s2,
			Elevation: (1-t)*e1 + t*e2,
		}
	}

	return &IrregularCrossSection{
		ID:           interpID(xs1, xs2, t),
		RiverStation: (1-t)*xs1.RiverStation + t*xs2.RiverStation,
		Points:       points,
		Banks: BankStations{
			Left:  (1-t)*xs1.Banks.Left + t*xs2.Banks.Left,
			Right: (1-t)*xs1.Banks.Right + t*xs2.Banks.Right,
		},
		ManningN: ManningN{
			LOB:  (1-t)*xs1.ManningN.LOB + t*xs2.ManningN.LOB,
			Main: (1-t)*xs1.ManningN.Main + t*xs2.ManningN.Main,
			ROB:  (1-t)*xs1.ManningN.ROB + t*xs2.ManningN.ROB,
		},
		Coeffs: CoefficientSet{
			Contraction: blendCoef(xs1.Coeffs.Contraction, xs2.Coeffs.Contraction, t, 0.1),
			Expansion:   blendCoef(xs1.Coeffs.Expansion, xs2.Coeffs.Expansion, t, 0.3),
		},
		validated: true,
	}
}

func blendCoef(a, b *float64, t, def float64) *float64 {
	av, bv := def, def
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	v := (1-t)*av + t*bv
	return &v
}

func interpID(xs1, xs2 *IrregularCrossSection, t float64) string {
	if t <= 0 {
		return xs1.ID
	}
	if t >= 1 {
		return xs2.ID
	}
	return xs1.ID + "~" + xs2.ID
}
