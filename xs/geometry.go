// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xs

import "math"

// ZoneGeometry is one zone's contribution to a CrossSectionGeometry.
type ZoneGeometry struct {
	A, P, T, R, K float64
}

// CrossSectionGeometry is the geometric state of a section at a given
// water surface elevation (spec §3).
type CrossSectionGeometry struct {
	WSEL float64

	A, P, T, Rbar, K float64

	LOB, MainCh, ROB ZoneGeometry

	Alpha, Beta float64 // energy and momentum velocity-distribution coefficients
}

// ZoneOf classifies a station into LOB/main/ROB by the section's bank
// stations.
func (xsec *IrregularCrossSection) ZoneOf(station float64) Zone {
	switch {
	case station < xsec.Banks.Left:
		return LOB
	case station > xsec.Banks.Right:
		return ROB
	default:
		return Main
	}
}

// elevationAt linearly interpolates the ground elevation at an arbitrary
// station within the section extent; stations outside the extent clamp to
// the nearest endpoint elevation.
func (xsec *IrregularCrossSection) elevationAt(station float64) float64 {
	pts := xsec.Points
	if station <= pts[0].Station {
		return pts[0].Elevation
	}
	n := len(pts)
	if station >= pts[n-1].Station {
		return pts[n-1].Elevation
	}
	for i := 0; i < n-1; i++ {
		p1, p2 := pts[i], pts[i+1]
		if station >= p1.Station && station <= p2.Station {
			if p2.Station == p1.Station {
				return p1.Elevation
			}
			t := (station - p1.Station) / (p2.Station - p1.Station)
			return p1.Elevation + t*(p2.Elevation-p1.Elevation)
		}
	}
	return pts[n-1].Elevation
}

// groundElev returns the minimum surveyed/interpolated ground elevation
// over [left, right], used as the reference "ground" for ineffective-area
// and obstruction depth calculations (spec §4.1).
func (xsec *IrregularCrossSection) groundElev(left, right float64) float64 {
	g := math.Min(xsec.elevationAt(left), xsec.elevationAt(right))
	for _, p := range xsec.Points {
		if p.Station > left && p.Station < right && p.Elevation < g {
			g = p.Elevation
		}
	}
	return g
}

func zoneGeom(z ZoneGeometry, n float64) ZoneGeometry {
	if z.P > 0 {
		z.R = z.A / z.P
	}
	if z.A > 0 && n > 0 {
		z.K = (1 / n) * z.A * math.Pow(z.R, 2.0/3.0)
	}
	return z
}

// At computes the full geometric state of xsec at the given water surface
// elevation (spec §4.1): per-segment trapezoidal area, wetted perimeter
// (with linear interpolation of the dry/wet boundary for a segment that
// straddles WSEL), and top width, each assigned to LOB/main/ROB by the
// segment midpoint station; then ineffective-area, obstruction and levee
// adjustments; then per-zone conveyance and the section's alpha/beta
// velocity-distribution coefficients.
func At(xsec *IrregularCrossSection, wsel float64) CrossSectionGeometry {
	var lob, main, rob ZoneGeometry

	pts := xsec.Points
	for i := 0; i < len(pts)-1; i++ {
		p1, p2 := pts[i], pts[i+1]
		dx := p2.Station - p1.Station
		y1 := wsel - p1.Elevation
		y2 := wsel - p2.Elevation

		var area, perim, topw float64
		switch {
		case y1 <= 0 && y2 <= 0:
			// both dry: zero contribution
		case y1 > 0 && y2 > 0:
			area = 0.5 * (y1 + y2) * dx
			dz := p2.Elevation - p1.Elevation
			perim = math.Hypot(dx, dz)
			topw = dx
		default:
			// straddles the water surface: interpolate the dry/wet boundary
			t := y1 / (y1 - y2)
			if y1 > 0 {
				// p1 wet, p2 dry: wet portion runs [0, t]
				wetLen := t * dx
				area = 0.5 * y1 * wetLen
				perim = math.Hypot(wetLen, y1)
				topw = wetLen
			} else {
				// p1 dry, p2 wet: wet portion runs [t, 1]
				wetLen := (1 - t) * dx
				area = 0.5 * y2 * wetLen
				perim = math.Hypot(wetLen, y2)
				topw = wetLen
			}
		}

		mid := (p1.Station + p2.Station) / 2
		switch xsec.ZoneOf(mid) {
		case LOB:
			lob.A += area
			lob.P += perim
			lob.T += topw
		case ROB:
			rob.A += area
			rob.P += perim
			rob.T += topw
		default:
			main.A += area
			main.P += perim
			main.T += topw
		}
	}

	// ineffective areas and obstructions: area-only adjustment, overbank or
	// main channel depending on where they sit -- "main-channel geometry is
	// unaffected" in spec §4.1 describes the common case (ineffective areas
	// are normally drawn in the overbanks), so the subtraction is applied to
	// whichever zone the feature's midpoint falls in.
	for _, ia := range xsec.Ineffective {
		if !ia.active(wsel) {
			continue
		}
		ground := xsec.groundElev(ia.Left, ia.Right)
		depth := math.Min(wsel-ground, ia.Threshold-ground)
		if depth <= 0 {
			continue
		}
		width := ia.Right - ia.Left
		subtractArea(&lob, &main, &rob, xsec.ZoneOf((ia.Left+ia.Right)/2), width*depth)
	}
	for _, ob := range xsec.Obstructions {
		depth := wsel - ob.GroundElev
		if depth <= 0 {
			continue
		}
		width := ob.Right - ob.Left
		subtractArea(&lob, &main, &rob, xsec.ZoneOf((ob.Left+ob.Right)/2), width*depth)
	}

	// levees: while WSEL is below the crest, the levee-side overbank is
	// fully blocked (spec §3: A, P, T, K all zero on that side).
	for _, lv := range xsec.Levees {
		if wsel >= lv.TopElev {
			continue
		}
		switch lv.Side {
		case LOB:
			lob = ZoneGeometry{}
		case ROB:
			rob = ZoneGeometry{}
		}
	}

	lob = zoneGeom(lob, xsec.ManningN.LOB)
	main = zoneGeom(main, xsec.ManningN.Main)
	rob = zoneGeom(rob, xsec.ManningN.ROB)

	g := CrossSectionGeometry{
		WSEL:   wsel,
		LOB:    lob,
		MainCh: main,
		ROB:    rob,
		A:      lob.A + main.A + rob.A,
		P:      lob.P + main.P + rob.P,
		T:      lob.T + main.T + rob.T,
		K:      lob.K + main.K + rob.K,
	}
	if g.P > 0 {
		g.Rbar = g.A / g.P
	}
	g.Alpha, g.Beta = velocityCoefficients(lob, main, rob, g.A, g.K)
	return g
}

// subtractArea removes delta from whichever of lob/main/rob matches zone,
// never letting area go negative.
func subtractArea(lob, main, rob *ZoneGeometry, zone Zone, delta float64) {
	var z *ZoneGeometry
	switch zone {
	case LOB:
		z = lob
	case ROB:
		z = rob
	default:
		z = main
	}
	z.A -= delta
	if z.A < 0 {
		z.A = 0
	}
}

// velocityCoefficients computes alpha (energy) and beta (momentum) per
// spec §4.1. Falls back to 1 (no distribution effect) when the section has
// no conveyance or no area, matching the spec's degenerate-input rule.
func velocityCoefficients(lob, main, rob ZoneGeometry, aTotal, kTotal float64) (alpha, beta float64) {
	if aTotal <= 0 || kTotal <= 0 {
		return 1, 1
	}
	var sumAlpha, sumBeta float64
	for _, z := range []ZoneGeometry{lob, main, rob} {
		if z.A <= 0 {
			continue
		}
		sumAlpha += z.K * z.K * z.K / (z.A * z.A)
		sumBeta += z.K * z.K / z.A
	}
	alpha = sumAlpha / (kTotal * kTotal * kTotal / (aTotal * aTotal))
	beta = sumBeta / (kTotal * kTotal / aTotal)
	return alpha, beta
}

// ZoneGeomFor returns the ZoneGeometry for the requested zone.
func (g CrossSectionGeometry) ZoneGeomFor(z Zone) ZoneGeometry {
	switch z {
	case LOB:
		return g.LOB
	case ROB:
		return g.ROB
	default:
		return g.MainCh
	}
}
