// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reach

import (
	"math"

	"github.com/openriver/gochannel/uniform"
	"github.com/openriver/gochannel/xs"
)

// VelocityDistribution computes the local velocity at each surveyed station
// of a section already evaluated at some WSEL (spec §4.6): a zone-averaged
// velocity scaled by a log-law-style depth exponent, V_local =
// V_zone*(y_local/ybar)^0.2. Dry stations get zero. The ^0.2 depth scaling
// is a reporting heuristic, not a derived velocity profile.
func VelocityDistribution(xsec *xs.IrregularCrossSection, g xs.CrossSectionGeometry, q float64) []VelocityPoint {
	ybar := 0.0
	if g.T > 0 {
		ybar = g.A / g.T
	}

	points := make([]VelocityPoint, 0, len(xsec.Points))
	for _, pt := range xsec.Points {
		depth := g.WSEL - pt.Elevation
		vp := VelocityPoint{Station: pt.Station, Elevation: pt.Elevation, Depth: depth}
		if depth > 0 && ybar > 0 && g.K > 0 {
			zg := g.ZoneGeomFor(xsec.ZoneOf(pt.Station))
			if zg.A > 0 {
				vZone := (zg.K / g.K) * q / zg.A
				vp.Velocity = vZone * math.Pow(depth/ybar, 0.2)
			}
		}
		points = append(points, vp)
	}
	return points
}

// ShearDistribution computes the wide-channel shear approximation tau =
// gamma_w*(0.8*y_local)*S at each surveyed station (spec §4.6). Dry
// stations get zero.
func ShearDistribution(xsec *xs.IrregularCrossSection, g xs.CrossSectionGeometry, slope float64) []ShearPoint {
	points := make([]ShearPoint, 0, len(xsec.Points))
	for _, pt := range xsec.Points {
		depth := g.WSEL - pt.Elevation
		sp := ShearPoint{Station: pt.Station, Elevation: pt.Elevation, Depth: depth}
		if depth > 0 {
			sp.Shear = uniform.UnitWeightWater * (0.8 * depth) * slope
		}
		points = append(points, sp)
	}
	return points
}
