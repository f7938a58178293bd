// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reach

import (
	"github.com/openriver/gochannel/gvf"
	"github.com/openriver/gochannel/xs"
)

// Floodplain delineates the wetted extent at each profile point against its
// matching cross-section (spec §4.6). sections must be the same
// ascending-river-station slice reach.Sections the profile was computed
// from: profile.Points and sections share index-for-index correspondence
// since both are ordered ascending by river station over the same section
// set.
func Floodplain(profile gvf.WaterSurfaceProfile, sections []*xs.IrregularCrossSection) []FloodplainPoint {
	n := len(profile.Points)
	if len(sections) < n {
		n = len(sections)
	}
	points := make([]FloodplainPoint, 0, n)
	for i := 0; i < n; i++ {
		p := profile.Points[i]
		xsec := sections[i]
		g := xs.At(xsec, p.WSEL)

		left, right := wetExtents(xsec, p.WSEL)
		var sumDepth, maxDepth float64
		var wetCount int
		for _, pt := range xsec.Points {
			d := p.WSEL - pt.Elevation
			if d > 0 {
				sumDepth += d
				wetCount++
				if d > maxDepth {
					maxDepth = d
				}
			}
		}
		avgDepth := 0.0
		if wetCount > 0 {
			avgDepth = sumDepth / float64(wetCount)
		}

		points = append(points, FloodplainPoint{
			Station:      p.Station,
			LeftExtent:   left,
			RightExtent:  right,
			TopWidth:     g.T,
			MaxDepth:     maxDepth,
			AverageDepth: avgDepth,
			Area:         g.A,
		})
	}
	return points
}

// wetExtents returns how far beyond each bank station the wetted area
// reaches at wsel (spec §4.6 "left/right extent beyond bank").
func wetExtents(xsec *xs.IrregularCrossSection, wsel float64) (left, right float64) {
	leftMost, rightMost := xsec.Banks.Left, xsec.Banks.Right
	for _, pt := range xsec.Points {
		if wsel > pt.Elevation {
			if pt.Station < leftMost {
				leftMost = pt.Station
			}
			if pt.Station > rightMost {
				rightMost = pt.Station
			}
		}
	}
	left = xsec.Banks.Left - leftMost
	right = rightMost - xsec.Banks.Right
	if left < 0 {
		left = 0
	}
	if right < 0 {
		right = 0
	}
	return left, right
}
