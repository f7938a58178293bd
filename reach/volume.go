// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reach

import (
	"math"

	"github.com/openriver/gochannel/gvf"
	"github.com/openriver/gochannel/xs"
)

// Volume computes flood volume by trapezoidal integration between
// consecutive profile points, using the average of each pair's totals and
// per-zone areas times the reach distance between them (spec §4.6).
// sections must correspond index-for-index with profile.Points (see
// Floodplain).
func Volume(profile gvf.WaterSurfaceProfile, sections []*xs.IrregularCrossSection) VolumeResult {
	var result VolumeResult
	n := len(profile.Points)
	if len(sections) < n {
		n = len(sections)
	}
	if n < 2 {
		return result
	}

	var totalSurface float64
	for i := 0; i < n-1; i++ {
		p1, p2 := profile.Points[i], profile.Points[i+1]
		g1 := xs.At(sections[i], p1.WSEL)
		g2 := xs.At(sections[i+1], p2.WSEL)
		dist := math.Abs(p2.Station - p1.Station)

		result.Total += 0.5 * (g1.A + g2.A) * dist
		result.Main += 0.5 * (g1.MainCh.A + g2.MainCh.A) * dist
		result.LOB += 0.5 * (g1.LOB.A + g2.LOB.A) * dist
		result.ROB += 0.5 * (g1.ROB.A + g2.ROB.A) * dist
		totalSurface += 0.5 * (g1.T + g2.T) * dist
	}

	var sumDepth float64
	var depthCount int
	for i := 0; i < n; i++ {
		if profile.Points[i].Depth > 0 {
			sumDepth += profile.Points[i].Depth
			depthCount++
		}
	}

	result.SurfaceArea = totalSurface
	if depthCount > 0 {
		result.AverageDepth = sumDepth / float64(depthCount)
	}
	return result
}
