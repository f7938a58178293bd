// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reach

import (
	"github.com/openriver/gochannel/gvf"
	"github.com/openriver/gochannel/xs"
)

// Analyze computes a reach's water-surface profile via Standard Step, then
// for each structure interpolates WSEL at its station and invokes the
// structure's hook, and aggregates min/max WSEL, mean/max velocity and mean
// Froude number over the profile (spec §4.6).
func Analyze(reach *RiverReach, q float64, boundary gvf.BoundaryCondition, opts gvf.StandardStepOptions) Result {
	n := len(reach.Sections)
	upstreamFirst := make([]*xs.IrregularCrossSection, n)
	for i, s := range reach.Sections {
		upstreamFirst[n-1-i] = s
	}
	profile := gvf.StandardStep(upstreamFirst, q, boundary, opts)

	res := Result{ReachID: reach.ID, Profile: profile}
	if len(profile.Points) == 0 {
		return res
	}

	res.MinWSEL, res.MaxWSEL = profile.Points[0].WSEL, profile.Points[0].WSEL
	var sumV, sumFr float64
	for _, p := range profile.Points {
		if p.WSEL < res.MinWSEL {
			res.MinWSEL = p.WSEL
		}
		if p.WSEL > res.MaxWSEL {
			res.MaxWSEL = p.WSEL
		}
		if p.V > res.MaxVelocity {
			res.MaxVelocity = p.V
		}
		sumV += p.V
		sumFr += p.Fr
	}
	count := float64(len(profile.Points))
	res.MeanVelocity = sumV / count
	res.MeanFroude = sumFr / count

	for _, b := range reach.Bridges {
		wsel := interpolateWSEL(profile, b.Station)
		res.BridgeResults = append(res.BridgeResults, b.Hook.Evaluate(wsel, q))
	}
	for _, c := range reach.Culverts {
		tailwater := interpolateWSEL(profile, c.Station)
		res.CulvertResults = append(res.CulvertResults, c.Hook.Evaluate(tailwater, q, c.Diameter))
	}
	for _, w := range reach.Weirs {
		head := interpolateWSEL(profile, w.Station) - w.CrestElevation
		if head < 0 {
			head = 0
		}
		res.WeirResults = append(res.WeirResults, w.Hook.Evaluate(head))
	}
	for _, lw := range reach.LateralWeirs {
		head := interpolateWSEL(profile, lw.Station) - lw.CrestElevation
		if head < 0 {
			head = 0
		}
		r := lw.Hook.Evaluate(head)
		res.LateralOverflow += r.Q
	}
	for _, ld := range reach.LateralDiversions {
		stage := interpolateWSEL(profile, ld.Station)
		res.LateralDiversion += ld.Hook.Evaluate(stage)
	}
	return res
}

// interpolateWSEL linearly interpolates WSEL at an arbitrary station from a
// converged profile, clamping to the nearest endpoint beyond the profile's
// station extent (spec §4.6 "interpolate WSEL at the structure station
// (linear, clamped)").
func interpolateWSEL(profile gvf.WaterSurfaceProfile, station float64) float64 {
	pts := profile.Points
	if len(pts) == 0 {
		return 0
	}
	n := len(pts)
	if station <= pts[0].Station {
		return pts[0].WSEL
	}
	if station >= pts[n-1].Station {
		return pts[n-1].WSEL
	}
	for i := 0; i < n-1; i++ {
		p1, p2 := pts[i], pts[i+1]
		if station >= p1.Station && station <= p2.Station {
			if p2.Station == p1.Station {
				return p1.WSEL
			}
			t := (station - p1.Station) / (p2.Station - p1.Station)
			return p1.WSEL + t*(p2.WSEL-p1.WSEL)
		}
	}
	return pts[n-1].WSEL
}
