// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gvf

import "github.com/openriver/gochannel/xs"

// MixedFlow computes a subcritical run upstream from the downstream
// boundary and a supercritical run downstream from the upstream boundary,
// then merges them at the hydraulic jump (spec §4.6). Points are ascending
// by Station, which runs downstream to upstream (reach/types.go's
// RiverReach.Sections convention), so the merged profile carries the
// subcritical points at and below the jump station (downstream) and the
// supercritical points above it (upstream). When no jump is found, the run
// with the higher average Froude number is kept.
func MixedFlow(sections []*xs.IrregularCrossSection, q float64, upstreamBC, downstreamBC BoundaryCondition, opts StandardStepOptions) WaterSurfaceProfile {
	sub := opts
	down := Upstream
	sub.Direction = &down
	subProfile := StandardStep(sections, q, downstreamBC, sub)

	super := opts
	d := Downstream
	super.Direction = &d
	superProfile := StandardStep(sections, q, upstreamBC, super)

	jumpIdx, found := findJump(superProfile.Points, subProfile.Points)

	var merged []ProfilePoint
	var hasJump bool
	var jumpStation float64

	if found {
		merged = append(merged, subProfile.Points[:jumpIdx+1]...)
		merged = append(merged, superProfile.Points[jumpIdx+1:]...)
		hasJump = true
		jumpStation = 0.5 * (subProfile.Points[jumpIdx].Station + superProfile.Points[jumpIdx+1].Station)
	} else if averageFr(superProfile.Points) > averageFr(subProfile.Points) {
		merged = superProfile.Points
	} else {
		merged = subProfile.Points
	}

	warnings := append(append([]string{}, subProfile.Warnings...), superProfile.Warnings...)

	return WaterSurfaceProfile{
		Points:        merged,
		SlopeClass:    subProfile.SlopeClass,
		ProfileType:   merged[len(merged)-1].ProfileType,
		Regime:        merged[len(merged)-1].Regime,
		Direction:     Upstream,
		ReachLength:   subProfile.ReachLength,
		AverageSlope:  subProfile.AverageSlope,
		HasJump:       hasJump,
		JumpStation:   jumpStation,
		Converged:     subProfile.Converged && superProfile.Converged,
		Iterations:    subProfile.Iterations + superProfile.Iterations,
		ResidualError: maxFloat(subProfile.ResidualError, superProfile.ResidualError),
		Warnings:      warnings,
	}
}

// findJump walks both runs in station order and returns the index of the
// first station where the supercritical depth is less than the subcritical
// depth and the supercritical Froude number is > 1 (spec §4.6).
func findJump(super, sub []ProfilePoint) (int, bool) {
	n := len(super)
	if n != len(sub) {
		n = minInt(n, len(sub))
	}
	for i := 0; i < n; i++ {
		if super[i].Fr > 1 && super[i].Depth < sub[i].Depth {
			return i, true
		}
	}
	return 0, false
}

func averageFr(points []ProfilePoint) float64 {
	if len(points) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range points {
		sum += p.Fr
	}
	return sum / float64(len(points))
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
