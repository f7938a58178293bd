// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gvf

import (
	"math"
	"sort"

	"github.com/openriver/gochannel/hyderr"
	"github.com/openriver/gochannel/uniform"
	"github.com/openriver/gochannel/xs"
)

// StandardStep computes a water-surface profile over an ordered (upstream
// to downstream) list of irregular cross-sections by the energy-balance
// Standard Step method (spec §4.4). sections[0] must be the most upstream
// section and sections[n-1] the most downstream; with river station
// increasing upstream that is descending river_station, the reverse of
// RiverReach.Sections, which reach.Analyze reverses before calling here.
func StandardStep(sections []*xs.IrregularCrossSection, q float64, boundary BoundaryCondition, opts StandardStepOptions) WaterSurfaceProfile {
	n := len(sections)
	if n < 2 {
		return WaterSurfaceProfile{Converged: true}
	}

	avg := opts.Averaging
	tol := opts.Tolerance
	if tol <= 0 {
		tol = 1e-3
	}
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = 50
	}

	zUp, zDown := sections[0].ZMin(), sections[n-1].ZMin()
	totalLength := totalReachLength(sections)
	slope := 0.0
	if totalLength > 0 {
		slope = (zUp - zDown) / totalLength
	}

	boundarySec := sections[n-1]
	yc, _ := uniform.CriticalWSEL(boundarySec, q, uniform.DefaultTolerance, uniform.DefaultMaxIterations)
	ycDepth := yc - boundarySec.ZMin()
	ynDepth := math.Inf(1)
	if slope > 0 {
		if yn, ok := uniform.NormalWSEL(boundarySec, q, slope, uniform.DefaultTolerance, uniform.DefaultMaxIterations); ok {
			ynDepth = yn - boundarySec.ZMin()
		}
	}
	class := ClassifySlope(slope, ynDepth, ycDepth)

	direction := Upstream
	if class == Steep {
		direction = Downstream
	}
	if opts.Direction != nil {
		direction = *opts.Direction
	}

	boundaryWSEL, boundaryOK := resolveBoundary(boundary, sections[boundaryIdxFor(direction, n)], q, slope)

	order := sectionOrder(n, direction)
	points := make([]ProfilePoint, n)
	var warnings []string
	if !boundaryOK {
		warnings = append(warnings, hyderr.WarnNonConvergent)
	}

	wsel := boundaryWSEL
	totalIter := 0
	converged := true
	var maxResidual float64

	for idx, secIdx := range order {
		xsec := sections[secIdx]
		if idx == 0 {
			points[secIdx] = buildPoint(xsec, wsel, q, class, ynDepth, ycDepth)
			continue
		}
		prevIdx := order[idx-1]
		prevXsec := sections[prevIdx]

		L := reachLengthBetween(sections, secIdx, prevIdx, direction)
		result, iters, resid, ok := solveStep(xsec, prevXsec, wsel, q, L, avg, tol, maxIter, direction)
		totalIter += iters
		if resid > maxResidual {
			maxResidual = resid
		}
		if !ok {
			converged = false
		}

		// losses belong to the upstream section of the pair: the one just
		// solved when computing upstream, the known one when computing
		// downstream.
		pt := buildPoint(xsec, result.WSEL, q, class, ynDepth, ycDepth)
		if direction == Upstream {
			pt.Losses = result.Losses
		} else {
			points[prevIdx].Losses = result.Losses
		}
		points[secIdx] = pt
		wsel = result.WSEL
	}

	// spec §4.4: points are emitted in ascending-station order regardless of
	// computation direction or the order sections were supplied in.
	sort.Slice(points, func(i, j int) bool { return points[i].Station < points[j].Station })

	// points are sorted ascending by Station, which runs downstream to
	// upstream (reach/types.go's RiverReach.Sections convention). Flow goes
	// from high Station to low Station, so a real jump (supercritical
	// upstream dropping to subcritical downstream) shows up as the
	// higher-Station point being supercritical and the lower-Station point
	// subcritical.
	hasJump := false
	jumpStation := 0.0
	for i := 1; i < n; i++ {
		if points[i].Fr > 1 && points[i-1].Fr < 1 {
			hasJump = true
			jumpStation = 0.5 * (points[i-1].Station + points[i].Station)
		}
	}

	profile := WaterSurfaceProfile{
		Points:        points,
		SlopeClass:    class,
		Direction:     direction,
		Boundary:      boundary,
		ReachLength:   totalLength,
		AverageSlope:  slope,
		HasJump:       hasJump,
		JumpStation:   jumpStation,
		Converged:     converged,
		Iterations:    totalIter,
		ResidualError: maxResidual,
		Warnings:      warnings,
	}
	if n > 0 {
		profile.ProfileType = points[n-1].ProfileType
		profile.Regime = points[n-1].Regime
	}
	return profile
}

func boundaryIdxFor(direction Direction, n int) int {
	if direction == Upstream {
		return n - 1
	}
	return 0
}

func sectionOrder(n int, direction Direction) []int {
	order := make([]int, n)
	if direction == Upstream {
		for i := 0; i < n; i++ {
			order[i] = n - 1 - i
		}
	} else {
		for i := 0; i < n; i++ {
			order[i] = i
		}
	}
	return order
}

func totalReachLength(sections []*xs.IrregularCrossSection) float64 {
	total := 0.0
	for i := 0; i < len(sections)-1; i++ {
		total += sections[i].ReachLengths.AverageReachLength()
	}
	return total
}

// reachLengthBetween returns the length for the step between secIdx and
// prevIdx, taken from section 1 for the upstream direction, otherwise
// section 2 (spec §4.4).
func reachLengthBetween(sections []*xs.IrregularCrossSection, secIdx, prevIdx int, direction Direction) float64 {
	if direction == Upstream {
		return sections[secIdx].ReachLengths.AverageReachLength()
	}
	return sections[prevIdx].ReachLengths.AverageReachLength()
}

func resolveBoundary(bc BoundaryCondition, xsec *xs.IrregularCrossSection, q, slope float64) (float64, bool) {
	switch bc.Kind {
	case KnownWSEL:
		return bc.WSEL, true
	case NormalDepthBC:
		return uniform.NormalWSEL(xsec, q, slope, uniform.DefaultTolerance, uniform.DefaultMaxIterations)
	case CriticalDepthBC:
		return uniform.CriticalWSEL(xsec, q, uniform.DefaultTolerance, uniform.DefaultMaxIterations)
	case RatingCurveBC:
		return interpolateRating(bc.Rating, q), true
	default:
		return uniform.NormalWSEL(xsec, q, slope, uniform.DefaultTolerance, uniform.DefaultMaxIterations)
	}
}

func interpolateRating(pts []RatingPoint, q float64) float64 {
	if len(pts) == 0 {
		return 0
	}
	if q <= pts[0].Q {
		return pts[0].WSEL
	}
	if q >= pts[len(pts)-1].Q {
		return pts[len(pts)-1].WSEL
	}
	for i := 0; i < len(pts)-1; i++ {
		if q >= pts[i].Q && q <= pts[i+1].Q {
			t := (q - pts[i].Q) / (pts[i+1].Q - pts[i].Q)
			return pts[i].WSEL + t*(pts[i+1].WSEL-pts[i].WSEL)
		}
	}
	return pts[len(pts)-1].WSEL
}

// stepTrial is the per-trial state computed inside solveStep's residual
// function: enough to both evaluate the energy-balance error and, once the
// root is found, recover the loss breakdown without recomputing geometry.
type stepTrial struct {
	g     xs.CrossSectionGeometry
	v, vh float64
	sf    float64
	hf    float64
	hce   float64
	isExpansion bool
}

type stepResult struct {
	WSEL   float64
	Losses LossBreakdown
}

// solveStep solves for the unknown section's WSEL given the known
// section's already-resolved state so the energy equation balances (spec
// §4.4): a Newton-like iteration using the approximate Jacobian
// d(error)/dWSEL computed from dA/dy~=T, falling back to bisection on
// (z_min+0.001, z_max-0.01) when Newton does not converge, keeping the
// best (minimum-error) trial throughout.
func solveStep(unknown, known *xs.IrregularCrossSection, knownWSEL, q, length float64, avg FrictionSlopeAveraging, tol float64, maxIter int, direction Direction) (stepResult, int, float64, bool) {
	knownG := xs.At(known, knownWSEL)
	knownV := 0.0
	if knownG.A > 0 {
		knownV = q / knownG.A
	}
	knownVh := knownG.Alpha * knownV * knownV / (2 * uniform.Gravity)
	knownSf := frictionSlope(q, knownG.K)

	zMin, zMax := unknown.ZMin(), unknown.ZMax()
	lo, hi := zMin+0.001, zMax-0.01
	if hi <= lo {
		hi = lo + 1
	}

	errAt := func(wsel float64) (float64, stepTrial) {
		g := xs.At(unknown, wsel)
		v := 0.0
		if g.A > 0 {
			v = q / g.A
		}
		vh := g.Alpha * v * v / (2 * uniform.Gravity)
		sf := frictionSlope(q, g.K)
		sbar := avg.Average(knownSf, sf)
		hf := sbar * length

		// dVh is the change from upstream to downstream regardless of which
		// section is "unknown" here (spec §4.4: expansion when Vh decreases
		// downstream, contraction when it increases).
		var dvh float64
		if direction == Upstream {
			dvh = knownVh - vh // unknown is upstream of known
		} else {
			dvh = vh - knownVh // unknown is downstream of known
		}
		isExpansion := dvh < 0
		var hce float64
		if isExpansion {
			hce = unknown.ExpansionCoef() * math.Abs(dvh)
		} else {
			hce = unknown.ContractionCoef() * dvh
		}

		var resid float64
		if direction == Upstream {
			// unknown (upstream) = known (downstream) + hf + hce
			resid = (wsel + vh) - (knownWSEL + knownVh + hf + hce)
		} else {
			// known (upstream) = unknown (downstream) + hf + hce
			resid = (knownWSEL + knownVh) - (wsel + vh + hf + hce)
		}
		return resid, stepTrial{g: g, v: v, vh: vh, sf: sf, hf: hf, hce: hce, isExpansion: isExpansion}
	}

	best := 0.5 * (lo + hi)
	bestErr, bestTrial := errAt(best)
	bestAbs := math.Abs(bestErr)

	y := best
	fy, trial := errAt(y)
	if math.Abs(fy) < bestAbs {
		best, bestTrial, bestAbs = y, trial, math.Abs(fy)
	}
	iters := 0
	for i := 0; i < maxIter; i++ {
		iters = i + 1
		if math.Abs(fy) < tol {
			return finish(y, trial), iters, math.Abs(fy), true
		}
		t := trial.g.T
		if t <= 0 || trial.g.A <= 0 {
			break
		}
		deriv := 1 - trial.g.Alpha*q*q/(uniform.Gravity*trial.g.A*trial.g.A*trial.g.A)*t
		if math.Abs(deriv) < 1e-6 {
			break
		}
		yNext := y - fy/deriv
		if yNext <= lo || yNext >= hi {
			break
		}
		y = yNext
		fy, trial = errAt(y)
		if math.Abs(fy) < bestAbs {
			best, bestTrial, bestAbs = y, trial, math.Abs(fy)
		}
	}

	// bisection fallback over [lo, hi]
	flo, _ := errAt(lo)
	a, b := lo, hi
	fa := flo
	for i := 0; i < maxIter; i++ {
		iters++
		mid := 0.5 * (a + b)
		fm, gm := errAt(mid)
		if math.Abs(fm) < bestAbs {
			best, bestTrial, bestAbs = mid, gm, math.Abs(fm)
		}
		if math.Abs(fm) < tol {
			return finish(mid, gm), iters, math.Abs(fm), true
		}
		if fa*fm <= 0 {
			b = mid
		} else {
			a, fa = mid, fm
		}
	}

	return finish(best, bestTrial), iters, bestAbs, false
}

func finish(wsel float64, trial stepTrial) stepResult {
	losses := LossBreakdown{Friction: trial.hf, Total: trial.hf + trial.hce}
	if trial.isExpansion {
		losses.Expansion = trial.hce
	} else {
		losses.Contraction = trial.hce
	}
	return stepResult{WSEL: wsel, Losses: losses}
}

func frictionSlope(q, k float64) float64 {
	if k <= 0 {
		return 0
	}
	return q * q / (k * k)
}

func buildPoint(xsec *xs.IrregularCrossSection, wsel, q float64, class SlopeClass, yn, yc float64) ProfilePoint {
	g := xs.At(xsec, wsel)
	v := 0.0
	if g.A > 0 {
		v = q / g.A
	}
	d := 0.0
	if g.T > 0 {
		d = g.A / g.T
	}
	fr := uniform.CompositeFroude(g.Alpha, v, d)
	depth := wsel - xsec.ZMin()
	ptype, _ := ClassifyProfile(class, depth, yn, yc)

	var warnings []string
	if g.K > 0 {
		lobFrac := g.LOB.K / g.K
		robFrac := g.ROB.K / g.K
		if lobFrac > 0.2 || robFrac > 0.2 {
			warnings = append(warnings, hyderr.WarnSignificantOB)
		}
	}
	if fr > 0.86 && fr < 1.13 {
		warnings = append(warnings, hyderr.WarnNearCritical)
	}

	return ProfilePoint{
		Station:        xsec.RiverStation,
		WSEL:           wsel,
		EnergyGrade:    wsel + g.Alpha*v*v/(2*uniform.Gravity),
		BedElevation:   xsec.ZMin(),
		Depth:          depth,
		Q:              q,
		A:              g.A,
		V:              v,
		VelocityHead:   v * v / (2 * uniform.Gravity),
		Fr:             fr,
		Regime:         uniform.Regime(fr),
		SpecificEnergy: depth + v*v/(2*uniform.Gravity),
		FrictionSlope:  frictionSlope(q, g.K),
		Geometry:       &g,
		ProfileType:    ptype,
		Warnings:       warnings,
	}
}
