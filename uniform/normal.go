// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniform

import (
	"math"

	"github.com/openriver/gochannel/prismatic"
	"github.com/openriver/gochannel/xs"
)

// NormalDepth solves for the uniform-flow depth of a prismatic section
// carrying discharge Q at bed slope S with roughness n (spec §4.2).
//
// It seeds a Newton iteration at the critical depth and advances it with
// an approximate derivative that assumes dP/dy ~= 2 regardless of shape --
// exact for rectangular sections, approximate for everything else. This is
// a deliberate, preserved simplification (spec §9 open question): it is
// not "fixed" into an exact derivative because the bisection fallback
// below is what actually guarantees convergence for non-rectangular
// shapes, and substituting an exact derivative would change convergence
// behavior the existing contract relies on.
func NormalDepth(s prismatic.Section, q, slope, n float64, tol float64, maxIter int) (yn float64, converged bool) {
	if q <= 0 || slope <= 0 || n <= 0 {
		return 0, true
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	y, _ := CriticalDepth(s, q, tol, maxIter)
	if y <= 0 {
		y = 1.0
	}

	for i := 0; i < maxIter; i++ {
		a := s.Area(y)
		p := s.WettedPerimeter(y)
		if a <= 0 || p <= 0 {
			break
		}
		r := a / p
		qy := (1 / n) * a * math.Pow(r, 2.0/3.0) * math.Sqrt(slope)
		relErr := math.Abs(qy-q) / math.Max(q, 1e-12)
		if relErr < tol {
			return y, true
		}

		t := s.TopWidth(y)
		const dPdyApprox = 2.0
		drdy := (t*p - a*dPdyApprox) / (p * p)
		dqdy := (1 / n) * math.Sqrt(slope) * (t*math.Pow(r, 2.0/3.0) + a*(2.0/3.0)*math.Pow(r, -1.0/3.0)*drdy)
		if math.Abs(dqdy) < 1e-4 {
			break
		}
		yNext := y - (qy-q)/dqdy
		if yNext <= 0 {
			yNext = y / 2
		}
		y = yNext
	}

	return normalDepthBisection(s, q, slope, n, tol, maxIter)
}

// normalDepthBisection is the guaranteed-bounded fallback used when the
// approximate Newton iteration fails to converge or its derivative
// collapses (spec §4.2, §9).
func normalDepthBisection(s prismatic.Section, q, slope, n float64, tol float64, maxIter int) (float64, bool) {
	f := func(y float64) float64 {
		a := s.Area(y)
		r := prismatic.HydraulicRadius(s, y)
		if a <= 0 || r <= 0 {
			return -q
		}
		return (1/n)*a*math.Pow(r, 2.0/3.0)*math.Sqrt(slope) - q
	}

	yMax := 1.0
	for i := 0; i < 64; i++ {
		if f(yMax) > 0 || yMax >= 100 {
			break
		}
		yMax *= 2
	}
	if yMax > 100 {
		yMax = 100
	}

	lo, hi := 1e-6, yMax
	flo, fhi := f(lo), f(hi)
	if flo*fhi > 0 {
		if math.Abs(flo) < math.Abs(fhi) {
			return lo, false
		}
		return hi, false
	}
	mid := lo
	for i := 0; i < maxIter; i++ {
		mid = 0.5 * (lo + hi)
		fm := f(mid)
		if math.Abs(fm) < tol*math.Max(q, 1) {
			return mid, true
		}
		if flo*fm <= 0 {
			hi, fhi = mid, fm
		} else {
			lo, flo = mid, fm
		}
	}
	return mid, false
}

// NormalWSEL solves for the water surface elevation at which an irregular
// section's composite conveyance satisfies K_total*sqrt(S) = Q
// (spec §4.2), bisecting on WSEL.
func NormalWSEL(xsec *xs.IrregularCrossSection, q, slope float64, tol float64, maxIter int) (wsel float64, converged bool) {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	zMin, zMax := xsec.ZMin(), xsec.ZMax()
	f := func(w float64) float64 {
		g := xs.At(xsec, w)
		return ManningFlowIrregular(g, slope) - q
	}

	lo := zMin + 1e-6
	hi := zMax
	for i := 0; i < 16 && f(hi) < 0; i++ {
		hi += (zMax - zMin)
	}
	flo, fhi := f(lo), f(hi)
	if flo*fhi > 0 {
		if math.Abs(flo) < math.Abs(fhi) {
			return lo, false
		}
		return hi, false
	}
	mid := lo
	for i := 0; i < maxIter; i++ {
		mid = 0.5 * (lo + hi)
		fm := f(mid)
		if math.Abs(fm) < tol*math.Max(q, 1) {
			return mid, true
		}
		if flo*fm <= 0 {
			hi, fhi = mid, fm
		} else {
			lo, flo = mid, fm
		}
	}
	return mid, false
}
