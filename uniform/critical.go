// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniform

import (
	"math"

	"github.com/openriver/gochannel/prismatic"
	"github.com/openriver/gochannel/xs"
)

// DefaultTolerance is the default relative/absolute tolerance used by the
// bisection- and Newton-based solvers in this package (spec §4.2).
const DefaultTolerance = 1e-4

// DefaultMaxIterations bounds every iterative routine below, per spec §5
// ("Cancellation and timeouts. Bounded by max_iterations parameters").
const DefaultMaxIterations = 100

// CriticalDepth solves for the depth at which Fr=1 in a prismatic section
// carrying discharge Q (spec §4.2). Rectangular sections use the closed
// form y_c = ((Q/b)^2/g)^(1/3); every other shape bisects
// Q^2*T/(g*A^3) = 1 on y in (eps, y_max], doubling y_max until
// A(y_max)*0.1 > Q or 100 m is reached.
func CriticalDepth(s prismatic.Section, q float64, tol float64, maxIter int) (yc float64, converged bool) {
	if q <= 0 {
		return 0, true
	}
	if rw, ok := s.(prismatic.RectangularWidth); ok {
		b := rw.BottomWidth()
		return math.Cbrt((q / b) * (q / b) / Gravity), true
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	f := func(y float64) float64 {
		a := s.Area(y)
		t := s.TopWidth(y)
		if a <= 0 {
			return -1
		}
		return q*q*t/(Gravity*a*a*a) - 1
	}

	yMax := 1.0
	for i := 0; i < 64; i++ {
		if s.Area(yMax)*0.1 > q || yMax >= 100 {
			break
		}
		yMax *= 2
	}
	if yMax > 100 {
		yMax = 100
	}

	eps := 1e-6
	lo, hi := eps, yMax
	flo, fhi := f(lo), f(hi)
	if flo*fhi > 0 {
		// no sign change found in range: return the best endpoint rather
		// than fail (spec §7 kind 3 -- best-effort, never an exception).
		if math.Abs(flo) < math.Abs(fhi) {
			return lo, false
		}
		return hi, false
	}

	mid := lo
	for i := 0; i < maxIter; i++ {
		mid = 0.5 * (lo + hi)
		fm := f(mid)
		if math.Abs(fm) < tol {
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

// CriticalSlope is S_c = (Q*n / (A_c*R_c^(2/3)))^2 (spec §4.2).
func CriticalSlope(s prismatic.Section, q, n float64, yc float64) float64 {
	a := s.Area(yc)
	r := prismatic.HydraulicRadius(s, yc)
	if a <= 0 || r <= 0 {
		return 0
	}
	denom := a * math.Pow(r, 2.0/3.0)
	return (q * n / denom) * (q * n / denom)
}

// CriticalWSEL solves for the water surface elevation at which Fr=1 in an
// irregular section (spec §4.2), bisecting on WSEL in
// [z_min+eps, z_max] for V/sqrt(g*D) = 1.
func CriticalWSEL(xsec *xs.IrregularCrossSection, q float64, tol float64, maxIter int) (wsel float64, converged bool) {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	zMin, zMax := xsec.ZMin(), xsec.ZMax()
	f := func(w float64) float64 {
		g := xs.At(xsec, w)
		if g.A <= 0 || g.T <= 0 {
			return -1
		}
		d := g.A / g.T
		v := q / g.A
		return FroudeNumber(v, d) - 1
	}

	lo, hi := zMin+1e-6, zMax
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
		if math.Abs(fm) < tol {
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
