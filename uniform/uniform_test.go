// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniform

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/openriver/gochannel/prismatic"
)

// Test_scenario01 checks the rectangular-channel scenario: b=3 m, S=0.001,
// n=0.013, Q=5 m3/s. Expected (1% tolerance): y_n~=1.09 m, y_c~=0.66 m,
// slope class mild, V~=1.53 m/s, Fr~=0.47 subcritical.
func Test_scenario01(tst *testing.T) {
	chk.PrintTitle("scenario01: rectangular uniform flow")
	s := prismatic.Rectangular(3.0)
	const q, slope, n = 5.0, 0.001, 0.013

	yc, convC := CriticalDepth(s, q, DefaultTolerance, DefaultMaxIterations)
	if !convC {
		tst.Fatal("critical depth did not converge")
	}
	chk.Scalar(tst, "y_c", 0.01, yc, 0.66)

	yn, convN := NormalDepth(s, q, slope, n, DefaultTolerance, DefaultMaxIterations)
	if !convN {
		tst.Fatal("normal depth did not converge")
	}
	chk.Scalar(tst, "y_n", 0.01, yn, 1.09)

	if yn <= yc {
		tst.Fatalf("expected mild slope (y_n > y_c), got y_n=%g y_c=%g", yn, yc)
	}

	a := s.Area(yn)
	v := q / a
	chk.Scalar(tst, "V", 0.02, v, 1.53)

	d := prismatic.HydraulicDepth(s, yn)
	fr := FroudeNumber(v, d)
	chk.Scalar(tst, "Fr", 0.01, fr, 0.47)
	if Regime(fr) != "subcritical" {
		tst.Fatalf("expected subcritical regime, got %s", Regime(fr))
	}
}

// Test_scenario02 checks the trapezoidal-channel critical depth: b=2 m,
// z=1.5:1 both sides, S=0.002, n=0.025, Q=10 m3/s. Expected y_c~=0.84 m.
func Test_scenario02(tst *testing.T) {
	chk.PrintTitle("scenario02: trapezoidal critical depth")
	s := prismatic.Trapezoidal(2.0, 1.5, 1.5)
	const q = 10.0

	yc, converged := CriticalDepth(s, q, DefaultTolerance, DefaultMaxIterations)
	if !converged {
		tst.Fatal("critical depth did not converge")
	}
	chk.Scalar(tst, "y_c", 0.01, yc, 0.84)
}

// Test_manningInversion checks that normal_depth(manning_flow(y,S,n)) = y
// within 1e-3 relative error, i.e. the Manning-flow and normal-depth
// solvers are mutual inverses, across a handful of shapes and depths.
func Test_manningInversion(tst *testing.T) {
	chk.PrintTitle("manning flow / normal depth round trip")
	const slope, n = 0.0015, 0.02
	cases := []struct {
		s prismatic.Section
		y float64
	}{
		{prismatic.Rectangular(4.0), 0.8},
		{prismatic.Rectangular(4.0), 2.3},
		{prismatic.Trapezoidal(3.0, 2.0, 2.0), 1.1},
		{prismatic.Triangular(1.0, 1.0), 0.9},
		{prismatic.Circular(1.5), 0.6},
	}
	for i, c := range cases {
		q := ManningFlowPrismatic(c.s, c.y, slope, n)
		if q <= 0 {
			tst.Fatalf("case %d: non-positive discharge %g", i, q)
		}
		yBack, converged := NormalDepth(c.s, q, slope, n, DefaultTolerance, DefaultMaxIterations)
		if !converged {
			tst.Fatalf("case %d: normal depth did not converge", i)
		}
		if relErr := math.Abs(yBack-c.y) / c.y; relErr > 1e-3 {
			tst.Fatalf("case %d: round trip y=%g -> Q=%g -> y=%g (relErr=%g)", i, c.y, q, yBack, relErr)
		}
	}
}

// Test_regimeBoundaries checks the Froude-number regime classification
// boundaries (spec §4.2).
func Test_regimeBoundaries(tst *testing.T) {
	chk.PrintTitle("froude regime boundaries")
	if Regime(0.5) != "subcritical" {
		tst.Fatal("Fr=0.5 should be subcritical")
	}
	if Regime(1.0) != "critical" {
		tst.Fatal("Fr=1.0 should be critical")
	}
	if Regime(2.0) != "supercritical" {
		tst.Fatal("Fr=2.0 should be supercritical")
	}
}

// Test_analyzePrismaticFormat exercises the full report path end to end,
// including Format(), for a rectangular channel.
func Test_analyzePrismaticFormat(tst *testing.T) {
	s := prismatic.Rectangular(3.0)
	r := AnalyzePrismatic(s, 1.09, 0.001, 0.013)
	if r.Regime != "subcritical" {
		tst.Fatalf("expected subcritical, got %s", r.Regime)
	}
	out := r.Format()
	if len(out) == 0 {
		tst.Fatal("expected non-empty report")
	}
}
