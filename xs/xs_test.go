// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xs

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func compoundSection(tst *testing.T) *IrregularCrossSection {
	pts := []StationElevation{
		{Station: 0, Elevation: 10},
		{Station: 5, Elevation: 8},
		{Station: 7, Elevation: 5},
		{Station: 13, Elevation: 5},
		{Station: 15, Elevation: 8},
		{Station: 20, Elevation: 10},
	}
	xsec, errs := New("xs1", 0, pts, BankStations{Left: 7, Right: 13}, ManningN{LOB: 0.06, Main: 0.035, ROB: 0.06}, ReachLengths{LOB: 100, Main: 100, ROB: 100})
	if len(errs) > 0 {
		tst.Fatalf("unexpected validation errors: %v", errs)
	}
	return xsec
}

func Test_validate01(tst *testing.T) {
	chk.PrintTitle("validate01")
	_, errs := New("bad", 0, []StationElevation{{Station: 0, Elevation: 1}, {Station: 1, Elevation: 0}}, BankStations{Left: 0, Right: 1}, ManningN{0.03, 0.03, 0.03}, ReachLengths{})
	if len(errs) == 0 {
		tst.Errorf("expected an error for < 3 points")
	}

	xsec := compoundSection(tst)
	xsec.Banks = BankStations{Left: 13, Right: 7}
	if errs := Validate(xsec); len(errs) == 0 {
		tst.Errorf("expected an error for left bank >= right bank")
	}
}

func Test_totalsEqualZoneSums(tst *testing.T) {
	chk.PrintTitle("totalsEqualZoneSums")
	xsec := compoundSection(tst)
	for _, wsel := range []float64{5.5, 7.0, 8.5, 9.9} {
		g := At(xsec, wsel)
		sumA := g.LOB.A + g.MainCh.A + g.ROB.A
		sumP := g.LOB.P + g.MainCh.P + g.ROB.P
		sumT := g.LOB.T + g.MainCh.T + g.ROB.T
		sumK := g.LOB.K + g.MainCh.K + g.ROB.K
		chk.Scalar(tst, "sumA", 1e-9, sumA, g.A)
		chk.Scalar(tst, "sumP", 1e-9, sumP, g.P)
		chk.Scalar(tst, "sumT", 1e-9, sumT, g.T)
		chk.Scalar(tst, "sumK", 1e-9, sumK, g.K)
	}
}

func Test_emptySection(tst *testing.T) {
	chk.PrintTitle("emptySection")
	xsec := compoundSection(tst)
	g := At(xsec, xsec.ZMin()-1)
	chk.Scalar(tst, "A", 1e-15, g.A, 0)
	chk.Scalar(tst, "P", 1e-15, g.P, 0)
	chk.Scalar(tst, "T", 1e-15, g.T, 0)
	chk.Scalar(tst, "K", 1e-15, g.K, 0)
}

func Test_levee01(tst *testing.T) {
	chk.PrintTitle("levee01")
	xsec := compoundSection(tst)
	xsec.Levees = []Levee{{Station: 2, TopElev: 9, Side: LOB}}

	below := At(xsec, 8.5)
	chk.Scalar(tst, "LOB.A below crest", 1e-15, below.LOB.A, 0)
	chk.Scalar(tst, "LOB.P below crest", 1e-15, below.LOB.P, 0)
	chk.Scalar(tst, "LOB.T below crest", 1e-15, below.LOB.T, 0)

	above := At(xsec, 9.5)
	if above.LOB.A <= 0 {
		tst.Errorf("expected LOB area to unblock once WSEL >= levee top")
	}
}

func Test_ineffective01(tst *testing.T) {
	chk.PrintTitle("ineffective01")
	xsec := compoundSection(tst)
	xsec.Ineffective = []IneffectiveArea{{Left: 0, Right: 5, Threshold: 9, Permanent: false}}

	withoutIA := compoundSection(tst)
	below := At(xsec, 8.5)
	belowRef := At(withoutIA, 8.5)
	if below.LOB.A >= belowRef.LOB.A {
		tst.Errorf("expected ineffective area to reduce LOB area below threshold")
	}

	above := At(xsec, 9.5)
	aboveRef := At(withoutIA, 9.5)
	chk.Scalar(tst, "LOB.A effective above threshold", 1e-9, above.LOB.A, aboveRef.LOB.A)
}

func Test_interpolateEndpoints(tst *testing.T) {
	chk.PrintTitle("interpolateEndpoints")
	xs1 := compoundSection(tst)
	pts2 := []StationElevation{
		{Station: 0, Elevation: 12},
		{Station: 6, Elevation: 9},
		{Station: 8, Elevation: 6},
		{Station: 14, Elevation: 6},
		{Station: 16, Elevation: 9},
		{Station: 22, Elevation: 12},
	}
	xs2, errs := New("xs2", 100, pts2, BankStations{Left: 8, Right: 14}, ManningN{0.05, 0.03, 0.05}, ReachLengths{})
	if len(errs) > 0 {
		tst.Fatalf("unexpected validation errors: %v", errs)
	}

	at0 := Interpolate(xs1, xs2, 0, 100)
	at1 := Interpolate(xs1, xs2, 100, 100)

	for _, wsel := range []float64{6, 8, 9} {
		g0 := At(at0, wsel)
		gRef := At(xs1, wsel)
		if math.Abs(g0.A-gRef.A) > 1e-6 {
			tst.Errorf("t=0 area mismatch at wsel=%g: got %g want %g", wsel, g0.A, gRef.A)
		}

		g1 := At(at1, wsel)
		gRef2 := At(xs2, wsel)
		if math.Abs(g1.A-gRef2.A) > 1e-6 {
			tst.Errorf("t=1 area mismatch at wsel=%g: got %g want %g", wsel, g1.A, gRef2.A)
		}
	}

	// at t=0.5 every interpolated elevation must sit exactly on the linear
	// blend of the two end sections at the matching station fraction.
	mid := Interpolate(xs1, xs2, 50, 100)
	fracs := fractionsOf(mid)
	diff := make([]float64, len(fracs))
	for i, f := range fracs {
		_, e1 := pointAtFraction(xs1, f)
		_, e2 := pointAtFraction(xs2, f)
		diff[i] = mid.Points[i].Elevation - (0.5*e1 + 0.5*e2)
	}
	if res := la.VecNorm(diff); res > 1e-9 {
		tst.Fatalf("midpoint interpolation residual too large: %g", res)
	}
}
