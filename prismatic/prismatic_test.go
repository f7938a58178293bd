// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prismatic

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_rectangular01(tst *testing.T) {
	chk.PrintTitle("rectangular01")
	s := Rectangular(3.0)
	chk.Scalar(tst, "A(0)", 1e-15, s.Area(0), 0)
	chk.Scalar(tst, "P(0)", 1e-15, s.WettedPerimeter(0), 0)
	chk.Scalar(tst, "T(0)", 1e-15, s.TopWidth(0), 0)
	chk.Scalar(tst, "A(2)", 1e-12, s.Area(2), 6)
	chk.Scalar(tst, "P(2)", 1e-12, s.WettedPerimeter(2), 7)
	chk.Scalar(tst, "T(2)", 1e-12, s.TopWidth(2), 3)
}

func Test_trapezoidal01(tst *testing.T) {
	chk.PrintTitle("trapezoidal01")
	s := Trapezoidal(2.0, 1.5, 1.5)
	y := 1.0
	chk.Scalar(tst, "A", 1e-12, s.Area(y), (2+1.5*y)*y)
	chk.Scalar(tst, "T", 1e-12, s.TopWidth(y), 2+2*1.5*y)
	chk.Scalar(tst, "P", 1e-12, s.WettedPerimeter(y), 2+2*y*math.Sqrt(1+1.5*1.5))
}

func Test_circular01(tst *testing.T) {
	chk.PrintTitle("circular01")
	s := Circular(1.0)
	// full pipe: no free surface, perimeter = pi*D
	chk.Scalar(tst, "T(D)", 1e-12, s.TopWidth(1.0), 0)
	chk.Scalar(tst, "P(D)", 1e-9, s.WettedPerimeter(1.0), math.Pi)
	chk.Scalar(tst, "A(D)", 1e-9, s.Area(1.0), math.Pi/4)

	// y = 0.75*D scenario from spec §8 end-to-end scenario 3
	y := 0.75
	A := s.Area(y)
	R := HydraulicRadius(s, y)
	if math.Abs(A-0.632)/0.632 > 0.01 {
		tst.Errorf("A = %g, want ~0.632", A)
	}
	if math.Abs(R-0.304)/0.304 > 0.01 {
		tst.Errorf("R = %g, want ~0.304", R)
	}
}

func Test_parabolic01(tst *testing.T) {
	chk.PrintTitle("parabolic01")
	s := Parabolic(4.0)
	y := 1.0
	chk.Scalar(tst, "T(1)", 1e-12, s.TopWidth(y), 4.0)
	chk.Scalar(tst, "A(1)", 1e-12, s.Area(y), (2.0/3.0)*4.0)
}

// hydraulicIdentity is the property from spec §8: R*P = A within 1e-9
// relative, for every shape and a spread of depths.
func Test_hydraulicIdentity(tst *testing.T) {
	chk.PrintTitle("hydraulicIdentity")
	shapes := []Section{
		Rectangular(3.0),
		Trapezoidal(2.0, 1.5, 1.0),
		Triangular(2.0, 2.0),
		Circular(1.0),
		Parabolic(4.0),
	}
	depths := []float64{0.1, 0.3, 0.5, 0.75, 0.9}
	for _, s := range shapes {
		for _, y := range depths {
			if s.Kind() == "circular" && y >= 1.0 {
				continue
			}
			A := s.Area(y)
			P := s.WettedPerimeter(y)
			R := HydraulicRadius(s, y)
			if P <= 0 {
				continue
			}
			rel := math.Abs(R*P-A) / math.Max(A, 1e-12)
			if rel > 1e-9 {
				tst.Errorf("%s: R*P != A at y=%g (rel=%g)", s.Kind(), y, rel)
			}
		}
	}
}
