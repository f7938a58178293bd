// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrough

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_manning01(tst *testing.T) {
	chk.PrintTitle("manning01")
	row, err := ManningFor("concrete, trowel finish")
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "ntyp", 1e-15, row.NTyp, 0.013)

	if _, err := ManningFor("not a real material"); err == nil {
		tst.Errorf("expected an error for an unknown catalog entry")
	}
}

func Test_freeboard01(tst *testing.T) {
	chk.PrintTitle("freeboard01")
	chk.Scalar(tst, "fb(0.1)", 1e-15, FreeboardFor(0.1), 0.3)
	chk.Scalar(tst, "fb(1000)", 1e-15, FreeboardFor(1000), 1.2)
}

func Test_manningAsPrms01(tst *testing.T) {
	chk.PrintTitle("manningAsPrms01")
	row, err := ManningFor("concrete, trowel finish")
	if err != nil {
		tst.Fatal(err)
	}
	var back ManningRow
	back.Name = row.Name
	prms := row.AsPrms()
	prms.Connect(&back.NMin, "nmin", "round trip")
	prms.Connect(&back.NTyp, "ntyp", "round trip")
	prms.Connect(&back.NMax, "nmax", "round trip")
	chk.Scalar(tst, "nmin round trip", 1e-15, back.NMin, row.NMin)
	chk.Scalar(tst, "ntyp round trip", 1e-15, back.NTyp, row.NTyp)
	chk.Scalar(tst, "nmax round trip", 1e-15, back.NMax, row.NMax)
}

func Test_manningRows01(tst *testing.T) {
	chk.PrintTitle("manningRows01")
	rows := ManningRows()
	if len(rows) == 0 {
		tst.Errorf("expected a non-empty catalog")
	}
}

func Test_permissibleVelocity01(tst *testing.T) {
	chk.PrintTitle("permissibleVelocity01")
	row, err := PermissibleVelocityFor("stiff clay")
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "permissible velocity", 1e-15, row.Permissible, 1.15)

	if _, err := PermissibleVelocityFor("not a real soil"); err == nil {
		tst.Errorf("expected an error for an unknown catalog entry")
	}
}

func Test_permissibleShear01(tst *testing.T) {
	chk.PrintTitle("permissibleShear01")
	row, err := PermissibleShearFor("coarse gravel")
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "permissible shear", 1e-15, row.Permissible, 15.0)

	if _, err := PermissibleShearFor("not a real soil"); err == nil {
		tst.Errorf("expected an error for an unknown catalog entry")
	}
}

func Test_sideSlope01(tst *testing.T) {
	chk.PrintTitle("sideSlope01")
	row, err := SideSlopeFor("firm earth")
	if err != nil {
		tst.Fatal(err)
	}
	chk.Scalar(tst, "H:V", 1e-15, row.HtoV, 1.5)

	if _, err := SideSlopeFor("not a real soil"); err == nil {
		tst.Errorf("expected an error for an unknown catalog entry")
	}
}
