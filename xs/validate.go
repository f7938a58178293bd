// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xs

import (
	"sort"

	"github.com/openriver/gochannel/hyderr"
)

// New constructs and validates an irregular cross-section. Points need not
// be pre-sorted by station; New sorts a copy before validating. Returns the
// validation errors from Validate (spec §4.1) instead of a *IrregularCrossSection
// when the input is invalid -- no partially-built section is ever handed
// back to the caller.
func New(id string, riverStation float64, points []StationElevation, banks BankStations, n ManningN, reachLengths ReachLengths) (*IrregularCrossSection, []error) {
	pts := make([]StationElevation, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].Station < pts[j].Station })

	xsec := &IrregularCrossSection{
		ID:           id,
		RiverStation: riverStation,
		Points:       pts,
		Banks:        banks,
		ManningN:     n,
		ReachLengths: reachLengths,
	}
	if errs := Validate(xsec); len(errs) > 0 {
		return nil, errs
	}
	xsec.validated = true
	return xsec, nil
}

// Validate checks the invariants named in spec §3/§4.1 and returns every
// violation found (not just the first), so a caller can report them all at
// once -- mirroring fem.Domain's construction-time validation, which
// likewise accumulates every problem in the input mesh before refusing to
// proceed.
func Validate(xsec *IrregularCrossSection) []error {
	var errs []error

	if len(xsec.Points) < 3 {
		errs = append(errs, hyderr.Validationf("xs %s: need at least 3 station-elevation points, got %d", xsec.ID, len(xsec.Points)))
		return errs // nothing else can be safely checked
	}

	for _, p := range xsec.Points {
		if isNonFinite(p.Station) || isNonFinite(p.Elevation) {
			errs = append(errs, hyderr.Validationf("xs %s: station/elevation must be finite", xsec.ID))
			break
		}
	}

	left, right := xsec.Banks.Left, xsec.Banks.Right
	extentLo, extentHi := xsec.Points[0].Station, xsec.Points[len(xsec.Points)-1].Station
	if left >= right {
		errs = append(errs, hyderr.Validationf("xs %s: left bank station (%g) must be < right bank station (%g)", xsec.ID, left, right))
	}
	if left < extentLo || left > extentHi {
		errs = append(errs, hyderr.Validationf("xs %s: left bank station %g is outside the section extent [%g, %g]", xsec.ID, left, extentLo, extentHi))
	}
	if right < extentLo || right > extentHi {
		errs = append(errs, hyderr.Validationf("xs %s: right bank station %g is outside the section extent [%g, %g]", xsec.ID, right, extentLo, extentHi))
	}

	if xsec.ManningN.LOB <= 0 || xsec.ManningN.Main <= 0 || xsec.ManningN.ROB <= 0 {
		errs = append(errs, hyderr.Validationf("xs %s: all three Manning's n values must be > 0 (got LOB=%g, main=%g, ROB=%g)",
			xsec.ID, xsec.ManningN.LOB, xsec.ManningN.Main, xsec.ManningN.ROB))
	}

	if xsec.ReachLengths.LOB < 0 || xsec.ReachLengths.Main < 0 || xsec.ReachLengths.ROB < 0 {
		errs = append(errs, hyderr.Validationf("xs %s: reach lengths must be >= 0", xsec.ID))
	}

	return errs
}

func isNonFinite(v float64) bool {
	return v != v || v > 1e300 || v < -1e300
}
