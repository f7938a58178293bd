// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mrough holds the static roughness and material catalogs (spec §2
// component 2 / SPEC_FULL §4.8): Manning's n ranges, permissible velocity
// and shear, and side-slope and freeboard guidance, exposed as lookup
// functions. No other package of the engine imports it. Manning's n rows
// are built through gosl/fun named parameter lists, the same shape the
// teacher corpus uses for material model parameters (mreten, mconduct,
// msolid all take a fun.Prms), and registered in init(); the other catalogs
// are plain struct literals. Everything here is read-only package data,
// matching the "no process-wide mutable caches" rule in spec §5.
package mrough

import (
	"github.com/cpmech/gosl/fun"

	"github.com/openriver/gochannel/hyderr"
)

// ManningRow is one entry of the Manning's n catalog: a named lining or
// channel description with a typical value bracketed by a low/high range,
// per Chow's standard tables.
type ManningRow struct {
	Name             string
	NMin, NTyp, NMax float64
}

// manningTable is keyed by the row's Name for O(1) lookup; ManningRows() returns it
// as a stable-ordered slice for reporting.
var manningTable = map[string]ManningRow{}

var manningOrder []string

// addManning registers a catalog row, routing the three values through a
// fun.Prms list and Connect the same way the teacher's material models pull
// their constants out of a parameter database (mdl/diffusion/m1.go's
// Init), rather than assigning the struct fields directly.
func addManning(name string, nMin, nTyp, nMax float64) {
	prms := fun.Prms{
		&fun.Prm{N: "nmin", V: nMin},
		&fun.Prm{N: "ntyp", V: nTyp},
		&fun.Prm{N: "nmax", V: nMax},
	}
	row := ManningRow{Name: name}
	prms.Connect(&row.NMin, "nmin", "mrough Manning's n catalog")
	prms.Connect(&row.NTyp, "ntyp", "mrough Manning's n catalog")
	prms.Connect(&row.NMax, "nmax", "mrough Manning's n catalog")
	manningTable[name] = row
	manningOrder = append(manningOrder, name)
}

func init() {
	addManning("concrete, trowel finish", 0.011, 0.013, 0.015)
	addManning("concrete, float finish", 0.013, 0.015, 0.016)
	addManning("concrete, unfinished", 0.014, 0.017, 0.020)
	addManning("gravel bottom with concrete sides", 0.017, 0.020, 0.025)
	addManning("earth, straight and uniform", 0.017, 0.022, 0.025)
	addManning("earth, winding and sluggish", 0.023, 0.025, 0.030)
	addManning("rock cut, smooth and uniform", 0.025, 0.035, 0.040)
	addManning("rock cut, jagged and irregular", 0.035, 0.040, 0.050)
	addManning("natural streams, clean and straight", 0.025, 0.030, 0.033)
	addManning("natural streams, winding with pools and shoals", 0.033, 0.040, 0.045)
	addManning("natural streams, sluggish with deep pools", 0.050, 0.070, 0.080)
	addManning("floodplain, pasture, no brush", 0.025, 0.030, 0.035)
	addManning("floodplain, light brush", 0.035, 0.050, 0.070)
	addManning("floodplain, heavy brush", 0.070, 0.100, 0.160)
	addManning("floodplain, dense trees", 0.100, 0.120, 0.200)
}

// ManningFor looks up a named channel/lining description. Unknown names
// return a ValidationError -- the catalog never guesses a value.
func ManningFor(name string) (ManningRow, error) {
	row, ok := manningTable[name]
	if !ok {
		return ManningRow{}, hyderr.Validationf("mrough: no Manning's n entry named %q", name)
	}
	return row, nil
}

// ManningRows returns every catalog row in registration order.
func ManningRows() []ManningRow {
	rows := make([]ManningRow, len(manningOrder))
	for i, name := range manningOrder {
		rows[i] = manningTable[name]
	}
	return rows
}

// AsPrms renders a ManningRow back into the same fun.Prms shape addManning
// builds it from, for callers that want to hand a catalog row to code
// written against the teacher's parameter-database convention instead of
// the ManningRow struct directly.
func (r ManningRow) AsPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "nmin", V: r.NMin},
		&fun.Prm{N: "ntyp", V: r.NTyp},
		&fun.Prm{N: "nmax", V: r.NMax},
	}
}
