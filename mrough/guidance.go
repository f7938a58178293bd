// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrough

import "github.com/openriver/gochannel/hyderr"

// VelocityRow is a named soil/lining class with its permissible (erosion
// non-threatening) mean velocity, m/s.
type VelocityRow struct {
	Name       string
	Permissible float64
}

var velocityTable = map[string]VelocityRow{
	"fine sand":               {Name: "fine sand", Permissible: 0.45},
	"sandy loam":              {Name: "sandy loam", Permissible: 0.55},
	"silt loam":               {Name: "silt loam", Permissible: 0.60},
	"firm loam":               {Name: "firm loam", Permissible: 0.75},
	"stiff clay":              {Name: "stiff clay", Permissible: 1.15},
	"fine gravel":             {Name: "fine gravel", Permissible: 0.75},
	"graded loam to cobbles":  {Name: "graded loam to cobbles", Permissible: 1.15},
	"graded silt to cobbles":  {Name: "graded silt to cobbles", Permissible: 1.50},
	"shales and hard pans":    {Name: "shales and hard pans", Permissible: 1.80},
	"grass-lined, slope < 5%": {Name: "grass-lined, slope < 5%", Permissible: 1.50},
}

// PermissibleVelocityFor looks up the allowable mean velocity for a named
// soil/lining class.
func PermissibleVelocityFor(name string) (VelocityRow, error) {
	row, ok := velocityTable[name]
	if !ok {
		return VelocityRow{}, hyderr.Validationf("mrough: no permissible velocity entry named %q", name)
	}
	return row, nil
}

// ShearRow is a named soil class with its permissible (non-erosive) shear
// stress, Pa.
type ShearRow struct {
	Name        string
	Permissible float64
}

var shearTable = map[string]ShearRow{
	"fine sand":   {Name: "fine sand", Permissible: 2.2},
	"sandy loam":  {Name: "sandy loam", Permissible: 2.6},
	"silt loam":   {Name: "silt loam", Permissible: 3.0},
	"firm loam":   {Name: "firm loam", Permissible: 4.3},
	"stiff clay":  {Name: "stiff clay", Permissible: 12.5},
	"fine gravel": {Name: "fine gravel", Permissible: 3.8},
	"coarse gravel": {Name: "coarse gravel", Permissible: 15.0},
	"shales":      {Name: "shales", Permissible: 32.0},
}

// PermissibleShearFor looks up the allowable shear stress for a named soil
// class.
func PermissibleShearFor(name string) (ShearRow, error) {
	row, ok := shearTable[name]
	if !ok {
		return ShearRow{}, hyderr.Validationf("mrough: no permissible shear entry named %q", name)
	}
	return row, nil
}

// SideSlopeRow recommends a side slope (H:V) for a named soil class.
type SideSlopeRow struct {
	Name string
	HtoV float64
}

var sideSlopeTable = map[string]SideSlopeRow{
	"rock":            {Name: "rock", HtoV: 0.25},
	"muck and peat":   {Name: "muck and peat", HtoV: 0.25},
	"stiff clay":      {Name: "stiff clay", HtoV: 1.0},
	"firm earth":      {Name: "firm earth", HtoV: 1.5},
	"loose sandy earth": {Name: "loose sandy earth", HtoV: 2.0},
	"sandy loam":      {Name: "sandy loam", HtoV: 3.0},
}

// SideSlopeFor looks up the recommended side slope for a named soil class.
func SideSlopeFor(name string) (SideSlopeRow, error) {
	row, ok := sideSlopeTable[name]
	if !ok {
		return SideSlopeRow{}, hyderr.Validationf("mrough: no side slope guidance entry named %q", name)
	}
	return row, nil
}

// FreeboardRow recommends a minimum freeboard (m) above design WSEL for a
// design-discharge bracket (m^3/s, upper bound of the bracket).
type FreeboardRow struct {
	QUpTo     float64
	Freeboard float64
}

// freeboardTable is checked in ascending QUpTo order; the first bracket
// whose QUpTo is >= the design flow applies.
var freeboardTable = []FreeboardRow{
	{QUpTo: 0.5, Freeboard: 0.3},
	{QUpTo: 5, Freeboard: 0.4},
	{QUpTo: 20, Freeboard: 0.5},
	{QUpTo: 50, Freeboard: 0.6},
	{QUpTo: 200, Freeboard: 0.9},
	{QUpTo: 1e18, Freeboard: 1.2},
}

// FreeboardFor returns the recommended freeboard for a design discharge Q
// (m^3/s). Always succeeds -- the last bracket covers any flow.
func FreeboardFor(q float64) float64 {
	for _, row := range freeboardTable {
		if q <= row.QUpTo {
			return row.Freeboard
		}
	}
	return freeboardTable[len(freeboardTable)-1].Freeboard
}
