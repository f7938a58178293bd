// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniform

import (
	"github.com/openriver/gochannel/hyderr"
	"github.com/openriver/gochannel/prismatic"
	"github.com/openriver/gochannel/report"
	"github.com/openriver/gochannel/xs"
)

// PrismaticFlowResult is a complete single-section flow report for a
// prismatic channel (spec §3 ProfilePoint-adjacent, §6
// uniform::analyze_prismatic).
type PrismaticFlowResult struct {
	Depth, Slope, N    float64
	Q, A, P, T, R      float64
	V, Fr              float64
	Regime             string
	SpecificEnergy     float64
	Shear              float64
	CriticalDepth      float64
	NormalDepth        float64
	NormalConverged    bool
	Warnings           []string
}

// AnalyzePrismatic computes a full flow report at the given depth (spec
// §6 uniform::analyze_prismatic).
func AnalyzePrismatic(s prismatic.Section, depth, slope, n float64) PrismaticFlowResult {
	r := PrismaticFlowResult{Depth: depth, Slope: slope, N: n}
	r.A = s.Area(depth)
	r.P = s.WettedPerimeter(depth)
	r.T = s.TopWidth(depth)
	r.R = prismatic.HydraulicRadius(s, depth)
	r.Q = ManningFlowPrismatic(s, depth, slope, n)
	if r.A > 0 {
		r.V = r.Q / r.A
	}
	d := prismatic.HydraulicDepth(s, depth)
	r.Fr = FroudeNumber(r.V, d)
	r.Regime = Regime(r.Fr)
	r.SpecificEnergy = SpecificEnergy(depth, r.V)
	r.Shear = ShearStress(r.R, slope)
	r.CriticalDepth, _ = CriticalDepth(s, r.Q, DefaultTolerance, DefaultMaxIterations)
	r.NormalDepth, r.NormalConverged = NormalDepth(s, r.Q, slope, n, DefaultTolerance, DefaultMaxIterations)

	r.Warnings = warningsFor(r.V, r.Fr, 0.3, 6.0)
	if !r.NormalConverged {
		r.Warnings = append(r.Warnings, hyderr.WarnNonConvergent)
	}
	return r
}

// IrregularFlowResult is a complete single-section flow report for an
// irregular (natural) section (spec §6 uniform::analyze_irregular).
type IrregularFlowResult struct {
	WSEL, Q      float64
	Slope        float64
	Geometry     xs.CrossSectionGeometry
	V, D, Fr     float64
	Regime       string
	Warnings     []string
}

// AnalyzeIrregular computes a full flow report at the given WSEL and
// discharge (spec §6 uniform::analyze_irregular). Slope is optional (0
// when not supplied) -- it only affects the shear/Manning-consistency
// warnings a caller may derive from the result, not the geometry itself.
func AnalyzeIrregular(xsec *xs.IrregularCrossSection, wsel, q, slope float64) IrregularFlowResult {
	g := xs.At(xsec, wsel)
	r := IrregularFlowResult{WSEL: wsel, Q: q, Slope: slope, Geometry: g}
	if g.A > 0 {
		r.V = q / g.A
	}
	if g.T > 0 {
		r.D = g.A / g.T
	}
	r.Fr = CompositeFroude(g.Alpha, r.V, r.D)
	r.Regime = Regime(r.Fr)

	r.Warnings = warningsFor(r.V, r.Fr, 0.3, 4.0)
	if g.K > 0 {
		lobFrac := g.LOB.K / g.K
		robFrac := g.ROB.K / g.K
		if lobFrac > 0.2 || robFrac > 0.2 {
			r.Warnings = append(r.Warnings, hyderr.WarnSignificantOB)
		}
	}
	return r
}

// warningsFor applies the velocity/erosion/near-critical warnings common
// to both flow reports (spec §4.2).
func warningsFor(v, fr, lowV, erosionV float64) []string {
	var warnings []string
	if v > 0 && v < lowV {
		warnings = append(warnings, hyderr.WarnLowVelocity)
	}
	if v > erosionV {
		warnings = append(warnings, hyderr.WarnErosionRisk)
	}
	if fr > 0.86 && fr < 1.13 {
		warnings = append(warnings, hyderr.WarnNearCritical)
	}
	return warnings
}

// Format renders the report with the same field ordering as the struct, as
// a fixed-width plain-text table (spec §6 "Formatters"), grounded on the
// text/tabwriter report layout used across the corpus' civil-engineering
// CLIs.
func (r PrismaticFlowResult) Format() string {
	t := report.NewTable()
	t.Row("depth (m)", "%.4f", r.Depth)
	t.Row("slope", "%.6f", r.Slope)
	t.Row("n", "%.4f", r.N)
	t.Row("Q (m3/s)", "%.4f", r.Q)
	t.Row("A (m2)", "%.4f", r.A)
	t.Row("P (m)", "%.4f", r.P)
	t.Row("T (m)", "%.4f", r.T)
	t.Row("R (m)", "%.4f", r.R)
	t.Row("V (m/s)", "%.4f", r.V)
	t.Row("Fr", "%.4f", r.Fr)
	t.Row("regime", "%s", r.Regime)
	t.Row("specific energy (m)", "%.4f", r.SpecificEnergy)
	t.Row("shear (Pa)", "%.4f", r.Shear)
	t.Row("critical depth (m)", "%.4f", r.CriticalDepth)
	t.Row("normal depth (m)", "%.4f", r.NormalDepth)
	t.Row("normal converged", "%v", r.NormalConverged)
	for _, warn := range r.Warnings {
		t.Row("warning", "%s", warn)
	}
	return t.String()
}

// Format renders the irregular-section flow report.
func (r IrregularFlowResult) Format() string {
	t := report.NewTable()
	t.Row("WSEL (m)", "%.4f", r.WSEL)
	t.Row("Q (m3/s)", "%.4f", r.Q)
	t.Row("A (m2)", "%.4f", r.Geometry.A)
	t.Row("P (m)", "%.4f", r.Geometry.P)
	t.Row("T (m)", "%.4f", r.Geometry.T)
	t.Row("K", "%.4f", r.Geometry.K)
	t.Row("V (m/s)", "%.4f", r.V)
	t.Row("D (m)", "%.4f", r.D)
	t.Row("Fr", "%.4f", r.Fr)
	t.Row("regime", "%s", r.Regime)
	for _, warn := range r.Warnings {
		t.Row("warning", "%s", warn)
	}
	return t.String()
}
