// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reach

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"

	"github.com/openriver/gochannel/gvf"
	"github.com/openriver/gochannel/structures"
	"github.com/openriver/gochannel/xs"
)

// twoSectionReach builds a reach with sections sorted ascending by
// RiverStation (station 0 downstream, station 100 upstream), the ordering
// RiverReach.Sections is required to hold (spec §3).
func twoSectionReach(tst *testing.T) *RiverReach {
	base := func(riverStation float64) *xs.IrregularCrossSection {
		pts := []xs.StationElevation{
			{Station: 0, Elevation: 10},
			{Station: 5, Elevation: 8},
			{Station: 7, Elevation: 5},
			{Station: 13, Elevation: 5},
			{Station: 15, Elevation: 8},
			{Station: 20, Elevation: 10},
		}
		sec, errs := xs.New("xs", riverStation, pts, xs.BankStations{Left: 7, Right: 13},
			xs.ManningN{LOB: 0.06, Main: 0.035, ROB: 0.06}, xs.ReachLengths{LOB: 100, Main: 100, ROB: 100})
		if len(errs) > 0 {
			tst.Fatalf("unexpected validation errors: %v", errs)
		}
		return sec
	}
	return &RiverReach{
		ID:       "reach-1",
		Sections: []*xs.IrregularCrossSection{base(0), base(100)},
	}
}

func Test_analyzeReach(tst *testing.T) {
	chk.PrintTitle("reach analyze: aggregate metrics")
	reach := twoSectionReach(tst)
	res := Analyze(reach, 30.0, gvf.BoundaryCondition{Kind: gvf.NormalDepthBC}, gvf.StandardStepOptions{})

	if len(res.Profile.Points) != 2 {
		tst.Fatalf("expected 2 points, got %d", len(res.Profile.Points))
	}
	if res.MinWSEL > res.MaxWSEL {
		tst.Fatalf("min WSEL %g > max WSEL %g", res.MinWSEL, res.MaxWSEL)
	}
	if res.MeanVelocity <= 0 {
		tst.Fatal("expected positive mean velocity")
	}
}

func Test_analyzeReachWithStructures(tst *testing.T) {
	chk.PrintTitle("reach analyze: structure hooks invoked")
	reach := twoSectionReach(tst)
	reach.Weirs = []WeirAt{{Station: 50, CrestElevation: 9, Hook: structures.SharpCrestedWeir{Cd: 0.62, Length: 3}}}
	reach.LateralDiversions = []LateralDiversionAt{{Station: 50, Hook: structures.CappedDiversion{
		Curve: []structures.StageFlowPoint{{Stage: 0, Flow: 0}, {Stage: 20, Flow: 5}},
		Max:   2,
	}}}

	res := Analyze(reach, 30.0, gvf.BoundaryCondition{Kind: gvf.NormalDepthBC}, gvf.StandardStepOptions{})
	if len(res.WeirResults) != 1 {
		tst.Fatalf("expected 1 weir result, got %d", len(res.WeirResults))
	}
	if res.LateralDiversion > 2 {
		tst.Fatalf("expected diversion capped at 2, got %g", res.LateralDiversion)
	}
}

func Test_floodplainAndVolume(tst *testing.T) {
	chk.PrintTitle("floodplain delineation and flood volume")
	reach := twoSectionReach(tst)
	res := Analyze(reach, 30.0, gvf.BoundaryCondition{Kind: gvf.NormalDepthBC}, gvf.StandardStepOptions{})

	fp := Floodplain(res.Profile, reach.Sections)
	if len(fp) != 2 {
		tst.Fatalf("expected 2 floodplain points, got %d", len(fp))
	}
	for _, p := range fp {
		if p.Area <= 0 {
			tst.Fatal("expected positive wetted area")
		}
	}

	vol := Volume(res.Profile, reach.Sections)
	if vol.Total <= 0 {
		tst.Fatal("expected positive flood volume")
	}
	if vol.Total < vol.Main {
		tst.Fatal("total volume should be >= main-channel volume")
	}
}

func Test_ratingCurveMonotonic(tst *testing.T) {
	chk.PrintTitle("rating curve WSEL is non-decreasing in Q")
	reach := twoSectionReach(tst)
	points := RatingCurve(reach.Sections[0], 0.001, 5, 50, 6)
	for i := 1; i < len(points); i++ {
		if points[i].WSEL < points[i-1].WSEL {
			tst.Fatalf("WSEL decreased from %g to %g as Q increased", points[i-1].WSEL, points[i].WSEL)
		}
	}
}

func Test_velocityAndShearDistribution(tst *testing.T) {
	chk.PrintTitle("velocity/shear distribution: dry points are zero")
	reach := twoSectionReach(tst)
	xsec := reach.Sections[0]
	g := xs.At(xsec, 9.0) // below the section top (10); stations at 10 stay dry

	vel := VelocityDistribution(xsec, g, 30.0)
	shear := ShearDistribution(xsec, g, 0.001)
	for i, pt := range xsec.Points {
		if pt.Elevation >= 9.0 {
			if vel[i].Velocity != 0 {
				tst.Fatalf("dry station %d: expected zero velocity, got %g", i, vel[i].Velocity)
			}
			if shear[i].Shear != 0 {
				tst.Fatalf("dry station %d: expected zero shear, got %g", i, shear[i].Shear)
			}
		}
	}
}

func Test_analyzeSystemTerminalOrder(t *testing.T) {
	upstream := twoSectionReach(t)
	upstream.ID = "upper"
	upstream.DownstreamReachID = "lower"

	lower := twoSectionReach(t)
	lower.ID = "lower"

	sys := &RiverSystem{Reaches: []*RiverReach{upstream, lower}}
	flows := FlowProfile{Flows: map[string]float64{"upper": 30.0, "lower": 30.0}}

	result := AnalyzeSystem(sys, flows, gvf.StandardStepOptions{})
	assert.Empty(t, result.Warnings)
	assert.Equal(t, []string{"lower", "upper"}, result.Order)
	assert.Contains(t, result.Reaches, "upper")
	assert.Contains(t, result.Reaches, "lower")

	// the upper reach's downstream boundary should have been derived from
	// "lower"'s upstream-most WSEL, not defaulted to normal depth.
	lowerPts := result.Reaches["lower"].Profile.Points
	upperBoundaryWSEL := lowerPts[len(lowerPts)-1].WSEL
	assert.Equal(t, upperBoundaryWSEL, result.Reaches["upper"].Profile.Boundary.WSEL)
}

func Test_analyzeSystemDetectsCycle(t *testing.T) {
	a := twoSectionReach(t)
	a.ID = "a"
	a.DownstreamReachID = "b"
	b := twoSectionReach(t)
	b.ID = "b"
	b.DownstreamReachID = "a"

	sys := &RiverSystem{Reaches: []*RiverReach{a, b}}
	result := AnalyzeSystem(sys, FlowProfile{}, gvf.StandardStepOptions{})

	assert.NotEmpty(t, result.Warnings)
	assert.Empty(t, result.Reaches)
}
