// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reach

import (
	"sort"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"

	"github.com/openriver/gochannel/gvf"
	"github.com/openriver/gochannel/hyderr"
)

// SystemResult is the per-reach outcome of analyzing a RiverSystem, plus the
// computation order actually used (spec §4.6).
type SystemResult struct {
	Reaches  map[string]Result
	Order    []string
	Warnings []string
}

// AnalyzeSystem computes every reach in sys in terminal-upward order (spec
// §4.6): the reach graph formed by DownstreamReachID pointers is checked for
// cycles first (spec §3 RiverSystem invariant), then each reach not given an
// explicit boundary condition in flows derives one from the already-computed
// downstream reach's upstream-most WSEL, or falls back to normal_depth when
// there is no downstream reach yet computed. Reaches lvlath's core.Graph for
// the graph representation and dfs.TopologicalSort / bfs.BFS for the
// acyclicity check and ordering, rather than hand-rolling either.
func AnalyzeSystem(sys *RiverSystem, flows FlowProfile, opts gvf.StandardStepOptions) SystemResult {
	reachByID := make(map[string]*RiverReach, len(sys.Reaches))
	for _, r := range sys.Reaches {
		reachByID[r.ID] = r
	}

	g := core.NewGraph(core.WithDirected(true))
	for _, r := range sys.Reaches {
		_ = g.AddVertex(r.ID)
	}
	for _, r := range sys.Reaches {
		if r.DownstreamReachID != "" {
			_, _ = g.AddEdge(r.ID, r.DownstreamReachID, 0)
		}
	}

	result := SystemResult{Reaches: make(map[string]Result, len(sys.Reaches))}
	if _, err := dfs.TopologicalSort(g); err != nil {
		result.Warnings = append(result.Warnings, hyderr.Validationf("reach graph is not acyclic: %v", err).Error())
		return result
	}

	reverseGraph := core.NewGraph(core.WithDirected(true))
	for _, r := range sys.Reaches {
		_ = reverseGraph.AddVertex(r.ID)
	}
	for _, r := range sys.Reaches {
		if r.DownstreamReachID != "" {
			_, _ = reverseGraph.AddEdge(r.DownstreamReachID, r.ID, 0)
		}
	}

	var terminals []string
	for _, r := range sys.Reaches {
		if r.DownstreamReachID == "" {
			terminals = append(terminals, r.ID)
		}
	}
	sort.Strings(terminals)

	visited := make(map[string]bool, len(sys.Reaches))
	var order []string
	for _, t := range terminals {
		bfsRes, err := bfs.BFS(reverseGraph, t)
		if err != nil {
			continue
		}
		for _, id := range bfsRes.Order {
			if !visited[id] {
				visited[id] = true
				order = append(order, id)
			}
		}
	}
	// spec §4.6: any reaches not reached by BFS are appended at the end
	// (they are disconnected).
	var remaining []string
	for _, r := range sys.Reaches {
		if !visited[r.ID] {
			remaining = append(remaining, r.ID)
		}
	}
	sort.Strings(remaining)
	order = append(order, remaining...)
	result.Order = order

	for _, id := range order {
		r := reachByID[id]
		q := flows.Flows[id]
		bc := resolveSystemBoundary(r, flows, result.Reaches)
		result.Reaches[id] = Analyze(r, q, bc, opts)
	}
	return result
}

func resolveSystemBoundary(r *RiverReach, flows FlowProfile, computed map[string]Result) gvf.BoundaryCondition {
	if flows.Supplied != nil && flows.Supplied[r.ID] {
		return flows.Boundaries[r.ID]
	}
	if r.DownstreamReachID != "" {
		if down, ok := computed[r.DownstreamReachID]; ok && len(down.Profile.Points) > 0 {
			pts := down.Profile.Points
			return gvf.BoundaryCondition{Kind: gvf.KnownWSEL, WSEL: pts[len(pts)-1].WSEL}
		}
	}
	return gvf.BoundaryCondition{Kind: gvf.NormalDepthBC}
}
