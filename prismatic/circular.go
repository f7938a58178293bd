// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prismatic

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// circular is a closed circular conduit of diameter D flowing partially or
// (per spec §4.1) exactly full; beyond D it is still treated as full (no
// pressurised-flow model here -- pressure flow is out of scope).
type circular struct {
	d float64
}

// Circular builds a circular conduit of diameter D (m).
func Circular(d float64) Section {
	if d <= 0 {
		chk.Panic("prismatic: circular diameter must be positive, got %g", d)
	}
	return &circular{d: d}
}

func (o *circular) Kind() string { return "circular" }

// theta returns the wetted central angle (rad) for depth y, valid for
// 0 < y < D.
func (o *circular) theta(y float64) float64 {
	return 2 * math.Acos(1-2*y/o.d)
}

func (o *circular) Area(y float64) float64 {
	if y <= 0 {
		return 0
	}
	if y >= o.d {
		return math.Pi * o.d * o.d / 4
	}
	th := o.theta(y)
	return o.d * o.d / 8 * (th - math.Sin(th))
}

func (o *circular) WettedPerimeter(y float64) float64 {
	if y <= 0 {
		return 0
	}
	if y >= o.d {
		return math.Pi * o.d
	}
	return o.d * o.theta(y) / 2
}

// TopWidth is 0 once the pipe runs full -- there is no free surface left.
func (o *circular) TopWidth(y float64) float64 {
	if y <= 0 {
		return 0
	}
	if y >= o.d {
		return 0
	}
	return o.d * math.Sin(math.Acos(1-2*y/o.d))
}
