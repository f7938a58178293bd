// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prismatic

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// parabolic is parametrised by T1, the top width at unit depth.
type parabolic struct {
	t1 float64
}

// Parabolic builds a parabolic section with top width T1 (m) at 1 m depth.
func Parabolic(t1 float64) Section {
	if t1 <= 0 {
		chk.Panic("prismatic: parabolic T1 must be positive, got %g", t1)
	}
	return &parabolic{t1: t1}
}

func (o *parabolic) Kind() string { return "parabolic" }

func (o *parabolic) TopWidth(y float64) float64 {
	if y <= 0 {
		return 0
	}
	return o.t1 * math.Sqrt(y)
}

func (o *parabolic) Area(y float64) float64 {
	if y <= 0 {
		return 0
	}
	return (2.0 / 3.0) * o.TopWidth(y) * y
}

func (o *parabolic) WettedPerimeter(y float64) float64 {
	if y <= 0 {
		return 0
	}
	t := o.TopWidth(y)
	if t <= 0 {
		return 0
	}
	return t + (8.0/3.0)*y*y/t
}
