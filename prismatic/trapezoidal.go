// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prismatic

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// trapezoidal is a channel of bottom width b with independent left/right
// side slopes z (horizontal : vertical = z : 1).
type trapezoidal struct {
	b, zLeft, zRight float64
}

// Trapezoidal builds a trapezoidal section of bottom width b (m) and side
// slopes zLeft, zRight (H:V, dimensionless, >= 0 -- 0 degenerates one side
// to vertical).
func Trapezoidal(b, zLeft, zRight float64) Section {
	if b <= 0 {
		chk.Panic("prismatic: trapezoidal bottom width must be positive, got %g", b)
	}
	if zLeft < 0 || zRight < 0 {
		chk.Panic("prismatic: trapezoidal side slopes must be >= 0, got %g, %g", zLeft, zRight)
	}
	return &trapezoidal{b: b, zLeft: zLeft, zRight: zRight}
}

func (o *trapezoidal) Kind() string { return "trapezoidal" }

func (o *trapezoidal) Area(y float64) float64 {
	if y <= 0 {
		return 0
	}
	zBar := (o.zLeft + o.zRight) / 2
	return (o.b + zBar*y) * y
}

func (o *trapezoidal) WettedPerimeter(y float64) float64 {
	if y <= 0 {
		return 0
	}
	return o.b + y*(math.Sqrt(1+o.zLeft*o.zLeft)+math.Sqrt(1+o.zRight*o.zRight))
}

func (o *trapezoidal) TopWidth(y float64) float64 {
	if y <= 0 {
		return 0
	}
	return o.b + (o.zLeft+o.zRight)*y
}
