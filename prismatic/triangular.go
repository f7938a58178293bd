// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prismatic

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// triangular is the degenerate trapezoid with zero bottom width.
type triangular struct {
	zLeft, zRight float64
}

// Triangular builds a triangular (V-notch) section of side slopes zLeft,
// zRight (H:V, > 0 -- a triangular channel with a vertical side is not a
// valid shape).
func Triangular(zLeft, zRight float64) Section {
	if zLeft <= 0 || zRight <= 0 {
		chk.Panic("prismatic: triangular side slopes must be positive, got %g, %g", zLeft, zRight)
	}
	return &triangular{zLeft: zLeft, zRight: zRight}
}

func (o *triangular) Kind() string { return "triangular" }

func (o *triangular) Area(y float64) float64 {
	if y <= 0 {
		return 0
	}
	zBar := (o.zLeft + o.zRight) / 2
	return zBar * y * y
}

func (o *triangular) WettedPerimeter(y float64) float64 {
	if y <= 0 {
		return 0
	}
	return y * (math.Sqrt(1+o.zLeft*o.zLeft) + math.Sqrt(1+o.zRight*o.zRight))
}

func (o *triangular) TopWidth(y float64) float64 {
	if y <= 0 {
		return 0
	}
	return (o.zLeft + o.zRight) * y
}
