// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prismatic

import "github.com/cpmech/gosl/chk"

// rectangular is a channel of fixed bottom width b.
type rectangular struct {
	b float64
}

// Rectangular builds a rectangular section of bottom width b (m).
func Rectangular(b float64) Section {
	if b <= 0 {
		chk.Panic("prismatic: rectangular bottom width must be positive, got %g", b)
	}
	return &rectangular{b: b}
}

func (o *rectangular) Kind() string { return "rectangular" }

// BottomWidth implements prismatic.RectangularWidth.
func (o *rectangular) BottomWidth() float64 { return o.b }

func (o *rectangular) Area(y float64) float64 {
	if y <= 0 {
		return 0
	}
	return o.b * y
}

func (o *rectangular) WettedPerimeter(y float64) float64 {
	if y <= 0 {
		return 0
	}
	return o.b + 2*y
}

func (o *rectangular) TopWidth(y float64) float64 {
	if y <= 0 {
		return 0
	}
	return o.b
}
