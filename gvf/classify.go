// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gvf

import "math"

// ClassifySlope determines the bed-slope class from S and the relation of
// normal depth to critical depth (spec §4.5).
func ClassifySlope(slope, yn, yc float64) SlopeClass {
	if slope < 0 {
		return Adverse
	}
	if slope == 0 || math.IsInf(yn, 1) {
		return Horizontal
	}
	if yc > 0 && math.Abs(yn/yc-1) < 0.02 {
		return CriticalSlope
	}
	if yn > yc {
		return Mild
	}
	return Steep
}

// ClassifyProfile derives the profile type from the slope class and the
// ordering of the current depth y against y_n and y_c (spec §4.5).
func ClassifyProfile(class SlopeClass, y, yn, yc float64) (ProfileType, Trend) {
	switch class {
	case Mild:
		switch {
		case y >= yn:
			return M1, Trend{Increasing: false, ApproachesYn: true}
		case y > yc:
			return M2, Trend{Increasing: true, ApproachesYc: true}
		default:
			return M3, Trend{Increasing: true, ApproachesYc: true}
		}
	case Steep:
		switch {
		case y > yc:
			return S1, Trend{Increasing: false, ApproachesYc: true}
		case y > yn:
			return S2, Trend{Increasing: false, ApproachesYn: true}
		default:
			return S3, Trend{Increasing: true, ApproachesYn: true}
		}
	case CriticalSlope:
		if y > yc {
			return C1, Trend{Increasing: false, ApproachesYc: true}
		}
		return C3, Trend{Increasing: true, ApproachesYc: true}
	case Horizontal:
		if y > yc {
			return H2, Trend{Increasing: false, ApproachesYc: true}
		}
		return H3, Trend{Increasing: true, ApproachesYc: true}
	case Adverse:
		if y > yc {
			return A2, Trend{Increasing: false, ApproachesYc: true}
		}
		return A3, Trend{Increasing: true, ApproachesYc: true}
	default:
		return Unclassified, Trend{}
	}
}
