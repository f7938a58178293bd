// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hyderr centralises the error/warning taxonomy used across the
// hydraulics engine (spec §7): validation errors abort an operation before
// any computation proceeds, everything else is a warning string attached to
// a result and never stops the computation.
package hyderr

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ValidationError reports a problem with input data discovered during
// construction or Validate, before any geometric or hydraulic computation
// has run. Validation errors are the only kind that aborts an operation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError with a formatted message, mirroring
// the teacher's chk.Err call shape.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: io.Sf(format, args...)}
}

// Wrap adapts a gosl chk-style error (or any error) into a ValidationError,
// preserving its message.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Msg: err.Error()}
}

// Canonical warning strings. Keeping the exact wording in one place avoids
// the "one-warning-per-condition" contract (spec §9) drifting between call
// sites that all mean the same condition.
const (
	WarnLowVelocity       = "low velocity"
	WarnErosionRisk       = "erosion risk"
	WarnNearCritical      = "near critical"
	WarnSignificantOB     = "Significant overbank flow"
	WarnHydraulicJump     = "hydraulic jump"
	WarnNonConvergent     = "did not converge"
	WarnZeroFlow          = "zero flow"
	WarnDegenerateSection = "cross-section has no conveyance over the requested depth range"
)

// ConvergenceWarning records a solver that hit its iteration budget without
// reaching tolerance (spec §7 kind 3). The best-so-far estimate is still
// returned by the caller; this value only annotates the residual.
type ConvergenceWarning struct {
	Msg           string
	ResidualError float64
}

func (w *ConvergenceWarning) Error() string {
	return io.Sf("%s (residual=%g)", w.Msg, w.ResidualError)
}

// AssertPositive panics only in a context the teacher would: a programmer
// error (negative array length, nil required pointer), never on
// caller-supplied hydraulic data. The engine's own code must never reach
// this for ordinary bad input -- those are reported as ValidationError.
func AssertPositive(name string, v float64) {
	if v <= 0 {
		chk.Panic("internal error: %s must be positive, got %g", name, v)
	}
}
