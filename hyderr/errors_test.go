// Copyright 2026 The Gochannel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hyderr

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_validationf01(tst *testing.T) {
	chk.PrintTitle("validationf01")
	err := Validationf("depth %g is negative", -1.5)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		tst.Fatalf("expected a *ValidationError, got %T", err)
	}
	if ve.Error() != "depth -1.5 is negative" {
		tst.Fatalf("unexpected message: %q", ve.Error())
	}
}

func Test_wrap01(tst *testing.T) {
	chk.PrintTitle("wrap01")
	if Wrap(nil) != nil {
		tst.Fatal("expected nil in, nil out")
	}
	wrapped := Wrap(errors.New("boom"))
	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		tst.Fatalf("expected a *ValidationError, got %T", wrapped)
	}
	if ve.Error() != "boom" {
		tst.Fatalf("unexpected message: %q", ve.Error())
	}
}

func Test_convergenceWarning01(tst *testing.T) {
	chk.PrintTitle("convergenceWarning01")
	w := &ConvergenceWarning{Msg: WarnNonConvergent, ResidualError: 0.0042}
	if w.Error() != "did not converge (residual=0.0042)" {
		tst.Fatalf("unexpected message: %q", w.Error())
	}
}

func Test_assertPositive01(tst *testing.T) {
	chk.PrintTitle("assertPositive01")
	defer func() {
		if recover() == nil {
			tst.Fatal("expected a panic for a non-positive value")
		}
	}()
	AssertPositive("width", -1.0)
}
