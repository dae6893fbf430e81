// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/guptaaryanr/ThermoBench-Consist/mdl/baseline"
	"github.com/guptaaryanr/ThermoBench-Consist/mdl/surrogate"
)

// SoundSpeedResult holds the outcome of C4 at a fixed reference pressure
type SoundSpeedResult struct {
	Name      string    // check name
	Fluid     string    // fluid name
	TList     []float64 // temperatures [K]
	PRef      float64   // reference pressure [Pa]
	RelErrors []float64 // |w²_sur - w²_ref|/w²_ref per temperature; +Inf marks failed evaluation
	TolRel    float64   // relative tolerance on the median error
	Supported bool      // capability present and no evaluation failure
	Passed    bool      // median of finite errors < TolRel
	A2Ref     []float64 // baseline w² [m²/s²]
	A2Sur     []float64 // surrogate w² [m²/s²]; NaN where unavailable
}

// SpeedOfSound performs check C4: the surrogate's speed of sound against
// the baseline at a fixed reference pressure, compared through the squared
// speed. When the adapter lacks the capability the baseline series is still
// computed for diagnostics, but the check is unsupported. An adapter failure
// records an infinite error and latches Supported off for the run, while the
// remaining temperatures are still attempted. Baseline failures are fatal.
func SpeedOfSound(m surrogate.Model, src *baseline.Source, Tlist []float64, pref, tolRel float64) (*SoundSpeedResult, error) {
	if len(Tlist) < 1 {
		return nil, chk.Err("C4: temperature list must not be empty")
	}
	hascap := m.Capabilities().SoundSpeed
	supports := hascap

	o := &SoundSpeedResult{
		Name:      NameSpeedOfSound,
		Fluid:     m.Fluid(),
		TList:     append([]float64{}, Tlist...),
		PRef:      pref,
		RelErrors: []float64{},
		TolRel:    tolRel,
		A2Ref:     []float64{},
		A2Sur:     []float64{},
	}

	for _, T := range Tlist {

		wref, err := src.SoundSpeed(T, pref)
		if err != nil {
			return nil, err // baseline failure invalidates ground truth
		}
		a2ref := wref * wref
		o.A2Ref = append(o.A2Ref, a2ref)

		if !hascap {
			o.A2Sur = append(o.A2Sur, math.NaN())
			o.RelErrors = append(o.RelErrors, math.Inf(1))
			continue
		}
		wsur, err := m.SoundSpeed(T, pref)
		if err != nil {
			supports = false // degrade; keep attempting the remaining temperatures
			o.A2Sur = append(o.A2Sur, math.NaN())
			o.RelErrors = append(o.RelErrors, math.Inf(1))
			continue
		}
		a2sur := wsur * wsur
		o.A2Sur = append(o.A2Sur, a2sur)
		o.RelErrors = append(o.RelErrors, math.Abs(a2sur-a2ref)/math.Max(a2ref, 1e-30))
	}

	o.Supported = supports
	if supports {
		o.Passed = medianFinite(o.RelErrors) < tolRel
	}
	return o, nil
}
