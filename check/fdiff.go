// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package check implements the physical consistency checks (C1-C4) and the
// finite-difference machinery they share. Checks are stateless functions
// from an adapter plus a grid of conditions to an immutable result record.
package check

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"

	"github.com/guptaaryanr/ThermoBench-Consist/mdl/baseline"
	"github.com/guptaaryanr/ThermoBench-Consist/mdl/surrogate"
)

// DrhoDpAtT computes (∂ρ/∂p)|T by a centered difference with step dp:
//   (ρ(p+dp/2) - ρ(p-dp/2)) / dp
// Two adapter evaluations per call; second-order accurate. The caller
// chooses dp relative to the local grid spacing.
func DrhoDpAtT(m surrogate.Model, T, p, dp float64) (float64, error) {
	if dp <= 0 {
		return 0, chk.Err("derivative step must be positive; dp=%g", dp)
	}
	rho1, err := m.Rho(T, p-0.5*dp)
	if err != nil {
		return 0, err
	}
	rho2, err := m.Rho(T, p+0.5*dp)
	if err != nil {
		return 0, err
	}
	return (rho2 - rho1) / dp, nil
}

// DpsatDT computes the baseline saturation-pressure slope dP_sat/dT at T by
// a symmetric difference with step dT. Used as ground truth by C3.
func DpsatDT(src *baseline.Source, T, dT float64) (float64, error) {
	if dT <= 0 {
		return 0, chk.Err("derivative step must be positive; dT=%g", dT)
	}
	pp, err := src.Psat(T + 0.5*dT)
	if err != nil {
		return 0, err
	}
	pm, err := src.Psat(T - 0.5*dT)
	if err != nil {
		return 0, err
	}
	return (pp - pm) / dT, nil
}

// medianFinite returns the median of the finite entries of vals, or +Inf
// when no finite entry exists
func medianFinite(vals []float64) float64 {
	fin := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			fin = append(fin, v)
		}
	}
	if len(fin) == 0 {
		return math.Inf(1)
	}
	sort.Float64s(fin)
	n := len(fin)
	if n%2 == 1 {
		return fin[n/2]
	}
	return 0.5 * (fin[n/2-1] + fin[n/2])
}
