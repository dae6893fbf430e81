// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"

	"github.com/guptaaryanr/ThermoBench-Consist/mdl/baseline"
)

// Condition is one temperature/pressure sample
type Condition struct {
	T float64 // temperature [K]
	P float64 // pressure [Pa]
}

// parseRange parses a range like "220:300:10" into [220, 230, ..., 300].
// The stop value is appended when the step does not land on it exactly.
func parseRange(expr string) ([]float64, error) {
	parts := strings.Split(expr, ":")
	if len(parts) != 3 {
		return nil, chk.Err("range %q must have the form start:stop:step", expr)
	}
	start, stop, step := io.Atof(parts[0]), io.Atof(parts[1]), io.Atof(parts[2])
	if step <= 0 || stop < start {
		return nil, chk.Err("range %q must have positive step and stop ≥ start", expr)
	}
	n := int(math.Floor((stop-start)/step)) + 1
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = start + float64(i)*step
	}
	if math.Abs(vals[n-1]-stop) > 1e-12 {
		vals = append(vals, stop)
	}
	return vals, nil
}

// ParseGridString parses a grid string like "T=220:300:10,p=1e5:5e6:5e5"
// into temperature [K] and pressure [Pa] values
func ParseGridString(grid string) (Tvals, Pvals []float64, err error) {
	for _, kv := range strings.Split(grid, ",") {
		eq := strings.SplitN(kv, "=", 2)
		if len(eq) != 2 {
			return nil, nil, chk.Err("grid entry %q must have the form key=range", kv)
		}
		key, expr := strings.TrimSpace(eq[0]), strings.TrimSpace(eq[1])
		switch key {
		case "T":
			Tvals, err = parseRange(expr)
		case "p":
			Pvals, err = parseRange(expr)
		default:
			return nil, nil, chk.Err("unknown grid key %q", key)
		}
		if err != nil {
			return nil, nil, err
		}
	}
	if len(Tvals) == 0 || len(Pvals) == 0 {
		return nil, nil, chk.Err("grid %q must define both T and p ranges", grid)
	}
	return
}

// ApplyCriticalGuard removes temperatures within ±band of the fluid's
// critical temperature, where derivative estimates are unreliable
func ApplyCriticalGuard(src *baseline.Source, Tvals []float64, band float64) []float64 {
	out := make([]float64, 0, len(Tvals))
	for _, T := range Tvals {
		if math.Abs(T-src.Tcrit()) >= band {
			out = append(out, T)
		}
	}
	return out
}

// RandomSubgrid samples a small random subset of the grid, keeping order.
// Up to nT temperatures and nP pressures are kept.
func RandomSubgrid(Tvals, Pvals []float64, nT, nP, seed int) (Tsub, Psub []float64) {
	rnd.Init(seed)
	pick := func(vals []float64, n int) []float64 {
		if n >= len(vals) {
			return vals
		}
		idx := rnd.IntGetUniqueN(0, len(vals), n)
		sort.Ints(idx)
		out := make([]float64, n)
		for i, j := range idx {
			out[i] = vals[j]
		}
		return out
	}
	return pick(Tvals, nT), pick(Pvals, nP)
}

// SinglePhasePoints returns the (T,p) pairs of the grid that the baseline
// classifies as single phase. Baseline classification errors are fatal.
// A maxPoints of zero means no limit.
func SinglePhasePoints(src *baseline.Source, Tvals, Pvals []float64, maxPoints int) ([]Condition, error) {
	pts := []Condition{}
	for _, T := range Tvals {
		for _, p := range Pvals {
			phase, err := src.Phase(T, p)
			if err != nil {
				return nil, err
			}
			if phase == "two_phase" {
				continue
			}
			pts = append(pts, Condition{T: T, P: p})
			if maxPoints > 0 && len(pts) >= maxPoints {
				return pts, nil
			}
		}
	}
	return pts, nil
}

// DefaultSatT returns small saturation-temperature lists for the example
// fluids
func DefaultSatT(fluid string) []float64 {
	switch strings.ToUpper(fluid) {
	case "CO2":
		return []float64{230.0, 240.0, 260.0, 280.0}
	case "N2":
		return []float64{85.0, 95.0, 105.0, 115.0}
	}
	return nil
}
