// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/guptaaryanr/ThermoBench-Consist/mdl/baseline"
	"github.com/guptaaryanr/ThermoBench-Consist/mdl/surrogate"
)

// flakyModel wraps another adapter and fails selected evaluations, to
// exercise graceful degradation
type flakyModel struct {
	surrogate.Model
	pmax   float64 // Rho fails above this pressure; 0 disables
	TfailW float64 // SoundSpeed fails at this temperature; 0 disables
}

func (o *flakyModel) Rho(T, p float64) (float64, error) {
	if o.pmax > 0 && p > o.pmax {
		return 0, chk.Err("flaky: no density above %g Pa", o.pmax)
	}
	return o.Model.Rho(T, p)
}

func (o *flakyModel) SoundSpeed(T, p float64) (float64, error) {
	if o.TfailW > 0 && T == o.TfailW {
		return 0, chk.Err("flaky: no sound speed at %g K", o.TfailW)
	}
	return o.Model.SoundSpeed(T, p)
}

func allocCO2(tst *testing.T, adapter string) (*baseline.Source, surrogate.Model) {
	src, err := baseline.NewSource("CO2", nil)
	if err != nil {
		tst.Fatalf("cannot allocate source: %v\n", err)
	}
	m, err := surrogate.New(adapter, "CO2", src, nil)
	if err != nil {
		tst.Fatalf("cannot allocate adapter: %v\n", err)
	}
	return src, m
}

func Test_mono01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mono01. reference adapter has monotonic isotherms")

	_, m := allocCO2(tst, "reference")

	// gas branch at 260 K and supercritical branch at 310 K
	for _, T := range []float64{260.0, 310.0} {
		pvals := utl.LinSpace(1.0e5, 2.0e6, 20)
		res, err := MonotonicRho(m, T, pvals, 1e-6)
		if err != nil {
			tst.Errorf("MonotonicRho failed: %v\n", err)
			return
		}
		io.Pf("T=%6.2f  fracPos=%g  min=%12.6e\n", T, res.FractionPositive, res.MinDerivative)
		if !res.Supported || !res.Passed {
			tst.Errorf("reference adapter must pass at T=%g\n", T)
		}
		chk.Float64(tst, "fraction positive", 1e-17, res.FractionPositive, 1.0)
		if res.MinDerivative <= 0 {
			tst.Errorf("minimum derivative must be positive\n")
		}
		if len(res.DrhoDp) != len(pvals)-1 {
			tst.Errorf("one derivative per midpoint expected\n")
		}
	}

	// single pressure gives no midpoints; never vacuously true
	res, err := MonotonicRho(m, 260.0, []float64{1.0e5}, 1e-6)
	if err != nil {
		tst.Errorf("MonotonicRho failed: %v\n", err)
		return
	}
	if res.Passed {
		tst.Errorf("verdict must not be vacuously true\n")
	}
	chk.Float64(tst, "empty fraction", 1e-17, res.FractionPositive, 0)
	if !math.IsNaN(res.MinDerivative) {
		tst.Errorf("minimum derivative must be NaN without midpoints\n")
	}

	// empty grid is an input error
	if _, err := MonotonicRho(m, 260.0, nil, 1e-6); err == nil {
		tst.Errorf("empty grid must fail\n")
	}

	// duplicated or decreasing pressures are input errors, not degradation
	if _, err := MonotonicRho(m, 260.0, []float64{1.0e5, 1.0e5, 2.0e5}, 1e-6); err == nil {
		tst.Errorf("duplicated pressures must fail\n")
	}
	if _, err := MonotonicRho(m, 260.0, []float64{2.0e5, 1.0e5}, 1e-6); err == nil {
		tst.Errorf("decreasing pressures must fail\n")
	}
}

func Test_mono01b(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mono01b. cryogenic nitrogen isotherms")

	src, err := baseline.NewSource("N2", nil)
	if err != nil {
		tst.Fatalf("cannot allocate source: %v\n", err)
	}
	m, err := surrogate.New("reference", "N2", src, nil)
	if err != nil {
		tst.Fatalf("cannot allocate adapter: %v\n", err)
	}

	for _, T := range []float64{90.0, 130.0} {
		pvals := utl.LinSpace(1.0e5, 2.0e6, 15)
		r1, err := MonotonicRho(m, T, pvals, 1e-6)
		if err != nil {
			tst.Errorf("MonotonicRho failed: %v\n", err)
			return
		}
		r2, err := Compressibility(m, T, pvals, 1e-6)
		if err != nil {
			tst.Errorf("Compressibility failed: %v\n", err)
			return
		}
		if !r1.Passed || !r2.Passed {
			tst.Errorf("reference adapter must pass for N2 at T=%g\n", T)
		}
		if r1.FractionPositive < 0.9 {
			tst.Errorf("fraction positive too small: %g\n", r1.FractionPositive)
		}
	}
}

func Test_mono02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mono02. toy surrogate fails across its dent")

	_, m := allocCO2(tst, "toydip")

	// grid crossing the dent centre at 2 MPa
	pvals := utl.LinSpace(1.0e5, 4.0e6, 21)
	res, err := MonotonicRho(m, 260.0, pvals, 1e-6)
	if err != nil {
		tst.Errorf("MonotonicRho failed: %v\n", err)
		return
	}
	io.Pforan("fracPos=%g  min=%12.6e\n", res.FractionPositive, res.MinDerivative)
	if !res.Supported {
		tst.Errorf("toydip density is always available\n")
	}
	if res.Passed {
		tst.Errorf("the dent must fail the check\n")
	}
	if res.FractionPositive <= 0 || res.FractionPositive >= 1 {
		tst.Errorf("fraction positive must be strictly between 0 and 1; got %g\n", res.FractionPositive)
	}
	if res.MinDerivative >= 0 {
		tst.Errorf("minimum derivative must be negative\n")
	}

	// grid entirely below the dent passes
	pvals = utl.LinSpace(1.0e5, 1.5e6, 15)
	res, err = MonotonicRho(m, 260.0, pvals, 1e-6)
	if err != nil {
		tst.Errorf("MonotonicRho failed: %v\n", err)
		return
	}
	if !res.Passed {
		tst.Errorf("grid below the dent must pass\n")
	}
}

func Test_mono03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mono03. failed evaluations degrade, not abort")

	_, ref := allocCO2(tst, "reference")
	m := &flakyModel{Model: ref, pmax: 1.0e6}

	pvals := utl.LinSpace(1.0e5, 2.0e6, 10)
	res, err := MonotonicRho(m, 260.0, pvals, 1e-6)
	if err != nil {
		tst.Errorf("degradation must not abort the check: %v\n", err)
		return
	}
	if res.Supported {
		tst.Errorf("failed evaluations must clear the supported flag\n")
	}
	if res.Passed {
		tst.Errorf("a degraded check must not pass\n")
	}
	nans := 0
	for _, d := range res.DrhoDp {
		if math.IsNaN(d) {
			nans++
		}
	}
	io.Pf("markers: %d of %d\n", nans, len(res.DrhoDp))
	if nans == 0 || nans == len(res.DrhoDp) {
		tst.Errorf("both evaluated and failed midpoints expected\n")
	}
}

func Test_compress01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compress01. compressibility of reference and toy adapters")

	_, ref := allocCO2(tst, "reference")
	pvals := utl.LinSpace(1.0e5, 2.0e6, 20)
	res, err := Compressibility(ref, 260.0, pvals, 1e-6)
	if err != nil {
		tst.Errorf("Compressibility failed: %v\n", err)
		return
	}
	if !res.Supported || !res.Passed {
		tst.Errorf("reference adapter must pass\n")
	}
	for _, κ := range res.KappaT {
		if !(κ > 0) {
			tst.Errorf("κ must be positive; got %g\n", κ)
			return
		}
	}

	// a gas far from saturation is roughly ideal: κ ≈ 1/p
	pmid := 0.5 * (pvals[0] + pvals[1])
	chk.Float64(tst, "κ ideal limit", 0.1/pmid, res.KappaT[0], 1.0/pmid)

	// the dent slope is ~-3e-5 at ρ~170, so κ ~ -2e-7 sits inside a 1e-6
	// absolute slack; only a tight tolerance exposes it
	_, toy := allocCO2(tst, "toydip")
	grid := utl.LinSpace(1.0e5, 4.0e6, 21)
	res, err = Compressibility(toy, 260.0, grid, 1e-10)
	if err != nil {
		tst.Errorf("Compressibility failed: %v\n", err)
		return
	}
	io.Pforan("minimum κ = %12.6e\n", minOf(res.KappaT))
	if res.Passed {
		tst.Errorf("the dent must fail the compressibility check\n")
	}
	res, err = Compressibility(toy, 260.0, grid, 1e-6)
	if err != nil {
		tst.Errorf("Compressibility failed: %v\n", err)
		return
	}
	if !res.Passed {
		tst.Errorf("the dent κ is inside a 1e-6 slack\n")
	}

	// duplicated or decreasing pressures are input errors
	if _, err := Compressibility(ref, 260.0, []float64{1.0e5, 1.0e5, 2.0e5}, 1e-6); err == nil {
		tst.Errorf("duplicated pressures must fail\n")
	}
	if _, err := Compressibility(ref, 260.0, []float64{2.0e5, 1.0e5}, 1e-6); err == nil {
		tst.Errorf("decreasing pressures must fail\n")
	}
}

// minOf returns the smallest finite entry, NaN when none
func minOf(vals []float64) float64 {
	min := math.NaN()
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min
}

func Test_clap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("clap01. Clapeyron check on reference and toy adapters")

	src, ref := allocCO2(tst, "reference")
	Tlist := []float64{230.0, 240.0, 260.0, 280.0}

	res, err := Clapeyron(ref, src, Tlist, 0.1)
	if err != nil {
		tst.Errorf("Clapeyron failed: %v\n", err)
		return
	}
	if !res.Supported || !res.Passed {
		tst.Errorf("reference adapter must pass the Clapeyron check\n")
	}
	med := medianFinite(res.RelErrors)
	io.Pforan("median rel error (reference) = %v\n", med)
	if med > 1e-3 {
		tst.Errorf("reference median error too large: %g\n", med)
	}

	_, toy := allocCO2(tst, "toydip")
	res, err = Clapeyron(toy, src, Tlist, 0.1)
	if err != nil {
		tst.Errorf("Clapeyron failed: %v\n", err)
		return
	}
	if !res.Supported {
		tst.Errorf("toydip exposes the phase split\n")
	}
	if res.Passed {
		tst.Errorf("the fabricated latent heat must fail the check\n")
	}
	io.Pforan("median rel error (toydip)    = %v\n", medianFinite(res.RelErrors))
}

func Test_clap02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("clap02. temperature filtering and missing capabilities")

	src, ref := allocCO2(tst, "reference")

	// out-of-range temperatures are dropped silently
	res, err := Clapeyron(ref, src, []float64{100.0, 260.0, 400.0}, 0.1)
	if err != nil {
		tst.Errorf("Clapeyron failed: %v\n", err)
		return
	}
	chk.Int(tst, "kept temperatures", len(res.TList), 1)
	if !res.Passed {
		tst.Errorf("single in-range temperature must still pass\n")
	}

	// nothing left: unsupported, excluded from scoring
	res, err = Clapeyron(ref, src, []float64{100.0, 400.0}, 0.1)
	if err != nil {
		tst.Errorf("Clapeyron failed: %v\n", err)
		return
	}
	if res.Supported || res.Passed {
		tst.Errorf("empty filtered list must be unsupported\n")
	}

	// adapter without the phase-split capability
	m := newGasModel()
	res, err = Clapeyron(m, src, []float64{260.0}, 0.1)
	if err != nil {
		tst.Errorf("Clapeyron failed: %v\n", err)
		return
	}
	if res.Supported {
		tst.Errorf("missing capability must be unsupported\n")
	}

	// empty input list is an error
	if _, err := Clapeyron(ref, src, nil, 0.1); err == nil {
		tst.Errorf("empty temperature list must fail\n")
	}
}

func Test_sound01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sound01. speed-of-sound check")

	src, ref := allocCO2(tst, "reference")
	Tlist := []float64{230.0, 260.0, 290.0}

	// reference adapter: exact agreement
	res, err := SpeedOfSound(ref, src, Tlist, 1.0e5, 0.2)
	if err != nil {
		tst.Errorf("SpeedOfSound failed: %v\n", err)
		return
	}
	if !res.Supported || !res.Passed {
		tst.Errorf("reference adapter must pass\n")
	}
	for _, rel := range res.RelErrors {
		if rel > 1e-12 {
			tst.Errorf("reference error must vanish; got %g\n", rel)
			return
		}
	}

	// toydip without the capability: unsupported, diagnostics still present
	_, toy := allocCO2(tst, "toydip")
	res, err = SpeedOfSound(toy, src, Tlist, 1.0e5, 0.2)
	if err != nil {
		tst.Errorf("SpeedOfSound failed: %v\n", err)
		return
	}
	if res.Supported || res.Passed {
		tst.Errorf("missing capability must be unsupported\n")
	}
	chk.Int(tst, "baseline diagnostics", len(res.A2Ref), len(Tlist))
	for _, a2 := range res.A2Sur {
		if !math.IsNaN(a2) {
			tst.Errorf("surrogate series must be NaN markers\n")
			return
		}
	}
}

func Test_sound02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sound02. bias factor against the relative tolerance")

	src, _ := allocCO2(tst, "reference")

	// w² scales with the square of the bias: 0.95² is inside a 20%
	// tolerance, 0.6² is far outside
	alloc := func(scale float64) surrogate.Model {
		prms := dbf.Params{
			&dbf.P{N: "a0", V: 200.0},
			&dbf.P{N: "a1", V: 8.0e-7},
			&dbf.P{N: "pref", V: 1.0e5},
			&dbf.P{N: "p0", V: 2.0e6},
			&dbf.P{N: "bdent", V: 8.0},
			&dbf.P{N: "sdent", V: 1.0e12},
			&dbf.P{N: "hgap", V: 100.0},
			&dbf.P{N: "wscale", V: scale},
		}
		m, err := surrogate.New("toydip", "CO2", src, prms)
		if err != nil {
			tst.Fatalf("cannot allocate adapter: %v\n", err)
		}
		return m
	}

	Tlist := []float64{230.0, 260.0, 290.0}
	res, err := SpeedOfSound(alloc(0.95), src, Tlist, 1.0e5, 0.2)
	if err != nil {
		tst.Errorf("SpeedOfSound failed: %v\n", err)
		return
	}
	if !res.Supported || !res.Passed {
		tst.Errorf("a 5%% bias must stay inside a 20%% tolerance on w²\n")
	}

	res, err = SpeedOfSound(alloc(0.6), src, Tlist, 1.0e5, 0.2)
	if err != nil {
		tst.Errorf("SpeedOfSound failed: %v\n", err)
		return
	}
	if !res.Supported {
		tst.Errorf("the biased adapter still evaluates everywhere\n")
	}
	if res.Passed {
		tst.Errorf("a 64%% error on w² must fail\n")
	}
}

func Test_sound03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sound03. one failure latches the flag, evaluation continues")

	src, ref := allocCO2(tst, "reference")
	m := &flakyModel{Model: ref, TfailW: 260.0}

	res, err := SpeedOfSound(m, src, []float64{230.0, 260.0, 290.0}, 1.0e5, 0.2)
	if err != nil {
		tst.Errorf("degradation must not abort the check: %v\n", err)
		return
	}
	if res.Supported || res.Passed {
		tst.Errorf("the failed evaluation must clear the supported flag\n")
	}
	if math.IsNaN(res.A2Sur[0]) || !math.IsNaN(res.A2Sur[1]) || math.IsNaN(res.A2Sur[2]) {
		tst.Errorf("remaining temperatures must still be attempted\n")
	}
	if !math.IsInf(res.RelErrors[1], 1) {
		tst.Errorf("failed evaluation must record an infinite error\n")
	}
}
