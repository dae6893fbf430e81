// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baseline

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_fluids01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fluids01. fluid database")

	co2, err := GetFluid("CO2")
	if err != nil {
		tst.Errorf("cannot get CO2: %v\n", err)
		return
	}
	chk.Float64(tst, "M", 1e-15, co2.M, 44.0098e-3)
	chk.Float64(tst, "Tc", 1e-15, co2.Tc, 304.1282)

	n2, err := GetFluid("N2")
	if err != nil {
		tst.Errorf("cannot get N2: %v\n", err)
		return
	}
	if n2.Tt >= n2.Tc {
		tst.Errorf("triple point must be below critical point\n")
	}

	_, err = GetFluid("H2O")
	if err == nil {
		tst.Errorf("unknown fluid must fail\n")
	}
}

func Test_eos01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eos01. low-pressure gas approaches ideal gas")

	src, err := NewSource("CO2", nil)
	if err != nil {
		tst.Errorf("cannot allocate source: %v\n", err)
		return
	}

	// at 1 bar the compressibility factor is close to one
	T, p := 300.0, 1.0e5
	ρ, err := src.Rho(T, p)
	if err != nil {
		tst.Errorf("Rho failed: %v\n", err)
		return
	}
	ρideal := p * src.fl.M / (Rgas * T)
	io.Pforan("ρ = %v  (ideal: %v)\n", ρ, ρideal)
	if math.Abs(ρ-ρideal)/ρideal > 0.02 {
		tst.Errorf("gas density too far from ideal limit: %v vs %v\n", ρ, ρideal)
	}
	if ρ <= ρideal {
		tst.Errorf("real gas must be denser than ideal at these conditions\n")
	}

	// speed of sound close to the ideal-gas value
	w, err := src.SoundSpeed(T, p)
	if err != nil {
		tst.Errorf("SoundSpeed failed: %v\n", err)
		return
	}
	cp0 := src.fl.cp0(T)
	γ := cp0 / (cp0 - Rgas)
	wideal := math.Sqrt(γ * Rgas * T / src.fl.M)
	io.Pforan("w = %v  (ideal: %v)\n", w, wideal)
	if math.Abs(w-wideal)/wideal > 0.02 {
		tst.Errorf("sound speed too far from ideal limit: %v vs %v\n", w, wideal)
	}

	// invalid states
	if _, err := src.Rho(-1, p); err == nil {
		tst.Errorf("negative temperature must fail\n")
	}
	if _, err := src.Rho(T, 0); err == nil {
		tst.Errorf("zero pressure must fail\n")
	}
	if _, err := NewSource("H2O", nil); err == nil {
		tst.Errorf("unknown fluid must fail\n")
	}
}

func Test_eos02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eos02. saturation line of CO2")

	src, err := NewSource("CO2", nil)
	if err != nil {
		tst.Errorf("cannot allocate source: %v\n", err)
		return
	}

	// psat grows with T and stays below Pc
	Tlist := []float64{230.0, 240.0, 260.0, 280.0, 300.0}
	pprev := 0.0
	for _, T := range Tlist {
		s, err := src.SatProps(T)
		if err != nil {
			tst.Errorf("SatProps(%g) failed: %v\n", T, err)
			return
		}
		io.Pf("T=%6.2f  psat=%12.6e  ρl=%10.4f  ρv=%10.4f  Δh=%12.6e\n", T, s.Psat, s.RhoL, s.RhoV, s.HV-s.HL)
		if s.Psat <= pprev {
			tst.Errorf("psat must increase with T\n")
			return
		}
		if s.Psat >= src.fl.Pc {
			tst.Errorf("psat must stay below Pc\n")
			return
		}
		if s.RhoL <= s.RhoV {
			tst.Errorf("liquid must be denser than vapour\n")
			return
		}
		if s.HV <= s.HL {
			tst.Errorf("latent heat must be positive\n")
			return
		}
		pprev = s.Psat
	}

	// outside the saturation range
	if _, err := src.Psat(200.0); err == nil {
		tst.Errorf("psat below the triple point must fail\n")
	}
	if _, err := src.Psat(320.0); err == nil {
		tst.Errorf("psat above the critical point must fail\n")
	}
}

func Test_eos03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eos03. Clapeyron consistency of the saturation line")

	src, err := NewSource("CO2", nil)
	if err != nil {
		tst.Errorf("cannot allocate source: %v\n", err)
		return
	}

	// dpsat/dT must equal Δh/(T・Δv) since all properties derive from the
	// same EOS; only the finite-difference error remains
	for _, T := range []float64{230.0, 260.0, 290.0} {
		s, err := src.SatProps(T)
		if err != nil {
			tst.Errorf("SatProps(%g) failed: %v\n", T, err)
			return
		}
		dT := 1e-2
		pp, _ := src.Psat(T + 0.5*dT)
		pm, _ := src.Psat(T - 0.5*dT)
		lhs := (pp - pm) / dT
		Δv := 1.0/s.RhoV - 1.0/s.RhoL
		rhs := (s.HV - s.HL) / (T * Δv)
		io.Pf("T=%6.2f  lhs=%12.6e  rhs=%12.6e  rel=%12.6e\n", T, lhs, rhs, math.Abs(lhs-rhs)/lhs)
		if math.Abs(lhs-rhs)/math.Abs(lhs) > 1e-4 {
			tst.Errorf("Clapeyron relation violated at T=%g\n", T)
		}
	}
}

func Test_phase01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phase01. phase classification")

	src, err := NewSource("CO2", nil)
	if err != nil {
		tst.Errorf("cannot allocate source: %v\n", err)
		return
	}

	cases := []struct {
		T, p  float64
		phase string
	}{
		{310.0, 1.0e5, "supercritical"},
		{300.0, 1.0e5, "gas"},
		{280.0, 6.0e6, "liquid"},
	}
	for _, c := range cases {
		phase, err := src.Phase(c.T, c.p)
		if err != nil {
			tst.Errorf("Phase(%g,%g) failed: %v\n", c.T, c.p, err)
			return
		}
		io.Pf("T=%6.2f p=%12.6e => %s\n", c.T, c.p, phase)
		chk.String(tst, phase, c.phase)
	}

	// exactly on the saturation line
	psat, err := src.Psat(260.0)
	if err != nil {
		tst.Errorf("Psat failed: %v\n", err)
		return
	}
	phase, err := src.Phase(260.0, psat)
	if err != nil {
		tst.Errorf("Phase failed: %v\n", err)
		return
	}
	chk.String(tst, phase, "two_phase")

	// below the triple point
	if _, err := src.Phase(200.0, 1.0e5); err == nil {
		tst.Errorf("classification below the triple point must fail\n")
	}
}

func Test_cache01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cache01. memoized queries")

	memo := NewCache(2)
	src, err := NewSource("N2", memo)
	if err != nil {
		tst.Errorf("cannot allocate source: %v\n", err)
		return
	}

	// repeated query hits the memo and returns the identical value
	r1, err := src.Rho(100.0, 1.0e5)
	if err != nil {
		tst.Errorf("Rho failed: %v\n", err)
		return
	}
	r2, _ := src.Rho(100.0, 1.0e5)
	chk.Float64(tst, "ρ memo", 0, r1, r2)

	// overflowing the limit flushes but never changes results
	src.Rho(100.0, 2.0e5)
	src.Rho(100.0, 3.0e5)
	r3, _ := src.Rho(100.0, 1.0e5)
	chk.Float64(tst, "ρ after flush", 0, r1, r3)
	if len(memo.tp) > memo.Limit {
		tst.Errorf("cache exceeded its limit: %d > %d\n", len(memo.tp), memo.Limit)
	}
}
