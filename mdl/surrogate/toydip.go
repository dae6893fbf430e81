// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surrogate

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/guptaaryanr/ThermoBench-Consist/mdl/baseline"
)

// ToyDip is a deliberately inconsistent surrogate used as the negative
// control of the suite:
//   - density ρ(p) = a0 + a1・(p-pref) - B・(p-p0)²/S has a region of
//     negative dρ/dp for p > p0 (dent centred at p0), violating C1/C2;
//   - the enthalpy jump across the liquid/vapour split is a spuriously
//     small constant, violating the Clapeyron relation (C3);
//   - the speed of sound, when enabled, is the baseline value scaled by
//     a constant bias factor, violating C4.
// Saturation pressure and densities come from the baseline for plausibility.
type ToyDip struct {

	// parameters
	a0     float64 // baseline density level [kg/m³]
	a1     float64 // small positive base slope [(kg/m³)/Pa]
	pref   float64 // reference pressure [Pa]
	p0     float64 // centre of the dent [Pa]
	bdent  float64 // strength of the non-monotonic term [-]
	sdent  float64 // scaling of the quadratic term [Pa²]
	hgap   float64 // fabricated latent heat [J/kg]
	wscale float64 // sound-speed bias factor; 0 disables the capability

	// collaborators
	fluid string
	src   *baseline.Source
}

// add adapter to factory
func init() {
	allocators["toydip"] = func() Model { return new(ToyDip) }
}

// Init initialises the adapter
func (o *ToyDip) Init(fluid string, src *baseline.Source, prms dbf.Params) error {
	if src == nil {
		return chk.Err("toydip adapter requires a baseline source for the saturation line")
	}
	o.fluid = fluid
	o.src = src
	if prms == nil {
		prms = o.GetPrms(true)
	}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "a0":
			o.a0 = p.V
		case "a1":
			o.a1 = p.V
		case "pref":
			o.pref = p.V
		case "p0":
			o.p0 = p.V
		case "bdent":
			o.bdent = p.V
		case "sdent":
			o.sdent = p.V
		case "hgap":
			o.hgap = p.V
		case "wscale":
			o.wscale = p.V
		default:
			return chk.Err("toydip: parameter named %q is incorrect", p.N)
		}
	}
	return nil
}

// GetPrms gets (an example of) parameters
func (o ToyDip) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "a0", V: 200.0},     // [kg/m³]
			&dbf.P{N: "a1", V: 8.0e-7},    // [(kg/m³)/Pa]
			&dbf.P{N: "pref", V: 1.0e5},   // [Pa]
			&dbf.P{N: "p0", V: 2.0e6},     // [Pa]
			&dbf.P{N: "bdent", V: 8.0},    // [-]
			&dbf.P{N: "sdent", V: 1.0e12}, // [Pa²]
			&dbf.P{N: "hgap", V: 100.0},   // [J/kg]
			&dbf.P{N: "wscale", V: 0.0},   // [-] disabled
		}
	}
	return dbf.Params{
		&dbf.P{N: "a0", V: o.a0},
		&dbf.P{N: "a1", V: o.a1},
		&dbf.P{N: "pref", V: o.pref},
		&dbf.P{N: "p0", V: o.p0},
		&dbf.P{N: "bdent", V: o.bdent},
		&dbf.P{N: "sdent", V: o.sdent},
		&dbf.P{N: "hgap", V: o.hgap},
		&dbf.P{N: "wscale", V: o.wscale},
	}
}

// Name returns the adapter name
func (o ToyDip) Name() string {
	return "toydip"
}

// Fluid returns the fluid name
func (o ToyDip) Fluid() string {
	return o.fluid
}

// Capabilities returns capability flags
func (o ToyDip) Capabilities() Capabilities {
	return Capabilities{Rho: true, H: true, PhaseSplit: true, SoundSpeed: o.wscale > 0}
}

// Rho computes the toy density [kg/m³]. The slope is
//   dρ/dp = a1 - 2・bdent・(p-p0)/sdent
// which becomes negative for p sufficiently above p0.
func (o ToyDip) Rho(T, p float64) (float64, error) {
	rho := o.a0 + o.a1*(p-o.pref) - o.bdent*(p-o.p0)*(p-o.p0)/o.sdent
	rho += 0.001 * (T - 273.15) // tiny T modulation keeps values plausible
	if rho < 1.0 {              // clip, avoiding abs() which wrecks slope signs
		rho = 1.0
	}
	return rho, nil
}

// H computes a weakly varying toy enthalpy [J/kg]
func (o ToyDip) H(T, p float64) (float64, error) {
	return 1.0e3*T + 5.0e-4*p, nil
}

// PhaseSplitAtT uses the baseline saturation line but injects an
// inconsistent enthalpy jump
func (o ToyDip) PhaseSplitAtT(T float64) (psat float64, liq, vap PhaseProps, err error) {
	s, err := o.src.SatProps(T)
	if err != nil {
		return 0, PhaseProps{}, PhaseProps{}, err
	}
	hl := 1.0e3 * T
	return s.Psat, PhaseProps{Rho: s.RhoL, H: hl}, PhaseProps{Rho: s.RhoV, H: hl + o.hgap}, nil
}

// SoundSpeed computes a biased speed of sound [m/s]
func (o ToyDip) SoundSpeed(T, p float64) (float64, error) {
	if o.wscale <= 0 {
		return math.NaN(), chk.Err("toydip: speed of sound is not enabled (wscale=%g)", o.wscale)
	}
	w, err := o.src.SoundSpeed(T, p)
	if err != nil {
		return 0, err
	}
	return o.wscale * w, nil
}
