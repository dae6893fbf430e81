// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surrogate

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/guptaaryanr/ThermoBench-Consist/mdl/baseline"
)

// Reference wraps the trusted baseline source as an adapter. Since the
// baseline is internally consistent, this adapter must pass every check; it
// serves as the positive control of the suite.
type Reference struct {
	src *baseline.Source
}

// add adapter to factory
func init() {
	allocators["reference"] = func() Model { return new(Reference) }
}

// Init initialises the adapter
func (o *Reference) Init(fluid string, src *baseline.Source, prms dbf.Params) error {
	if src == nil {
		return chk.Err("reference adapter requires a baseline source")
	}
	if src.Fluid() != fluid {
		return chk.Err("baseline source is for %q, not %q", src.Fluid(), fluid)
	}
	o.src = src
	return nil
}

// GetPrms gets (an example of) parameters
func (o Reference) GetPrms(example bool) dbf.Params {
	return nil // no parameters
}

// Name returns the adapter name
func (o Reference) Name() string {
	return "reference"
}

// Fluid returns the fluid name
func (o Reference) Fluid() string {
	return o.src.Fluid()
}

// Capabilities returns capability flags
func (o Reference) Capabilities() Capabilities {
	return Capabilities{Rho: true, H: true, PhaseSplit: true, SoundSpeed: true}
}

// Rho computes density [kg/m³]
func (o Reference) Rho(T, p float64) (float64, error) {
	return o.src.Rho(T, p)
}

// H computes specific enthalpy [J/kg]
func (o Reference) H(T, p float64) (float64, error) {
	return o.src.Enthalpy(T, p)
}

// PhaseSplitAtT returns the saturation split at T
func (o Reference) PhaseSplitAtT(T float64) (psat float64, liq, vap PhaseProps, err error) {
	s, err := o.src.SatProps(T)
	if err != nil {
		return 0, PhaseProps{}, PhaseProps{}, err
	}
	return s.Psat, PhaseProps{Rho: s.RhoL, H: s.HL}, PhaseProps{Rho: s.RhoV, H: s.HV}, nil
}

// SoundSpeed computes the speed of sound [m/s]
func (o Reference) SoundSpeed(T, p float64) (float64, error) {
	return o.src.SoundSpeed(T, p)
}
