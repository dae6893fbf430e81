// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package surrogate implements adapters exposing thermodynamic property
// surrogates under a common interface. All quantities are SI: K, Pa, kg/m³,
// J/kg, m/s.
package surrogate

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/guptaaryanr/ThermoBench-Consist/mdl/baseline"
)

// Capabilities flags which properties an adapter can evaluate. Checks must
// consult these flags before calling the corresponding method; calling an
// unsupported method returns an error.
type Capabilities struct {
	Rho        bool // density ρ(T,p) is implemented (required)
	H          bool // enthalpy h(T,p) is implemented
	PhaseSplit bool // liquid/vapour split at T is implemented
	SoundSpeed bool // speed of sound w(T,p) is implemented
}

// PhaseProps holds the properties of one phase at saturation
type PhaseProps struct {
	Rho float64 // density [kg/m³]
	H   float64 // specific enthalpy [J/kg]
}

// Model defines the surrogate adapter interface
type Model interface {
	Init(fluid string, src *baseline.Source, prms dbf.Params) error         // initialises adapter
	GetPrms(example bool) dbf.Params                                        // gets (an example of) parameters
	Name() string                                                           // adapter name
	Fluid() string                                                          // fluid name
	Capabilities() Capabilities                                             // capability flags
	Rho(T, p float64) (float64, error)                                      // density [kg/m³]
	H(T, p float64) (float64, error)                                        // specific enthalpy [J/kg]
	PhaseSplitAtT(T float64) (psat float64, liq, vap PhaseProps, err error) // saturation split at T
	SoundSpeed(T, p float64) (float64, error)                               // speed of sound [m/s]
}

// New returns a new adapter, already initialised for the given fluid
func New(name, fluid string, src *baseline.Source, prms dbf.Params) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("adapter %q is not available in 'surrogate' database", name)
	}
	m := allocator()
	if err := m.Init(fluid, src, prms); err != nil {
		return nil, err
	}
	return m, nil
}

// allocators holds all available adapters
var allocators = map[string]func() Model{}
