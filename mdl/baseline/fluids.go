// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package baseline implements the trusted property source used as ground
// truth by the consistency checks. Pure fluids only (CO2 and N2).
package baseline

import (
	"github.com/cpmech/gosl/chk"
)

// constants
const (
	Rgas = 8.314462618 // universal gas constant [J/(mol・K)]
	Tref = 298.15      // reference temperature for ideal-gas enthalpy [K]
)

// FluidData holds constants of a pure fluid
type FluidData struct {
	Name  string     // canonical name; e.g. "CO2"
	M     float64    // molar mass [kg/mol]
	Tc    float64    // critical temperature [K]
	Pc    float64    // critical pressure [Pa]
	Tt    float64    // triple-point temperature [K]
	Omega float64    // acentric factor [-]
	Cp0   [4]float64 // ideal-gas cp polynomial: cp0 = c0 + c1・T + c2・T² + c3・T³ [J/(mol・K)]
}

// fluids holds all available fluids
var fluids = map[string]*FluidData{
	"CO2": {
		Name:  "CO2",
		M:     44.0098e-3,
		Tc:    304.1282,
		Pc:    7.3773e6,
		Tt:    216.592,
		Omega: 0.22394,
		Cp0:   [4]float64{19.80, 7.344e-2, -5.602e-5, 1.715e-8},
	},
	"N2": {
		Name:  "N2",
		M:     28.0134e-3,
		Tc:    126.192,
		Pc:    3.3958e6,
		Tt:    63.151,
		Omega: 0.0372,
		Cp0:   [4]float64{31.15, -1.357e-2, 2.680e-5, -1.168e-8},
	},
}

// GetFluid returns constants of a named fluid
func GetFluid(name string) (*FluidData, error) {
	fl, ok := fluids[name]
	if !ok {
		return nil, chk.Err("fluid %q is not available in 'baseline' database", name)
	}
	return fl, nil
}

// cp0 computes the ideal-gas isobaric heat capacity [J/(mol・K)]
func (o *FluidData) cp0(T float64) float64 {
	return o.Cp0[0] + T*(o.Cp0[1]+T*(o.Cp0[2]+T*o.Cp0[3]))
}

// h0 computes the ideal-gas enthalpy relative to Tref [J/mol]
func (o *FluidData) h0(T float64) float64 {
	f := func(t float64) float64 {
		return t * (o.Cp0[0] + t*(o.Cp0[1]/2.0+t*(o.Cp0[2]/3.0+t*o.Cp0[3]/4.0)))
	}
	return f(T) - f(Tref)
}
