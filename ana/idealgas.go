// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions used to verify the
// numerical machinery of the checks
package ana

import (
	"math"
)

// IdealGas holds the properties of an ideal gas with constant heat
// capacities. All derived quantities have closed forms:
//
//	ρ(T,p)      = p・M/(R・T)
//	(∂ρ/∂p)|T   = M/(R・T)
//	κ_T         = 1/p
//	w(T)        = √(γ・R・T/M)
//	h(T)        = cp・T/M
type IdealGas struct {
	M     float64 // molar mass [kg/mol]
	Gamma float64 // heat capacity ratio cp/cv [-]
}

// gas constant [J/(mol・K)]
const rgas = 8.314462618

// Init initialises data with dry-air-like defaults
func (o *IdealGas) Init() {
	o.M = 28.9647e-3
	o.Gamma = 1.4
}

// Rho computes density [kg/m³]
func (o IdealGas) Rho(T, p float64) float64 {
	return p * o.M / (rgas * T)
}

// DrhoDp computes the exact isothermal density derivative [(kg/m³)/Pa]
func (o IdealGas) DrhoDp(T float64) float64 {
	return o.M / (rgas * T)
}

// KappaT computes the exact isothermal compressibility [1/Pa]
func (o IdealGas) KappaT(p float64) float64 {
	return 1.0 / p
}

// SoundSpeed computes the exact speed of sound [m/s]
func (o IdealGas) SoundSpeed(T float64) float64 {
	return math.Sqrt(o.Gamma * rgas * T / o.M)
}

// H computes specific enthalpy [J/kg]
func (o IdealGas) H(T float64) float64 {
	cp := o.Gamma / (o.Gamma - 1.0) * rgas
	return cp * T / o.M
}
