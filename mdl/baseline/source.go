// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baseline

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SatState holds coexisting liquid and vapour properties at one temperature
type SatState struct {
	T    float64 // saturation temperature [K]
	Psat float64 // saturation pressure [Pa]
	RhoL float64 // liquid density [kg/m³]
	RhoV float64 // vapour density [kg/m³]
	HL   float64 // liquid enthalpy [J/kg]
	HV   float64 // vapour enthalpy [J/kg]
}

// query kinds for the memo cache
const (
	kindRho = iota
	kindH
	kindW
)

type tpKey struct {
	kind int
	T, p float64
}

// Cache memoizes property queries keyed by exact floating-point arguments.
// When the number of entries reaches Limit the cache is flushed; correctness
// never depends on a hit.
type Cache struct {
	Limit int // maximum number of entries before flush
	tp    map[tpKey]float64
	sat   map[float64]SatState
}

// NewCache returns a cache with the given eviction bound
func NewCache(limit int) *Cache {
	return &Cache{
		Limit: limit,
		tp:    make(map[tpKey]float64),
		sat:   make(map[float64]SatState),
	}
}

func (o *Cache) getTp(k tpKey) (float64, bool) {
	v, ok := o.tp[k]
	return v, ok
}

func (o *Cache) putTp(k tpKey, v float64) {
	if len(o.tp) >= o.Limit {
		o.tp = make(map[tpKey]float64)
	}
	o.tp[k] = v
}

func (o *Cache) getSat(T float64) (SatState, bool) {
	s, ok := o.sat[T]
	return s, ok
}

func (o *Cache) putSat(T float64, s SatState) {
	if len(o.sat) >= o.Limit {
		o.sat = make(map[float64]SatState)
	}
	o.sat[T] = s
}

// Source is the trusted baseline property source for one pure fluid.
// Errors returned here invalidate ground truth and must not be masked.
type Source struct {
	eos
	memo *Cache
}

// NewSource returns a baseline source for a named fluid. A nil memo selects
// a default cache; repeated identical queries are common across checks.
func NewSource(fluid string, memo *Cache) (*Source, error) {
	fl, err := GetFluid(fluid)
	if err != nil {
		return nil, err
	}
	if memo == nil {
		memo = NewCache(4096)
	}
	o := &Source{memo: memo}
	o.initEOS(fl)
	return o, nil
}

// Fluid returns the fluid name
func (o *Source) Fluid() string {
	return o.fl.Name
}

// Tcrit returns the critical temperature [K]
func (o *Source) Tcrit() float64 {
	return o.fl.Tc
}

// Ttriple returns the triple-point temperature [K]
func (o *Source) Ttriple() float64 {
	return o.fl.Tt
}

// checkTp validates a temperature/pressure pair
func (o *Source) checkTp(T, p float64) error {
	if T <= 0 || p <= 0 || math.IsNaN(T) || math.IsNaN(p) {
		return chk.Err("invalid state for %s: T=%g K, p=%g Pa", o.fl.Name, T, p)
	}
	return nil
}

// Rho computes density [kg/m³] at (T,p), stable phase
func (o *Source) Rho(T, p float64) (float64, error) {
	if err := o.checkTp(T, p); err != nil {
		return 0, err
	}
	key := tpKey{kindRho, T, p}
	if v, ok := o.memo.getTp(key); ok {
		return v, nil
	}
	Z, err := o.zStable(T, p)
	if err != nil {
		return 0, err
	}
	v := o.rhoFromZ(T, p, Z)
	o.memo.putTp(key, v)
	return v, nil
}

// Enthalpy computes specific enthalpy [J/kg] at (T,p), stable phase
func (o *Source) Enthalpy(T, p float64) (float64, error) {
	if err := o.checkTp(T, p); err != nil {
		return 0, err
	}
	key := tpKey{kindH, T, p}
	if v, ok := o.memo.getTp(key); ok {
		return v, nil
	}
	Z, err := o.zStable(T, p)
	if err != nil {
		return 0, err
	}
	v := o.enthalpyFromZ(T, p, Z)
	o.memo.putTp(key, v)
	return v, nil
}

// SoundSpeed computes the speed of sound [m/s] at (T,p), stable phase
func (o *Source) SoundSpeed(T, p float64) (float64, error) {
	if err := o.checkTp(T, p); err != nil {
		return 0, err
	}
	key := tpKey{kindW, T, p}
	if v, ok := o.memo.getTp(key); ok {
		return v, nil
	}
	Z, err := o.zStable(T, p)
	if err != nil {
		return 0, err
	}
	v, err := o.soundSpeedFromZ(T, p, Z)
	if err != nil {
		return 0, err
	}
	o.memo.putTp(key, v)
	return v, nil
}

// Psat computes the saturation pressure [Pa] at T
func (o *Source) Psat(T float64) (float64, error) {
	s, err := o.SatProps(T)
	if err != nil {
		return 0, err
	}
	return s.Psat, nil
}

// SatProps computes the full liquid/vapour split at T
func (o *Source) SatProps(T float64) (SatState, error) {
	if s, ok := o.memo.getSat(T); ok {
		return s, nil
	}
	p, err := o.psat(T)
	if err != nil {
		return SatState{}, err
	}
	zl, zv, n, err := o.zRoots(T, p)
	if err != nil {
		return SatState{}, err
	}
	if n < 2 {
		return SatState{}, chk.Err("no liquid/vapour split for %s at T=%g K", o.fl.Name, T)
	}
	s := SatState{
		T:    T,
		Psat: p,
		RhoL: o.rhoFromZ(T, p, zl),
		RhoV: o.rhoFromZ(T, p, zv),
		HL:   o.enthalpyFromZ(T, p, zl),
		HV:   o.enthalpyFromZ(T, p, zv),
	}
	o.memo.putSat(T, s)
	return s, nil
}

// Phase classifies the state at (T,p): "supercritical", "liquid", "gas" or
// "two_phase" (within a narrow band around the saturation pressure)
func (o *Source) Phase(T, p float64) (string, error) {
	if err := o.checkTp(T, p); err != nil {
		return "", err
	}
	if T >= o.fl.Tc {
		return "supercritical", nil
	}
	if T <= o.fl.Tt {
		return "", chk.Err("T=%g K is below the triple point of %s", T, o.fl.Name)
	}
	psat, err := o.Psat(T)
	if err != nil {
		return "", err
	}
	if math.Abs(p-psat) <= 1e-8*psat {
		return "two_phase", nil
	}
	if p > psat {
		return "liquid", nil
	}
	return "gas", nil
}
