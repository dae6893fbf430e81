// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package baseline

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// eos implements the Peng-Robinson equation of state for one pure fluid:
//   p = R・T/(v-b) - a(T)/(v² + 2・b・v - b²)
// with
//   a(T) = 0.45724・R²・Tc²/Pc・α(T)    α = [1 + κ・(1-√(T/Tc))]²
//   b    = 0.07780・R・Tc/Pc            κ = 0.37464 + 1.54226・ω - 0.26992・ω²
// All state functions derived from this one expression, so density,
// enthalpy, saturation line and speed of sound are mutually consistent.
type eos struct {
	fl *FluidData // fluid constants
	ac float64    // a coefficient at critical point
	b  float64    // co-volume
	κ  float64    // alpha-function coefficient
}

// initEOS initialises coefficients
func (o *eos) initEOS(fl *FluidData) {
	o.fl = fl
	o.ac = 0.45724 * Rgas * Rgas * fl.Tc * fl.Tc / fl.Pc
	o.b = 0.07780 * Rgas * fl.Tc / fl.Pc
	o.κ = 0.37464 + 1.54226*fl.Omega - 0.26992*fl.Omega*fl.Omega
}

// alphaS returns s = √α = 1 + κ・(1-√(T/Tc))
func (o eos) alphaS(T float64) float64 {
	return 1.0 + o.κ*(1.0-math.Sqrt(T/o.fl.Tc))
}

// aT computes a(T) and its first and second temperature derivatives
func (o eos) aT(T float64) (a, da, dda float64) {
	s := o.alphaS(T)
	ds := -o.κ / (2.0 * math.Sqrt(o.fl.Tc*T))
	dds := o.κ / (4.0 * math.Sqrt(o.fl.Tc) * T * math.Sqrt(T))
	a = o.ac * s * s
	da = o.ac * 2.0 * s * ds
	dda = o.ac * (2.0*ds*ds + 2.0*s*dds)
	return
}

// dimless computes the dimensionless EOS coefficients
//   A = a・p/(R・T)²    B = b・p/(R・T)
func (o eos) dimless(T, p float64) (A, B float64) {
	a, _, _ := o.aT(T)
	A = a * p / (Rgas * Rgas * T * T)
	B = o.b * p / (Rgas * T)
	return
}

// solveCubic returns the real roots of z³ + c2・z² + c1・z + c0 = 0
func solveCubic(c2, c1, c0 float64) []float64 {
	q := (3.0*c1 - c2*c2) / 9.0
	r := (9.0*c2*c1 - 27.0*c0 - 2.0*c2*c2*c2) / 54.0
	disc := q*q*q + r*r
	if disc > 0 { // one real root
		sq := math.Sqrt(disc)
		return []float64{math.Cbrt(r+sq) + math.Cbrt(r-sq) - c2/3.0}
	}
	// three real roots (possibly repeated)
	m := math.Sqrt(-q)
	θ := math.Acos(math.Max(-1.0, math.Min(1.0, r/(m*m*m))))
	z := make([]float64, 3)
	for k := 0; k < 3; k++ {
		z[k] = 2.0*m*math.Cos((θ+2.0*math.Pi*float64(k))/3.0) - c2/3.0
	}
	return z
}

// zRoots computes the physically meaningful compressibility factors at (T,p).
// Returns the liquid-like (smallest) and the vapour-like (largest) roots; when
// the cubic admits a single root, zl == zv.
func (o eos) zRoots(T, p float64) (zl, zv float64, nreal int, err error) {
	A, B := o.dimless(T, p)
	roots := solveCubic(-(1.0 - B), A-3.0*B*B-2.0*B, -(A*B - B*B - B*B*B))
	zl, zv = math.MaxFloat64, -math.MaxFloat64
	for _, z := range roots {
		if z > B { // roots must give positive (v-b)
			nreal++
			zl = math.Min(zl, z)
			zv = math.Max(zv, z)
		}
	}
	if nreal == 0 {
		return 0, 0, 0, chk.Err("no physical root of cubic EOS for %s at T=%g K, p=%g Pa", o.fl.Name, T, p)
	}
	return
}

// lnPhi computes the logarithm of the fugacity coefficient at root Z
func (o eos) lnPhi(T, p, Z float64) float64 {
	A, B := o.dimless(T, p)
	s2 := math.Sqrt2
	return Z - 1.0 - math.Log(Z-B) - A/(2.0*s2*B)*math.Log((Z+(1.0+s2)*B)/(Z+(1.0-s2)*B))
}

// zStable selects the stable root by minimum fugacity when both branches exist
func (o eos) zStable(T, p float64) (float64, error) {
	zl, zv, n, err := o.zRoots(T, p)
	if err != nil {
		return 0, err
	}
	if n == 1 || zv-zl < 1e-12 {
		return zv, nil
	}
	if o.lnPhi(T, p, zl) < o.lnPhi(T, p, zv) {
		return zl, nil
	}
	return zv, nil
}

// rhoFromZ converts a compressibility factor into mass density [kg/m³]
func (o eos) rhoFromZ(T, p, Z float64) float64 {
	return p * o.fl.M / (Z * Rgas * T)
}

// enthalpyFromZ computes specific enthalpy [J/kg] at root Z, as the sum of the
// ideal-gas part and the departure function of the EOS
func (o eos) enthalpyFromZ(T, p, Z float64) float64 {
	a, da, _ := o.aT(T)
	_, B := o.dimless(T, p)
	s2 := math.Sqrt2
	dep := Rgas*T*(Z-1.0) + (T*da-a)/(2.0*s2*o.b)*math.Log((Z+(1.0+s2)*B)/(Z+(1.0-s2)*B))
	return (o.fl.h0(T) + dep) / o.fl.M
}

// soundSpeedFromZ computes the thermodynamic speed of sound [m/s] at root Z:
//   w² = (cp/cv)・(∂p/∂ρ)|T
func (o eos) soundSpeedFromZ(T, p, Z float64) (float64, error) {
	v := Z * Rgas * T / p // molar volume
	a, da, dda := o.aT(T)
	D := v*v + 2.0*o.b*v - o.b*o.b

	// pressure derivatives at constant T and at constant v
	dpdv := -Rgas*T/((v-o.b)*(v-o.b)) + 2.0*a*(v+o.b)/(D*D)
	dpdT := Rgas/(v-o.b) - da/D

	// heat capacities with departure terms
	s2 := math.Sqrt2
	cv := o.fl.cp0(T) - Rgas + T*dda/(2.0*s2*o.b)*math.Log((v+(1.0+s2)*o.b)/(v+(1.0-s2)*o.b))
	cp := cv - T*dpdT*dpdT/dpdv

	w2 := -(cp / cv) * dpdv * v * v / o.fl.M
	if w2 <= 0 || dpdv >= 0 {
		return 0, chk.Err("mechanically unstable state for %s at T=%g K, p=%g Pa", o.fl.Name, T, p)
	}
	return math.Sqrt(w2), nil
}

// psat solves the saturation pressure at T from equality of fugacities,
// starting from the Wilson estimate and using successive substitution
func (o eos) psat(T float64) (float64, error) {
	if T <= o.fl.Tt || T >= o.fl.Tc {
		return 0, chk.Err("T=%g K is outside the saturation range (%g, %g) of %s", T, o.fl.Tt, o.fl.Tc, o.fl.Name)
	}
	p := o.fl.Pc * math.Exp(5.373*(1.0+o.fl.Omega)*(1.0-o.fl.Tc/T)) // Wilson
	for it := 0; it < 500; it++ {
		zl, zv, n, err := o.zRoots(T, p)
		if err != nil {
			return 0, err
		}
		if n < 2 || zv-zl < 1e-9 {
			// single root: walk pressure towards the two-root region
			if zv > 0.307 { // vapour-like
				p *= 1.1
			} else {
				p /= 1.1
			}
			continue
		}
		ratio := math.Exp(o.lnPhi(T, p, zl) - o.lnPhi(T, p, zv))
		p *= ratio
		if math.Abs(ratio-1.0) < 1e-12 {
			return p, nil
		}
	}
	return 0, chk.Err("saturation pressure iteration did not converge for %s at T=%g K", o.fl.Name, T)
}
