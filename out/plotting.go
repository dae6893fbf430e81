// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/plt"

	"github.com/guptaaryanr/ThermoBench-Consist/check"
	"github.com/guptaaryanr/ThermoBench-Consist/score"
)

// PlotIsotherm draws the C1 isotherm: a density curve reconstructed by
// integrating the midpoint derivatives (absolute level is arbitrary) and
// the derivative series itself. Returns the figure key, or "" when the
// summary holds no C1 data.
func PlotIsotherm(sum *score.RunSummary, dirout string) (string, error) {
	c1, ok := sum.Checks[check.NameMonotonic]
	if !ok {
		return "", nil
	}
	var detail score.MonotonicDetail
	if err := c1.DetailAs(&detail); err != nil {
		return "", err
	}
	if len(detail.PerT) == 0 || len(detail.PerT[0].P) < 2 {
		return "", nil
	}
	per := detail.PerT[0]
	if len(per.DrhoDp) != len(per.P)-1 {
		return "", nil // unsupported adapter: grid kept but no derivatives
	}

	np := len(per.P)
	p := make([]float64, np)
	for i, v := range per.P {
		p[i] = float64(v) / 1e6 // [MPa]
	}
	dr := make([]float64, len(per.DrhoDp))
	pmid := make([]float64, len(per.DrhoDp))
	for i, v := range per.DrhoDp {
		dr[i] = float64(v)
		pmid[i] = 0.5 * (p[i] + p[i+1])
	}

	// density curve by integration; start level is arbitrary but positive
	rho := make([]float64, np)
	rho[0] = 1.0
	for i := 1; i < np; i++ {
		slope := dr[i-1]
		if math.IsNaN(slope) {
			slope = 0
		}
		rho[i] = rho[i-1] + slope*(float64(per.P[i])-float64(per.P[i-1]))
	}

	fnkey := "fig_isotherm"
	plt.Reset(false, nil)
	plt.Subplot(2, 1, 1)
	plt.Plot(p, rho, &plt.A{C: "b", Ls: "-", L: "reconstructed"})
	plt.Gll("$p$ [MPa]", "$\\rho$ [arb.]", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(pmid, dr, &plt.A{C: "r", Ls: "-", M: "."})
	plt.Plot([]float64{p[0], p[np-1]}, []float64{0, 0}, &plt.A{C: "k", Ls: "--"})
	plt.Gll("$p$ [MPa]", "$\\mathrm{d}\\rho/\\mathrm{d}p$", nil)
	plt.Save(dirout, fnkey)
	return fnkey, nil
}

// PlotClapeyron draws the C3 comparison of baseline and surrogate
// saturation slopes. Returns "" when the summary holds no C3 data.
func PlotClapeyron(sum *score.RunSummary, dirout string) (string, error) {
	c3, ok := sum.Checks[check.NameClapeyron]
	if !ok {
		return "", nil
	}
	var detail score.ClapeyronDetail
	if err := c3.DetailAs(&detail); err != nil {
		return "", err
	}
	if len(detail.PerRun) == 0 || len(detail.PerRun[0].TList) == 0 {
		return "", nil
	}
	run := detail.PerRun[0]

	T := make([]float64, len(run.TList))
	lhs := make([]float64, len(run.Lhs))
	rhs := make([]float64, 0, len(run.Rhs))
	Trhs := make([]float64, 0, len(run.Rhs))
	for i := range run.TList {
		T[i] = float64(run.TList[i])
		lhs[i] = float64(run.Lhs[i])
		if v := float64(run.Rhs[i]); !math.IsNaN(v) && !math.IsInf(v, 0) {
			rhs = append(rhs, v)
			Trhs = append(Trhs, T[i])
		}
	}

	fnkey := "fig_clapeyron"
	plt.Reset(false, nil)
	plt.Plot(T, lhs, &plt.A{C: "b", Ls: "-", M: "o", L: "$dP_{sat}/dT$ (baseline)"})
	if len(rhs) > 0 {
		plt.Plot(Trhs, rhs, &plt.A{C: "r", Ls: "--", M: "s", L: "$\\Delta h/(T\\Delta v)$ (surrogate)"})
	}
	plt.Gll("saturation $T$ [K]", "slope [Pa/K]", nil)
	plt.Save(dirout, fnkey)
	return fnkey, nil
}

// PlotSoundSpeed draws the C4 comparison of baseline and surrogate speeds
// of sound. Returns "" when the summary holds no C4 data.
func PlotSoundSpeed(sum *score.RunSummary, dirout string) (string, error) {
	c4, ok := sum.Checks[check.NameSpeedOfSound]
	if !ok {
		return "", nil
	}
	var detail score.SoundDetail
	if err := c4.DetailAs(&detail); err != nil {
		return "", err
	}
	if len(detail.PerRun) == 0 || len(detail.PerRun[0].TList) == 0 {
		return "", nil
	}
	run := detail.PerRun[0]

	T := make([]float64, len(run.TList))
	wref := make([]float64, len(run.A2Ref))
	wsur := make([]float64, 0, len(run.A2Sur))
	Tsur := make([]float64, 0, len(run.A2Sur))
	for i := range run.TList {
		T[i] = float64(run.TList[i])
		wref[i] = math.Sqrt(math.Max(float64(run.A2Ref[i]), 0))
		if v := float64(run.A2Sur[i]); !math.IsNaN(v) && !math.IsInf(v, 0) {
			wsur = append(wsur, math.Sqrt(math.Max(v, 0)))
			Tsur = append(Tsur, T[i])
		}
	}

	fnkey := "fig_soundspeed"
	plt.Reset(false, nil)
	plt.Plot(T, wref, &plt.A{C: "b", Ls: "-", M: "o", L: "baseline"})
	if len(wsur) > 0 {
		plt.Plot(Tsur, wsur, &plt.A{C: "r", Ls: "--", M: "s", L: "surrogate"})
	}
	plt.Gll("$T$ [K]", "$w$ [m/s]", nil)
	plt.Save(dirout, fnkey)
	return fnkey, nil
}
