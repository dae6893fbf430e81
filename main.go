// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/guptaaryanr/ThermoBench-Consist/check"
	"github.com/guptaaryanr/ThermoBench-Consist/inp"
	"github.com/guptaaryanr/ThermoBench-Consist/mdl/baseline"
	"github.com/guptaaryanr/ThermoBench-Consist/mdl/surrogate"
	"github.com/guptaaryanr/ThermoBench-Consist/out"
	"github.com/guptaaryanr/ThermoBench-Consist/score"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	command := io.ArgToString(0, "run")
	fnamepath, _ := io.ArgToFilename(1, "data/reference-co2", ".bench", false)
	dofigs := io.ArgToBool(2, false)
	verbose := io.ArgToBool(3, true)

	// message
	if verbose {
		io.PfWhite("\nThermoBench-Consist -- physical consistency checks for property surrogates\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"command: run, score, plot, inspect", "command", command,
			"benchmark (.bench) or summary (.json) file", "fnamepath", fnamepath,
			"generate figures", "dofigs", dofigs,
			"show messages", "verbose", verbose,
		))
	}

	switch command {
	case "run":
		run(fnamepath, dofigs, verbose)
	case "score":
		printScore(fnamepath)
	case "plot":
		plot(fnamepath)
	case "inspect":
		inspect(fnamepath)
	default:
		chk.Panic("unknown command %q", command)
	}
}

// loadBench reads the benchmark file and allocates baseline source and adapter
func loadBench(fnamepath string) (*inp.Bench, *baseline.Source, surrogate.Model) {
	bench, err := inp.ReadBench(fnamepath)
	if err != nil {
		chk.Panic("cannot read benchmark file:\n%v", err)
	}
	src, err := baseline.NewSource(bench.Fluid, nil)
	if err != nil {
		chk.Panic("cannot allocate baseline source:\n%v", err)
	}
	adapter, err := surrogate.New(bench.Adapter, bench.Fluid, src, nil)
	if err != nil {
		chk.Panic("cannot allocate adapter:\n%v", err)
	}
	return bench, src, adapter
}

// pickIsotherms selects up to three representative temperatures of the grid
func pickIsotherms(Tvals []float64) []float64 {
	n := len(Tvals)
	if n < 3 {
		return Tvals
	}
	return []float64{Tvals[0], Tvals[n/2], Tvals[n-1]}
}

// run executes all checks and writes the summary, report and figures
func run(fnamepath string, dofigs, verbose bool) {

	bench, src, adapter := loadBench(fnamepath)

	// condition grid
	Tvals, Pvals, err := inp.ParseGridString(bench.Grid)
	if err != nil {
		chk.Panic("cannot parse grid:\n%v", err)
	}
	if bench.CritGuard {
		Tvals = inp.ApplyCriticalGuard(src, Tvals, bench.CritBand)
	}
	if bench.RandomGrid {
		Tvals, Pvals = inp.RandomSubgrid(Tvals, Pvals, 4, 8, bench.Seed)
	}
	if len(Tvals) == 0 {
		chk.Panic("no temperatures left in grid after filtering")
	}
	pts, err := inp.SinglePhasePoints(src, Tvals, Pvals, bench.MaxPoints)
	if err != nil {
		chk.Panic("cannot sample single-phase points:\n%v", err)
	}
	if verbose {
		io.Pf("grid: %d temperatures, %d pressures, %d single-phase points\n", len(Tvals), len(Pvals), len(pts))
	}

	// density checks on representative isotherms
	var rc1 []*check.MonotonicResult
	var rc2 []*check.CompressResult
	for _, T := range pickIsotherms(Tvals) {
		r1, err := check.MonotonicRho(adapter, T, Pvals, bench.TolMonotonic)
		if err != nil {
			chk.Panic("monotonic density check failed:\n%v", err)
		}
		r2, err := check.Compressibility(adapter, T, Pvals, bench.TolMonotonic)
		if err != nil {
			chk.Panic("compressibility check failed:\n%v", err)
		}
		rc1 = append(rc1, r1)
		rc2 = append(rc2, r2)
	}

	// Clapeyron check on saturation temperatures
	satT := bench.SatT
	if len(satT) == 0 {
		satT = inp.DefaultSatT(bench.Fluid)
	}
	var rc3 []*check.ClapeyronResult
	if len(satT) > 0 {
		r3, err := check.Clapeyron(adapter, src, satT, bench.TolClap)
		if err != nil {
			chk.Panic("Clapeyron check failed:\n%v", err)
		}
		rc3 = append(rc3, r3)
	}

	// speed-of-sound check at the reference pressure
	r4, err := check.SpeedOfSound(adapter, src, pickIsotherms(Tvals), bench.PRef, bench.TolSound)
	if err != nil {
		chk.Panic("speed-of-sound check failed:\n%v", err)
	}

	// aggregate and save
	tols := score.Tolerances{
		Monotonic:    bench.TolMonotonic,
		ClapeyronRel: bench.TolClap,
		SoundRel:     bench.TolSound,
	}
	sum := score.Aggregate(adapter.Name(), bench.Fluid, bench.Grid, tols, rc1, rc2, rc3, []*check.SoundSpeedResult{r4})
	sum.TimeUTC = time.Now().UTC().Format(time.RFC3339)
	err = sum.Save(bench.DirOut, bench.Key+".json")
	if err != nil {
		chk.Panic("cannot save summary:\n%v", err)
	}
	err = out.Report(sum, bench.DirOut, bench.Key, bench.Key, dofigs)
	if err != nil {
		chk.Panic("cannot render report:\n%v", err)
	}

	// message
	if verbose {
		io.Pf("\ncomposite score = ")
		if sum.CompositeScore >= 99.999 {
			io.Pfgreen("%.1f / 100\n", sum.CompositeScore)
		} else {
			io.Pfyel("%.1f / 100\n", sum.CompositeScore)
		}
		io.Pf("badges: core=%v plus=%v\n", sum.Badges.Core, sum.Badges.Plus)
		io.Pf("wrote %s\n", io.Sf("%s/%s.json", bench.DirOut, bench.Key))
		io.Pf("wrote %s\n", io.Sf("%s/%s.md", bench.DirOut, bench.Key))
		io.Pf("wrote %s\n", io.Sf("%s/%s.html", bench.DirOut, bench.Key))
	}
}

// printScore loads a summary file and prints it to stdout
func printScore(fnamepath string) {
	sum, err := score.Load(fnamepath)
	if err != nil {
		chk.Panic("cannot load summary:\n%v", err)
	}
	b, err := sum.Encode()
	if err != nil {
		chk.Panic("cannot encode summary:\n%v", err)
	}
	io.Pf("%s\n", string(b))
}

// plot regenerates figures from an existing summary file
func plot(fnamepath string) {
	sum, err := score.Load(fnamepath)
	if err != nil {
		chk.Panic("cannot load summary:\n%v", err)
	}
	dirout := "/tmp/thermobench"
	err = out.Report(sum, dirout, "", "", true)
	if err != nil {
		chk.Panic("cannot render figures:\n%v", err)
	}
	io.Pf("regenerated figures in %s\n", dirout)
}

// inspect prints the adapter capability table
func inspect(fnamepath string) {
	bench, _, adapter := loadBench(fnamepath)
	caps := adapter.Capabilities()
	status := func(ok bool, why string) string {
		if ok {
			return "supported"
		}
		return io.Sf("unsupported (missing %s)", why)
	}
	io.Pf("capabilities of adapter %q for fluid %s\n\n", adapter.Name(), bench.Fluid)
	io.Pf("%-22s%s\n", "check", "status")
	io.Pf("%-22s%s\n", "-----", "------")
	io.Pf("%-22s%s\n", check.NameMonotonic, status(caps.Rho, "rho"))
	io.Pf("%-22s%s\n", check.NameCompress, status(caps.Rho, "rho"))
	io.Pf("%-22s%s\n", check.NameClapeyron, status(caps.PhaseSplit && caps.H && caps.Rho, "phase_split/h/rho"))
	io.Pf("%-22s%s\n", check.NameSpeedOfSound, status(caps.SoundSpeed, "speed_of_sound"))
}
