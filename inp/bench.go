// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the benchmark input data read from a (.bench)
// JSON file, and the parsing and sampling of condition grids.
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Bench holds the definition of one benchmark run
type Bench struct {

	// run definition
	Desc    string `json:"desc"`    // description of benchmark
	Adapter string `json:"adapter"` // adapter name; e.g. "reference", "toydip"
	Fluid   string `json:"fluid"`   // fluid name: "CO2" or "N2"
	Grid    string `json:"grid"`    // grid string; e.g. "T=220:300:10,p=1e5:5e6:5e5"

	// check inputs
	SatT []float64 `json:"satT"` // saturation temperatures for C3; empty => fluid defaults
	PRef float64   `json:"pref"` // reference pressure for C4 [Pa]

	// tolerances
	TolMonotonic float64 `json:"tolmonotonic"` // absolute slack for C1/C2
	TolClap      float64 `json:"tolclap"`      // relative tolerance for C3
	TolSound     float64 `json:"tolsound"`     // relative tolerance for C4

	// grid ergonomics
	CritGuard  bool    `json:"critguard"`  // drop temperatures within CritBand of Tc
	CritBand   float64 `json:"critband"`   // guard band around Tc [K]
	RandomGrid bool    `json:"randomgrid"` // sample a small random subset of the grid
	Seed       int     `json:"seed"`       // seed for random sampling
	MaxPoints  int     `json:"maxpoints"`  // maximum number of single-phase points; 0 => no limit

	// output
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/thermobench

	// derived
	Key string // filename key of input file
}

// SetDefault sets default values
func (o *Bench) SetDefault() {
	o.Adapter = "reference"
	o.Fluid = "CO2"
	o.Grid = "T=220:300:10,p=1e5:5e6:5e5"
	o.PRef = 1e5
	o.TolMonotonic = 1e-6
	o.TolClap = 0.1
	o.TolSound = 0.2
	o.CritBand = 5.0
}

// ReadBench reads a benchmark definition from a (.bench) JSON file
func ReadBench(fnamepath string) (*Bench, error) {

	// new bench with defaults
	o := new(Bench)
	o.SetDefault()

	// read and decode file. io.ReadFile panics on read errors, so check first
	if _, err := os.Stat(fnamepath); err != nil {
		return nil, chk.Err("ReadBench: cannot read benchmark file %q", fnamepath)
	}
	b := io.ReadFile(fnamepath)
	if err := json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("ReadBench: cannot unmarshal benchmark file %q: %v", fnamepath, err)
	}

	// filename key and output directory
	fn := filepath.Base(os.ExpandEnv(fnamepath))
	o.Key = io.FnKey(fn)
	if o.DirOut == "" {
		o.DirOut = "/tmp/thermobench/" + o.Key
	}

	// validation
	if o.Fluid != "CO2" && o.Fluid != "N2" {
		return nil, chk.Err("ReadBench: fluid must be CO2 or N2; got %q", o.Fluid)
	}
	if o.TolMonotonic <= 0 || o.TolClap <= 0 || o.TolSound <= 0 {
		return nil, chk.Err("ReadBench: tolerances must be positive")
	}
	if o.PRef <= 0 {
		return nil, chk.Err("ReadBench: reference pressure must be positive; got %g", o.PRef)
	}
	return o, nil
}
