// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package score aggregates check results into a single run summary with a
// composite consistency score, and (de)serializes summaries to JSON.
package score

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// severity levels of a check summary
const (
	SevInfo = "info" // passed cleanly
	SevWarn = "warn" // passed but flagged a boundary condition, or tolerated failure
	SevFail = "fail" // did not pass or errored
)

// SchemaVersion identifies the summary interchange format
const SchemaVersion = "1.0"

// F is a float64 whose JSON form survives non-finite values: NaN and the
// infinities are encoded as the strings "nan", "inf" and "-inf"
type F float64

// MarshalJSON encodes non-finite values as strings
func (x F) MarshalJSON() ([]byte, error) {
	v := float64(x)
	switch {
	case math.IsNaN(v):
		return []byte(`"nan"`), nil
	case math.IsInf(v, 1):
		return []byte(`"inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-inf"`), nil
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes numbers or the non-finite string forms
func (x *F) UnmarshalJSON(b []byte) error {
	s := string(b)
	switch s {
	case `"nan"`:
		*x = F(math.NaN())
		return nil
	case `"inf"`:
		*x = F(math.Inf(1))
		return nil
	case `"-inf"`:
		*x = F(math.Inf(-1))
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return chk.Err("cannot decode %q as a float", s)
	}
	*x = F(v)
	return nil
}

// newFs converts a float slice into its serializable form
func newFs(vals []float64) []F {
	res := make([]F, len(vals))
	for i, v := range vals {
		res[i] = F(v)
	}
	return res
}

// CheckSummary aggregates the results of one check over a collection of
// invocations (e.g. several isotherms)
type CheckSummary struct {
	Name      string      `json:"name"`       // check name
	Supported bool        `json:"supported"`  // any result in the collection is supported
	Passed    bool        `json:"passed"`     // all supported results passed
	PassRatio float64     `json:"pass_ratio"` // mean of passed flags over supported results
	Severity  string      `json:"severity"`   // info, warn or fail
	Details   interface{} `json:"details"`    // serializable detail payload
}

// DetailAs decodes the detail payload into dst. The payload may be the
// typed structure produced by Aggregate or the generic map produced by
// Load; both are coerced through their JSON form.
func (o *CheckSummary) DetailAs(dst interface{}) error {
	b, err := json.Marshal(o.Details)
	if err != nil {
		return chk.Err("cannot encode detail payload of %q: %v", o.Name, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return chk.Err("cannot decode detail payload of %q: %v", o.Name, err)
	}
	return nil
}

// Tolerances echoes the tolerance values used by a run
type Tolerances struct {
	Monotonic    float64 `json:"monotonic"`     // absolute slack for C1/C2
	ClapeyronRel float64 `json:"clapeyron_rel"` // relative tolerance for C3
	SoundRel     float64 `json:"sound_rel"`     // relative tolerance for C4
}

// Badges holds the badge scores of a run
type Badges struct {
	Core float64 `json:"core"` // mean pass ratio over supported C1-C3
	Plus float64 `json:"plus"` // C4 pass ratio if supported
}

// SystemInfo records the environment a summary was produced on
type SystemInfo struct {
	Go       string `json:"go"`       // Go version
	Platform string `json:"platform"` // GOOS/GOARCH
}

// RunSummary is the top-level result of one benchmark run. Built once by
// Aggregate, then serialized; never mutated. TimeUTC is stamped by the
// caller right before saving so that Aggregate stays a pure function of
// its inputs.
type RunSummary struct {
	SchemaVersion  string                   `json:"schema_version"`
	TimeUTC        string                   `json:"datetime_utc,omitempty"`
	System         SystemInfo               `json:"system"`
	Adapter        string                   `json:"adapter"`
	Fluid          string                   `json:"fluid"`
	Grid           string                   `json:"grid"`
	Tolerances     Tolerances               `json:"tolerances"`
	Checks         map[string]*CheckSummary `json:"checks"`
	Badges         Badges                   `json:"badges"`
	CompositeScore float64                  `json:"composite_score"`
}

// Save writes the summary as indented JSON to dirout/fname
func (o *RunSummary) Save(dirout, fname string) error {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode run summary: %v", err)
	}
	var buf bytes.Buffer
	buf.Write(b)
	io.WriteFileD(dirout, fname, &buf)
	return nil
}

// Encode returns the summary as indented JSON
func (o *RunSummary) Encode() ([]byte, error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return nil, chk.Err("cannot encode run summary: %v", err)
	}
	return b, nil
}

// Load reads a summary back from a JSON file. Detail payloads come back as
// generic maps; scores, flags and badges survive the round trip unchanged.
func Load(fname string) (*RunSummary, error) {
	if _, err := os.Stat(fname); err != nil {
		return nil, chk.Err("cannot read summary file %q: %v", fname, err)
	}
	return Decode(io.ReadFile(fname))
}

// Decode parses a summary from JSON bytes
func Decode(b []byte) (*RunSummary, error) {
	var o RunSummary
	if err := json.Unmarshal(b, &o); err != nil {
		return nil, chk.Err("cannot decode run summary: %v", err)
	}
	if o.SchemaVersion != SchemaVersion {
		return nil, chk.Err("unknown summary schema version %q", o.SchemaVersion)
	}
	return &o, nil
}
