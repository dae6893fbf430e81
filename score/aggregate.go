// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package score

import (
	"math"
	"runtime"

	"github.com/guptaaryanr/ThermoBench-Consist/check"
)

// detail payloads; field names are part of the interchange format

// MonotonicPerT is one C1 invocation in the detail payload
type MonotonicPerT struct {
	T                F    `json:"T"`
	P                []F  `json:"p"`
	DrhoDp           []F  `json:"drho_dp"`
	FractionPositive F    `json:"fraction_positive"`
	MinDerivative    F    `json:"min_derivative"`
	Passed           bool `json:"passed"`
	NearSpinodal     bool `json:"near_spinodal"`
}

// MonotonicDetail is the C1 detail payload
type MonotonicDetail struct {
	Tol  F               `json:"tol"`
	PerT []MonotonicPerT `json:"per_T"`
}

// CompressPerT is one C2 invocation in the detail payload
type CompressPerT struct {
	T            F    `json:"T"`
	MinKappa     F    `json:"min_kappa"`
	Passed       bool `json:"passed"`
	NearSpinodal bool `json:"near_spinodal"`
}

// CompressDetail is the C2 detail payload
type CompressDetail struct {
	Tol  F              `json:"tol"`
	PerT []CompressPerT `json:"per_T"`
}

// ClapeyronPerRun is one C3 invocation in the detail payload
type ClapeyronPerRun struct {
	TList          []F  `json:"T_list"`
	Lhs            []F  `json:"lhs"`
	Rhs            []F  `json:"rhs"`
	MedianRelError F    `json:"median_rel_error"`
	Passed         bool `json:"passed"`
}

// ClapeyronDetail is the C3 detail payload
type ClapeyronDetail struct {
	PerRun          []ClapeyronPerRun `json:"per_run"`
	MedianErrorsAll []F               `json:"median_errors_all"`
}

// SoundPerRun is one C4 invocation in the detail payload
type SoundPerRun struct {
	TList          []F  `json:"T_list"`
	PRef           F    `json:"p_ref"`
	A2Ref          []F  `json:"a2_ref"`
	A2Sur          []F  `json:"a2_sur"`
	MedianRelError F    `json:"median_rel_error"`
	Passed         bool `json:"passed"`
}

// SoundDetail is the C4 detail payload
type SoundDetail struct {
	PerRun []SoundPerRun `json:"per_run"`
}

// passStats computes Supported (any), Passed (all supported) and PassRatio
// (mean of passed over supported) for a collection of result flags
func passStats(supported, passed []bool) (anySup, allPass bool, ratio float64) {
	npass, nsup := 0, 0
	for i := range supported {
		if supported[i] {
			nsup++
			if passed[i] {
				npass++
			}
		}
	}
	anySup = nsup > 0
	allPass = anySup && npass == nsup
	if nsup > 0 {
		ratio = float64(npass) / float64(nsup)
	}
	return
}

// minFinite returns the minimum finite entry or NaN
func minFinite(vals []float64) float64 {
	min := math.NaN()
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min
}

// medianFinite returns the median of finite entries or +Inf
func medianFinite(vals []float64) float64 {
	fin := []float64{}
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			fin = append(fin, v)
		}
	}
	if len(fin) == 0 {
		return math.Inf(1)
	}
	// insertion into sorted order; lists here are short
	for i := 1; i < len(fin); i++ {
		for j := i; j > 0 && fin[j] < fin[j-1]; j-- {
			fin[j], fin[j-1] = fin[j-1], fin[j]
		}
	}
	n := len(fin)
	if n%2 == 1 {
		return fin[n/2]
	}
	return 0.5 * (fin[n/2-1] + fin[n/2])
}

// summarizeMonotonic folds C1 results into one check summary
func summarizeMonotonic(results []*check.MonotonicResult) *CheckSummary {
	sup, pas := make([]bool, len(results)), make([]bool, len(results))
	detail := MonotonicDetail{PerT: []MonotonicPerT{}}
	warn := false
	for i, r := range results {
		sup[i], pas[i] = r.Supported, r.Passed
		detail.Tol = F(r.Tol)
		if r.Supported && r.NearSpinodal {
			warn = true
		}
		detail.PerT = append(detail.PerT, MonotonicPerT{
			T:                F(r.T),
			P:                newFs(r.P),
			DrhoDp:           newFs(r.DrhoDp),
			FractionPositive: F(r.FractionPositive),
			MinDerivative:    F(r.MinDerivative),
			Passed:           r.Passed,
			NearSpinodal:     r.NearSpinodal,
		})
	}
	anySup, allPass, ratio := passStats(sup, pas)
	sev := SevFail
	if allPass {
		sev = SevInfo
		if warn {
			sev = SevWarn
		}
	}
	return &CheckSummary{
		Name:      check.NameMonotonic,
		Supported: anySup,
		Passed:    allPass,
		PassRatio: ratio,
		Severity:  sev,
		Details:   detail,
	}
}

// summarizeCompress folds C2 results into one check summary
func summarizeCompress(results []*check.CompressResult) *CheckSummary {
	sup, pas := make([]bool, len(results)), make([]bool, len(results))
	detail := CompressDetail{PerT: []CompressPerT{}}
	warn := false
	for i, r := range results {
		sup[i], pas[i] = r.Supported, r.Passed
		detail.Tol = F(r.Tol)
		if r.Supported && r.NearSpinodal {
			warn = true
		}
		detail.PerT = append(detail.PerT, CompressPerT{
			T:            F(r.T),
			MinKappa:     F(minFinite(r.KappaT)),
			Passed:       r.Passed,
			NearSpinodal: r.NearSpinodal,
		})
	}
	anySup, allPass, ratio := passStats(sup, pas)
	sev := SevFail
	if allPass {
		sev = SevInfo
		if warn {
			sev = SevWarn
		}
	}
	return &CheckSummary{
		Name:      check.NameCompress,
		Supported: anySup,
		Passed:    allPass,
		PassRatio: ratio,
		Severity:  sev,
		Details:   detail,
	}
}

// summarizeClapeyron folds C3 results into one check summary. C3 has no
// warning state: it is binary pass/fail.
func summarizeClapeyron(results []*check.ClapeyronResult) *CheckSummary {
	sup, pas := make([]bool, len(results)), make([]bool, len(results))
	detail := ClapeyronDetail{PerRun: []ClapeyronPerRun{}, MedianErrorsAll: []F{}}
	for i, r := range results {
		sup[i], pas[i] = r.Supported, r.Passed
		med := medianFinite(r.RelErrors)
		detail.MedianErrorsAll = append(detail.MedianErrorsAll, F(med))
		detail.PerRun = append(detail.PerRun, ClapeyronPerRun{
			TList:          newFs(r.TList),
			Lhs:            newFs(r.LhsValues),
			Rhs:            newFs(r.RhsValues),
			MedianRelError: F(med),
			Passed:         r.Passed,
		})
	}
	anySup, allPass, ratio := passStats(sup, pas)
	sev := SevFail
	if allPass {
		sev = SevInfo
	}
	return &CheckSummary{
		Name:      check.NameClapeyron,
		Supported: anySup,
		Passed:    allPass,
		PassRatio: ratio,
		Severity:  sev,
		Details:   detail,
	}
}

// summarizeSoundSpeed folds C4 results into one check summary. Severity
// policy: unsupported means info (not penalized); supported but failing
// means warn.
func summarizeSoundSpeed(results []*check.SoundSpeedResult) *CheckSummary {
	sup, pas := make([]bool, len(results)), make([]bool, len(results))
	detail := SoundDetail{PerRun: []SoundPerRun{}}
	for i, r := range results {
		sup[i], pas[i] = r.Supported, r.Passed
		detail.PerRun = append(detail.PerRun, SoundPerRun{
			TList:          newFs(r.TList),
			PRef:           F(r.PRef),
			A2Ref:          newFs(r.A2Ref),
			A2Sur:          newFs(r.A2Sur),
			MedianRelError: F(medianFinite(r.RelErrors)),
			Passed:         r.Passed,
		})
	}
	anySup, allPass, ratio := passStats(sup, pas)
	sev := SevInfo
	if anySup && !allPass {
		sev = SevWarn
	}
	return &CheckSummary{
		Name:      check.NameSpeedOfSound,
		Supported: anySup,
		Passed:    allPass,
		PassRatio: ratio,
		Severity:  sev,
		Details:   detail,
	}
}

// Aggregate combines check result collections into one run summary. The
// composite score is 100 times the mean pass ratio over supported checks
// only; unsupported checks are excluded from the mean, not counted as
// failures. Pure function of its inputs.
func Aggregate(adapterName, fluid, grid string, tols Tolerances,
	rc1 []*check.MonotonicResult, rc2 []*check.CompressResult,
	rc3 []*check.ClapeyronResult, rc4 []*check.SoundSpeedResult) *RunSummary {

	c1 := summarizeMonotonic(rc1)
	c2 := summarizeCompress(rc2)
	c3 := summarizeClapeyron(rc3)
	c4 := summarizeSoundSpeed(rc4)

	composite, ncomp := 0.0, 0
	core, ncore := 0.0, 0
	for _, c := range []*CheckSummary{c1, c2, c3, c4} {
		if c.Supported {
			composite += c.PassRatio
			ncomp++
		}
	}
	for _, c := range []*CheckSummary{c1, c2, c3} {
		if c.Supported {
			core += c.PassRatio
			ncore++
		}
	}
	if ncomp > 0 {
		composite = 100.0 * composite / float64(ncomp)
	}
	if ncore > 0 {
		core = core / float64(ncore)
	}
	plus := 0.0
	if c4.Supported {
		plus = c4.PassRatio
	}

	return &RunSummary{
		SchemaVersion: SchemaVersion,
		System: SystemInfo{
			Go:       runtime.Version(),
			Platform: runtime.GOOS + "/" + runtime.GOARCH,
		},
		Adapter:    adapterName,
		Fluid:      fluid,
		Grid:       grid,
		Tolerances: tols,
		Checks: map[string]*CheckSummary{
			c1.Name: c1,
			c2.Name: c2,
			c3.Name: c3,
			c4.Name: c4,
		},
		Badges:         Badges{Core: core, Plus: plus},
		CompositeScore: composite,
	}
}
