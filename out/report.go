// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements benchmark output handling: Markdown and HTML
// reports plus figures rendered from a serialized run summary
package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"

	"github.com/guptaaryanr/ThermoBench-Consist/check"
	"github.com/guptaaryanr/ThermoBench-Consist/score"
)

// checkOrder fixes the rendering order of checks in reports
var checkOrder = []string{
	check.NameMonotonic,
	check.NameCompress,
	check.NameClapeyron,
	check.NameSpeedOfSound,
}

// yesno converts a flag to a short cell string
func yesno(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Report renders Markdown and/or HTML reports and writes the figures.
// Empty fnkeyMD/fnkeyHTML skip the corresponding document; withFigs
// controls figure generation (plotting requires a matplotlib backend).
func Report(sum *score.RunSummary, dirout, fnkeyMD, fnkeyHTML string, withFigs bool) error {

	figs := []string{}
	if withFigs {
		for _, fn := range []func(*score.RunSummary, string) (string, error){
			PlotIsotherm, PlotClapeyron, PlotSoundSpeed,
		} {
			fig, err := fn(sum, dirout)
			if err != nil {
				return err
			}
			if fig != "" {
				figs = append(figs, fig)
			}
		}
	}

	if fnkeyMD != "" {
		var buf bytes.Buffer
		writeMarkdown(&buf, sum, figs)
		io.WriteFileD(dirout, fnkeyMD+".md", &buf)
	}
	if fnkeyHTML != "" {
		var buf bytes.Buffer
		writeHTML(&buf, sum, figs)
		io.WriteFileD(dirout, fnkeyHTML+".html", &buf)
	}
	return nil
}

// writeMarkdown renders the Markdown report
func writeMarkdown(buf *bytes.Buffer, sum *score.RunSummary, figs []string) {
	io.Ff(buf, "# ThermoBench-Consist Report\n\n")
	io.Ff(buf, "* adapter: `%s`\n", sum.Adapter)
	io.Ff(buf, "* fluid: `%s`\n", sum.Fluid)
	io.Ff(buf, "* grid: `%s`\n", sum.Grid)
	if sum.TimeUTC != "" {
		io.Ff(buf, "* generated: %s\n", sum.TimeUTC)
	}
	io.Ff(buf, "\n## Score\n\n")
	io.Ff(buf, "**Composite: %.1f / 100**  (Core badge: %.2f, Plus badge: %.2f)\n", sum.CompositeScore, sum.Badges.Core, sum.Badges.Plus)
	io.Ff(buf, "\n## Checks\n\n")
	io.Ff(buf, "| check | supported | passed | pass ratio | severity |\n")
	io.Ff(buf, "|-------|-----------|--------|------------|----------|\n")
	for _, name := range checkOrder {
		c, ok := sum.Checks[name]
		if !ok {
			continue
		}
		io.Ff(buf, "| %s | %s | %s | %.2f | %s |\n", c.Name, yesno(c.Supported), yesno(c.Passed), c.PassRatio, c.Severity)
	}
	io.Ff(buf, "\n## Tolerances\n\n")
	io.Ff(buf, "* monotonic/compressibility slack: %g\n", sum.Tolerances.Monotonic)
	io.Ff(buf, "* Clapeyron relative: %g\n", sum.Tolerances.ClapeyronRel)
	io.Ff(buf, "* speed-of-sound relative: %g\n", sum.Tolerances.SoundRel)
	if len(figs) > 0 {
		io.Ff(buf, "\n## Figures\n\n")
		for _, fig := range figs {
			io.Ff(buf, "![%s](%s.png)\n", fig, fig)
		}
	}
}

// writeHTML renders the HTML report
func writeHTML(buf *bytes.Buffer, sum *score.RunSummary, figs []string) {
	io.Ff(buf, "<!DOCTYPE html>\n<html>\n<head>\n")
	io.Ff(buf, "<meta charset=\"utf-8\">\n<title>ThermoBench-Consist: %s / %s</title>\n", sum.Adapter, sum.Fluid)
	io.Ff(buf, "<style>body{font-family:sans-serif;margin:2em} table{border-collapse:collapse} td,th{border:1px solid #999;padding:4px 10px}</style>\n")
	io.Ff(buf, "</head>\n<body>\n")
	io.Ff(buf, "<h1>ThermoBench-Consist Report</h1>\n")
	io.Ff(buf, "<p>adapter <code>%s</code> &middot; fluid <code>%s</code> &middot; grid <code>%s</code></p>\n", sum.Adapter, sum.Fluid, sum.Grid)
	io.Ff(buf, "<h2>Composite: %.1f / 100</h2>\n", sum.CompositeScore)
	io.Ff(buf, "<p>Core badge: %.2f &middot; Plus badge: %.2f</p>\n", sum.Badges.Core, sum.Badges.Plus)
	io.Ff(buf, "<table>\n<tr><th>check</th><th>supported</th><th>passed</th><th>pass ratio</th><th>severity</th></tr>\n")
	for _, name := range checkOrder {
		c, ok := sum.Checks[name]
		if !ok {
			continue
		}
		io.Ff(buf, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%.2f</td><td>%s</td></tr>\n", c.Name, yesno(c.Supported), yesno(c.Passed), c.PassRatio, c.Severity)
	}
	io.Ff(buf, "</table>\n")
	for _, fig := range figs {
		io.Ff(buf, "<p><img src=\"%s.png\" alt=\"%s\"></p>\n", fig, fig)
	}
	io.Ff(buf, "</body>\n</html>\n")
}
