package tui

import (
	"fmt"
	"strings"

	"github.com/ChristianF88/radixsort/output"
	"github.com/ChristianF88/radixsort/pools"
)

// progressBuilders serves progressText, which is redrawn after every case.
var progressBuilders = pools.NewBuilderPool(512)

type progressState struct {
	suite string
	done  int
	total int
	last  *output.CaseResult
	fails int
}

func (p *progressState) record(suite string, done, total int, c output.CaseResult) {
	p.suite = suite
	p.done = done
	p.total = total
	p.last = &c
	if !c.Verified {
		p.fails++
	}
}

func progressText(title string, p progressState) string {
	b := pools.GetBuilderFromPool(progressBuilders)
	defer pools.ReturnBuilderToPool(progressBuilders, b)

	fmt.Fprintf(b, "\n[white::b]%s[white::-]\n\n", title)

	if p.total == 0 {
		b.WriteString("[yellow]▶[white] Generating inputs...\n")
	} else {
		fmt.Fprintf(b, "[cyan]▶[white] Suite [yellow]%s[white]\n", p.suite)
		fmt.Fprintf(b, "%s %d/%d cases\n", progressBar(p.done, p.total, 30), p.done, p.total)
	}
	if p.last != nil {
		fmt.Fprintf(b, "\n[dim]Last case:[white] %s  radix %s  speedup %.2fx\n",
			output.CaseLabel(*p.last), output.FormatNS(p.last.Radix.MeanNS), p.last.Speedup)
	}
	if p.fails > 0 {
		fmt.Fprintf(b, "[red]%d case(s) failed verification[white]\n", p.fails)
	}
	b.WriteString("\n[dim]Press 'q' to quit[white]\n")
	return b.String()
}

func progressBar(done, total, width int) string {
	if total <= 0 {
		return "[" + strings.Repeat(" ", width) + "]"
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	return "[green]" + strings.Repeat("█", filled) + "[white]" + strings.Repeat("░", width-filled)
}

type caseRow struct {
	suite string
	c     output.CaseResult
}

var tableHeaders = []string{"Suite", "Type", "Size", "Radix", "Baseline", "Speedup", "OK"}

func (r caseRow) cells() []string {
	ok := "✓"
	if !r.c.Verified {
		ok = "✗"
	}
	return []string{
		r.suite,
		r.c.Type,
		output.FormatNumber(r.c.Size),
		output.FormatNS(r.c.Radix.MeanNS),
		output.FormatNS(r.c.Baseline.MeanNS),
		fmt.Sprintf("%.2fx", r.c.Speedup),
		ok,
	}
}

func flattenCases(report *output.JSONOutput) []caseRow {
	var rows []caseRow
	for _, s := range report.Suites {
		for _, c := range s.Cases {
			rows = append(rows, caseRow{suite: s.Name, c: c})
		}
	}
	return rows
}

func summaryText(report *output.JSONOutput) string {
	m := report.Metadata
	var b strings.Builder
	b.WriteString("[white::b]Benchmark Summary[white::-]\n\n")
	fmt.Fprintf(&b, "[dim]CPU:[white] %s (%d cores)  [dim]Go:[white] %s %s/%s\n",
		m.Host.CPU, m.Host.PhysicalCores, m.Host.GoVersion, m.Host.GOOS, m.Host.GOARCH)
	fmt.Fprintf(&b, "[dim]Baseline:[white] %s  [dim]Seed:[white] %d  [dim]Repeats:[white] %d  [dim]Duration:[white] %dms\n",
		m.Baseline, m.Seed, m.Repeats, m.DurationMS)

	rows := flattenCases(report)
	failed := 0
	var best caseRow
	for _, r := range rows {
		if !r.c.Verified {
			failed++
		}
		if r.c.Speedup > best.c.Speedup {
			best = r
		}
	}
	fmt.Fprintf(&b, "[dim]Cases:[white] %d  [dim]Failed:[white] %d", len(rows), failed)
	if best.c.Speedup > 0 {
		fmt.Fprintf(&b, "  [dim]Best speedup:[white] %.2fx on %s", best.c.Speedup, output.CaseLabel(best.c))
	}
	return b.String()
}

func detailText(r caseRow) string {
	c := r.c
	var b strings.Builder
	fmt.Fprintf(&b, "[white::b]%s[white::-] in [yellow]%s[white]\n\n", output.CaseLabel(c), r.suite)
	fmt.Fprintf(&b, "[dim]Distribution:[white] %s\n", c.Distribution)
	fmt.Fprintf(&b, "[dim]Digits:[white] %d  [dim]Passes:[white] %d", c.Digits, c.Passes)
	if c.AlreadySorted {
		b.WriteString("  [green](already sorted)[white]")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "[dim]Fingerprint:[white] %016x\n\n", c.Fingerprint)

	for _, t := range []output.Timing{c.Radix, c.Baseline} {
		fmt.Fprintf(&b, "[cyan]%s[white]\n", t.Sorter)
		fmt.Fprintf(&b, "  mean %s  median %s  min %s\n",
			output.FormatNS(t.MeanNS), output.FormatNS(t.MedianNS), output.FormatNS(t.MinNS))
		fmt.Fprintf(&b, "  stddev %s  %.2f ns/element\n\n", output.FormatNS(t.StdDevNS), t.NSPerElement)
	}

	if c.Verified {
		fmt.Fprintf(&b, "[green]✓ Verified[white], speedup %.2fx", c.Speedup)
	} else {
		b.WriteString("[red]✗ Verification failed[white]")
	}
	return b.String()
}

func diagnosticsText(report *output.JSONOutput) string {
	var b strings.Builder
	b.WriteString("[white::b]Diagnostics[white::-]\n\n")

	if len(report.Warnings) > 0 {
		b.WriteString("[yellow]Warnings:[white]\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "  • %s\n", w.Message)
		}
		b.WriteString("\n")
	}
	if len(report.Errors) > 0 {
		b.WriteString("[red]Errors:[white]\n")
		for _, e := range report.Errors {
			fmt.Fprintf(&b, "  • %s\n", e.Message)
		}
	} else if len(report.Warnings) == 0 {
		b.WriteString("[green]✓ No issues detected[white]")
	}
	return b.String()
}
