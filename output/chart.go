package output

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// PlotTimings renders one bar chart per suite comparing ns/element of
// radix and the baseline, and writes the page to filename.
func PlotTimings(report *JSONOutput, filename string) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.PageTitle = "Radix sort benchmark"

	for _, suite := range report.Suites {
		page.AddCharts(suiteChart(suite, report.Metadata.Baseline))
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create chart file %s: %w", filename, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

func suiteChart(suite SuiteResult, baseline string) *charts.Bar {
	labels := make([]string, 0, len(suite.Cases))
	radixData := make([]opts.BarData, 0, len(suite.Cases))
	baseData := make([]opts.BarData, 0, len(suite.Cases))
	for _, c := range suite.Cases {
		labels = append(labels, CaseLabel(c))
		radixData = append(radixData, opts.BarData{Value: round2(c.Radix.NSPerElement)})
		baseData = append(baseData, opts.BarData{Value: round2(c.Baseline.NSPerElement)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       "Radix sort benchmark",
			Width:           "90vw",
			Height:          "60vh",
			Theme:           types.ThemeVintage,
			BackgroundColor: "transparent",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    suite.Name,
			Subtitle: fmt.Sprintf("distribution: %s", suite.Distribution),
			Left:     "center",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Trigger: "axis",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "ns / element",
		}),
	)
	bar.SetXAxis(labels).
		AddSeries("radix", radixData).
		AddSeries(baseline, baseData)
	return bar
}

// CaseLabel names a case as type/size, e.g. "int32/100000".
func CaseLabel(c CaseResult) string {
	return fmt.Sprintf("%s/%d", c.Type, c.Size)
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}
