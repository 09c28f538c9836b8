package main

// Runs the quadratic sieve under an observer and renders the per-window
// smoothness yield as an HTML page, plus summary statistics on stdout.

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cartazio/arithmoi/internal/prof"
	"github.com/cartazio/arithmoi/qs"
)

type summaryStats struct {
	Count int
	Mean  float64
	Min   int
	Max   int
}

func computeStats(xs []int) summaryStats {
	st := summaryStats{Count: len(xs)}
	if len(xs) == 0 {
		return st
	}
	st.Min, st.Max = xs[0], xs[0]
	sum := 0
	for _, v := range xs {
		sum += v
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
	}
	st.Mean = float64(sum) / float64(len(xs))
	return st
}

func toLineItems(vals []int) []opts.LineData {
	out := make([]opts.LineData, len(vals))
	for i, v := range vals {
		out[i] = opts.LineData{Value: v}
	}
	return out
}

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func newYieldChart(title string, labels []string, smooth, rels []int, st summaryStats) *charts.Line {
	line := charts.NewLine()
	subtitle := fmt.Sprintf("windows=%d, mean smooth=%.2f, min=%d, max=%d", st.Count, st.Mean, st.Min, st.Max)
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(labels).
		AddSeries("smooth per window", toLineItems(smooth)).
		AddSeries("relations retained", toLineItems(rels))
	return line
}

func newRowChart(labels []string, rows []int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "parity rows in play"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "400px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("rows", toBarItems(rows)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func main() {
	nStr := flag.String("n", "", "odd composite to factor (decimal)")
	b := flag.Int64("b", 0, "factor base bound (0 = auto)")
	t := flag.Int("t", 0, "sieve window length (0 = auto)")
	out := flag.String("out", "qs_analysis.html", "output HTML path")
	flag.Parse()

	if *nStr == "" {
		log.Fatal("usage: analysis -n <decimal integer> [-b bound] [-t length] [-out page.html]")
	}
	n, ok := new(big.Int).SetString(*nStr, 10)
	if !ok {
		log.Fatalf("not a decimal integer: %q", *nStr)
	}

	var stats []qs.WindowStat
	cfg := qs.Config{
		B:                 *b,
		T:                 *t,
		RetryDependencies: true,
		Observer: func(ws qs.WindowStat) {
			stats = append(stats, ws)
		},
	}

	start := time.Now()
	f, err := qs.Factor(n, cfg)
	prof.Track(start, "qs.Factor")
	if err != nil {
		log.Fatalf("factor: %v", err)
	}
	fmt.Printf("%s = %s * %s\n", n, f, new(big.Int).Quo(n, f))

	labels := make([]string, len(stats))
	smooth := make([]int, len(stats))
	rels := make([]int, len(stats))
	rows := make([]int, len(stats))
	for i, ws := range stats {
		labels[i] = fmt.Sprintf("k=%d", ws.K)
		smooth[i] = ws.Smooth
		rels[i] = ws.Relations
		rows[i] = ws.Primes
	}
	st := computeStats(smooth)
	fmt.Printf("windows=%d mean=%.2f min=%d max=%d\n", st.Count, st.Mean, st.Min, st.Max)
	fmt.Print(prof.Report(prof.SnapshotAndReset()))

	page := components.NewPage()
	page.AddCharts(
		newYieldChart(fmt.Sprintf("smooth yield for n=%s", n), labels, smooth, rels, st),
		newRowChart(labels, rows),
	)
	fh, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer fh.Close()
	if err := page.Render(fh); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Yield page:", *out)
}
