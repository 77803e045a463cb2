package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/proxyparty/cmd/benchmark/templates"
	"github.com/delaneyj/proxyparty/reactive"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100, 1_000}
)

func runPropagate(ctx context.Context, cmd *cli.Command) (*templates.ReportSection, error) {
	iters := int(cmd.Uint(itersKey))
	debug := cmd.Bool(debugKey)

	log.Printf("warming up")
	benchmarkPropagate(1, debug)

	headers := []string{"benchmark", "avg", "min", "p75", "p99", "max"}
	tbl := table.NewWriter()
	tbl.SetTitle("proxyparty propagate")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(toRow(headers))

	section := &templates.ReportSection{Name: "propagate", Headers: headers}
	for _, res := range benchmarkPropagate(iters, debug) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		calc := res.tach.Calc()
		tbl.AppendRows([]table.Row{
			{res.name, calc.Time.Avg, calc.Time.Min, calc.Time.P75, calc.Time.P99, calc.Time.Max},
		})
		section.Rows = append(section.Rows, []string{
			res.name,
			calc.Time.Avg.String(),
			calc.Time.Min.String(),
			calc.Time.P75.String(),
			calc.Time.P99.String(),
			calc.Time.Max.String(),
		})
	}
	tbl.Render()
	return section, nil
}

type propagateResult struct {
	name string
	tach *tachymeter.Tachymeter
}

// benchmarkPropagate builds w chains of h computed values over one reactive
// source field, each chain ending in an effect, then times source writes.
func benchmarkPropagate(iters int, debug bool) []propagateResult {
	var results []propagateResult
	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rt := reactive.NewRuntime(
				reactive.WithDebug(debug),
				reactive.WithErrorHandler(func(e *reactive.Effect, err error) {
					log.Panic(err)
				}),
			)
			src := rt.Reactive(reactive.NewObject("count", 1)).(*reactive.Proxy)
			for i := 0; i < w; i++ {
				var last reactive.Cell = rt.Computed(func() any {
					return src.Get("count").(int) + 1
				})
				for j := 1; j < h; j++ {
					prev := last
					last = rt.Computed(func() any {
						return prev.Value().(int) + 1
					})
				}
				rt.Effect(func() error {
					last.Value()
					return nil
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set("count", src.Get("count").(int)+1)
				tach.AddTime(time.Since(start))
			}

			results = append(results, propagateResult{
				name: fmt.Sprintf("propagate: %d * %d", w, h),
				tach: tach,
			})
		}
	}
	return results
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
