package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/proxyparty/cmd/benchmark/templates"
	"github.com/delaneyj/proxyparty/reactive"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

type workloadConfig struct {
	name    string // friendly name, should be unique
	effects int    // number of subscribed effects
	// setup builds the graph and returns one iteration of the workload
	setup func(rt *reactive.Runtime, effects int, counter *int64) func(i int)
}

var workloads = []workloadConfig{
	{
		name:    "object field fanout",
		effects: 100,
		setup: func(rt *reactive.Runtime, effects int, counter *int64) func(i int) {
			state := rt.Reactive(reactive.NewObject("n", 0)).(*reactive.Proxy)
			for e := 0; e < effects; e++ {
				rt.Effect(func() error {
					*counter++
					state.Get("n")
					return nil
				})
			}
			return func(i int) { state.Set("n", i+1) }
		},
	},
	{
		name:    "array push + includes",
		effects: 10,
		setup: func(rt *reactive.Runtime, effects int, counter *int64) func(i int) {
			arr := rt.Reactive(reactive.NewArray()).(*reactive.Proxy)
			for e := 0; e < effects; e++ {
				rt.Effect(func() error {
					*counter++
					arr.Includes(-1)
					return nil
				})
			}
			return func(i int) {
				if arr.Len() > 64 {
					arr.Set(reactive.LengthKey, 0)
				}
				arr.Push(i)
			}
		},
	},
	{
		name:    "map set/get",
		effects: 10,
		setup: func(rt *reactive.Runtime, effects int, counter *int64) func(i int) {
			m := rt.Reactive(reactive.NewMap()).(*reactive.CollectionProxy)
			for e := 0; e < effects; e++ {
				key := e
				rt.Effect(func() error {
					*counter++
					m.Get(key)
					return nil
				})
			}
			return func(i int) { m.Set(i%effects, i) }
		},
	},
	{
		name:    "set add/delete + size",
		effects: 10,
		setup: func(rt *reactive.Runtime, effects int, counter *int64) func(i int) {
			s := rt.Reactive(reactive.NewSet()).(*reactive.CollectionProxy)
			for e := 0; e < effects; e++ {
				rt.Effect(func() error {
					*counter++
					s.Size()
					return nil
				})
			}
			return func(i int) {
				if i%2 == 0 {
					s.Add(i)
				} else {
					s.Delete(i - 1)
				}
			}
		},
	},
	{
		name:    "map keys iteration",
		effects: 10,
		setup: func(rt *reactive.Runtime, effects int, counter *int64) func(i int) {
			m := rt.Reactive(reactive.NewMap()).(*reactive.CollectionProxy)
			for e := 0; e < effects; e++ {
				rt.Effect(func() error {
					*counter++
					for range m.Keys().Seq() {
					}
					return nil
				})
			}
			return func(i int) {
				key := i % 16
				if m.Has(key) {
					m.Delete(key)
				} else {
					m.Set(key, i)
				}
			}
		},
	},
}

func runCollections(ctx context.Context, cmd *cli.Command) (*templates.ReportSection, error) {
	iters := int(cmd.Uint(itersKey))
	debug := cmd.Bool(debugKey)

	log.Print("Starting collections benchmark, please wait...")
	defer log.Print("Finished collections benchmark")

	headers := []string{"workload", "effects", "nTimes", "time", "effect runs", "updateRate", "tracks"}
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)

	section := &templates.ReportSection{Name: "collections", Headers: headers}
	testRepeats := 5
	for _, cfg := range workloads {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		log.Printf("Running '%s' workload", cfg.name)

		best := time.Duration(1<<63 - 1)
		var bestCount int64
		var bestStats reactive.Stats
		for r := 0; r < testRepeats; r++ {
			counter := new(int64)
			rt := reactive.NewRuntime(reactive.WithDebug(debug))
			step := cfg.setup(rt, cfg.effects, counter)
			*counter = 0

			start := time.Now()
			for i := 0; i < iters; i++ {
				step(i)
			}
			duration := time.Since(start)
			if duration < best {
				best, bestCount, bestStats = duration, *counter, rt.Stats()
			}
		}

		updateRate := float64(bestCount) / (float64(best) / float64(time.Millisecond))
		row := []string{
			cfg.name,
			fmt.Sprint(cfg.effects),
			humanize.Comma(int64(iters)),
			fmt.Sprint(best),
			humanize.Comma(bestCount),
			humanize.Comma(int64(updateRate)),
			humanize.Comma(int64(bestStats.Tracks)),
		}
		table.Append(row)
		section.Rows = append(section.Rows, row)
	}
	table.Render()
	return section, nil
}
