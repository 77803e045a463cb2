package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/delaneyj/proxyparty/cmd/benchmark/templates"
	"github.com/urfave/cli/v3"
)

const (
	itersKey      = "iters"
	cpuProfileKey = "cpuprofile"
	markdownKey   = "markdown"
	debugKey      = "debug"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Benchmark the proxyparty reactive runtime",
		Commands: []*cli.Command{
			{
				Name:   "propagate",
				Usage:  "Propagate writes through w * h chains of computed values",
				Flags:  commonFlags(100),
				Action: withProfile(runPropagate),
			},
			{
				Name:   "collections",
				Usage:  "Time reactive object, array, map and set workloads",
				Flags:  commonFlags(10_000),
				Action: withProfile(runCollections),
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func commonFlags(iters uint64) []cli.Flag {
	return []cli.Flag{
		&cli.UintFlag{
			Name:  itersKey,
			Usage: "Iterations per benchmark",
			Value: iters,
		},
		&cli.StringFlag{
			Name:  cpuProfileKey,
			Usage: "Write a CPU profile to this file",
		},
		&cli.StringFlag{
			Name:  markdownKey,
			Usage: "Also write the results as a markdown report to this file",
		},
		&cli.BoolFlag{
			Name:  debugKey,
			Usage: "Run the runtime in debug mode",
		},
	}
}

type benchmarkFunc func(ctx context.Context, cmd *cli.Command) (*templates.ReportSection, error)

func withProfile(fn benchmarkFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if path := cmd.String(cpuProfileKey); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create cpu profile: %w", err)
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				return fmt.Errorf("start cpu profile: %w", err)
			}
			defer pprof.StopCPUProfile()
		}

		section, err := fn(ctx, cmd)
		if err != nil {
			return err
		}

		if path := cmd.String(markdownKey); path != "" {
			report := templates.MarkdownReport(&templates.ReportData{
				Title:    "proxyparty benchmark",
				Sections: []templates.ReportSection{*section},
			})
			if err := os.WriteFile(path, []byte(report), 0644); err != nil {
				return fmt.Errorf("write markdown report: %w", err)
			}
			log.Printf("Wrote markdown report to %s", path)
		}
		return nil
	}
}
