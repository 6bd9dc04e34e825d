package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lightningnetwork/tightpair/benchcfg"
	"github.com/lightningnetwork/tightpair/pairbench"
	"github.com/urfave/cli"
)

var benchCommand = cli.Command{
	Name:  "bench",
	Usage: "Compare sorting pairs lexicographically and packed.",
	Description: `
	Sort every input distribution with every contender and report the
	median duration of the runs. Flags override the values of the config
	file.`,
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "size",
			Usage: "number of pairs sorted in each run",
			Value: benchcfg.DefaultSize,
		},
		cli.IntFlag{
			Name:  "runs",
			Usage: "number of runs, the median is reported",
			Value: benchcfg.DefaultRuns,
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "seed of the input generator",
			Value: benchcfg.DefaultSeed,
		},
		cli.StringSliceFlag{
			Name: "distribution",
			Usage: "input distribution to sort, may be repeated " +
				"(shuffled, all-equal, ascending, descending, " +
				"pipe-organ, few-unique)",
		},
	},
	Action: actionDecorator(bench),
}

func bench(_ *cli.Context, cfg *benchcfg.Config) error {
	ctxc, cancel := getContext()
	defer cancel()

	log.Infof("Sorting %d pairs, %d runs, seed %d", cfg.Size, cfg.Runs,
		cfg.Seed)

	results, err := pairbench.Run(ctxc, cfg)
	if err != nil {
		return err
	}

	renderResults(getStdout(), results)

	return nil
}

// renderResults writes the benchmark results as a table to w.
func renderResults(w io.Writer, results []pairbench.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"distribution", "contender", "median", "runs"})

	for i, result := range results {
		if i > 0 && results[i-1].Distribution != result.Distribution {
			t.AppendSeparator()
		}

		t.AppendRow(table.Row{
			result.Distribution, result.Contender, result.Median,
			result.Runs,
		})
	}

	t.Render()
}

// getContext returns a context that is canceled on an interrupt.
func getContext() (context.Context, func()) {
	return signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
}

func getStdout() io.Writer {
	return os.Stdout
}
