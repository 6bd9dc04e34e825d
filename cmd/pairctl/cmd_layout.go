package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lightningnetwork/tightpair/benchcfg"
	"github.com/lightningnetwork/tightpair/pairbench"
	"github.com/urfave/cli"
)

var layoutCommand = cli.Command{
	Name:  "layout",
	Usage: "Show the storage strategy and size of representative pairs.",
	Description: `
	Print, for a fixed set of slot types, the strategy chosen for the pair,
	the layout it is stored in, the resulting size and the size of the
	same slots stored in declaration order.`,
	Action: actionDecorator(layout),
}

func layout(_ *cli.Context, _ *benchcfg.Config) error {
	footprints := pairbench.Footprints()
	log.Debugf("Rendering %d footprints", len(footprints))

	renderFootprints(getStdout(), footprints)

	return nil
}

// renderFootprints writes the footprints as a table to w.
func renderFootprints(w io.Writer, footprints []pairbench.Footprint) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{
		"first", "second", "strategy", "type", "size", "align",
		"pair size", "overhead",
	})

	for _, fp := range footprints {
		t.AppendRow(table.Row{
			fp.First, fp.Second, fp.Layout.Strategy,
			fp.Layout.TypeName(), fp.Layout.Size, fp.Layout.Align,
			fp.PairSize, fmt.Sprintf("%d", fp.Overhead()),
		})
	}

	t.Render()
}
