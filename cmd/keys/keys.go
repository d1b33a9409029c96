/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package keys provides the keys command for trn.
package keys

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/transitnet/cmd/flags"
	"bennypowers.dev/transitnet/fs"
	"bennypowers.dev/transitnet/linkkey"
	"bennypowers.dev/transitnet/load"
	"bennypowers.dev/transitnet/network"
)

// Cmd is the keys cobra command.
var Cmd = &cobra.Command{
	Use:   "keys [files...]",
	Short: "Print the link keys of transit lines",
	Long: `Print one A B NAME SEQ key per link each line traverses. SEQ is the
position of the link in its line; keys that would repeat get the next free
SEQ.

Examples:
  trn keys net/bus.lin
  trn keys --format csv net/*.lin > keys.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, csv")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "table" && format != "csv" {
		return fmt.Errorf("unknown format: %s (valid: table, csv)", format)
	}

	opts, err := flags.LoadOptions(fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	results, err := load.LoadAll(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	var lines []*network.TransitLine
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", r.Path, r.Err)
			continue
		}
		lines = append(lines, r.Network.TransitLines()...)
	}

	ix := linkkey.FromLines(lines)
	if format == "csv" {
		return ix.WriteCSV(cmd.OutOrStdout())
	}
	return outputTable(cmd.OutOrStdout(), ix)
}

func outputTable(w io.Writer, ix *linkkey.Index) error {
	for _, k := range ix.Keys() {
		if _, err := fmt.Fprintf(w, "%-8d %-8d %-16s %d\n", k.A, k.B, k.Name, k.Seq); err != nil {
			return err
		}
	}
	return nil
}
