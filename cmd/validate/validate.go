/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for trn.
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/transitnet/cmd/flags"
	"bennypowers.dev/transitnet/fs"
	"bennypowers.dev/transitnet/load"
	"bennypowers.dev/transitnet/network"
	"bennypowers.dev/transitnet/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate transit network files",
	Long: `Parse, convert and check transit network files. Files are processed
concurrently; with no arguments, the files listed in .config/transitnet.yaml
are validated.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings (default: config strict)")
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()
	cfg := flags.Config(filesystem)
	strict := viper.GetBool(flags.Bind(cmd, "strict", cfg.Strict))
	quiet := viper.GetBool("quiet")

	opts, err := flags.LoadOptions(filesystem)
	if err != nil {
		return err
	}

	// Use config files if no args provided
	files := args
	if len(files) == 0 {
		resolved, err := load.Files(opts)
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		for _, f := range resolved {
			files = append(files, f.Path)
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	results, err := load.LoadAll(cmd.Context(), files, opts)
	if err != nil {
		return err
	}

	if !report(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, strict, quiet) {
		return fmt.Errorf("validation failed")
	}
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "All files valid.")
	}
	return nil
}

// report prints the outcome of each result and reports whether all of
// them passed.
func report(out, errOut io.Writer, results []load.Result, strict, quiet bool) bool {
	ok := true
	for _, r := range results {
		if !quiet {
			fmt.Fprintf(out, "Validating %s...\n", r.Path)
		}
		if r.Err != nil {
			fmt.Fprintf(errOut, "Error loading %s: %v\n", r.Path, r.Err)
			ok = false
			continue
		}

		errs := validator.ValidateWithPath(r.Network, r.Path)
		for _, e := range errs {
			if e.Severity == validator.SeverityWarning && quiet && !strict {
				continue
			}
			fmt.Fprintf(errOut, "%s: %s\n", e.Severity, e.Error())
		}
		if validator.Failed(errs, strict) {
			ok = false
			continue
		}

		if !quiet {
			counts := r.Network.Counts()
			fmt.Fprintf(out, "  %d lines, %d links, %d linkis, %d fare systems\n",
				counts[network.KindLine], counts[network.KindLink],
				counts[network.KindLinki], counts[network.KindFaresystem])
		}
	}
	return ok
}
