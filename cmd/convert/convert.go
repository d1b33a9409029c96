/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for trn.
package convert

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/transitnet/cmd/flags"
	convertlib "bennypowers.dev/transitnet/convert"
	"bennypowers.dev/transitnet/fs"
	"bennypowers.dev/transitnet/internal/logger"
	"bennypowers.dev/transitnet/load"
	"bennypowers.dev/transitnet/network"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert and combine transit network files",
	Long: `Convert transit network files between formats and combine multiple files.

Output Formats:
  lin   The transit description language (default)
  json  Structural JSON document
  yaml  Structural YAML document

Examples:
  # Combine line files into one
  trn convert -o all.lin net/*.lin

  # Convert to YAML
  trn convert --format yaml net/bus.lin

  # Rewrite files in place in canonical form
  trn convert --in-place net/*.lin

  # Use the format from config file (.config/transitnet.yaml)
  trn convert net/bus.lin`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	Cmd.Flags().StringP("format", "f", string(convertlib.FormatLin), "Output format: "+strings.Join(convertlib.ValidFormats(), ", "))
	Cmd.Flags().BoolP("in-place", "i", false, "Overwrite input files with converted output")
	Cmd.Flags().String("header", "", "Comment written at the top of the output")
	Cmd.Flags().String("indent", "  ", "Indentation for json and yaml output")
	Cmd.Flags().Bool("strip-comments", false, "Drop comments from json and yaml output")
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	inPlace, _ := cmd.Flags().GetBool("in-place")
	header, _ := cmd.Flags().GetString("header")
	indent, _ := cmd.Flags().GetString("indent")
	strip, _ := cmd.Flags().GetBool("strip-comments")

	filesystem := fs.NewOSFileSystem()
	cfg := flags.Config(filesystem)

	var fallback any
	if cfg.Format != "" {
		fallback = cfg.Format
	}
	format, err := convertlib.ParseFormat(viper.GetString(flags.Bind(cmd, "format", fallback)))
	if err != nil {
		return err
	}

	// Validate flag combinations
	if inPlace && output != "" {
		return fmt.Errorf("--in-place and --output are mutually exclusive")
	}
	if inPlace && format != convertlib.FormatLin {
		return fmt.Errorf("--in-place only supports lin format")
	}

	opts, err := flags.LoadOptions(filesystem)
	if err != nil {
		return err
	}
	results, err := load.LoadAll(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	c := &converter{
		fs:     filesystem,
		stdout: cmd.OutOrStdout(),
		opts: convertlib.Options{
			Format:        format,
			Header:        header,
			Indent:        indent,
			StripComments: strip,
		},
	}
	if inPlace {
		return c.inPlace(results)
	}
	return c.combined(results, output)
}

type converter struct {
	fs     fs.FileSystem
	stdout io.Writer
	opts   convertlib.Options
}

// inPlace rewrites every file with its own network.
func (c *converter) inPlace(results []load.Result) error {
	if err := firstError(results); err != nil {
		return err
	}
	for _, r := range results {
		data, err := convertlib.FormatNetwork(r.Network, c.opts.Format, c.opts)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", r.Path, err)
		}
		if err := fs.WriteFileAtomic(c.fs, r.Path, data, 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", r.Path, err)
		}
		logger.Info("Wrote %s", r.Path)
	}
	return nil
}

// combined appends the networks in input order and writes them to output,
// or to stdout when output is empty.
func (c *converter) combined(results []load.Result, output string) error {
	if err := firstError(results); err != nil {
		return err
	}
	n := &network.Network{}
	for _, r := range results {
		if err := n.Append(r.Network); err != nil {
			return fmt.Errorf("error merging %s: %w", r.Path, err)
		}
	}

	data, err := convertlib.FormatNetwork(n, c.opts.Format, c.opts)
	if err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	if output == "" {
		_, err := c.stdout.Write(data)
		return err
	}
	if err := fs.WriteFileAtomic(c.fs, output, data, 0644); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	logger.Info("Wrote %s", output)
	return nil
}

func firstError(results []load.Result) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
