/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for trn.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/transitnet/cmd/convert"
	"bennypowers.dev/transitnet/cmd/keys"
	"bennypowers.dev/transitnet/cmd/list"
	"bennypowers.dev/transitnet/cmd/parse"
	"bennypowers.dev/transitnet/cmd/validate"
	"bennypowers.dev/transitnet/cmd/version"
	"bennypowers.dev/transitnet/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "trn",
	Short: "Parse and work with transit network files",
	Long: `trn parses, validates and converts Cube transit network files:
lines, links, PNR and zone access records, access and transfer links,
fare systems, and PT system definitions.

Flags can also be set with TRN_* environment variables, for example
TRN_LINKI_KIND=access or TRN_CONVERT_FORMAT=yaml.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbosity(viper.GetBool("verbose"), viper.GetBool("quiet"))
	},
}

// Execute runs the root command. An interrupt cancels work in progress.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Log debug output")
	flags.BoolP("quiet", "q", false, "Only output errors")
	flags.String("linki-kind", "", "Classify access and transfer rows: access, xfer, node")
	flags.Int("max-workers", 0, "Files processed at once (default: config maxWorkers, then CPU count)")

	viper.SetEnvPrefix("TRN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"verbose", "quiet", "linki-kind", "max-workers"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(keys.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(parse.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
