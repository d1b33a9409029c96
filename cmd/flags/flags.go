/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flags reads the settings shared by every trn command.
package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/transitnet/config"
	"bennypowers.dev/transitnet/fs"
	"bennypowers.dev/transitnet/load"
	"bennypowers.dev/transitnet/network"
)

// LoadOptions builds load options over filesystem from the persistent flags.
func LoadOptions(filesystem fs.FileSystem) (load.Options, error) {
	kind, err := network.ParseLinkiKind(viper.GetString("linki-kind"))
	if err != nil {
		return load.Options{}, err
	}
	return load.Options{
		FS:         filesystem,
		LinkiKind:  kind,
		MaxWorkers: viper.GetInt("max-workers"),
	}, nil
}

// Bind binds the flag name of cmd to the key "<command>.<name>", so
// TRN_<COMMAND>_<NAME> sets it as well. A fallback from the config file
// applies when neither the flag nor the environment does; nil keeps the flag
// default.
func Bind(cmd *cobra.Command, name string, fallback any) string {
	key := cmd.Name() + "." + name
	_ = viper.BindPFlag(key, cmd.Flags().Lookup(name))
	if fallback != nil {
		viper.SetDefault(key, fallback)
	}
	return key
}

// Config loads the project config from the working directory.
func Config(filesystem fs.FileSystem) *config.Config {
	return config.LoadOrDefault(filesystem, ".")
}
