/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package flags_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/transitnet/cmd/flags"
	"bennypowers.dev/transitnet/internal/mapfs"
	"bennypowers.dev/transitnet/network"
)

func TestLoadOptions(t *testing.T) {
	t.Cleanup(viper.Reset)
	mfs := mapfs.New()

	viper.Set("linki-kind", "transfer")
	viper.Set("max-workers", 3)
	opts, err := flags.LoadOptions(mfs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.LinkiKind != network.LinkiXfer || opts.MaxWorkers != 3 || opts.FS != mfs {
		t.Errorf("unexpected options: %+v", opts)
	}

	viper.Set("linki-kind", "walk")
	if _, err := flags.LoadOptions(mfs); !errors.Is(err, network.ErrUnknownLinkiKind) {
		t.Errorf("expected ErrUnknownLinkiKind, got %v", err)
	}
}

func TestBind(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "convert"}
		cmd.Flags().String("format", "lin", "")
		return cmd
	}

	tests := []struct {
		name     string
		args     []string
		env      string
		fallback any
		want     string
	}{
		{"flag default", nil, "", nil, "lin"},
		{"config fallback", nil, "", "yaml", "yaml"},
		{"environment over config", nil, "json", "yaml", "json"},
		{"flag over environment", []string{"--format", "lin"}, "json", "yaml", "lin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			viper.SetEnvPrefix("TRN")
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
			viper.AutomaticEnv()
			if tt.env != "" {
				t.Setenv("TRN_CONVERT_FORMAT", tt.env)
			}

			cmd := newCmd()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			key := flags.Bind(cmd, "format", tt.fallback)
			if got := viper.GetString(key); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
