/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"testing"

	"bennypowers.dev/transitnet/network"
	"bennypowers.dev/transitnet/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if len(cfg.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(cfg.Files))
	}

	if cfg.Files[0].Path != "net/*.lin" {
		t.Errorf("expected file path 'net/*.lin', got %q", cfg.Files[0].Path)
	}

	if cfg.Files[1].Path != "net/centroids.acc" || cfg.Files[1].Kind != "access" {
		t.Errorf("expected access file spec, got %+v", cfg.Files[1])
	}

	if cfg.LinkiKinds["wlk"] != "access" {
		t.Errorf("expected linkiKinds wlk=access, got %v", cfg.LinkiKinds)
	}

	if cfg.Format != "yaml" || !cfg.Strict || cfg.Workers() != 4 {
		t.Errorf("unexpected options: format=%q strict=%v workers=%d", cfg.Format, cfg.Strict, cfg.Workers())
	}
}

func TestLoad_JSONWithComments(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/jsonc", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if len(cfg.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(cfg.Files))
	}

	if cfg.Files[1].Path != "access/centroids.wlk" {
		t.Errorf("expected path 'access/centroids.wlk', got %q", cfg.Files[1].Path)
	}

	if cfg.Format != "json" {
		t.Errorf("expected format 'json', got %q", cfg.Format)
	}
}

func TestLoad_BadKind(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/bad-kind", "/project")

	_, err := Load(mfs, "/project")
	if !errors.Is(err, network.ErrUnknownLinkiKind) {
		t.Errorf("expected ErrUnknownLinkiKind, got %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/none", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg != nil {
		t.Errorf("expected nil config when not found, got %+v", cfg)
	}
}

func TestLoadOrDefault_Found(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg := LoadOrDefault(mfs, "/project")
	if cfg.Format != "yaml" {
		t.Errorf("expected format 'yaml', got %q", cfg.Format)
	}
}

func TestLoadOrDefault_NotFound(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/none", "/project")

	cfg := LoadOrDefault(mfs, "/project")
	if cfg == nil {
		t.Fatal("expected default config, got nil")
	}

	if len(cfg.Files) != 0 || cfg.Strict {
		t.Errorf("expected empty default, got %+v", cfg)
	}
}

func TestConfig_ResolveFiles(t *testing.T) {
	tests := []struct {
		fixture string
		want    []File
	}{
		{
			fixture: "fixtures/config/yaml",
			want: []File{
				{Path: "/project/net/bus.lin"},
				{Path: "/project/net/pt.lin"},
				{Path: "/project/net/centroids.acc", Kind: network.LinkiAccess},
			},
		},
		{
			fixture: "fixtures/config/jsonc",
			want: []File{
				{Path: "/project/lines/east/bus.lin"},
				{Path: "/project/access/centroids.wlk", Kind: network.LinkiAccess},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			mfs := testutil.NewFixtureFS(t, tt.fixture, "/project")
			cfg := LoadOrDefault(mfs, "/project")

			files, err := cfg.ResolveFiles(mfs, "/project")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(files) != len(tt.want) {
				t.Fatalf("expected %d files, got %d: %v", len(tt.want), len(files), files)
			}
			for i, f := range files {
				if f != tt.want[i] {
					t.Errorf("files[%d]: expected %+v, got %+v", i, tt.want[i], f)
				}
			}

			paths, err := cfg.ExpandFiles(mfs, "/project")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(paths) != len(tt.want) || paths[0] != tt.want[0].Path {
				t.Errorf("ExpandFiles() = %v", paths)
			}
		})
	}
}

func TestConfig_LinkiKindFor(t *testing.T) {
	cfg := &Config{LinkiKinds: map[string]string{"WLK": "access", "access": "node"}}

	tests := []struct {
		path string
		want network.LinkiKind
	}{
		{"net/centroids.wlk", network.LinkiAccess},
		{"net/walk.access", network.LinkiNode},
		{"net/transfers.xfer", network.LinkiXfer},
		{"net/lines.lin", network.LinkiUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := cfg.LinkiKindFor(tt.path); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestConfig_FilePaths(t *testing.T) {
	cfg := &Config{
		Files: []FileSpec{
			{Path: "./lines.lin"},
			{Path: "./access/*.access", Kind: "access"},
		},
	}

	paths := cfg.FilePaths()
	expected := []string{"./lines.lin", "./access/*.access"}
	if len(paths) != len(expected) {
		t.Fatalf("expected %d paths, got %d", len(expected), len(paths))
	}
	for i, path := range paths {
		if path != expected[i] {
			t.Errorf("paths[%d]: expected %q, got %q", i, expected[i], path)
		}
	}
}

func TestConfig_Workers(t *testing.T) {
	if got := Default().Workers(); got < 1 {
		t.Errorf("expected at least one worker by default, got %d", got)
	}
}
