/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	convertlib "bennypowers.dev/transitnet/convert"
	"bennypowers.dev/transitnet/internal/logger"
	"bennypowers.dev/transitnet/internal/mapfs"
	"bennypowers.dev/transitnet/load"
	"bennypowers.dev/transitnet/testutil"
)

func TestMain(m *testing.M) {
	logger.SetVerbosity(false, true)
	os.Exit(m.Run())
}

func setup(t *testing.T, paths ...string) (*mapfs.MapFileSystem, []load.Result) {
	t.Helper()
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")
	results, err := load.LoadAll(t.Context(), paths, load.Options{Root: "/project", FS: mfs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return mfs, results
}

func TestConverter_InPlace(t *testing.T) {
	mfs, results := setup(t, "net/bus.lin", "net/pt.lin")
	before, err := mfs.ReadFile("/project/net/bus.lin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := &converter{fs: mfs, opts: convertlib.DefaultOptions()}
	if err := c.inPlace(results); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, err := mfs.ReadFile("/project/net/bus.lin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(after) != string(before) {
		t.Errorf("expected canonical file to be unchanged, got:\n%s", after)
	}
	for _, f := range mfs.Files() {
		if strings.HasSuffix(f, ".trn-tmp") {
			t.Errorf("temporary file left behind: %s", f)
		}
	}
}

func TestConverter_Combined(t *testing.T) {
	t.Run("lin to file", func(t *testing.T) {
		mfs, results := setup(t, "net/bus.lin", "net/pt.lin")
		c := &converter{fs: mfs, opts: convertlib.DefaultOptions()}
		if err := c.combined(results, "/project/out/all.lin"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		data, err := mfs.ReadFile("/project/out/all.lin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{`LINE NAME="71"`, `LINE NAME="EXP1"`, "MODE NUMBER=11"} {
			if !strings.Contains(string(data), want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("json to stdout", func(t *testing.T) {
		mfs, results := setup(t, "net/bus.lin", "net/pt.lin")
		var stdout bytes.Buffer
		opts := convertlib.DefaultOptions()
		opts.Format = convertlib.FormatJSON
		c := &converter{fs: mfs, stdout: &stdout, opts: opts}
		if err := c.combined(results, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var doc struct {
			Lines []struct {
				Name string `json:"name"`
			} `json:"lines"`
		}
		if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if len(doc.Lines) != 3 {
			t.Errorf("expected 3 lines, got %d", len(doc.Lines))
		}
	})

	t.Run("load error", func(t *testing.T) {
		mfs, results := setup(t, "net/bus.lin", "net/missing.lin")
		c := &converter{fs: mfs, stdout: &bytes.Buffer{}, opts: convertlib.DefaultOptions()}
		if err := c.combined(results, ""); err == nil {
			t.Error("expected error for a missing file")
		}
	})
}
