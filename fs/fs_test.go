/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package fs_test

import (
	"path/filepath"
	"slices"
	"testing"

	trnfs "bennypowers.dev/transitnet/fs"
	"bennypowers.dev/transitnet/internal/mapfs"
)

func TestWriteFileAtomic_MapFS(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/net/bus.lin", "LINE NAME=\"1\",\n", 0600)

	if err := trnfs.WriteFileAtomic(mfs, "/net/bus.lin", []byte("LINE NAME=\"2\",\n"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := mfs.ReadFile("/net/bus.lin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "LINE NAME=\"2\",\n" {
		t.Errorf("expected replaced content, got %q", data)
	}
	info, err := mfs.Stat("/net/bus.lin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected permissions to be kept, got %v", info.Mode().Perm())
	}
	if got := mfs.Files(); !slices.Equal(got, []string{"/net/bus.lin"}) {
		t.Errorf("expected temporary file to be gone, got %v", got)
	}
}

func TestWriteFileAtomic_OS(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "walk.access")
	osfs := trnfs.NewOSFileSystem()

	if err := trnfs.WriteFileAtomic(osfs, name, []byte("1 2 0.5\n"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !osfs.Exists(name) || osfs.Exists(name+".trn-tmp") {
		t.Error("expected the target file and no temporary file")
	}
	entries, err := osfs.ReadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected one entry, got %d", len(entries))
	}
}

func TestMapFS_Rename(t *testing.T) {
	mfs := mapfs.New()
	if err := mfs.Rename("/missing", "/other"); err == nil {
		t.Error("expected error renaming a missing file")
	}
	mfs.AddFile("/a.lin", "x", 0644)
	if err := mfs.Rename("/a.lin", "/b/a.lin"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mfs.Exists("/a.lin") || !mfs.Exists("/b") {
		t.Errorf("unexpected files after rename: %v", mfs.Files())
	}
}
