/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading transit networks.
package load

import (
	"cmp"
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/sourcegraph/conc/pool"

	"bennypowers.dev/transitnet/config"
	"bennypowers.dev/transitnet/converter"
	"bennypowers.dev/transitnet/fs"
	"bennypowers.dev/transitnet/internal/logger"
	"bennypowers.dev/transitnet/network"
	"bennypowers.dev/transitnet/parser"
	"bennypowers.dev/transitnet/tree"
)

// Options configures how networks are loaded.
type Options struct {
	// Root is the directory relative paths and the config file are resolved
	// against. Defaults to the working directory.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// LinkiKind classifies linki rows in every file.
	// Takes precedence over config file and file suffix if set.
	LinkiKind network.LinkiKind

	// MaxWorkers bounds concurrent loads in LoadAll.
	// Takes precedence over config file if set.
	MaxWorkers int
}

// Result is the outcome of loading one file.
type Result struct {
	// Index is the position of Path in the LoadAll input.
	Index   int
	Path    string
	Tree    *tree.File
	Network *network.Network
	Err     error
}

type loader struct {
	fs   fs.FileSystem
	root string
	cfg  *config.Config
	opts Options
}

func newLoader(opts Options) (*loader, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	// Ensure root is absolute
	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	// Load config file (optional - not an error if missing)
	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	return &loader{fs: filesystem, root: root, cfg: cfg, opts: opts}, nil
}

// Load parses and converts the network file at path.
//
// The loading process:
//  1. Optionally loads config from .config/transitnet.yaml
//  2. Classifies linki rows from Options, config, or the file suffix
//  3. Parses the file into a tree
//  4. Converts the tree into a network
func Load(ctx context.Context, path string, opts Options) (*network.Network, error) {
	l, err := newLoader(opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r := l.load(path)
	return r.Network, r.Err
}

// LoadAll loads paths concurrently with a bounded pool. Each file gets its
// own parser and converter. Results are in input order, and a failed file
// does not stop the others. Cancelling ctx skips files not yet started.
func LoadAll(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	l, err := newLoader(opts)
	if err != nil {
		return nil, err
	}

	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = l.cfg.Workers()
	}

	p := pool.NewWithResults[Result]().WithMaxGoroutines(workers)
	for i, path := range paths {
		p.Go(func() Result {
			if err := ctx.Err(); err != nil {
				return Result{Index: i, Path: path, Err: err}
			}
			r := l.load(path)
			r.Index = i
			return r
		})
	}

	results := p.Wait()
	slices.SortFunc(results, func(a, b Result) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return results, nil
}

// Files returns the files named by the config "files" list, relative to
// opts.Root.
func Files(opts Options) ([]config.File, error) {
	l, err := newLoader(opts)
	if err != nil {
		return nil, err
	}
	return l.cfg.ResolveFiles(l.fs, l.root)
}

func (l *loader) load(path string) Result {
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.root, path)
	}
	r := Result{Path: path}

	f, err := parser.NewTransitParser().ParseFile(l.fs, path)
	if err != nil {
		r.Err = err
		return r
	}
	r.Tree = f

	kind := l.kindFor(path)
	logger.Debug("converting %s (linki kind %q)", path, kind)
	n, err := converter.New(converter.Options{LinkiKind: kind}).Convert(f)
	if err != nil {
		r.Err = fmt.Errorf("%s: %w", path, err)
		return r
	}
	r.Network = n
	return r
}

func (l *loader) kindFor(path string) network.LinkiKind {
	if l.opts.LinkiKind != network.LinkiUnknown {
		return l.opts.LinkiKind
	}
	for _, f := range l.resolved() {
		if f.Path == path && f.Kind != network.LinkiUnknown {
			return f.Kind
		}
	}
	return l.cfg.LinkiKindFor(path)
}

// resolved lists the config files, ignoring expansion errors; a file that
// is not listed falls back to suffix classification.
func (l *loader) resolved() []config.File {
	files, err := l.cfg.ResolveFiles(l.fs, l.root)
	if err != nil {
		return nil
	}
	return files
}
