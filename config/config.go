/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for transit network tooling.
package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/transitnet/network"
)

// Config represents the transit network configuration.
type Config struct {
	// Files specifies network files to load (paths or specs).
	Files []FileSpec `yaml:"files" json:"files"`

	// LinkiKinds maps file suffixes to linki kinds, overriding the
	// built-in access, xfer and node suffixes.
	LinkiKinds map[string]string `yaml:"linkiKinds" json:"linkiKinds"`

	// Format is the default output format for convert.
	// Valid values: "lin", "json", "yaml"
	Format string `yaml:"format" json:"format"`

	// Strict treats validation warnings as errors.
	Strict bool `yaml:"strict" json:"strict"`

	// MaxWorkers bounds concurrent file processing. Zero means one worker
	// per CPU.
	MaxWorkers int `yaml:"maxWorkers" json:"maxWorkers"`
}

// FileSpec represents a network file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// Kind overrides the linki kind for this file.
	Kind string `yaml:"kind" json:"kind"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// File is a network file to load with its resolved linki kind.
type File struct {
	Path string
	Kind network.LinkiKind
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Files:      nil,
		LinkiKinds: nil,
		Format:     "",
		Strict:     false,
		MaxWorkers: 0,
	}
}

// Validate checks that every linki kind in c names a known kind.
func (c *Config) Validate() error {
	for suffix, kind := range c.LinkiKinds {
		if _, err := network.ParseLinkiKind(kind); err != nil {
			return fmt.Errorf("linkiKinds.%s: %w", suffix, err)
		}
	}
	for _, spec := range c.Files {
		if _, err := network.ParseLinkiKind(spec.Kind); err != nil {
			return fmt.Errorf("files %s: %w", spec.Path, err)
		}
	}
	return nil
}

// Workers returns the bound for concurrent file processing.
func (c *Config) Workers() int {
	if c.MaxWorkers > 0 {
		return c.MaxWorkers
	}
	return runtime.NumCPU()
}

// LinkiKindFor classifies the file at path. A suffix listed in LinkiKinds
// takes precedence over the built-in suffixes.
func (c *Config) LinkiKindFor(path string) network.LinkiKind {
	suffix := strings.TrimPrefix(filepath.Ext(path), ".")
	for s, kind := range c.LinkiKinds {
		if !strings.EqualFold(s, suffix) {
			continue
		}
		if k, err := network.ParseLinkiKind(kind); err == nil {
			return k
		}
	}
	return network.LinkiKindForPath(path)
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
