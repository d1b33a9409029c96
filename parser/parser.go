/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser parses transit network files into parse trees.
package parser

import (
	"fmt"

	"bennypowers.dev/transitnet/fs"
	"bennypowers.dev/transitnet/grammar"
	"bennypowers.dev/transitnet/tree"
)

// Parser parses transit files.
type Parser interface {
	// Parse parses transit data and returns its tree.
	Parse(data []byte) (*tree.File, error)

	// ParseFile reads and parses a transit file.
	ParseFile(filesystem fs.FileSystem, path string) (*tree.File, error)
}

// TransitParser parses the transit network description language.
type TransitParser struct{}

// NewTransitParser creates a parser over the shared transit grammar.
func NewTransitParser() *TransitParser {
	return &TransitParser{}
}

// Parse parses data. Input the grammar cannot consume completely yields a
// *grammar.ParseError and no tree.
func (p *TransitParser) Parse(data []byte) (*tree.File, error) {
	root, err := grammar.Parse(data)
	if err != nil {
		return nil, err
	}
	return tree.Build(data, root)
}

// ParseFile reads path from filesystem and parses it.
func (p *TransitParser) ParseFile(filesystem fs.FileSystem, path string) (*tree.File, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses data with a TransitParser.
func Parse(data []byte) (*tree.File, error) {
	return NewTransitParser().Parse(data)
}
