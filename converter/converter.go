/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package converter folds a transit parse tree into a network.Network.
//
// Each record kind has its own fold over the items collected for it. Folds
// are pure: they read items in source order and return rows, never touching
// shared state. The first item that breaks a fold's expectations aborts the
// conversion with an *InvariantError.
package converter

import (
	"fmt"

	"bennypowers.dev/transitnet/convention"
	"bennypowers.dev/transitnet/internal/logger"
	"bennypowers.dev/transitnet/network"
	"bennypowers.dev/transitnet/tree"
)

// Options configure a conversion.
type Options struct {
	// LinkiKind classifies access rows. Rows found while it is LinkiUnknown
	// fail the conversion with ErrUnclassifiedLinki.
	LinkiKind network.LinkiKind
}

// Converter holds the state of one conversion. Call Reset before reusing a
// Converter for another file.
type Converter struct {
	opts    Options
	used    bool
	buckets *tree.Buckets
	net     *network.Network
}

// New creates a Converter.
func New(opts Options) *Converter {
	return &Converter{opts: opts}
}

// Reset clears the state left by a previous conversion.
func (c *Converter) Reset() {
	c.used = false
	c.buckets = nil
	c.net = nil
}

// Convert converts f. On error no partial network is returned.
func (c *Converter) Convert(f *tree.File) (*network.Network, error) {
	if c.used {
		return nil, ErrNotReset
	}
	c.used = true
	c.buckets = tree.Collect(f)
	c.net = &network.Network{}

	c.convertHeader()
	steps := []struct {
		name string
		run  func() error
	}{
		{"lines", c.runRows(&c.net.Lines, func() ([]network.Row, error) { return convertLines(c.buckets.Lines) })},
		{"links", c.runRows(&c.net.Links, func() ([]network.Row, error) { return convertLinks(c.buckets.Links) })},
		{"pnrs", c.runRows(&c.net.PNRs, func() ([]network.Row, error) { return convertPNRs(c.buckets.PNRs) })},
		{"zone access", c.runRows(&c.net.ZACs, func() ([]network.Row, error) { return convertZACs(c.buckets.ZACs) })},
		{"linkis", c.runRows(&c.net.Linkis, c.convertLinkis)},
		{"supplinks", c.runRows(&c.net.Supplinks, func() ([]network.Row, error) { return convertSupplinks(c.buckets.Supplinks) })},
		{"factors", c.runRows(&c.net.Factors, func() ([]network.Row, error) { return convertFactors(c.buckets.Factors) })},
		{"faresystems", c.runRows(&c.net.Faresystems, func() ([]network.Row, error) { return convertFaresystems(c.buckets.Faresystems) })},
		{"pt system", c.convertPTSystem},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return nil, fmt.Errorf("converting %s: %w", step.name, err)
		}
	}
	return c.net, nil
}

func (c *Converter) runRows(dst *[]network.Row, conv func() ([]network.Row, error)) func() error {
	return func() error {
		rows, err := conv()
		if err != nil {
			return err
		}
		*dst = rows
		return nil
	}
}

func (c *Converter) convertHeader() {
	c.net.Convention = convention.Detect(commentBodies(c.buckets.Comments))
	if c.net.Convention == convention.Unknown {
		logger.Debug("no convention marker found")
	}
	c.net.Comments = commentBodies(c.buckets.Header)
	c.net.Trailer = commentBodies(c.buckets.Trailer)
}

func (c *Converter) convertLinkis() ([]network.Row, error) {
	if len(c.buckets.Linkis) == 0 {
		return nil, nil
	}
	if c.opts.LinkiKind == network.LinkiUnknown {
		return nil, ErrUnclassifiedLinki
	}
	return convertLinkis(c.buckets.Linkis, c.opts.LinkiKind)
}

func (c *Converter) convertPTSystem() error {
	pts, err := convertPTSystem(c.buckets)
	if err != nil {
		return err
	}
	c.net.PTSystem = pts
	return nil
}

// Convert converts f with a fresh Converter.
func Convert(f *tree.File, opts Options) (*network.Network, error) {
	return New(opts).Convert(f)
}
