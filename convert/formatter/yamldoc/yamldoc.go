/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package yamldoc provides structural YAML formatting for transit networks.
package yamldoc

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/transitnet/convert/formatter"
	"bennypowers.dev/transitnet/network"
)

// Formatter outputs the structural document as YAML.
type Formatter struct {
	Serialize func(n *network.Network) *formatter.Document
}

// New creates a new YAML formatter with the given serialization function.
func New(serialize func(n *network.Network) *formatter.Document) *Formatter {
	return &Formatter{Serialize: serialize}
}

// Format converts n to YAML, preceded by opts.Header as # comments.
func (f *Formatter) Format(n *network.Network, opts formatter.Options) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(formatter.FormatHeader(opts.Header, "#"))

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(len(formatter.IndentOr(opts, "  ")))
	if err := enc.Encode(f.Serialize(n)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
