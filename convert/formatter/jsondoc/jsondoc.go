/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package jsondoc provides structural JSON formatting for transit networks.
package jsondoc

import (
	"encoding/json"

	"bennypowers.dev/transitnet/convert/formatter"
	"bennypowers.dev/transitnet/network"
)

// Formatter outputs the structural document as indented JSON.
type Formatter struct {
	// Serialize converts a network to its structural document.
	// This allows the formatter to use the serialization logic from the convert package.
	Serialize func(n *network.Network) *formatter.Document
}

// New creates a new JSON formatter with the given serialization function.
func New(serialize func(n *network.Network) *formatter.Document) *Formatter {
	return &Formatter{Serialize: serialize}
}

// Format converts n to JSON. JSON carries no comments, so opts.Header is
// ignored.
func (f *Formatter) Format(n *network.Network, opts formatter.Options) ([]byte, error) {
	out, err := json.MarshalIndent(f.Serialize(n), "", formatter.IndentOr(opts, "  "))
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
