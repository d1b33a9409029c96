/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package testutil

import (
	"path"
	"testing"

	"bennypowers.dev/transitnet/converter"
	"bennypowers.dev/transitnet/network"
	"bennypowers.dev/transitnet/parser"
)

// ConvertSource parses and converts data, failing the test on error.
func ConvertSource(t *testing.T, data []byte, kind network.LinkiKind) *network.Network {
	t.Helper()

	f, err := parser.Parse(data)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	n, err := converter.Convert(f, converter.Options{LinkiKind: kind})
	if err != nil {
		t.Fatalf("failed to convert: %v", err)
	}
	return n
}

// LoadNetwork converts testdata/networks/name, classifying linki rows by
// the file suffix. It also returns the fixture source.
func LoadNetwork(t *testing.T, name string) (*network.Network, []byte) {
	t.Helper()

	data := LoadFixtureFile(t, path.Join("networks", name))
	return ConvertSource(t, data, network.LinkiKindForPath(name)), data
}
