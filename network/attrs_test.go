/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package network_test

import (
	"slices"
	"testing"

	"bennypowers.dev/transitnet/network"
)

func TestAttrs_SetKeepsOrderAndQuote(t *testing.T) {
	var a network.Attrs
	a.SetQuoted("name", "71", network.DoubleQuote)
	a.Set("Mode", "5")
	a.Set("NAME", "72")

	if got := a.Keys(); !slices.Equal(got, []string{"NAME", "MODE"}) {
		t.Errorf("Keys() = %v", got)
	}
	attr, ok := a.Lookup("name")
	if !ok {
		t.Fatal("expected NAME")
	}
	if attr.Value != "72" || attr.Quote != network.DoubleQuote {
		t.Errorf("NAME = %+v, want value 72 with double quote", attr)
	}
	if !a.Delete("mode") || a.Has("MODE") {
		t.Error("Delete(mode) did not remove MODE")
	}
	if a.Delete("mode") {
		t.Error("second Delete(mode) reported success")
	}
}

func TestAttr_Literal(t *testing.T) {
	tests := []struct {
		name string
		attr network.Attr
		want string
	}{
		{"bare", network.Attr{Value: "5"}, "5"},
		{"negative decimal", network.Attr{Value: "-1.5"}, "-1.5"},
		{"needs quotes", network.Attr{Value: "Red Line"}, `"Red Line"`},
		{"single", network.Attr{Value: "71", Quote: network.SingleQuote}, "'71'"},
		{"double", network.Attr{Value: "71", Quote: network.DoubleQuote}, `"71"`},
		{"empty", network.Attr{}, `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.attr.Literal(); got != tt.want {
				t.Errorf("Literal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttrs_Extensions(t *testing.T) {
	var a network.Attrs
	a.Set("NAME", "x")
	a.Set("FREQ[2]", "10")
	a.Set("USERA1", "a")
	a.Set("CUSTOM", "1")

	ext := a.Extensions(network.LineKeys)
	if got := ext.Keys(); !slices.Equal(got, []string{"CUSTOM"}) {
		t.Errorf("Extensions() = %v, want [CUSTOM]", got)
	}
}

func TestAttrs_Equal(t *testing.T) {
	var a, b network.Attrs
	a.SetQuoted("NAME", "x", network.DoubleQuote)
	b.Set("name", "x")
	if !a.Equal(b) {
		t.Error("Equal() ignored quote style incorrectly")
	}
	b.Set("MODE", "1")
	if a.Equal(b) {
		t.Error("Equal() = true for different lengths")
	}
}

func TestCanonicalKey(t *testing.T) {
	if got := network.CanonicalKey(" headway[1] "); got != "HEADWAY[1]" {
		t.Errorf("CanonicalKey() = %q", got)
	}
}
