/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/transitnet/convert"
	"bennypowers.dev/transitnet/convert/formatter"
	"bennypowers.dev/transitnet/network"
	"bennypowers.dev/transitnet/testutil"
)

func loadNetwork(t *testing.T, name string) (*network.Network, []byte) {
	t.Helper()
	return testutil.LoadNetwork(t, name)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected convert.Format
		wantErr  bool
	}{
		{"lin", convert.FormatLin, false},
		{"", convert.FormatLin, false},
		{"cube", convert.FormatLin, false},
		{"native", convert.FormatLin, false},
		{"json", convert.FormatJSON, false},
		{"JSON", convert.FormatJSON, false},
		{"yaml", convert.FormatYAML, false},
		{"yml", convert.FormatYAML, false},
		{"invalid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestValidFormats(t *testing.T) {
	formats := convert.ValidFormats()

	expected := []string{"lin", "json", "yaml"}
	if len(formats) != len(expected) {
		t.Errorf("expected %d formats, got %d", len(expected), len(formats))
	}
	for _, exp := range expected {
		if !slices.Contains(formats, exp) {
			t.Errorf("expected format %q not found", exp)
		}
	}
}

// Fixtures are written in the same layout the lin formatter produces, so
// serializing a parsed fixture reproduces it.
func TestFormatNetwork_LinReproducesFixture(t *testing.T) {
	for _, name := range []string{"bus.lin", "pt.lin", "walk.access", "transfers.xfer"} {
		t.Run(name, func(t *testing.T) {
			n, data := loadNetwork(t, name)
			output, err := convert.FormatNetwork(n, convert.FormatLin, convert.DefaultOptions())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(output) != string(data) {
				t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", output, data)
			}
		})
	}
}

func TestFormatNetwork_LinRoundTrip(t *testing.T) {
	n, _ := loadNetwork(t, "bus.lin")

	l := network.NewTransitLine("73")
	l.Attrs.Set("LONGNAME", "Harbour Loop")
	l.Attrs.Set("MODE", "5")
	l.Nodes = append(l.Nodes, network.NewNode(100), network.NewNode(-102))
	l.Nodes[1].Comment = "skipped"
	n.Lines = append(n.Lines, network.Comment{Text: " added"}, l)

	dist, xfer := 2.0, 3
	n.Linkis = append(n.Linkis,
		&network.Linki{LinkiKind: network.LinkiAccess, A: 7, B: 100, Distance: &dist},
		&network.Linki{LinkiKind: network.LinkiAccess, A: 8, B: 101, XferTime: &xfer},
	)

	fs := &network.Faresystem{Number: 3}
	fs.Attrs.Set("NAME", "Night")
	n.Faresystems = append(n.Faresystems, fs)

	output, err := convert.FormatNetwork(n, convert.FormatLin, convert.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reparsed := testutil.ConvertSource(t, output, network.LinkiAccess)

	want := formatter.NewDocument(n)
	got := formatter.NewDocument(reparsed)

	// NUMBER is written ahead of the other attributes when missing.
	want.Faresystems[2].Attrs = append([]formatter.AttrDoc{{Key: "NUMBER", Value: "3"}}, want.Faresystems[2].Attrs...)

	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Errorf("round trip changed the network:\n%s", strings.Join(diff, "\n"))
	}
	if got := reparsed.Line("73"); got == nil || got.Nodes[1].Comment != "skipped" {
		t.Errorf("expected line 73 with node comment, got %# v", pretty.Formatter(got))
	}
}

func TestFormatNetwork_JSON(t *testing.T) {
	n, _ := loadNetwork(t, "bus.lin")
	output, err := convert.FormatNetwork(n, convert.FormatJSON, convert.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc formatter.Document
	if err := json.Unmarshal(output, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.Convention != "TRNBUILD" {
		t.Errorf("convention = %q, want TRNBUILD", doc.Convention)
	}
	if len(doc.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(doc.Lines))
	}
	if node := doc.Lines[0].Nodes[1]; node.Number != 101 || node.Stop {
		t.Errorf("node = %+v, want 101 without stop", node)
	}
	if doc.Lines[0].Comment != "crosstown" {
		t.Errorf("line comment = %q, want crosstown", doc.Lines[0].Comment)
	}
	if p := doc.PNRs[0]; p.Station != 500 || p.Lot != 501 {
		t.Errorf("pnr = %+v, want station 500 lot 501", p)
	}
	if got := doc.Faresystems[1].FareFromFS; !slices.Equal(got, []float64{1.5, 0}) {
		t.Errorf("fareFromFS = %v, want [1.5 0]", got)
	}
	if !strings.Contains(string(output), `"key": "FREQ[2]"`) {
		t.Error("expected indexed attribute FREQ[2]")
	}
}

func TestFormatNetwork_JSONGolden(t *testing.T) {
	n, _ := loadNetwork(t, "transfers.xfer")
	output, err := convert.FormatNetwork(n, convert.FormatJSON, convert.DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.UpdateGoldenFile(t, "golden/transfers.json", output)
	expected := testutil.LoadFixtureFile(t, "golden/transfers.json")
	if string(output) != string(expected) {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", output, expected)
	}
}

func TestFormatNetwork_YAML(t *testing.T) {
	n, _ := loadNetwork(t, "pt.lin")
	opts := convert.DefaultOptions()
	opts.Header = "generated by trn"

	output, err := convert.FormatNetwork(n, convert.FormatYAML, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(output), "# generated by trn\n\n") {
		t.Errorf("expected header comment, got %q", strings.SplitN(string(output), "\n", 2)[0])
	}
	if !strings.Contains(string(output), "points: [[0, 0], [10, 5], [60, 20]]") {
		t.Errorf("expected flow-style curve points in:\n%s", output)
	}

	var doc formatter.Document
	if err := yaml.Unmarshal(output, &doc); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if diff := pretty.Diff(convert.Serialize(n, opts), &doc); len(diff) > 0 {
		t.Errorf("decoded document differs:\n%s", strings.Join(diff, "\n"))
	}
}

func TestFormatNetwork_Unsupported(t *testing.T) {
	if _, err := convert.FormatNetwork(&network.Network{}, convert.Format("xml"), convert.DefaultOptions()); err == nil {
		t.Error("expected error for unsupported format")
	}
}
