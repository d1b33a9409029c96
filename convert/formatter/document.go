/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package formatter

import (
	"bennypowers.dev/transitnet/network"
)

// Document is the structural form of a network shared by the JSON and YAML
// formatters. Standalone comments inside collections are omitted.
type Document struct {
	Convention  string          `json:"convention" yaml:"convention"`
	Comments    []string        `json:"comments,omitempty" yaml:"comments,omitempty"`
	Lines       []LineDoc       `json:"lines,omitempty" yaml:"lines,omitempty"`
	Links       []PairDoc       `json:"links,omitempty" yaml:"links,omitempty"`
	PNRs        []PNRDoc        `json:"pnrs,omitempty" yaml:"pnrs,omitempty"`
	ZACs        []PairDoc       `json:"zoneAccess,omitempty" yaml:"zoneAccess,omitempty"`
	Linkis      []LinkiDoc      `json:"linkis,omitempty" yaml:"linkis,omitempty"`
	Supplinks   []PairDoc       `json:"supplinks,omitempty" yaml:"supplinks,omitempty"`
	Factors     []RecordDoc     `json:"factors,omitempty" yaml:"factors,omitempty"`
	Faresystems []FaresystemDoc `json:"faresystems,omitempty" yaml:"faresystems,omitempty"`
	PTSystem    *PTSystemDoc    `json:"ptSystem,omitempty" yaml:"ptSystem,omitempty"`
	Trailer     []string        `json:"trailer,omitempty" yaml:"trailer,omitempty"`
}

// AttrDoc is one attribute. A list keeps source order.
type AttrDoc struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// RecordDoc carries the attributes and comment every record has.
type RecordDoc struct {
	Attrs   []AttrDoc `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Comment string    `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// NodeDoc is one node of a line.
type NodeDoc struct {
	Number  int       `json:"number" yaml:"number"`
	Stop    bool      `json:"stop" yaml:"stop"`
	Attrs   []AttrDoc `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Comment string    `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// LineDoc is a LINE record.
type LineDoc struct {
	Name      string    `json:"name" yaml:"name"`
	RecordDoc `yaml:",inline"`
	Nodes     []NodeDoc `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

// PairDoc is a record addressed by a node pair.
type PairDoc struct {
	A         int `json:"a" yaml:"a"`
	B         int `json:"b" yaml:"b"`
	RecordDoc `yaml:",inline"`
}

// PNRDoc is a PNR record.
type PNRDoc struct {
	Station   int `json:"station" yaml:"station"`
	Lot       int `json:"lot,omitempty" yaml:"lot,omitempty"`
	RecordDoc `yaml:",inline"`
}

// LinkiDoc is one access, transfer or node row.
type LinkiDoc struct {
	Kind       string   `json:"kind" yaml:"kind"`
	A          int      `json:"a" yaml:"a"`
	B          int      `json:"b" yaml:"b"`
	Distance   *float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
	XferTime   *int     `json:"xferTime,omitempty" yaml:"xferTime,omitempty"`
	AccessType string   `json:"accessType,omitempty" yaml:"accessType,omitempty"`
	Comment    string   `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// FaresystemDoc is a FARESYSTEM record.
type FaresystemDoc struct {
	Number     int       `json:"number" yaml:"number"`
	FareFromFS []float64 `json:"fareFromFS,omitempty" yaml:"fareFromFS,omitempty,flow"`
	RecordDoc  `yaml:",inline"`
}

// DefinitionDoc is a PT system definition.
type DefinitionDoc struct {
	Number    int `json:"number" yaml:"number"`
	RecordDoc `yaml:",inline"`
}

// CurveDoc is a wait or crowding curve.
type CurveDoc struct {
	Number    int          `json:"number" yaml:"number"`
	Points    [][2]float64 `json:"points,omitempty" yaml:"points,omitempty,flow"`
	RecordDoc `yaml:",inline"`
}

// PTSystemDoc is the PT system definitions.
type PTSystemDoc struct {
	WaitCurves   []CurveDoc      `json:"waitCurves,omitempty" yaml:"waitCurves,omitempty"`
	CrowdCurves  []CurveDoc      `json:"crowdCurves,omitempty" yaml:"crowdCurves,omitempty"`
	Operators    []DefinitionDoc `json:"operators,omitempty" yaml:"operators,omitempty"`
	Modes        []DefinitionDoc `json:"modes,omitempty" yaml:"modes,omitempty"`
	VehicleTypes []DefinitionDoc `json:"vehicleTypes,omitempty" yaml:"vehicleTypes,omitempty"`
}

// NewDocument builds the structural form of n.
func NewDocument(n *network.Network) *Document {
	doc := &Document{
		Convention: n.Convention.String(),
		Comments:   nonEmpty(n.Comments),
		Trailer:    nonEmpty(n.Trailer),
	}
	for _, l := range n.TransitLines() {
		ld := LineDoc{Name: l.Name(), RecordDoc: record(l.Attrs, l.Comment)}
		for _, node := range l.Nodes {
			ld.Nodes = append(ld.Nodes, NodeDoc{
				Number:  node.Num(),
				Stop:    node.IsStop(),
				Attrs:   attrs(node.Attrs),
				Comment: node.Comment,
			})
		}
		doc.Lines = append(doc.Lines, ld)
	}
	for _, l := range n.TransitLinks() {
		doc.Links = append(doc.Links, PairDoc{A: l.A, B: l.B, RecordDoc: record(l.Attrs, l.Comment)})
	}
	for _, p := range n.PNRLinks() {
		doc.PNRs = append(doc.PNRs, PNRDoc{Station: p.Station, Lot: p.Lot, RecordDoc: record(p.Attrs, p.Comment)})
	}
	for _, z := range n.ZACLinks() {
		doc.ZACs = append(doc.ZACs, PairDoc{A: z.A, B: z.B, RecordDoc: record(z.Attrs, z.Comment)})
	}
	for _, l := range n.LinkiRecords() {
		doc.Linkis = append(doc.Linkis, LinkiDoc{
			Kind:       l.LinkiKind.String(),
			A:          l.A,
			B:          l.B,
			Distance:   l.Distance,
			XferTime:   l.XferTime,
			AccessType: l.AccessType,
			Comment:    l.Comment,
		})
	}
	for _, s := range n.SupplinkRecords() {
		doc.Supplinks = append(doc.Supplinks, PairDoc{A: s.A, B: s.B, RecordDoc: record(s.Attrs, s.Comment)})
	}
	for _, f := range n.FactorRecords() {
		doc.Factors = append(doc.Factors, record(f.Attrs, f.Comment))
	}
	for _, f := range n.FaresystemRecords() {
		doc.Faresystems = append(doc.Faresystems, FaresystemDoc{
			Number:     f.Number,
			FareFromFS: f.FareFromFS,
			RecordDoc:  record(f.Attrs, f.Comment),
		})
	}
	if n.PTSystem != nil {
		doc.PTSystem = ptSystem(n.PTSystem)
	}
	return doc
}

func ptSystem(p *network.PTSystem) *PTSystemDoc {
	return &PTSystemDoc{
		WaitCurves:   curves(p.WaitCurves.Values()),
		CrowdCurves:  curves(p.CrowdCurves.Values()),
		Operators:    definitions(p.Operators.Values()),
		Modes:        definitions(p.Modes.Values()),
		VehicleTypes: definitions(p.VehicleTypes.Values()),
	}
}

func curves(cs []*network.Curve) []CurveDoc {
	var out []CurveDoc
	for _, c := range cs {
		cd := CurveDoc{Number: c.Number, RecordDoc: record(c.Attrs, c.Comment)}
		for _, p := range c.Points {
			cd.Points = append(cd.Points, [2]float64{p.X, p.Y})
		}
		out = append(out, cd)
	}
	return out
}

func definitions(ds []*network.Definition) []DefinitionDoc {
	var out []DefinitionDoc
	for _, d := range ds {
		out = append(out, DefinitionDoc{Number: d.Number, RecordDoc: record(d.Attrs, d.Comment)})
	}
	return out
}

func record(a network.Attrs, comment string) RecordDoc {
	return RecordDoc{Attrs: attrs(a), Comment: comment}
}

func attrs(a network.Attrs) []AttrDoc {
	if len(a) == 0 {
		return nil
	}
	out := make([]AttrDoc, len(a))
	for i, attr := range a {
		out[i] = AttrDoc{Key: attr.Key, Value: attr.Value}
	}
	return out
}

func nonEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
