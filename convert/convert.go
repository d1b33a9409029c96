/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert serializes transit networks to the native language and to
// structural JSON or YAML documents.
package convert

import (
	"bennypowers.dev/transitnet/convert/formatter"
	"bennypowers.dev/transitnet/network"
)

// Options configures network serialization behavior.
type Options struct {
	// Format specifies the output format (default FormatLin).
	Format Format

	// Header is written before the output as comments, in formats that
	// have them.
	Header string

	// Indent is the indentation unit for JSON and YAML.
	Indent string

	// StripComments drops file and record comments from structural
	// documents.
	StripComments bool
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Format: FormatLin,
		Indent: "  ",
	}
}

// Serialize converts a network to its structural document.
func Serialize(n *network.Network, opts Options) *formatter.Document {
	doc := formatter.NewDocument(n)
	if opts.StripComments {
		stripComments(doc)
	}
	return doc
}

func stripComments(doc *formatter.Document) {
	doc.Comments = nil
	doc.Trailer = nil
	for i := range doc.Lines {
		doc.Lines[i].Comment = ""
		for j := range doc.Lines[i].Nodes {
			doc.Lines[i].Nodes[j].Comment = ""
		}
	}
	for _, recs := range [][]formatter.PairDoc{doc.Links, doc.ZACs, doc.Supplinks} {
		for i := range recs {
			recs[i].Comment = ""
		}
	}
	for i := range doc.PNRs {
		doc.PNRs[i].Comment = ""
	}
	for i := range doc.Linkis {
		doc.Linkis[i].Comment = ""
	}
	for i := range doc.Factors {
		doc.Factors[i].Comment = ""
	}
	for i := range doc.Faresystems {
		doc.Faresystems[i].Comment = ""
	}
	if pt := doc.PTSystem; pt != nil {
		for _, cs := range [][]formatter.CurveDoc{pt.WaitCurves, pt.CrowdCurves} {
			for i := range cs {
				cs[i].Comment = ""
			}
		}
		for _, ds := range [][]formatter.DefinitionDoc{pt.Operators, pt.Modes, pt.VehicleTypes} {
			for i := range ds {
				ds[i].Comment = ""
			}
		}
	}
}
