/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lin writes networks back out in the transit description language.
package lin

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/transitnet/convert/formatter"
	"bennypowers.dev/transitnet/network"
)

// rawKeys hold sequences written without quotes even though they contain
// separators.
var rawKeys = network.NewKeySet("MODES", "ZONES", "NODES", "FAREFROMFS", "CURVE")

// Formatter outputs the native description language.
type Formatter struct{}

// New creates a new lin formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format serializes n. Access rows come first, since a bare node row after
// a line would read as more of its nodes.
func (f *Formatter) Format(n *network.Network, opts formatter.Options) ([]byte, error) {
	w := &writer{}
	for _, c := range n.Comments {
		w.line(";" + c)
	}
	w.b.WriteString(formatter.FormatHeader(opts.Header, ";"))

	sections := [][]network.Row{
		n.Linkis, n.Lines, n.Links, n.PNRs, n.ZACs, n.Supplinks, n.Factors, n.Faresystems,
	}
	for _, rows := range sections {
		for _, r := range rows {
			if err := w.row(r); err != nil {
				return nil, err
			}
		}
	}
	if n.PTSystem != nil {
		w.ptSystem(n.PTSystem)
	}
	for _, c := range n.Trailer {
		w.line(";" + c)
	}
	return []byte(w.b.String()), nil
}

type writer struct {
	b strings.Builder
}

func (w *writer) line(s string) {
	w.b.WriteString(s)
	w.b.WriteString("\n")
}

func (w *writer) row(r network.Row) error {
	switch r := r.(type) {
	case network.Comment:
		w.comment(r)
	case *network.TransitLine:
		w.transitLine(r)
	case *network.TransitLink:
		w.record("LINK", "NODES="+r.NodePair.String(), r.Attrs, r.Comment)
	case *network.PNRLink:
		w.record("PNR", "NODE="+r.ID(), r.Attrs, r.Comment)
	case *network.ZACLink:
		w.record("ZONEACCESS", "LINK="+r.NodePair.String(), r.Attrs, r.Comment)
	case *network.Supplink:
		w.record("SUPPLINK", "N="+r.NodePair.String(), r.Attrs, r.Comment)
	case *network.Factor:
		w.record("FACTOR", "", r.Attrs, r.Comment)
	case *network.Faresystem:
		w.record("FARESYSTEM", numbered(r.Number, r.Attrs), r.Attrs, r.Comment)
	case *network.Linki:
		w.linki(r)
	default:
		return fmt.Errorf("lin: unexpected row type %T", r)
	}
	return nil
}

func (w *writer) comment(c network.Comment) {
	if c.Block {
		w.line(c.Text)
		return
	}
	w.line(";" + c.Text)
}

// record writes KEYWORD lead, K=V, ... ; comment
func (w *writer) record(keyword, lead string, attrs network.Attrs, comment string) {
	parts := make([]string, 0, len(attrs)+1)
	if lead != "" {
		parts = append(parts, lead)
	}
	for _, a := range attrs {
		parts = append(parts, assignment(a))
	}
	s := keyword
	if len(parts) > 0 {
		s += " " + strings.Join(parts, ", ")
	}
	w.line(s + trailing(comment))
}

// transitLine writes the attributes on the LINE row, each followed by a
// comma, then one node per row.
func (w *writer) transitLine(l *network.TransitLine) {
	var s strings.Builder
	s.WriteString("LINE")
	for _, a := range l.Attrs {
		s.WriteString(" ")
		s.WriteString(assignment(a))
		s.WriteString(",")
	}
	w.line(s.String() + trailing(l.Comment))
	for _, n := range l.Nodes {
		s.Reset()
		s.WriteString(" N=")
		s.WriteString(strconv.Itoa(n.Number))
		for _, a := range n.Attrs {
			s.WriteString(", ")
			s.WriteString(assignment(a))
		}
		w.line(s.String() + trailing(n.Comment))
	}
}

func (w *writer) linki(l *network.Linki) {
	parts := []string{strconv.Itoa(l.A), strconv.Itoa(l.B)}
	if l.AccessType != "" {
		parts = append(parts, l.AccessType)
	}
	switch {
	case l.Distance != nil:
		parts = append(parts, decimal(*l.Distance))
	case l.XferTime != nil:
		parts = append(parts, strconv.Itoa(*l.XferTime))
	}
	w.line(strings.Join(parts, " ") + trailing(l.Comment))
}

func (w *writer) ptSystem(p *network.PTSystem) {
	for _, c := range p.WaitCurves.Values() {
		w.record("WAITCRVDEF", numbered(c.Number, c.Attrs), c.Attrs, c.Comment)
	}
	for _, c := range p.CrowdCurves.Values() {
		w.record("CROWDCRVDEF", numbered(c.Number, c.Attrs), c.Attrs, c.Comment)
	}
	for _, d := range p.Operators.Values() {
		w.record("OPERATOR", numbered(d.Number, d.Attrs), d.Attrs, d.Comment)
	}
	for _, d := range p.Modes.Values() {
		w.record("MODE", numbered(d.Number, d.Attrs), d.Attrs, d.Comment)
	}
	for _, d := range p.VehicleTypes.Values() {
		w.record("VEHICLETYPE", numbered(d.Number, d.Attrs), d.Attrs, d.Comment)
	}
}

// numbered returns a NUMBER lead for records built without the attribute.
func numbered(num int, attrs network.Attrs) string {
	if attrs.Has("NUMBER") {
		return ""
	}
	return "NUMBER=" + strconv.Itoa(num)
}

func assignment(a network.Attr) string {
	if a.Quote == network.NoQuote && rawKeys.Contains(a.Key) && a.Value != "" {
		return a.Key + "=" + a.Value
	}
	return a.Key + "=" + a.Literal()
}

func trailing(comment string) string {
	if comment == "" {
		return ""
	}
	return " ; " + comment
}

// decimal formats v so it always reads back as a distance, never as an
// integer transfer time.
func decimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
