/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks converted transit networks for consistency
// problems the grammar cannot see.
package validator

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/transitnet/network"
)

// Severity grades a validation finding.
type Severity int

const (
	// SeverityError marks a network that downstream tools will reject.
	SeverityError Severity = iota
	// SeverityWarning marks a suspicious but usable network.
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// ValidationError represents a network consistency problem.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path names the record, such as "LINE 71" or "LINK 1-2".
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
	// Severity grades the problem.
	Severity Severity
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Failed reports whether errs should fail validation. Warnings only count
// when strict is set.
func Failed(errs []ValidationError, strict bool) bool {
	for _, e := range errs {
		if e.Severity == SeverityError || strict {
			return true
		}
	}
	return false
}

// Validate checks n. Returns errors for:
// - duplicate line names
// - lines with fewer than two nodes
// - duplicate LINK or SUPPLINK node pairs
// - FAREFROMFS vectors whose length differs from the number of fare systems
// and warnings for unrecognized attributes and lines that reference
// undefined PT system entries.
func Validate(n *network.Network) []ValidationError {
	return ValidateWithPath(n, "")
}

// ValidateWithPath validates n and includes file path in errors.
func ValidateWithPath(n *network.Network, filePath string) []ValidationError {
	v := &validation{filePath: filePath}
	v.lines(n)
	v.links(n)
	v.fares(n)
	v.extensions(n)
	if n.PTSystem != nil {
		v.references(n)
	}
	return v.errs
}

type validation struct {
	filePath string
	errs     []ValidationError
}

func (v *validation) add(sev Severity, path, msg, suggestion string) {
	v.errs = append(v.errs, ValidationError{
		FilePath:   v.filePath,
		Path:       path,
		Message:    msg,
		Suggestion: suggestion,
		Severity:   sev,
	})
}

func (v *validation) lines(n *network.Network) {
	seen := make(map[string]bool)
	for _, l := range n.TransitLines() {
		path := "LINE " + l.Name()
		key := strings.ToUpper(l.Name())
		if seen[key] {
			v.add(SeverityError, path, "duplicate line name", "rename one of the lines")
		}
		seen[key] = true
		if len(l.Nodes) < 2 {
			v.add(SeverityError, path,
				fmt.Sprintf("line has %d node(s), need at least 2", len(l.Nodes)), "")
		}
	}
}

func (v *validation) links(n *network.Network) {
	var links, supplinks []network.NodePair
	for _, l := range n.TransitLinks() {
		links = append(links, l.NodePair)
	}
	for _, s := range n.SupplinkRecords() {
		supplinks = append(supplinks, s.NodePair)
	}
	v.pairs("LINK", links)
	v.pairs("SUPPLINK", supplinks)
}

func (v *validation) pairs(kind string, pairs []network.NodePair) {
	seen := make(map[network.NodePair]bool)
	for _, p := range pairs {
		if seen[p] {
			v.add(SeverityError, kind+" "+p.String(), "duplicate node pair", "merge the records")
		}
		seen[p] = true
	}
}

func (v *validation) fares(n *network.Network) {
	systems := n.FaresystemRecords()
	for _, f := range systems {
		if f.FareFromFS == nil || len(f.FareFromFS) == len(systems) {
			continue
		}
		v.add(SeverityError, "FARESYSTEM "+strconv.Itoa(f.Number),
			fmt.Sprintf("FAREFROMFS has %d entries but there are %d fare systems", len(f.FareFromFS), len(systems)),
			"give one transfer fare per fare system")
	}
}

type extender interface {
	Extensions() network.Attrs
}

func (v *validation) extensions(n *network.Network) {
	check := func(path string, r extender) {
		for _, a := range r.Extensions() {
			v.add(SeverityWarning, path, "unrecognized attribute "+a.Key, "check the attribute name")
		}
	}
	for _, l := range n.TransitLines() {
		path := "LINE " + l.Name()
		check(path, l)
		for _, node := range l.Nodes {
			check(path+" N="+strconv.Itoa(node.Number), node)
		}
	}
	for _, l := range n.TransitLinks() {
		check("LINK "+l.NodePair.String(), l)
	}
	for _, s := range n.SupplinkRecords() {
		check("SUPPLINK "+s.NodePair.String(), s)
	}
	for _, p := range n.PNRLinks() {
		check("PNR "+p.ID(), p)
	}
	for _, z := range n.ZACLinks() {
		check("ZONEACCESS "+z.NodePair.String(), z)
	}
	for i, f := range n.FactorRecords() {
		check("FACTOR #"+strconv.Itoa(i+1), f)
	}
	for _, f := range n.FaresystemRecords() {
		check("FARESYSTEM "+strconv.Itoa(f.Number), f)
	}
}

// references warns about lines naming operators, modes or vehicle types
// absent from a non-empty PT system table.
func (v *validation) references(n *network.Network) {
	pt := n.PTSystem
	tables := []struct {
		key   string
		table *network.Table[*network.Definition]
	}{
		{"OPERATOR", &pt.Operators},
		{"MODE", &pt.Modes},
		{"VEHICLETYPE", &pt.VehicleTypes},
	}
	for _, l := range n.TransitLines() {
		for _, t := range tables {
			val, ok := l.Attrs.Get(t.key)
			if !ok || t.table.Len() == 0 {
				continue
			}
			id, err := strconv.Atoi(val)
			if err != nil {
				v.add(SeverityWarning, "LINE "+l.Name(), fmt.Sprintf("%s %q is not a number", t.key, val), "")
				continue
			}
			if _, found := t.table.Get(id); !found {
				v.add(SeverityWarning, "LINE "+l.Name(), fmt.Sprintf("%s %d is not defined", t.key, id),
					"add a "+t.key+" record to the PT system")
			}
		}
	}
}
