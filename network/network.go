/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package network is the in-memory model of a transit network: lines,
// links, PNR and zone access records, access rows, supplinks, factors, fare
// systems and PT system definitions. Every collection keeps source order and
// interleaves standalone comments as rows, so a network can be written back
// out faithfully.
package network

import (
	"fmt"
	"slices"

	"github.com/jinzhu/copier"

	"bennypowers.dev/transitnet/convention"
)

// Network is a converted transit file, or several merged ones.
type Network struct {
	Convention convention.Convention
	// Comments are the comment bodies before the first record; Trailer holds
	// those after the last.
	Comments []string
	Trailer  []string

	Lines       []Row
	Links       []Row
	PNRs        []Row
	ZACs        []Row
	Linkis      []Row
	Supplinks   []Row
	Factors     []Row
	Faresystems []Row

	// PTSystem is nil when the input has no PT system definitions.
	PTSystem *PTSystem
}

// TransitLines returns the lines in order.
func (n *Network) TransitLines() []*TransitLine { return records[*TransitLine](n.Lines) }

// TransitLinks returns the link records in order.
func (n *Network) TransitLinks() []*TransitLink { return records[*TransitLink](n.Links) }

// PNRLinks returns the PNR records in order.
func (n *Network) PNRLinks() []*PNRLink { return records[*PNRLink](n.PNRs) }

// ZACLinks returns the zone access records in order.
func (n *Network) ZACLinks() []*ZACLink { return records[*ZACLink](n.ZACs) }

// LinkiRecords returns the access, transfer and node rows in order.
func (n *Network) LinkiRecords() []*Linki { return records[*Linki](n.Linkis) }

// SupplinkRecords returns the supplinks in order.
func (n *Network) SupplinkRecords() []*Supplink { return records[*Supplink](n.Supplinks) }

// FactorRecords returns the factors in order.
func (n *Network) FactorRecords() []*Factor { return records[*Factor](n.Factors) }

// FaresystemRecords returns the fare systems in order.
func (n *Network) FaresystemRecords() []*Faresystem { return records[*Faresystem](n.Faresystems) }

// Line returns the first line named name, ignoring case.
func (n *Network) Line(name string) *TransitLine {
	for _, l := range n.TransitLines() {
		if l.Is(name) {
			return l
		}
	}
	return nil
}

// DeleteLine removes every line named name, reporting whether any was found.
func (n *Network) DeleteLine(name string) bool {
	before := len(n.Lines)
	n.Lines = slices.DeleteFunc(n.Lines, func(r Row) bool {
		l, ok := r.(*TransitLine)
		return ok && l.Is(name)
	})
	return len(n.Lines) != before
}

// Link returns the LINK record for a-b.
func (n *Network) Link(a, b int) *TransitLink {
	for _, l := range n.TransitLinks() {
		if l.A == a && l.B == b {
			return l
		}
	}
	return nil
}

// Faresystem returns the fare system numbered num.
func (n *Network) Faresystem(num int) *Faresystem {
	for _, f := range n.FaresystemRecords() {
		if f.Number == num {
			return f
		}
	}
	return nil
}

// Counts returns the number of records of each kind, comments excluded.
func (n *Network) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, rows := range [][]Row{n.Lines, n.Links, n.PNRs, n.ZACs, n.Linkis, n.Supplinks, n.Factors, n.Faresystems} {
		for _, r := range rows {
			if r.Kind() != KindComment {
				counts[r.Kind()]++
			}
		}
	}
	return counts
}

// Append adds copies of the records of other after those of n. The header
// comments of other are kept only when n has none. Edits to the merged
// network never reach other.
func (n *Network) Append(other *Network) error {
	src, err := other.Clone()
	if err != nil {
		return fmt.Errorf("append: %w", err)
	}
	if len(n.Comments) == 0 {
		n.Comments = append(n.Comments, src.Comments...)
	}
	if n.Convention == convention.Unknown {
		n.Convention = src.Convention
	}
	n.Trailer = append(n.Trailer, src.Trailer...)
	n.Lines = append(n.Lines, src.Lines...)
	n.Links = append(n.Links, src.Links...)
	n.PNRs = append(n.PNRs, src.PNRs...)
	n.ZACs = append(n.ZACs, src.ZACs...)
	n.Linkis = append(n.Linkis, src.Linkis...)
	n.Supplinks = append(n.Supplinks, src.Supplinks...)
	n.Factors = append(n.Factors, src.Factors...)
	n.Faresystems = append(n.Faresystems, src.Faresystems...)
	if src.PTSystem != nil {
		if n.PTSystem == nil {
			n.PTSystem = &PTSystem{}
		}
		mergeTable(&n.PTSystem.WaitCurves, &src.PTSystem.WaitCurves)
		mergeTable(&n.PTSystem.CrowdCurves, &src.PTSystem.CrowdCurves)
		mergeTable(&n.PTSystem.Operators, &src.PTSystem.Operators)
		mergeTable(&n.PTSystem.Modes, &src.PTSystem.Modes)
		mergeTable(&n.PTSystem.VehicleTypes, &src.PTSystem.VehicleTypes)
	}
	return nil
}

func mergeTable[T any](dst, src *Table[T]) {
	for _, id := range src.IDs {
		dst.Put(id, src.ByID[id])
	}
}

// Clone returns a deep copy of the network, safe to edit independently.
func (n *Network) Clone() (*Network, error) {
	out := &Network{
		Convention: n.Convention,
		Comments:   slices.Clone(n.Comments),
		Trailer:    slices.Clone(n.Trailer),
	}
	for _, c := range []struct {
		dst *[]Row
		src []Row
	}{
		{&out.Lines, n.Lines},
		{&out.Links, n.Links},
		{&out.PNRs, n.PNRs},
		{&out.ZACs, n.ZACs},
		{&out.Linkis, n.Linkis},
		{&out.Supplinks, n.Supplinks},
		{&out.Factors, n.Factors},
		{&out.Faresystems, n.Faresystems},
	} {
		rows, err := cloneRows(c.src)
		if err != nil {
			return nil, err
		}
		*c.dst = rows
	}
	if n.PTSystem != nil {
		pts, err := deepCopy(n.PTSystem)
		if err != nil {
			return nil, err
		}
		out.PTSystem = pts
	}
	return out, nil
}

func cloneRows(rows []Row) ([]Row, error) {
	if rows == nil {
		return nil, nil
	}
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		var (
			c   Row
			err error
		)
		switch r := r.(type) {
		case Comment:
			c = r
		case *TransitLine:
			c, err = deepCopy(r)
		case *TransitLink:
			c, err = deepCopy(r)
		case *PNRLink:
			c, err = deepCopy(r)
		case *ZACLink:
			c, err = deepCopy(r)
		case *Linki:
			c, err = deepCopy(r)
		case *Supplink:
			c, err = deepCopy(r)
		case *Factor:
			c, err = deepCopy(r)
		case *Faresystem:
			c, err = deepCopy(r)
		default:
			err = fmt.Errorf("clone: unexpected row type %T", r)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func deepCopy[T any](src *T) (*T, error) {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone %T: %w", src, err)
	}
	return dst, nil
}
