/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package converter

import (
	"bennypowers.dev/transitnet/grammar"
	"bennypowers.dev/transitnet/network"
	"bennypowers.dev/transitnet/tree"
)

const (
	kindLink = "LINK"
	kindZAC  = "ZONEACCESS"
)

// pairRecord is the shape shared by LINK and ZONEACCESS records.
type pairRecord interface {
	network.Row
	comment() *string
	attrs() *network.Attrs
}

type linkRecord struct{ *network.TransitLink }

func (r linkRecord) comment() *string      { return &r.Comment }
func (r linkRecord) attrs() *network.Attrs { return &r.Attrs }

type zacRecord struct{ *network.ZACLink }

func (r zacRecord) comment() *string      { return &r.Comment }
func (r zacRecord) attrs() *network.Attrs { return &r.Attrs }

type pairState struct {
	rows []network.Row
	open pairRecord
}

func (s pairState) close() pairState {
	if s.open != nil {
		s.rows = append(s.rows, unwrap(s.open))
		s.open = nil
	}
	return s
}

// commented attaches the first comment to the open record and closes it;
// with no open record every comment becomes a standalone row.
func (s pairState) commented(it tree.Item) pairState {
	if s.open == nil {
		s.rows = append(s.rows, commentRows(it)...)
		return s
	}
	rest := attach(s.open.comment(), it)
	s = s.close()
	s.rows = append(s.rows, rest...)
	return s
}

func unwrap(r pairRecord) network.Row {
	switch r := r.(type) {
	case linkRecord:
		return r.TransitLink
	case zacRecord:
		return r.ZACLink
	}
	return r
}

// pairFold is the fold shared by LINK and ZONEACCESS streams. Each attribute
// item holds a name and a value; sentinel names the attribute that opens a
// record and newRecord builds one from its node pair.
type pairFold struct {
	kind      string
	attrTag   string
	sentinel  string
	newRecord func(network.NodePair) pairRecord
}

func (f pairFold) run(items []tree.Item) ([]network.Row, error) {
	s, err := fold(items, pairState{}, f.step)
	if err != nil {
		return nil, err
	}
	return s.close().rows, nil
}

func (f pairFold) step(s pairState, it tree.Item) (pairState, error) {
	switch it.Tag {
	case grammar.TagSMCW, grammar.TagSemicolonComment:
		return s.commented(it), nil

	case f.attrTag:
		key, val, err := keyValue(f.kind, it)
		if err != nil {
			return s, err
		}
		if key.Tag == f.sentinel {
			pair, err := network.ParseNodePair(val.Text)
			if err != nil {
				return s, violation(f.kind, err.Error(), it)
			}
			s = s.close()
			s.open = f.newRecord(pair)
			return s, nil
		}
		if s.open == nil {
			return s, violation(f.kind, "attribute before node pair", it)
		}
		v, q := value(val)
		s.open.attrs().SetQuoted(key.Text, v, q)
		return s, nil
	}
	return s, violation(f.kind, "unexpected item", it)
}

var linkFold = pairFold{
	kind:     kindLink,
	attrTag:  grammar.TagLinkAttr,
	sentinel: grammar.TagWordNodes,
	newRecord: func(p network.NodePair) pairRecord {
		return linkRecord{&network.TransitLink{NodePair: p}}
	},
}

var zacFold = pairFold{
	kind:     kindZAC,
	attrTag:  grammar.TagZACAttr,
	sentinel: grammar.TagWordLink,
	newRecord: func(p network.NodePair) pairRecord {
		return zacRecord{&network.ZACLink{NodePair: p}}
	},
}

// convertLinks folds the LINK stream. NODES opens a link.
func convertLinks(items []tree.Item) ([]network.Row, error) {
	return linkFold.run(items)
}

// convertZACs folds the ZONEACCESS stream. LINK opens a record.
func convertZACs(items []tree.Item) ([]network.Row, error) {
	return zacFold.run(items)
}
