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

const kindPNR = "PNR"

type pnrState struct {
	rows []network.Row
	open *network.PNRLink
	// key is the attribute name awaiting its value
	key     string
	pending []network.Row
}

func (s pnrState) close() pnrState {
	if s.open != nil {
		s.rows = append(s.rows, s.open)
		s.open = nil
	}
	s.rows = append(s.rows, s.pending...)
	s.pending = nil
	return s
}

// convertPNRs folds the PNR stream. NODE opens a record and a comment run
// closes it.
func convertPNRs(items []tree.Item) ([]network.Row, error) {
	s, err := fold(items, pnrState{}, stepPNR)
	if err != nil {
		return nil, err
	}
	return s.close().rows, nil
}

func stepPNR(s pnrState, it tree.Item) (pnrState, error) {
	switch it.Tag {
	case grammar.TagSMCW:
		s = s.close()
		s.rows = append(s.rows, commentRows(it)...)
		return s, nil
	case grammar.TagPNRAttr:
		return fold(it.Children, s, stepPNRAttr)
	}
	return s, violation(kindPNR, "unexpected item", it)
}

func stepPNRAttr(s pnrState, it tree.Item) (pnrState, error) {
	switch it.Tag {
	case grammar.TagWordNode:
		s = s.close()
		s.open = &network.PNRLink{}

	case grammar.TagNodePair, grammar.TagNodeNum:
		if s.open == nil {
			return s, violation(kindPNR, "node before NODE", it)
		}
		if err := s.open.SetID(it.Text); err != nil {
			return s, violation(kindPNR, err.Error(), it)
		}

	case grammar.TagPNRAttrName, grammar.TagWordZones:
		s.key = it.Text

	case grammar.TagAttrValue, grammar.TagNumSeq:
		if s.open == nil || s.key == "" {
			return s, violation(kindPNR, "attribute before NODE", it)
		}
		v, q := value(it)
		s.open.Attrs.SetQuoted(s.key, v, q)
		s.key = ""

	case grammar.TagSemicolonComment:
		if s.open == nil {
			return s, violation(kindPNR, "comment before NODE", it)
		}
		s.pending = append(s.pending, attach(&s.open.Comment, it)...)

	default:
		return s, violation(kindPNR, "unexpected attribute item", it)
	}
	return s, nil
}
