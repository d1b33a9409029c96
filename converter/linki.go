/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package converter

import (
	"strconv"
	"strings"

	"bennypowers.dev/transitnet/grammar"
	"bennypowers.dev/transitnet/network"
	"bennypowers.dev/transitnet/tree"
)

const kindLinki = "ACCESSLI"

type linkiState struct {
	kind network.LinkiKind
	rows []network.Row
	open *network.Linki
}

// convertLinkis folds the access row stream. Each row is emitted as soon as
// its A node is seen; later items fill it in.
func convertLinkis(items []tree.Item, kind network.LinkiKind) ([]network.Row, error) {
	s, err := fold(items, linkiState{kind: kind}, stepLinki)
	if err != nil {
		return nil, err
	}
	return s.rows, nil
}

func stepLinki(s linkiState, it tree.Item) (linkiState, error) {
	if it.Tag == grammar.TagSMCW {
		s.rows = append(s.rows, commentRows(it)...)
		return s, nil
	}
	if it.Tag == grammar.TagNodeNumA {
		a, err := strconv.Atoi(it.Text)
		if err != nil {
			return s, violation(kindLinki, "node number out of range", it)
		}
		s.open = &network.Linki{LinkiKind: s.kind, A: a}
		s.rows = append(s.rows, s.open)
		return s, nil
	}
	if s.open == nil {
		return s, violation(kindLinki, "field before A node", it)
	}
	switch it.Tag {
	case grammar.TagNodeNumB:
		b, err := strconv.Atoi(it.Text)
		if err != nil {
			return s, violation(kindLinki, "node number out of range", it)
		}
		s.open.B = b
	case grammar.TagFloat:
		d, err := strconv.ParseFloat(it.Text, 64)
		if err != nil {
			return s, violation(kindLinki, "bad distance", it)
		}
		s.open.Distance = &d
	case grammar.TagInt:
		t, err := strconv.Atoi(it.Text)
		if err != nil {
			return s, violation(kindLinki, "bad transfer time", it)
		}
		s.open.XferTime = &t
	case grammar.TagAccessTag:
		s.open.AccessType = strings.ToUpper(it.Text)
	case grammar.TagSemicolonComment:
		s.open.Comment = recordComment(it)
	default:
		return s, violation(kindLinki, "unexpected item", it)
	}
	return s, nil
}
