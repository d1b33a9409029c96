/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package converter

import (
	"fmt"
	"strconv"

	"bennypowers.dev/transitnet/grammar"
	"bennypowers.dev/transitnet/internal/logger"
	"bennypowers.dev/transitnet/network"
	"bennypowers.dev/transitnet/tree"
)

const (
	kindSupplink   = "SUPPLINK"
	kindFactor     = "FACTOR"
	kindFaresystem = "FARESYSTEM"
)

// recordParts walks the parts of one record. Leading comment runs become
// rows before the record, the first trailing comment becomes the record's
// comment and any others rows after it. attr handles each attribute item.
type recordParts struct {
	kind    string
	attrTag string
	comment *string
	attr    func(key, val tree.Item) error
	before  []network.Row
	after   []network.Row
}

func (r *recordParts) walk(parts []tree.Item) error {
	for _, it := range parts {
		switch it.Tag {
		case grammar.TagSMCW:
			r.before = append(r.before, commentRows(it)...)
		case grammar.TagSemicolonComment:
			r.after = append(r.after, attach(r.comment, it)...)
		case r.attrTag:
			key, val, err := keyValue(r.kind, it)
			if err != nil {
				return err
			}
			if err := r.attr(key, val); err != nil {
				return err
			}
		default:
			return violation(r.kind, "unexpected item", it)
		}
	}
	return nil
}

func (r *recordParts) rows(rec network.Row) []network.Row {
	rows := append(r.before, rec)
	return append(rows, r.after...)
}

func span(parts []tree.Item) tree.Item {
	if len(parts) == 0 {
		return tree.Item{}
	}
	return parts[0]
}

// convertSupplinks converts one SUPPLINK per bucket entry. N or NODES is
// required.
func convertSupplinks(records [][]tree.Item) ([]network.Row, error) {
	var rows []network.Row
	for _, parts := range records {
		rec := &network.Supplink{}
		hasPair := false
		r := &recordParts{
			kind:    kindSupplink,
			attrTag: grammar.TagSupplinkAttr,
			comment: &rec.Comment,
			attr: func(key, val tree.Item) error {
				if key.Tag == grammar.TagNPairAttrName {
					pair, err := network.ParseNodePair(val.Text)
					if err != nil {
						return violation(kindSupplink, err.Error(), val)
					}
					rec.NodePair = pair
					hasPair = true
					return nil
				}
				v, q := value(val)
				rec.Attrs.SetQuoted(key.Text, v, q)
				return nil
			},
		}
		if err := r.walk(parts); err != nil {
			return nil, err
		}
		if !hasPair {
			return nil, missingKey(kindSupplink, "N", span(parts))
		}
		rows = append(rows, r.rows(rec)...)
	}
	return rows, nil
}

// convertFactors converts one FACTOR per bucket entry.
func convertFactors(records [][]tree.Item) ([]network.Row, error) {
	var rows []network.Row
	for _, parts := range records {
		rec := &network.Factor{}
		r := &recordParts{
			kind:    kindFactor,
			attrTag: grammar.TagFactorAttr,
			comment: &rec.Comment,
			attr: func(key, val tree.Item) error {
				v, q := value(val)
				rec.Attrs.SetQuoted(key.Text, v, q)
				return nil
			},
		}
		if err := r.walk(parts); err != nil {
			return nil, err
		}
		rows = append(rows, r.rows(rec)...)
	}
	return rows, nil
}

// convertFaresystems converts one FARESYSTEM per bucket entry, keyed by
// NUMBER. A later record with the same NUMBER replaces the earlier one in
// place; the comments of both are kept as rows where they were written.
func convertFaresystems(records [][]tree.Item) ([]network.Row, error) {
	var rows []network.Row
	byNumber := make(map[int]int)
	for _, parts := range records {
		rec := &network.Faresystem{}
		r := &recordParts{
			kind:    kindFaresystem,
			attrTag: grammar.TagFaresystemAttr,
			comment: &rec.Comment,
			attr: func(key, val tree.Item) error {
				v, q := value(val)
				rec.Attrs.SetQuoted(key.Text, v, q)
				if key.Tag != grammar.TagFaresystemFFF {
					return nil
				}
				fares, err := network.ParseFloatSeq(v)
				if err != nil {
					return violation(kindFaresystem, err.Error(), val)
				}
				rec.FareFromFS = fares
				return nil
			},
		}
		if err := r.walk(parts); err != nil {
			return nil, err
		}
		num, err := recordNumber(kindFaresystem, rec.Attrs, span(parts))
		if err != nil {
			return nil, err
		}
		rec.Number = num
		if i, seen := byNumber[num]; seen {
			logger.Debug("FARESYSTEM %d redefined; keeping the later definition", num)
			// the later record takes the earlier slot; comments stay in
			// source order, including the one the replaced record carried
			if prev := rows[i].(*network.Faresystem); prev.Comment != "" {
				rows = append(rows, network.Comment{Text: prev.Comment})
			}
			rows[i] = rec
			rows = append(rows, r.before...)
			rows = append(rows, r.after...)
			continue
		}
		rows = append(rows, r.before...)
		byNumber[num] = len(rows)
		rows = append(rows, rec)
		rows = append(rows, r.after...)
	}
	return rows, nil
}

// recordNumber returns the NUMBER attribute that identifies a record.
func recordNumber(kind string, attrs network.Attrs, at tree.Item) (int, error) {
	v, ok := attrs.Get("NUMBER")
	if !ok {
		return 0, missingKey(kind, "NUMBER", at)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, violation(kind, fmt.Sprintf("NUMBER %q is not an integer", v), at)
	}
	return n, nil
}
