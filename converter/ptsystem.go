/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package converter

import (
	"bennypowers.dev/transitnet/grammar"
	"bennypowers.dev/transitnet/internal/logger"
	"bennypowers.dev/transitnet/network"
	"bennypowers.dev/transitnet/tree"
)

// definition fills d from the parts of one PT system record. Comment runs
// before the record are dropped; trailing comments go to d.Comment.
func definition(kind, attrTag string, parts []tree.Item, d *network.Definition, curve *[]network.Point) error {
	for _, it := range parts {
		switch it.Tag {
		case grammar.TagSMCW:
			logger.Debug("dropping %d comments before %s", len(it.Comments()), kind)
		case grammar.TagSemicolonComment:
			joinComment(&d.Comment, it)
		case attrTag:
			key, val, err := keyValue(kind, it)
			if err != nil {
				return err
			}
			v, q := value(val)
			d.Attrs.SetQuoted(key.Text, v, q)
			if key.Tag != grammar.TagWordCurve || curve == nil {
				continue
			}
			points, err := network.ParseCurve(v)
			if err != nil {
				return violation(kind, err.Error(), val)
			}
			*curve = points
		default:
			return violation(kind, "unexpected item", it)
		}
	}
	n, err := recordNumber(kind, d.Attrs, span(parts))
	if err != nil {
		return err
	}
	d.Number = n
	return nil
}

func putDefinitions(t *network.Table[*network.Definition], kind, attrTag string, records [][]tree.Item) error {
	for _, parts := range records {
		d := &network.Definition{}
		if err := definition(kind, attrTag, parts, d, nil); err != nil {
			return err
		}
		if t.Put(d.Number, d) {
			logger.Debug("%s %d redefined; keeping the later definition", kind, d.Number)
		}
	}
	return nil
}

func putCurves(t *network.Table[*network.Curve], kind string, records [][]tree.Item) error {
	for _, parts := range records {
		c := &network.Curve{}
		if err := definition(kind, grammar.TagCrvAttr, parts, &c.Definition, &c.Points); err != nil {
			return err
		}
		if t.Put(c.Number, c) {
			logger.Debug("%s %d redefined; keeping the later definition", kind, c.Number)
		}
	}
	return nil
}

// convertPTSystem builds the PT system tables. It returns nil when the input
// held no PT system records.
func convertPTSystem(b *tree.Buckets) (*network.PTSystem, error) {
	pts := &network.PTSystem{}
	if err := putCurves(&pts.WaitCurves, "WAITCRVDEF", b.WaitCurves); err != nil {
		return nil, err
	}
	if err := putCurves(&pts.CrowdCurves, "CROWDCRVDEF", b.CrowdCurves); err != nil {
		return nil, err
	}
	if err := putDefinitions(&pts.Operators, "OPERATOR", grammar.TagOpModeAttr, b.Operators); err != nil {
		return nil, err
	}
	if err := putDefinitions(&pts.Modes, "MODE", grammar.TagOpModeAttr, b.Modes); err != nil {
		return nil, err
	}
	if err := putDefinitions(&pts.VehicleTypes, "VEHICLETYPE", grammar.TagVehTypeAttr, b.VehicleTypes); err != nil {
		return nil, err
	}
	if pts.Empty() {
		return nil, nil
	}
	return pts, nil
}
