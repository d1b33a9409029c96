/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tree holds the parse tree of a transit file: one Record per
// top-level production, each carrying the captured items beneath it.
package tree

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/transitnet/grammar"
)

// ErrUnknownProduction is returned when a grammar node has no record variant.
var ErrUnknownProduction = errors.New("unknown production")

// Item is a captured production: its tag, the exact source text it spans,
// and its captured children.
type Item struct {
	Tag      string
	Text     string
	Start    int
	End      int
	Children []Item
}

// Child returns the first direct child with the given tag.
func (it Item) Child(tag string) (Item, bool) {
	for _, c := range it.Children {
		if c.Tag == tag {
			return c, true
		}
	}
	return Item{}, false
}

// ChildrenOf returns every direct child with the given tag.
func (it Item) ChildrenOf(tag string) []Item {
	var out []Item
	for _, c := range it.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// CommentBody returns the text after the leading ';' of a semicolon_comment
// item, without the line terminator.
func (it Item) CommentBody() string {
	if body, ok := it.Child(grammar.TagComment); ok {
		return strings.TrimRight(body.Text, "\r")
	}
	return strings.TrimRight(strings.TrimPrefix(it.Text, ";"), "\r\n")
}

// Comments returns the comment items of a smcw run.
func (it Item) Comments() []Item {
	var out []Item
	for _, c := range it.Children {
		if c.Tag == grammar.TagSemicolonComment || c.Tag == grammar.TagCComment {
			out = append(out, c)
		}
	}
	return out
}

func capture(src []byte, n *grammar.Node) Item {
	it := Item{
		Tag:   n.Tag,
		Text:  n.Text(src),
		Start: n.Start,
		End:   n.End,
	}
	if len(n.Children) > 0 {
		it.Children = make([]Item, 0, len(n.Children))
		for _, c := range n.Children {
			it.Children = append(it.Children, capture(src, c))
		}
	}
	return it
}

// File is the parse tree of one transit file.
type File struct {
	Records []Record
}

// Build converts a matched transit_file node into a File.
func Build(src []byte, root *grammar.Node) (*File, error) {
	if root.Tag != grammar.TagTransitFile {
		return nil, fmt.Errorf("%w: root %q", ErrUnknownProduction, root.Tag)
	}
	f := &File{Records: make([]Record, 0, len(root.Children))}
	for _, n := range root.Children {
		rec, err := newRecord(capture(src, n))
		if err != nil {
			return nil, err
		}
		f.Records = append(f.Records, rec)
	}
	return f, nil
}

func newRecord(it Item) (Record, error) {
	b := Body{Item: it}
	switch it.Tag {
	case grammar.TagSMCW:
		return &CommentRun{b}, nil
	case grammar.TagLine:
		return &Line{b}, nil
	case grammar.TagLink:
		return &Link{b}, nil
	case grammar.TagPNR:
		return &PNR{b}, nil
	case grammar.TagZAC:
		return &ZAC{b}, nil
	case grammar.TagAccessLI:
		return &AccessLI{b}, nil
	case grammar.TagSupplink:
		return &Supplink{b}, nil
	case grammar.TagFactor:
		return &Factor{b}, nil
	case grammar.TagFaresystem:
		return &Faresystem{b}, nil
	case grammar.TagWaitCrvDef:
		return &WaitCrvDef{b}, nil
	case grammar.TagCrowdCrvDef:
		return &CrowdCrvDef{b}, nil
	case grammar.TagOperator:
		return &Operator{b}, nil
	case grammar.TagMode:
		return &Mode{b}, nil
	case grammar.TagVehicleType:
		return &VehicleType{b}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProduction, it.Tag)
}
