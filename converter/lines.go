/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package converter

import (
	"strconv"

	"bennypowers.dev/transitnet/grammar"
	"bennypowers.dev/transitnet/network"
	"bennypowers.dev/transitnet/tree"
)

const kindLine = "LINE"

type lineState struct {
	rows    []network.Row
	open    *network.TransitLine
	pending []network.Row
}

// close emits the open line followed by the comments buffered while it was
// open.
func (s lineState) close() lineState {
	if s.open != nil {
		s.rows = append(s.rows, s.open)
		s.open = nil
	}
	s.rows = append(s.rows, s.pending...)
	s.pending = nil
	return s
}

// convertLines folds the line stream. NAME opens a line; comments seen while
// a line is open are held until it closes.
func convertLines(items []tree.Item) ([]network.Row, error) {
	s, err := fold(items, lineState{}, stepLine)
	if err != nil {
		return nil, err
	}
	return s.close().rows, nil
}

func stepLine(s lineState, it tree.Item) (lineState, error) {
	switch it.Tag {
	case grammar.TagSMCW:
		if s.open != nil {
			s.pending = append(s.pending, commentRows(it)...)
		} else {
			s.rows = append(s.rows, commentRows(it)...)
		}

	case grammar.TagLinAttr:
		name, val, err := keyValue(kindLine, it)
		if err != nil {
			return s, err
		}
		key := network.CanonicalKey(name.Text)
		if key == "NAME" {
			s = s.close()
			s.open = &network.TransitLine{}
		} else if s.open == nil {
			return s, violation(kindLine, "attribute before NAME", it)
		}
		v, q := value(val)
		s.open.Attrs.SetQuoted(key, v, q)
		for _, c := range it.ChildrenOf(grammar.TagSemicolonComment) {
			s.pending = append(s.pending, attach(&s.open.Comment, c)...)
		}

	case grammar.TagLinNode:
		if s.open == nil {
			return s, violation(kindLine, "node before NAME", it)
		}
		node, err := convertNode(it)
		if err != nil {
			return s, err
		}
		s.open.Nodes = append(s.open.Nodes, node)

	default:
		return s, violation(kindLine, "unexpected item", it)
	}
	return s, nil
}

func convertNode(it tree.Item) (*network.Node, error) {
	node := &network.Node{}
	for _, c := range it.Children {
		switch c.Tag {
		case grammar.TagLinNodeStart:
		case grammar.TagNodeNum:
			n, err := strconv.Atoi(c.Text)
			if err != nil {
				return nil, violation(kindLine, "node number out of range", c)
			}
			node.Number = n
		case grammar.TagSemicolonComment:
			joinComment(&node.Comment, c)
		case grammar.TagLinNodeAttr:
			name, val, err := keyValue(kindLine, c)
			if err != nil {
				return nil, err
			}
			v, q := value(val)
			node.Attrs.SetQuoted(name.Text, v, q)
			for _, cc := range c.ChildrenOf(grammar.TagSemicolonComment) {
				joinComment(&node.Comment, cc)
			}
		default:
			return nil, violation(kindLine, "unexpected node item", c)
		}
	}
	return node, nil
}
