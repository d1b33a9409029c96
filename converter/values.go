/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package converter

import (
	"strings"

	"bennypowers.dev/transitnet/grammar"
	"bennypowers.dev/transitnet/network"
	"bennypowers.dev/transitnet/tree"
)

// fold feeds items through step one at a time, threading state.
func fold[S any](items []tree.Item, state S, step func(S, tree.Item) (S, error)) (S, error) {
	for _, it := range items {
		var err error
		if state, err = step(state, it); err != nil {
			return state, err
		}
	}
	return state, nil
}

// value unpacks a value item into its text and quote character. Sequences
// and node numbers are returned verbatim.
func value(it tree.Item) (string, byte) {
	if it.Tag != grammar.TagAttrValue || len(it.Children) == 0 {
		return it.Text, network.NoQuote
	}
	c := it.Children[0]
	switch c.Tag {
	case grammar.TagStringSingle:
		return unquote(c.Text), network.SingleQuote
	case grammar.TagStringDouble:
		return unquote(c.Text), network.DoubleQuote
	}
	return c.Text, network.NoQuote
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}

// commentItems returns the comments of a smcw run, or it alone when it is a
// single comment.
func commentItems(it tree.Item) []tree.Item {
	if it.Tag == grammar.TagSMCW {
		return it.Comments()
	}
	return []tree.Item{it}
}

// commentRows converts comments into standalone rows, keeping their bodies
// exactly as written.
func commentRows(it tree.Item) []network.Row {
	var rows []network.Row
	for _, c := range commentItems(it) {
		rows = append(rows, standalone(c))
	}
	return rows
}

func standalone(c tree.Item) network.Comment {
	if c.Tag == grammar.TagCComment {
		return network.Comment{Text: c.Text, Block: true}
	}
	return network.Comment{Text: c.CommentBody()}
}

// commentBodies returns the raw bodies of comment items.
func commentBodies(items []tree.Item) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, standalone(c).Text)
	}
	return out
}

// recordComment is the trimmed text of a comment attached to a record.
func recordComment(c tree.Item) string {
	if c.Tag == grammar.TagCComment {
		return strings.TrimSpace(c.Text)
	}
	return strings.TrimSpace(c.CommentBody())
}

// attach sets *dst from the first comment of it when *dst is empty and
// returns the remaining comments as standalone rows.
func attach(dst *string, it tree.Item) []network.Row {
	var rows []network.Row
	for _, c := range commentItems(it) {
		if *dst == "" {
			*dst = recordComment(c)
			continue
		}
		rows = append(rows, standalone(c))
	}
	return rows
}

// joinComment appends the text of c to *dst. A node holds a single
// comment, so every comment written around it is folded into one.
func joinComment(dst *string, c tree.Item) {
	text := recordComment(c)
	switch {
	case text == "":
	case *dst == "":
		*dst = text
	default:
		*dst += " " + text
	}
}

// keyValue splits an attribute item into its name and value children.
func keyValue(kind string, it tree.Item) (key, val tree.Item, err error) {
	if len(it.Children) < 2 {
		return tree.Item{}, tree.Item{}, violation(kind, "attribute without a value", it)
	}
	return it.Children[0], it.Children[1], nil
}
