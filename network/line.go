/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package network

import (
	"fmt"
	"slices"
	"strings"
)

// TransitLine is a LINE record: a named route over an ordered node list.
// NAME is held in Attrs like any other attribute.
type TransitLine struct {
	Attrs   Attrs
	Nodes   []*Node
	Comment string
}

// NewTransitLine returns a line with the given NAME.
func NewTransitLine(name string) *TransitLine {
	l := &TransitLine{}
	l.Attrs.SetQuoted("NAME", name, DoubleQuote)
	return l
}

func (l *TransitLine) Kind() Kind { return KindLine }

// Name returns the line's NAME.
func (l *TransitLine) Name() string {
	return l.Attrs.Value("NAME")
}

// SetName renames the line.
func (l *TransitLine) SetName(name string) {
	l.Attrs.Set("NAME", name)
}

// Is reports whether the line is identified by name, ignoring case.
func (l *TransitLine) Is(name string) bool {
	return strings.EqualFold(l.Name(), name)
}

// Extensions returns the attributes not recognized for lines.
func (l *TransitLine) Extensions() Attrs {
	return l.Attrs.Extensions(LineKeys)
}

// NodeNumbers returns the node numbers in order, negative for non-stops.
func (l *TransitLine) NodeNumbers() []int {
	nums := make([]int, len(l.Nodes))
	for i, n := range l.Nodes {
		nums[i] = n.Number
	}
	return nums
}

// Stops returns the nodes where the line stops.
func (l *TransitLine) Stops() []*Node {
	var stops []*Node
	for _, n := range l.Nodes {
		if n.IsStop() {
			stops = append(stops, n)
		}
	}
	return stops
}

// IndexOf returns the position of the first node numbered num, ignoring
// the stop sign, or -1.
func (l *TransitLine) IndexOf(num int) int {
	num = abs(num)
	return slices.IndexFunc(l.Nodes, func(n *Node) bool { return n.Num() == num })
}

// HasNode reports whether the line passes through node num.
func (l *TransitLine) HasNode(num int) bool {
	return l.IndexOf(num) >= 0
}

// InsertNode inserts n before position i.
func (l *TransitLine) InsertNode(i int, n *Node) error {
	if i < 0 || i > len(l.Nodes) {
		return fmt.Errorf("line %s: node position %d out of range [0,%d]", l.Name(), i, len(l.Nodes))
	}
	l.Nodes = slices.Insert(l.Nodes, i, n)
	return nil
}

// RemoveNode removes the first node numbered num, reporting whether one
// was found.
func (l *TransitLine) RemoveNode(num int) bool {
	i := l.IndexOf(num)
	if i < 0 {
		return false
	}
	l.Nodes = slices.Delete(l.Nodes, i, i+1)
	return true
}

// Reverse reverses the node order in place.
func (l *TransitLine) Reverse() {
	slices.Reverse(l.Nodes)
}

// Links returns the consecutive node pairs the line traverses, using
// absolute node numbers.
func (l *TransitLine) Links() []NodePair {
	if len(l.Nodes) < 2 {
		return nil
	}
	pairs := make([]NodePair, 0, len(l.Nodes)-1)
	for i := 1; i < len(l.Nodes); i++ {
		pairs = append(pairs, NodePair{A: l.Nodes[i-1].Num(), B: l.Nodes[i].Num()})
	}
	return pairs
}

// Node is one node along a line.
type Node struct {
	// Number is negative when the line passes the node without stopping.
	Number  int
	Attrs   Attrs
	Comment string
}

// NewNode returns a node numbered num.
func NewNode(num int) *Node {
	return &Node{Number: num}
}

// Num returns the absolute node number.
func (n *Node) Num() int {
	return abs(n.Number)
}

// IsStop reports whether the line stops at the node.
func (n *Node) IsStop() bool {
	return n.Number > 0
}

// SetStop makes the node a stop or a pass-through.
func (n *Node) SetStop(stop bool) {
	if stop {
		n.Number = n.Num()
	} else {
		n.Number = -n.Num()
	}
}

// Extensions returns the attributes not recognized for nodes.
func (n *Node) Extensions() Attrs {
	return n.Attrs.Extensions(NodeKeys)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
