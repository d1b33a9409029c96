/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package grammar defines the transit grammar on participle. Parse matches a
// transit file and reports it as a tree of tagged Nodes carrying byte
// offsets into the source.
package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Node is one reported production in a parse tree.
type Node struct {
	Tag      string
	Start    int
	End      int
	Children []*Node
}

// Text returns the source text spanned by the node.
func (n *Node) Text(src []byte) string {
	return string(src[n.Start:n.End])
}

func leaf(tag string, pos lexer.Position, text string) *Node {
	return &Node{Tag: tag, Start: pos.Offset, End: pos.Offset + len(text)}
}

// group spans its non-nil children.
func group(tag string, children ...*Node) *Node {
	n := &Node{Tag: tag}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	if len(n.Children) > 0 {
		n.Start = n.Children[0].Start
		n.End = n.Children[len(n.Children)-1].End
	}
	return n
}

// recordNode starts at the keyword. The keyword itself is not reported.
func recordNode(tag string, pos lexer.Position, keyword string, children []*Node) *Node {
	n := group(tag, children...)
	n.Start = pos.Offset
	if len(n.Children) == 0 {
		n.End = pos.Offset + len(keyword)
	}
	return n
}

type builder interface {
	node() *Node
}

func nodes[T builder](items []T) []*Node {
	out := make([]*Node, 0, len(items))
	for _, it := range items {
		out = append(out, it.node())
	}
	return out
}

// node reports the file. A comment run before a record opens it, except
// ahead of the first record where it stands alone as the header. The run
// left after the last record is the trailer.
func (f *transitFile) node(src []byte) (*Node, error) {
	root := &Node{Tag: TagTransitFile, End: len(src)}
	var run *Node
	records := 0
	for _, e := range f.Entries {
		if e.Run != nil {
			c := e.Run.node()
			if run == nil {
				run = c
			} else {
				run.Children = append(run.Children, c.Children...)
				run.End = c.End
			}
			continue
		}
		n := e.Record.node()
		if run != nil {
			if records == 0 {
				root.Children = append(root.Children, run)
			} else {
				n.Children = append([]*Node{run}, n.Children...)
				n.Start = run.Start
			}
			run = nil
		}
		root.Children = append(root.Children, n)
		records++
	}
	if records == 0 {
		return nil, newParseError(src, len(src), "no records")
	}
	if run != nil {
		root.Children = append(root.Children, run)
	}
	return root, nil
}

func (r *commentRun) node() *Node {
	return group(TagSMCW, nodes(r.Remarks)...)
}

func (r *remark) node() *Node {
	if r.Block != "" {
		return leaf(TagCComment, r.Pos, r.Block)
	}
	return (&semi{Pos: r.Pos, Text: r.Line}).node()
}

func (s *semi) node() *Node {
	if s == nil {
		return nil
	}
	n := leaf(TagSemicolonComment, s.Pos, s.Text)
	body := strings.TrimSuffix(s.Text, "\n")
	n.Children = []*Node{{Tag: TagComment, Start: n.Start + 1, End: n.Start + len(body)}}
	return n
}

func (v *value) node() *Node {
	if v.Quoted != nil {
		return group(TagAttrValue, v.Quoted.node())
	}
	return group(TagAttrValue, v.Bare.node())
}

func (q *quoted) node() *Node {
	if strings.HasPrefix(q.Text, "'") {
		return leaf(TagStringSingle, q.Pos, q.Text)
	}
	return leaf(TagStringDouble, q.Pos, q.Text)
}

func (a *alphanums) node() *Node {
	return &Node{Tag: TagAlphanums, Start: a.Pos.Offset, End: a.Body.Pos.Offset + len(a.Body.Text)}
}

func (d *decimal) node(tag string) *Node {
	return leaf(tag, d.Pos, d.Text)
}

func (i *integer) node(tag string) *Node {
	return &Node{Tag: tag, Start: i.Pos.Offset, End: i.Digits.Pos.Offset + len(i.Digits.Text)}
}

func (f *floatNum) node() *Node {
	return &Node{Tag: TagFloatNum, Start: f.Pos.Offset, End: f.Digits.Pos.Offset + len(f.Digits.Text)}
}

func (p *nodePair) node() *Node {
	if p == nil {
		return nil
	}
	return group(TagNodePair, p.A.node(TagNodeNum), p.B.node(TagNodeNum))
}

func (s *intSeq) node() *Node {
	items := make([]*Node, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, it.node(TagInt))
	}
	return group(TagNumSeq, items...)
}

func (s *floatSeq) node() *Node {
	return group(TagFloatSeq, nodes(s.Items)...)
}

func (p *xyPoint) node() *Node {
	return group(TagXY, p.X.node(TagPosFloatNum), p.Y.node(TagPosFloatNum))
}

func (s *xySeq) node() *Node {
	return group(TagXYSeq, nodes(s.Points)...)
}

// attr reports name = value as tag with a name leaf of nameTag.
func (a *assignment) attr(tag, nameTag string) *Node {
	return group(tag, leaf(nameTag, a.Pos, a.Name), a.Value.node())
}

func assignments(items []*assignment, tag, nameTag string) []*Node {
	out := make([]*Node, 0, len(items))
	for _, a := range items {
		out = append(out, a.attr(tag, nameTag))
	}
	return out
}

func (r *lineRecord) node() *Node {
	return recordNode(TagLine, r.Pos, r.Keyword, nodes(r.Parts))
}

func (p *linePart) node() *Node {
	if p.Attr != nil {
		return p.Attr.node()
	}
	return p.Node.node()
}

func (a *lineAttr) node() *Node {
	children := []*Node{leaf(TagLinAttrName, a.Pos, a.Name), a.Value.node()}
	return group(TagLinAttr, append(children, nodes(a.Comments)...)...)
}

func (s *nodeStart) node() *Node {
	if s == nil {
		return nil
	}
	return leaf(TagLinNodeStart, s.Pos, s.Text)
}

func (n *lineNode) node() *Node {
	children := []*Node{n.Start.node(), n.Number.node(TagNodeNum), n.Comment.node()}
	return group(TagLinNode, append(children, nodes(n.Attrs)...)...)
}

func (a *nodeAttr) node() *Node {
	children := []*Node{leaf(TagLinNodeAttrName, a.Pos, a.Name), a.Value.node()}
	return group(TagLinNodeAttr, append(children, nodes(a.Comments)...)...)
}

func (r *linkRecord) node() *Node {
	return recordNode(TagLink, r.Pos, r.Keyword, append(nodes(r.Attrs), nodes(r.Comments)...))
}

func (a *linkAttr) node() *Node {
	switch {
	case a.Nodes != "":
		return group(TagLinkAttr, leaf(TagWordNodes, a.Pos, a.Nodes), a.Pair.node())
	case a.Modes != "":
		return group(TagLinkAttr, leaf(TagWordModes, a.Pos, a.Modes), a.Seq.node())
	}
	return group(TagLinkAttr, leaf(TagLinkAttrName, a.Pos, a.Name), a.Value.node())
}

func (r *pnrRecord) node() *Node {
	return recordNode(TagPNR, r.Pos, r.Keyword, nodes(r.Attrs))
}

func (a *pnrAttr) node() *Node {
	var children []*Node
	switch {
	case a.Station != "":
		station := a.Pair.node()
		if station == nil {
			station = a.Number.node(TagNodeNum)
		}
		children = []*Node{leaf(TagWordNode, a.Pos, a.Station), station}
	case a.Zones != "":
		children = []*Node{leaf(TagWordZones, a.Pos, a.Zones), a.Seq.node()}
	default:
		children = []*Node{leaf(TagPNRAttrName, a.Pos, a.Name), a.Value.node()}
	}
	return group(TagPNRAttr, append(children, nodes(a.Comments)...)...)
}

func (r *zacRecord) node() *Node {
	return recordNode(TagZAC, r.Pos, r.Keyword, append(nodes(r.Attrs), nodes(r.Comments)...))
}

func (a *zacAttr) node() *Node {
	if a.Link != "" {
		return group(TagZACAttr, leaf(TagWordLink, a.Pos, a.Link), a.Pair.node())
	}
	return group(TagZACAttr, leaf(TagZACAttrName, a.Pos, a.Name), a.Value.node())
}

// node reports a row as nodenumA nodenumB, then the optional tag, value
// and comment. The value is a float when written with a fraction.
func (r *accessRow) node() *Node {
	a := group(TagNodeNumA, r.A.node(TagNodeNum))
	b := group(TagNodeNumB, r.B.node(TagNodeNum))
	return group(TagAccessLI, a, b, r.Tag.node(), r.Value.node(), r.Comment.node())
}

func (t *accessTag) node() *Node {
	if t == nil {
		return nil
	}
	return leaf(TagAccessTag, t.Pos, t.Text)
}

func (m *measure) node() *Node {
	if m == nil {
		return nil
	}
	tag := TagInt
	if isDecimal(m.Digits.Text) {
		tag = TagFloat
	}
	return &Node{Tag: tag, Start: m.Pos.Offset, End: m.Digits.Pos.Offset + len(m.Digits.Text)}
}

func (r *supplinkRecord) node() *Node {
	return recordNode(TagSupplink, r.Pos, r.Keyword, append(nodes(r.Attrs), nodes(r.Comments)...))
}

func (a *supplinkAttr) node() *Node {
	switch {
	case a.N != "":
		return group(TagSupplinkAttr, leaf(TagNPairAttrName, a.Pos, a.N[:1]), a.Pair.node())
	case a.Nodes != "":
		return group(TagSupplinkAttr, leaf(TagNPairAttrName, a.Pos, a.Nodes), a.Pair.node())
	}
	return group(TagSupplinkAttr, leaf(TagSupplinkAttrName, a.Pos, a.Name), a.Value.node())
}

func (r *factorRecord) node() *Node {
	return recordNode(TagFactor, r.Pos, r.Keyword, append(nodes(r.Attrs), nodes(r.Comments)...))
}

func (a *factorAttr) node() *Node {
	if a.Nodes != "" {
		return group(TagFactorAttr, leaf(TagWordNodes, a.Pos, a.Nodes), a.Seq.node())
	}
	return group(TagFactorAttr, leaf(TagFactorAttrName, a.Pos, a.Name), a.Value.node())
}

func (r *faresystemRecord) node() *Node {
	return recordNode(TagFaresystem, r.Pos, r.Keyword, append(nodes(r.Attrs), nodes(r.Comments)...))
}

func (a *faresystemAttr) node() *Node {
	if a.Fares != "" {
		return group(TagFaresystemAttr, leaf(TagFaresystemFFF, a.Pos, a.Fares), a.Seq.node())
	}
	return group(TagFaresystemAttr, leaf(TagFaresystemAttrName, a.Pos, a.Name), a.Value.node())
}

func (a *curveAttr) node() *Node {
	if a.Curve != "" {
		return group(TagCrvAttr, leaf(TagWordCurve, a.Pos, a.Curve), a.Points.node())
	}
	return group(TagCrvAttr, leaf(TagOpModeAttrName, a.Pos, a.Name), a.Value.node())
}

func (r *waitCurveRecord) node() *Node {
	return recordNode(TagWaitCrvDef, r.Pos, r.Keyword, append(nodes(r.Attrs), nodes(r.Comments)...))
}

func (r *crowdCurveRecord) node() *Node {
	return recordNode(TagCrowdCrvDef, r.Pos, r.Keyword, append(nodes(r.Attrs), nodes(r.Comments)...))
}

func (r *operatorRecord) node() *Node {
	attrs := assignments(r.Attrs, TagOpModeAttr, TagOpModeAttrName)
	return recordNode(TagOperator, r.Pos, r.Keyword, append(attrs, nodes(r.Comments)...))
}

func (r *modeRecord) node() *Node {
	attrs := assignments(r.Attrs, TagOpModeAttr, TagOpModeAttrName)
	return recordNode(TagMode, r.Pos, r.Keyword, append(attrs, nodes(r.Comments)...))
}

func (r *vehicleTypeRecord) node() *Node {
	attrs := assignments(r.Attrs, TagVehTypeAttr, TagVehTypeAttrName)
	return recordNode(TagVehicleType, r.Pos, r.Keyword, append(attrs, nodes(r.Comments)...))
}
