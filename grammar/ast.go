/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// transitFile is a run of comments and records. Comment runs are kept as
// entries of their own and attached to the record they open when the tree
// is reported.
type transitFile struct {
	Entries []*entry `@@* Break?`
}

type entry struct {
	Run    *commentRun `Break? ( @@`
	Record record      `       | @@ )`
}

// record is a top-level record production.
type record interface {
	node() *Node
}

type commentRun struct {
	Remarks []*remark `( @@ Break? )+`
}

type remark struct {
	Pos   lexer.Position
	Line  string `  @Comment`
	Block string `| @Block`
}

// semi is a semicolon comment, line terminator included.
type semi struct {
	Pos  lexer.Position
	Text string `@Comment`
}

// values

type value struct {
	Quoted *quoted    `  @@`
	Bare   *alphanums `| @@`
}

type quoted struct {
	Pos  lexer.Position
	Text string `@String`
}

type alphanums struct {
	Pos   lexer.Position
	Minus string  `@"-"?`
	Body  *scalar `@@`
}

type scalar struct {
	Pos  lexer.Position
	Text string `@(Ident | Word | Float | Int)`
}

type digits struct {
	Pos  lexer.Position
	Text string `@Int`
}

type decimal struct {
	Pos  lexer.Position
	Text string `@(Float | Int)`
}

type integer struct {
	Pos    lexer.Position
	Sign   string  `@("-" | "+")?`
	Digits *digits `@@`
}

type floatNum struct {
	Pos    lexer.Position
	Minus  string   `@"-"?`
	Digits *decimal `@@`
}

type nodePair struct {
	A *integer `@@ ( "," | "-" )`
	B *integer `@@`
}

type intSeq struct {
	Items []*integer `@@ ( ( "," | "-" ) Break? @@ )*`
}

type floatSeq struct {
	Items []*floatNum `@@ ( ( "," | "-" ) Break? @@ )*`
}

type xyPoint struct {
	X *decimal `@@ ( "," | "-" )`
	Y *decimal `@@`
}

type xySeq struct {
	Points []*xyPoint `@@ ( "," Break? @@ )*`
}

type assignment struct {
	Pos   lexer.Position
	Name  string `@Ident Break? "=" Break?`
	Value *value `@@ Break? ","? Break?`
}

// LINE

type lineRecord struct {
	Pos     lexer.Position
	Keyword string      `@"LINE" Break?`
	Parts   []*linePart `@@*`
}

// linePart is a line attribute or a node. Attributes that follow a node
// belong to it.
type linePart struct {
	Attr *lineAttr `  @@`
	Node *lineNode `| @@`
}

type lineAttr struct {
	Pos      lexer.Position
	Name     string  `@Ident Break? "=" Break?`
	Value    *value  `@@ Break? "," Break?`
	Comments []*semi `@@*`
}

type lineNode struct {
	Start   *nodeStart  `@@? Break?`
	Number  *integer    `@@ ","?`
	Comment *semi       `@@? Break?`
	Attrs   []*nodeAttr `@@*`
}

type nodeStart struct {
	Pos  lexer.Position
	Text string `@NodeStart`
}

type nodeAttr struct {
	Pos      lexer.Position
	Name     string  `@Ident Break? "=" Break?`
	Value    *value  `@@ Break? ","? Break?`
	Comments []*semi `@@*`
}

// LINK

type linkRecord struct {
	Pos      lexer.Position
	Keyword  string      `@"LINK" Break?`
	Attrs    []*linkAttr `@@* Break?`
	Comments []*semi     `@@*`
}

type linkAttr struct {
	Pos   lexer.Position
	Nodes string    `(  @"NODES" Break? "=" Break?`
	Pair  *nodePair `   @@`
	Modes string    ` | @"MODES" Break? "=" Break?`
	Seq   *intSeq   `   @@`
	Name  string    ` | @Ident Break? "=" Break?`
	Value *value    `   @@ ) Break? ","? Break?`
}

// PNR

type pnrRecord struct {
	Pos     lexer.Position
	Keyword string     `@"PNR" Break?`
	Attrs   []*pnrAttr `@@*`
}

type pnrAttr struct {
	Pos      lexer.Position
	Station  string    `(  @"NODE" Break? "=" Break?`
	Pair     *nodePair `   ( @@`
	Number   *integer  `   | @@ )`
	Zones    string    ` | @"ZONES" Break? "=" Break?`
	Seq      *intSeq   `   @@`
	Name     string    ` | @Ident Break? "=" Break?`
	Value    *value    `   @@ ) Break? ","? Break?`
	Comments []*semi   `@@*`
}

// ZONEACCESS

type zacRecord struct {
	Pos      lexer.Position
	Keyword  string     `@"ZONEACCESS" Break?`
	Attrs    []*zacAttr `@@* Break?`
	Comments []*semi    `@@*`
}

type zacAttr struct {
	Pos   lexer.Position
	Link  string    `(  @"LINK" Break? "=" Break?`
	Pair  *nodePair `   @@`
	Name  string    ` | @Ident Break? "=" Break?`
	Value *value    `   @@ ) Break? ","? Break?`
}

// access, egress and transfer link rows

type accessRow struct {
	A       *integer   `@@`
	B       *integer   `@@`
	Tag     *accessTag `@@?`
	Value   *measure   `@@?`
	Comment *semi      `@@?`
}

type accessTag struct {
	Pos  lexer.Position
	Text string `@( "WNR" | "PNR" )`
}

type measure struct {
	Pos    lexer.Position
	Sign   string   `@("-" | "+")?`
	Digits *decimal `@@`
}

// SUPPLINK

type supplinkRecord struct {
	Pos      lexer.Position
	Keyword  string          `@"SUPPLINK" Break?`
	Attrs    []*supplinkAttr `@@* Break?`
	Comments []*semi         `@@*`
}

type supplinkAttr struct {
	Pos   lexer.Position
	N     string    `( ( @NodeStart`
	Nodes string    `  | @"NODES" Break? "=" ) Break?`
	Pair  *nodePair `  @@`
	Name  string    `| @Ident Break? "=" Break?`
	Value *value    `  @@ ) Break? ","? Break?`
}

// FACTOR

type factorRecord struct {
	Pos      lexer.Position
	Keyword  string        `@"FACTOR" Break?`
	Attrs    []*factorAttr `@@* Break?`
	Comments []*semi       `@@*`
}

type factorAttr struct {
	Pos   lexer.Position
	Nodes string  `(  @"NODES" Break? "=" Break?`
	Seq   *intSeq `   @@`
	Name  string  ` | @Ident Break? "=" Break?`
	Value *value  `   @@ ) Break? ","? Break?`
}

// FARESYSTEM

type faresystemRecord struct {
	Pos      lexer.Position
	Keyword  string            `@"FARESYSTEM" Break?`
	Attrs    []*faresystemAttr `@@* Break?`
	Comments []*semi           `@@*`
}

type faresystemAttr struct {
	Pos   lexer.Position
	Fares string    `(  @"FAREFROMFS" Break? "=" Break?`
	Seq   *floatSeq `   @@`
	Name  string    ` | @Ident Break? "=" Break?`
	Value *value    `   @@ ) Break? ","? Break?`
}

// public transport system definitions

type waitCurveRecord struct {
	Pos      lexer.Position
	Keyword  string       `@"WAITCRVDEF" Break?`
	Attrs    []*curveAttr `@@* Break?`
	Comments []*semi      `@@*`
}

type crowdCurveRecord struct {
	Pos      lexer.Position
	Keyword  string       `@"CROWDCRVDEF" Break?`
	Attrs    []*curveAttr `@@* Break?`
	Comments []*semi      `@@*`
}

type curveAttr struct {
	Pos    lexer.Position
	Curve  string `(  @"CURVE" Break? "=" Break?`
	Points *xySeq `   @@`
	Name   string ` | @Ident Break? "=" Break?`
	Value  *value `   @@ ) Break? ","? Break?`
}

type operatorRecord struct {
	Pos      lexer.Position
	Keyword  string        `@"OPERATOR" Break?`
	Attrs    []*assignment `@@* Break?`
	Comments []*semi       `@@*`
}

type modeRecord struct {
	Pos      lexer.Position
	Keyword  string        `@"MODE" Break?`
	Attrs    []*assignment `@@* Break?`
	Comments []*semi       `@@*`
}

type vehicleTypeRecord struct {
	Pos      lexer.Position
	Keyword  string        `@"VEHICLETYPE" Break?`
	Attrs    []*assignment `@@* Break?`
	Comments []*semi       `@@*`
}

// isDecimal reports whether a number token carries a fraction or exponent.
func isDecimal(text string) bool {
	return strings.ContainsAny(text, ".eE")
}
