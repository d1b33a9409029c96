/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Production tags reported by the transit grammar.
const (
	TagTransitFile = "transit_file"

	TagLine             = "line"
	TagLink             = "link"
	TagPNR              = "pnr"
	TagZAC              = "zac"
	TagAccessLI         = "accessli"
	TagSupplink         = "supplink"
	TagFactor           = "factor"
	TagFaresystem       = "faresystem"
	TagWaitCrvDef       = "waitcrvdef"
	TagCrowdCrvDef      = "crowdcrvdef"
	TagOperator         = "operator"
	TagMode             = "mode"
	TagVehicleType      = "vehicletype"
	TagSMCW             = "smcw"
	TagSemicolonComment = "semicolon_comment"
	TagComment          = "comment"
	TagCComment         = "c_comment"

	TagLinAttr            = "lin_attr"
	TagLinAttrName        = "lin_attr_name"
	TagLinNode            = "lin_node"
	TagLinNodeStart       = "lin_nodestart"
	TagLinNodeAttr        = "lin_nodeattr"
	TagLinNodeAttrName    = "lin_nodeattr_name"
	TagLinkAttr           = "link_attr"
	TagLinkAttrName       = "link_attr_name"
	TagPNRAttr            = "pnr_attr"
	TagPNRAttrName        = "pnr_attr_name"
	TagZACAttr            = "zac_attr"
	TagZACAttrName        = "zac_attr_name"
	TagSupplinkAttr       = "supplink_attr"
	TagSupplinkAttrName   = "supplink_attr_name"
	TagNPairAttrName      = "npair_attr_name"
	TagFactorAttr         = "factor_attr"
	TagFactorAttrName     = "factor_attr_name"
	TagFaresystemAttr     = "faresystem_attr"
	TagFaresystemAttrName = "faresystem_attr_name"
	TagFaresystemFFF      = "faresystem_fff"
	TagCrvAttr            = "crv_attr"
	TagOpModeAttr         = "opmode_attr"
	TagOpModeAttrName     = "opmode_attr_name"
	TagVehTypeAttr        = "vehtype_attr"
	TagVehTypeAttrName    = "vehtype_attr_name"
	TagAccessTag          = "accesstag"

	TagWordNodes = "word_nodes"
	TagWordNode  = "word_node"
	TagWordModes = "word_modes"
	TagWordZones = "word_zones"
	TagWordLink  = "word_link"
	TagWordCurve = "word_curve"

	TagAttrValue    = "attr_value"
	TagAlphanums    = "alphanums"
	TagStringSingle = "string_single"
	TagStringDouble = "string_double"
	TagNodePair     = "nodepair"
	TagNodeNum      = "nodenum"
	TagNodeNumA     = "nodenumA"
	TagNodeNumB     = "nodenumB"
	TagNumSeq       = "numseq"
	TagFloatSeq     = "floatseq"
	TagFloatNum     = "floatnum"
	TagXYSeq        = "xyseq"
	TagXY           = "xy"
	TagPosFloatNum  = "pos_floatnum"
	TagInt          = "int"
	TagFloat        = "float"
)

// lookahead is how many tokens an alternative may consume before a failure
// inside it stops being backtracked.
const lookahead = 8

var transitLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `;[^\n]*\n?`},
	{Name: "Block", Pattern: `/\*(?s:.*?)\*/`},
	{Name: "Break", Pattern: `\n\s*`},
	{Name: "Space", Pattern: `[ \t\r]+`},
	{Name: "String", Pattern: `"[^"]*"|'[^']*'`},
	{Name: "NodeStart", Pattern: `(?i)N\s*=`},
	{Name: "Float", Pattern: `(\d+\.\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Word", Pattern: `\d[\d.]*[A-Za-z_][\w.]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[A-Za-z_][\w.]*(\[\d+\])?`},
	{Name: "Punct", Pattern: `[=,+-]`},
})

var transitParser = participle.MustBuild[transitFile](
	participle.Lexer(transitLexer),
	participle.Elide("Space"),
	participle.CaseInsensitive("Ident"),
	participle.Union[record](
		&accessRow{},
		&lineRecord{},
		&linkRecord{},
		&pnrRecord{},
		&zacRecord{},
		&supplinkRecord{},
		&factorRecord{},
		&faresystemRecord{},
		&waitCurveRecord{},
		&crowdCurveRecord{},
		&operatorRecord{},
		&modeRecord{},
		&vehicleTypeRecord{},
	),
	participle.UseLookahead(lookahead),
)

// Parse matches src against the transit grammar and returns its
// TagTransitFile node. Input that does not match, including input with no
// record at all, yields a *ParseError.
func Parse(src []byte) (*Node, error) {
	f, err := transitParser.ParseBytes("", src)
	if err != nil {
		return nil, mismatch(src, err)
	}
	return f.node(src)
}

// EBNF returns the grammar in participle's EBNF notation.
func EBNF() string {
	return transitParser.String()
}
