/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package grammar

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
)

// ErrGrammarMismatch is returned when input does not match the grammar.
var ErrGrammarMismatch = errors.New("input does not match grammar")

// ParseError locates a grammar mismatch in the source.
type ParseError struct {
	Offset int
	Line   int
	Col    int
	Msg    string
	Near   string
}

// mismatch converts a participle or lexer error into a *ParseError.
func mismatch(src []byte, err error) *ParseError {
	var perr participle.Error
	if errors.As(err, &perr) {
		return newParseError(src, perr.Position().Offset, perr.Message())
	}
	return newParseError(src, 0, err.Error())
}

func newParseError(src []byte, offset int, msg string) *ParseError {
	offset = min(max(offset, 0), len(src))
	line, col := LineCol(src, offset)
	near := src[offset:]
	if i := bytes.IndexByte(near, '\n'); i >= 0 {
		near = near[:i]
	}
	if len(near) > 40 {
		near = near[:40]
	}
	return &ParseError{
		Offset: offset,
		Line:   line,
		Col:    col,
		Msg:    msg,
		Near:   strings.TrimRight(string(near), "\r"),
	}
}

func (e *ParseError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%d: %s", e.Line, e.Col, ErrGrammarMismatch)
	if e.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Msg)
	}
	if e.Near != "" {
		fmt.Fprintf(&sb, " near %q", e.Near)
	} else {
		sb.WriteString(" at end of input")
	}
	return sb.String()
}

func (e *ParseError) Unwrap() error {
	return ErrGrammarMismatch
}

// LineCol converts a byte offset to a 1-based line and column. Columns count
// runes, not bytes.
func LineCol(src []byte, offset int) (line, col int) {
	offset = min(max(offset, 0), len(src))
	head := src[:offset]
	line = bytes.Count(head, []byte{'\n'}) + 1
	start := bytes.LastIndexByte(head, '\n') + 1
	col = utf8.RuneCount(head[start:]) + 1
	return line, col
}
