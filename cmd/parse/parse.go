/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parse provides the parse command for trn.
package parse

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"bennypowers.dev/transitnet/fs"
	"bennypowers.dev/transitnet/grammar"
	"bennypowers.dev/transitnet/parser"
	"bennypowers.dev/transitnet/tree"
)

// Cmd is the parse cobra command.
var Cmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Print the parse tree of a transit file",
	Long: `Parse a transit file and print its records.

The text format prints one row per top-level record with its byte span.
The json format prints the full tree of captured productions.

Examples:
  trn parse net/bus.lin
  trn parse --format json net/bus.lin
  trn parse --dump net/walk.access
  trn parse --grammar`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
	Cmd.Flags().Bool("dump", false, "Dump the tree structure")
	Cmd.Flags().Bool("grammar", false, "Print the transit grammar as EBNF and exit")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	dump, _ := cmd.Flags().GetBool("dump")
	if showGrammar, _ := cmd.Flags().GetBool("grammar"); showGrammar {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), grammar.EBNF())
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("missing FILE argument")
	}

	filesystem := fs.NewOSFileSystem()
	data, err := filesystem.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	f, err := parser.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	switch {
	case dump:
		_, err = fmt.Fprintf(out, "%# v\n", pretty.Formatter(f))
		return err
	case format == "json":
		return outputJSON(out, f)
	case format == "text":
		return outputText(out, data, f)
	default:
		return fmt.Errorf("unknown format: %s (valid: text, json)", format)
	}
}

func outputText(w io.Writer, src []byte, f *tree.File) error {
	for _, r := range f.Records {
		start, end := r.Span()
		first, _, _ := strings.Cut(string(src[start:end]), "\n")
		if _, err := fmt.Fprintf(w, "%-14s %6d-%-6d %s\n", r.Tag(), start, end, strings.TrimRight(first, "\r")); err != nil {
			return err
		}
	}
	return nil
}

type node struct {
	Tag      string `json:"tag"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Text     string `json:"text,omitempty"`
	Children []node `json:"children,omitempty"`
}

// newNode keeps text only on leaves; a parent's text is its children's.
func newNode(it tree.Item) node {
	n := node{Tag: it.Tag, Start: it.Start, End: it.End}
	if len(it.Children) == 0 {
		n.Text = it.Text
		return n
	}
	for _, c := range it.Children {
		n.Children = append(n.Children, newNode(c))
	}
	return n
}

func outputJSON(w io.Writer, f *tree.File) error {
	records := make([]node, 0, len(f.Records))
	for _, r := range f.Records {
		start, end := r.Span()
		n := node{Tag: r.Tag(), Start: start, End: end}
		for _, it := range r.Parts() {
			n.Children = append(n.Children, newNode(it))
		}
		records = append(records, n)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
