/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for trn.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/transitnet/cmd/flags"
	"bennypowers.dev/transitnet/convert/formatter"
	"bennypowers.dev/transitnet/fs"
	"bennypowers.dev/transitnet/load"
	"bennypowers.dev/transitnet/network"
)

// Kinds are the record collections list can show.
var Kinds = []string{"lines", "links", "pnrs", "zacs", "linkis", "supplinks", "factors", "faresystems", "pts"}

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List records from transit network files",
	Long: `List the records of transit network files with optional filtering and formatting.

Filters are boolean expressions evaluated per record. Attributes are
variables named by their upper-case key; unquoted numbers compare as
numbers. Keys that are not identifiers, such as FREQ[1], are read from
the attrs map. Every record also has kind, id and comment; lines add
name, nodes and stops, and pair records add a and b.

Examples:
  trn list net/*.lin
  trn list --kind lines --filter 'MODE == 5 && nodes > 2' net/bus.lin
  trn list --kind lines --filter 'attrs["FREQ[1]"] <= 10' net/bus.lin
  trn list --kind linkis --format json net/walk.access`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("kind", "", "Only list one kind: "+strings.Join(Kinds, ", "))
	Cmd.Flags().String("filter", "", "Only list records matching an expression")
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	filterSrc, _ := cmd.Flags().GetString("filter")
	format, _ := cmd.Flags().GetString("format")

	opts, err := flags.LoadOptions(fs.NewOSFileSystem())
	if err != nil {
		return err
	}
	results, err := load.LoadAll(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	var entries []entry
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", r.Path, r.Err)
			continue
		}
		found, err := collect(r.Network, kind)
		if err != nil {
			return err
		}
		for i := range found {
			found[i].File = r.Path
		}
		entries = append(entries, found...)
	}

	entries, err = filter(entries, filterSrc)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), entries)
	case "table":
		return outputTable(cmd.OutOrStdout(), entries)
	default:
		return fmt.Errorf("unknown format: %s (valid: table, json)", format)
	}
}

// entry is one listed record.
type entry struct {
	File    string              `json:"file,omitempty"`
	Kind    string              `json:"kind"`
	ID      string              `json:"id"`
	Attrs   []formatter.AttrDoc `json:"attrs,omitempty"`
	Comment string              `json:"comment,omitempty"`
	env     map[string]any
}

func newEntry(kind, id string, attrs network.Attrs, comment string) entry {
	e := entry{Kind: kind, ID: id, Comment: comment}
	byKey := make(map[string]any, len(attrs))
	e.env = map[string]any{
		"kind":    kind,
		"id":      id,
		"comment": comment,
		"attrs":   byKey,
	}
	for _, a := range attrs {
		e.Attrs = append(e.Attrs, formatter.AttrDoc{Key: a.Key, Value: a.Value})
		v := typed(a)
		byKey[a.Key] = v
		e.env[a.Key] = v
	}
	return e
}

func (e entry) with(key string, v any) entry {
	e.env[key] = v
	return e
}

// typed converts unquoted numeric values so filters can compare them as
// numbers.
func typed(a network.Attr) any {
	if a.Quote != network.NoQuote {
		return a.Value
	}
	if i, err := strconv.Atoi(a.Value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(a.Value, 64); err == nil {
		return f
	}
	return a.Value
}

// collect lists the records of n, or only those of kind when it is set.
func collect(n *network.Network, kind string) ([]entry, error) {
	if kind != "" && !slices.Contains(Kinds, kind) {
		return nil, fmt.Errorf("unknown kind: %s (valid: %s)", kind, strings.Join(Kinds, ", "))
	}
	want := func(k string) bool { return kind == "" || kind == k }

	var out []entry
	if want("lines") {
		for _, l := range n.TransitLines() {
			out = append(out, newEntry("line", l.Name(), l.Attrs, l.Comment).
				with("name", l.Name()).
				with("nodes", len(l.Nodes)).
				with("stops", len(l.Stops())))
		}
	}
	if want("links") {
		for _, l := range n.TransitLinks() {
			out = append(out, pair(newEntry("link", l.NodePair.String(), l.Attrs, l.Comment), l.NodePair))
		}
	}
	if want("pnrs") {
		for _, p := range n.PNRLinks() {
			out = append(out, newEntry("pnr", p.ID(), p.Attrs, p.Comment).
				with("station", p.Station).
				with("lot", p.Lot))
		}
	}
	if want("zacs") {
		for _, z := range n.ZACLinks() {
			out = append(out, pair(newEntry("zac", z.NodePair.String(), z.Attrs, z.Comment), z.NodePair))
		}
	}
	if want("linkis") {
		for _, l := range n.LinkiRecords() {
			out = append(out, linki(l))
		}
	}
	if want("supplinks") {
		for _, s := range n.SupplinkRecords() {
			out = append(out, pair(newEntry("supplink", s.NodePair.String(), s.Attrs, s.Comment), s.NodePair))
		}
	}
	if want("factors") {
		for i, f := range n.FactorRecords() {
			out = append(out, newEntry("factor", "#"+strconv.Itoa(i+1), f.Attrs, f.Comment))
		}
	}
	if want("faresystems") {
		for _, f := range n.FaresystemRecords() {
			out = append(out, newEntry("faresystem", strconv.Itoa(f.Number), f.Attrs, f.Comment).
				with("number", f.Number))
		}
	}
	if want("pts") && n.PTSystem != nil {
		out = append(out, ptSystem(n.PTSystem)...)
	}
	return out, nil
}

func pair(e entry, p network.NodePair) entry {
	return e.with("a", p.A).with("b", p.B)
}

func linki(l *network.Linki) entry {
	var attrs network.Attrs
	if l.AccessType != "" {
		attrs.Set("ACCESSTYPE", l.AccessType)
	}
	switch {
	case l.Distance != nil:
		attrs.Set("DIST", strconv.FormatFloat(*l.Distance, 'f', -1, 64))
	case l.XferTime != nil:
		attrs.Set("XFERTIME", strconv.Itoa(*l.XferTime))
	}
	kind := "linki"
	if l.LinkiKind != network.LinkiUnknown {
		kind = l.LinkiKind.String()
	}
	return pair(newEntry(kind, l.Pair().String(), attrs, l.Comment), l.Pair())
}

func ptSystem(p *network.PTSystem) []entry {
	var out []entry
	for _, c := range p.WaitCurves.Values() {
		out = append(out, definition("waitcurve", &c.Definition))
	}
	for _, c := range p.CrowdCurves.Values() {
		out = append(out, definition("crowdcurve", &c.Definition))
	}
	for _, d := range p.Operators.Values() {
		out = append(out, definition("operator", d))
	}
	for _, d := range p.Modes.Values() {
		out = append(out, definition("mode", d))
	}
	for _, d := range p.VehicleTypes.Values() {
		out = append(out, definition("vehicletype", d))
	}
	return out
}

func definition(kind string, d *network.Definition) entry {
	return newEntry(kind, strconv.Itoa(d.Number), d.Attrs, d.Comment).
		with("number", d.Number).
		with("name", d.Name())
}

// filter keeps the entries for which src evaluates to true. Variables a
// record does not define are nil.
func filter(entries []entry, src string) ([]entry, error) {
	if src == "" {
		return entries, nil
	}
	program, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	var out []entry
	for _, e := range entries {
		result, err := expr.Run(program, e.env)
		if err != nil {
			return nil, fmt.Errorf("filter %s %s: %w", e.Kind, e.ID, err)
		}
		keep, ok := result.(bool)
		if !ok {
			return nil, fmt.Errorf("filter %q returned %T, not a boolean", src, result)
		}
		if keep {
			out = append(out, e)
		}
	}
	return out, nil
}

func outputTable(w io.Writer, entries []entry) error {
	title := cases.Title(language.English)
	if _, err := fmt.Fprintf(w, "%-12s %-16s %s\n", title.String("kind"), title.String("id"), title.String("attributes")); err != nil {
		return err
	}
	for _, e := range entries {
		parts := make([]string, len(e.Attrs))
		for i, a := range e.Attrs {
			parts[i] = a.Key + "=" + a.Value
		}
		row := fmt.Sprintf("%-12s %-16s %s", e.Kind, e.ID, strings.Join(parts, ", "))
		if e.Comment != "" {
			row += " ; " + e.Comment
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(row, " ")); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, entries []entry) error {
	if entries == nil {
		entries = []entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
