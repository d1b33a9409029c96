/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package linkkey assigns unique (A, B, NAME, SEQ) keys to the links a
// line traverses, the key collaborators use to address per-link assignment
// results.
package linkkey

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/transitnet/internal/logger"
	"bennypowers.dev/transitnet/network"
)

// Key addresses one link of one line. Seq is 1-based; a Seq of zero means
// the key carries no sequence.
type Key struct {
	A    int
	B    int
	Name string
	Seq  int
}

// String renders the key as "A B NAME SEQ".
func (k Key) String() string {
	s := strconv.Itoa(k.A) + " " + strconv.Itoa(k.B) + " " + k.Name
	if k.Seq > 0 {
		s += " " + strconv.Itoa(k.Seq)
	}
	return s
}

// Index is a set of unique keys in insertion order.
type Index struct {
	seen map[string]struct{}
	keys []Key
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{seen: make(map[string]struct{})}
}

// Add records a key for the a-b link of line name. A key already in the
// index gets the next free sequence number and a warning.
func (ix *Index) Add(a, b int, name string, seq int) Key {
	k := Key{A: a, B: b, Name: cases.Upper(language.Und).String(name), Seq: seq}
	if k.Seq > 0 {
		if _, dup := ix.seen[k.String()]; dup {
			logger.Warn("non-unique A/B/NAME/SEQ: %s; faking SEQ", k)
		}
		for {
			if _, dup := ix.seen[k.String()]; !dup {
				break
			}
			k.Seq++
		}
	}
	ix.seen[k.String()] = struct{}{}
	ix.keys = append(ix.keys, k)
	return k
}

// Contains reports whether k is in the index.
func (ix *Index) Contains(k Key) bool {
	_, ok := ix.seen[k.String()]
	return ok
}

// Keys returns the keys in insertion order.
func (ix *Index) Keys() []Key {
	return append([]Key(nil), ix.keys...)
}

// Len returns the number of keys.
func (ix *Index) Len() int {
	return len(ix.keys)
}

// FromLines indexes every consecutive node pair of each line. Node numbers
// are absolute and SEQ is the 1-based position of the link in its line.
func FromLines(lines []*network.TransitLine) *Index {
	ix := NewIndex()
	for _, l := range lines {
		for i, p := range l.Links() {
			ix.Add(p.A, p.B, l.Name(), i+1)
		}
	}
	return ix
}

// Record is the CSV row of one key.
type Record struct {
	A         int    `csv:"A"`
	B         int    `csv:"B"`
	Name      string `csv:"NAME"`
	Seq       int    `csv:"SEQ"`
	ABNameSeq string `csv:"ABNAMESEQ"`
}

// Records returns the keys as CSV rows.
func (ix *Index) Records() []*Record {
	rows := make([]*Record, 0, len(ix.keys))
	for _, k := range ix.keys {
		rows = append(rows, &Record{A: k.A, B: k.B, Name: k.Name, Seq: k.Seq, ABNameSeq: k.String()})
	}
	return rows
}

// WriteCSV writes the keys as CSV with a header row.
func (ix *Index) WriteCSV(w io.Writer) error {
	if err := gocsv.Marshal(ix.Records(), w); err != nil {
		return fmt.Errorf("failed to write keys: %w", err)
	}
	return nil
}

// ReadCSV rebuilds an index from CSV written by WriteCSV. Keys are added
// again, so duplicates in the input are renumbered.
func ReadCSV(r io.Reader) (*Index, error) {
	var rows []*Record
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to read keys: %w", err)
	}
	ix := NewIndex()
	for _, row := range rows {
		ix.Add(row.A, row.B, row.Name, row.Seq)
	}
	return ix, nil
}
