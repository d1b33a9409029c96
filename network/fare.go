/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package network

import (
	"fmt"
	"strconv"
	"strings"
)

// Factor is a FACTOR record adjusting wait times at a set of nodes.
type Factor struct {
	Attrs   Attrs
	Comment string
}

func (f *Factor) Kind() Kind { return KindFactor }

// Nodes returns the NODES list.
func (f *Factor) Nodes() ([]int, error) {
	v, ok := f.Attrs.Get("NODES")
	if !ok {
		return nil, nil
	}
	return ParseNumSeq(v)
}

// Extensions returns the attributes not recognized for factors.
func (f *Factor) Extensions() Attrs {
	return f.Attrs.Extensions(FactorKeys)
}

// Faresystem is a FARESYSTEM record, identified by NUMBER.
type Faresystem struct {
	Number int
	Attrs  Attrs
	// FareFromFS is the parsed FAREFROMFS vector: the fare charged when
	// transferring from each fare system, in fare system order.
	FareFromFS []float64
	Comment    string
}

func (f *Faresystem) Kind() Kind { return KindFaresystem }

// Extensions returns the attributes not recognized for fare systems.
func (f *Faresystem) Extensions() Attrs {
	return f.Attrs.Extensions(FaresystemKeys)
}

// SetFareFromFS replaces the transfer fare vector and its attribute.
func (f *Faresystem) SetFareFromFS(fares []float64) {
	f.FareFromFS = append([]float64(nil), fares...)
	f.Attrs.Set("FAREFROMFS", FormatFloatSeq(fares))
}

// ParseFloatSeq parses a comma or dash separated list of decimals.
func ParseFloatSeq(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		for _, part := range splitDash(f) {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q in %q", ErrBadNumber, part, s)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// splitDash splits on '-' separators while keeping a leading minus sign.
func splitDash(s string) []string {
	var parts []string
	start := 0
	for i := 1; i < len(s); i++ {
		if s[i] == '-' && s[i-1] != '-' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// FormatFloatSeq renders fares as a comma separated list.
func FormatFloatSeq(fares []float64) string {
	parts := make([]string, len(fares))
	for i, v := range fares {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}
