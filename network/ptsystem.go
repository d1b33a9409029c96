/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package network

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Table is an id-keyed collection that remembers insertion order.
type Table[T any] struct {
	IDs  []int
	ByID map[int]T
}

// Put stores v under id. An id seen before is replaced in place, keeping its
// original position.
func (t *Table[T]) Put(id int, v T) (replaced bool) {
	if t.ByID == nil {
		t.ByID = make(map[int]T)
	}
	_, replaced = t.ByID[id]
	if !replaced {
		t.IDs = append(t.IDs, id)
	}
	t.ByID[id] = v
	return replaced
}

// Get returns the entry for id.
func (t *Table[T]) Get(id int) (T, bool) {
	v, ok := t.ByID[id]
	return v, ok
}

// Delete removes id.
func (t *Table[T]) Delete(id int) bool {
	if _, ok := t.ByID[id]; !ok {
		return false
	}
	delete(t.ByID, id)
	t.IDs = slices.DeleteFunc(t.IDs, func(x int) bool { return x == id })
	return true
}

// Len returns the number of entries.
func (t *Table[T]) Len() int {
	return len(t.IDs)
}

// Values returns the entries in insertion order.
func (t *Table[T]) Values() []T {
	out := make([]T, 0, len(t.IDs))
	for _, id := range t.IDs {
		out = append(out, t.ByID[id])
	}
	return out
}

// Definition is an OPERATOR, MODE or VEHICLETYPE record.
type Definition struct {
	Number  int
	Attrs   Attrs
	Comment string
}

// Name returns the NAME attribute.
func (d *Definition) Name() string {
	return d.Attrs.Value("NAME")
}

// Point is one (x, y) breakpoint of a curve.
type Point struct {
	X float64
	Y float64
}

// Curve is a WAITCRVDEF or CROWDCRVDEF record.
type Curve struct {
	Definition
	Points []Point
}

// ParseCurve parses a CURVE value such as "0-0,10-5". A point may also be
// written with a comma, as in "0,0,10,5".
func ParseCurve(s string) ([]Point, error) {
	var fields []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			fields = append(fields, part)
		}
	}
	var points []Point
	for i := 0; i < len(fields); i++ {
		x, y, ok := strings.Cut(fields[i], "-")
		if !ok {
			if i+1 >= len(fields) {
				return nil, fmt.Errorf("%w: curve %q has an unpaired value", ErrBadNumber, s)
			}
			x, y = fields[i], fields[i+1]
			i++
		}
		px, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: curve point %q", ErrBadNumber, x)
		}
		py, err := strconv.ParseFloat(strings.TrimSpace(y), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: curve point %q", ErrBadNumber, y)
		}
		points = append(points, Point{X: px, Y: py})
	}
	return points, nil
}

// PTSystem groups the public transport system definitions of a PT file.
type PTSystem struct {
	WaitCurves   Table[*Curve]
	CrowdCurves  Table[*Curve]
	Operators    Table[*Definition]
	Modes        Table[*Definition]
	VehicleTypes Table[*Definition]
}

// Empty reports whether the system has no definitions.
func (p *PTSystem) Empty() bool {
	return p.WaitCurves.Len() == 0 &&
		p.CrowdCurves.Len() == 0 &&
		p.Operators.Len() == 0 &&
		p.Modes.Len() == 0 &&
		p.VehicleTypes.Len() == 0
}
