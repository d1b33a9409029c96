/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package network

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadNumber is returned for malformed node numbers and number lists.
var ErrBadNumber = errors.New("malformed number")

// NodePair is a directed A-B node pair.
type NodePair struct {
	A int
	B int
}

func (p NodePair) String() string {
	return strconv.Itoa(p.A) + "-" + strconv.Itoa(p.B)
}

// Reversed returns the B-A pair.
func (p NodePair) Reversed() NodePair {
	return NodePair{A: p.B, B: p.A}
}

// ParseNodePair parses "A-B" or "A,B". Either number may be negative.
func ParseNodePair(s string) (NodePair, error) {
	s = strings.TrimSpace(s)
	// skip a leading sign so "-1-2" splits after the first number
	sep := strings.IndexAny(s[min(1, len(s)):], "-,")
	if sep < 0 {
		return NodePair{}, fmt.Errorf("%w: node pair %q", ErrBadNumber, s)
	}
	sep += min(1, len(s))
	a, err := parseInt(s[:sep])
	if err != nil {
		return NodePair{}, fmt.Errorf("node pair %q: %w", s, err)
	}
	b, err := parseInt(s[sep+1:])
	if err != nil {
		return NodePair{}, fmt.Errorf("node pair %q: %w", s, err)
	}
	return NodePair{A: a, B: b}, nil
}

// ParseNumSeq expands a numeric list such as "1-3,7" into [1 2 3 7].
// A range whose end is below its start is an error.
func ParseNumSeq(s string) ([]int, error) {
	var out []int
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		first, err := parseInt(lo)
		if err != nil {
			return nil, fmt.Errorf("number list %q: %w", s, err)
		}
		if !isRange {
			out = append(out, first)
			continue
		}
		last, err := parseInt(hi)
		if err != nil {
			return nil, fmt.Errorf("number list %q: %w", s, err)
		}
		if last < first {
			return nil, fmt.Errorf("%w: descending range %q", ErrBadNumber, part)
		}
		for n := first; n <= last; n++ {
			out = append(out, n)
		}
	}
	return out, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, strings.TrimSpace(s))
	}
	return n, nil
}

// TransitLink is a LINK record overriding attributes of a roadway link.
type TransitLink struct {
	NodePair
	Attrs   Attrs
	Comment string
}

func (l *TransitLink) Kind() Kind { return KindLink }

// Extensions returns the attributes not recognized for links.
func (l *TransitLink) Extensions() Attrs {
	return l.Attrs.Extensions(LinkKeys)
}

// Modes returns the MODES list, or nil when the link applies to all modes.
func (l *TransitLink) Modes() ([]int, error) {
	v, ok := l.Attrs.Get("MODES")
	if !ok {
		return nil, nil
	}
	return ParseNumSeq(v)
}

// Supplink is a SUPPLINK record: a generated walk, drive or transfer link.
type Supplink struct {
	NodePair
	Attrs   Attrs
	Comment string
}

func (s *Supplink) Kind() Kind { return KindSupplink }

// Extensions returns the attributes not recognized for supplinks.
func (s *Supplink) Extensions() Attrs {
	return s.Attrs.Extensions(SupplinkKeys)
}

// ZACLink is a ZONEACCESS record.
type ZACLink struct {
	NodePair
	Attrs   Attrs
	Comment string
}

func (z *ZACLink) Kind() Kind { return KindZAC }

// Extensions returns the attributes not recognized for zone access links.
func (z *ZACLink) Extensions() Attrs {
	return z.Attrs.Extensions(ZACKeys)
}

// PNRLink is a PNR record. Station is the transit node; Lot is the parking
// node, or 0 when the record names the station only.
type PNRLink struct {
	Station int
	Lot     int
	Attrs   Attrs
	Comment string
}

func (p *PNRLink) Kind() Kind { return KindPNR }

// SetID parses a NODE value of the form "station" or "station-lot".
func (p *PNRLink) SetID(s string) error {
	if pair, err := ParseNodePair(s); err == nil {
		p.Station, p.Lot = pair.A, pair.B
		return nil
	}
	n, err := parseInt(s)
	if err != nil {
		return fmt.Errorf("pnr node %q: %w", s, err)
	}
	p.Station, p.Lot = n, 0
	return nil
}

// ID renders the NODE value.
func (p *PNRLink) ID() string {
	if p.Lot == 0 {
		return strconv.Itoa(p.Station)
	}
	return NodePair{A: p.Station, B: p.Lot}.String()
}

// Zones returns the ZONES list.
func (p *PNRLink) Zones() ([]int, error) {
	v, ok := p.Attrs.Get("ZONES")
	if !ok {
		return nil, nil
	}
	return ParseNumSeq(v)
}

// Extensions returns the attributes not recognized for PNR records.
func (p *PNRLink) Extensions() Attrs {
	return p.Attrs.Extensions(PNRKeys)
}
