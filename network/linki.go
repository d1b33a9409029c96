/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package network

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownLinkiKind is returned for an unrecognized linki kind name.
var ErrUnknownLinkiKind = errors.New("unknown linki kind")

// LinkiKind classifies rows of an access, transfer or node file. The rows
// share one syntax, so the kind comes from the file, not the record.
type LinkiKind int

const (
	LinkiUnknown LinkiKind = iota
	LinkiAccess
	LinkiXfer
	LinkiNode
)

// LinkiKinds lists the classified kinds.
var LinkiKinds = []LinkiKind{LinkiAccess, LinkiXfer, LinkiNode}

func (k LinkiKind) String() string {
	switch k {
	case LinkiAccess:
		return "access"
	case LinkiXfer:
		return "xfer"
	case LinkiNode:
		return "node"
	default:
		return ""
	}
}

// ParseLinkiKind converts a kind name, as used in configuration and flags.
func ParseLinkiKind(s string) (LinkiKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return LinkiUnknown, nil
	case "access":
		return LinkiAccess, nil
	case "xfer", "transfer":
		return LinkiXfer, nil
	case "node", "nodes":
		return LinkiNode, nil
	}
	return LinkiUnknown, fmt.Errorf("%w: %q", ErrUnknownLinkiKind, s)
}

// LinkiKindForPath classifies a file by its suffix.
func LinkiKindForPath(path string) LinkiKind {
	k, err := ParseLinkiKind(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return LinkiUnknown
	}
	return k
}

// Linki is one access, transfer or node link row.
type Linki struct {
	LinkiKind LinkiKind
	A         int
	B         int
	// Distance is set when the row carries a decimal value.
	Distance *float64
	// XferTime is set when the row carries an integer value.
	XferTime *int
	// AccessType is WNR, PNR or empty.
	AccessType string
	Comment    string
}

func (l *Linki) Kind() Kind { return KindLinki }

// Pair returns the A-B node pair.
func (l *Linki) Pair() NodePair {
	return NodePair{A: l.A, B: l.B}
}
