/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convention classifies which modeling program wrote a line file.
package convention

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownConvention indicates an unrecognized convention name.
var ErrUnknownConvention = errors.New("unknown convention")

// Convention is the source program whose dialect a line file follows.
type Convention int

const (
	// Unknown means no marker comment was found.
	Unknown Convention = iota

	// Trnbuild is the legacy TRNBUILD line format.
	Trnbuild

	// PT is the Public Transport program's line format.
	PT
)

// String returns the program name.
func (c Convention) String() string {
	switch c {
	case Trnbuild:
		return "TRNBUILD"
	case PT:
		return "PT"
	default:
		return "UNKNOWN"
	}
}

// FromString parses a program name, ignoring case.
func FromString(s string) (Convention, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRNBUILD":
		return Trnbuild, nil
	case "PT":
		return PT, nil
	case "", "UNKNOWN":
		return Unknown, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnknownConvention, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Convention) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Convention) UnmarshalText(text []byte) error {
	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
