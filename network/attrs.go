/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package network

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Quote characters an attribute value may have been written with.
const (
	NoQuote     byte = 0
	SingleQuote byte = '\''
	DoubleQuote byte = '"'
)

var bareValue = regexp.MustCompile(`^-?[A-Za-z0-9_.]+$`)

// Attr is one KEY=VALUE assignment. Key is canonical upper case and Value
// never includes quotes; Quote remembers how the value was written.
type Attr struct {
	Key   string
	Value string
	Quote byte
}

// Literal returns the value as it should be written back out.
func (a Attr) Literal() string {
	q := a.Quote
	if q == NoQuote && !bareValue.MatchString(a.Value) {
		q = DoubleQuote
	}
	if q == NoQuote {
		return a.Value
	}
	return string(q) + a.Value + string(q)
}

// CanonicalKey normalizes an attribute name. Names are case-insensitive in
// the description language, so keys are stored upper-cased.
func CanonicalKey(key string) string {
	// Casers are stateful, so each call gets its own.
	return cases.Upper(language.Und).String(strings.TrimSpace(key))
}

// Attrs is an ordered set of attributes with unique canonical keys.
type Attrs []Attr

// Get returns the value for key.
func (a Attrs) Get(key string) (string, bool) {
	if i := a.index(CanonicalKey(key)); i >= 0 {
		return a[i].Value, true
	}
	return "", false
}

// Value returns the value for key, or "" when it is not set.
func (a Attrs) Value(key string) string {
	v, _ := a.Get(key)
	return v
}

// Has reports whether key is set.
func (a Attrs) Has(key string) bool {
	return a.index(CanonicalKey(key)) >= 0
}

// Lookup returns the full attribute for key.
func (a Attrs) Lookup(key string) (Attr, bool) {
	if i := a.index(CanonicalKey(key)); i >= 0 {
		return a[i], true
	}
	return Attr{}, false
}

// Set assigns value to key. An existing key keeps its position and quote
// style; a new key is appended.
func (a *Attrs) Set(key, value string) {
	k := CanonicalKey(key)
	if i := a.index(k); i >= 0 {
		(*a)[i].Value = value
		return
	}
	*a = append(*a, Attr{Key: k, Value: value})
}

// SetQuoted assigns value to key, recording the quote it was written with.
func (a *Attrs) SetQuoted(key, value string, quote byte) {
	k := CanonicalKey(key)
	if i := a.index(k); i >= 0 {
		(*a)[i].Value = value
		(*a)[i].Quote = quote
		return
	}
	*a = append(*a, Attr{Key: k, Value: value, Quote: quote})
}

// Delete removes key, reporting whether it was present.
func (a *Attrs) Delete(key string) bool {
	i := a.index(CanonicalKey(key))
	if i < 0 {
		return false
	}
	*a = slices.Delete(*a, i, i+1)
	return true
}

// Keys returns the keys in order.
func (a Attrs) Keys() []string {
	keys := make([]string, len(a))
	for i, attr := range a {
		keys[i] = attr.Key
	}
	return keys
}

// Extensions returns the attributes whose keys are not in known.
func (a Attrs) Extensions(known KeySet) Attrs {
	var ext Attrs
	for _, attr := range a {
		if !known.Contains(attr.Key) {
			ext = append(ext, attr)
		}
	}
	return ext
}

// Equal reports whether both sets hold the same keys, values and order.
// Quote style is ignored.
func (a Attrs) Equal(b Attrs) bool {
	return slices.EqualFunc(a, b, func(x, y Attr) bool {
		return x.Key == y.Key && x.Value == y.Value
	})
}

func (a Attrs) index(key string) int {
	return slices.IndexFunc(a, func(attr Attr) bool { return attr.Key == key })
}

// KeySet is the closed set of attribute names recognized for a record kind.
// Indexed names are stored with empty brackets, so "FREQ[]" recognizes
// FREQ[1], FREQ[2] and so on.
type KeySet map[string]struct{}

// NewKeySet builds a KeySet from names.
func NewKeySet(names ...string) KeySet {
	ks := make(KeySet, len(names))
	for _, n := range names {
		ks[CanonicalKey(n)] = struct{}{}
	}
	return ks
}

// Contains reports whether key is recognized.
func (ks KeySet) Contains(key string) bool {
	k := CanonicalKey(key)
	if i := strings.IndexByte(k, '['); i >= 0 {
		k = k[:i] + "[]"
	}
	_, ok := ks[k]
	return ok
}

// Recognized attribute names per record kind.
var (
	LineKeys = NewKeySet(
		"NAME", "ALLSTOPS", "COLOR", "FREQ[]", "MODE", "ONEWAY", "OWNER",
		"RUNTIME", "TIMEFAC", "XYSPEED", "LONGNAME", "SHORTNAME",
		"USERA1", "USERA2", "USERA3", "USERA4", "USERA5",
		"HEADWAY[]", "VEHICLETYPE", "OPERATOR", "FARESYSTEM",
	)

	NodeKeys       = NewKeySet("ACCESS", "ACCESS_C", "DELAY", "XYSPEED", "TIMEFAC", "NNTIME", "TIME")
	LinkKeys       = NewKeySet("DIST", "SPEED", "TIME", "ONEWAY", "MODES")
	SupplinkKeys   = NewKeySet("MODE", "DIST", "SPEED", "ONEWAY", "TIME")
	PNRKeys        = NewKeySet("TIME", "MAXTIME", "DISTFAC", "COST", "ZONES")
	ZACKeys        = NewKeySet("MODE")
	FactorKeys     = NewKeySet("MAXWAITTIME", "NODES")
	CurveKeys      = NewKeySet("NUMBER", "NAME", "LONGNAME", "CURVE")
	DefinitionKeys = NewKeySet("NUMBER", "NAME", "LONGNAME")

	FaresystemKeys = NewKeySet(
		"NUMBER", "NAME", "LONGNAME", "STRUCTURE", "SAME", "IBOARDFARE",
		"FAREMATRIX", "FAREZONES", "FAREFROMFS",
	)

	VehicleTypeKeys = NewKeySet(
		"NUMBER", "CROWDCURVE[]", "CRUSHCAP", "LOADDISTFAC", "LONGNAME", "NAME", "SEATCAP",
	)
)
