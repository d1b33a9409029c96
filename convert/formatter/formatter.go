/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for network formatters.
package formatter

import (
	"strings"

	"bennypowers.dev/transitnet/network"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format serializes a network to the target format.
	Format(n *network.Network, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Header is written before the output as comments, one per line.
	// Formats without comments ignore it.
	Header string

	// Indent is the indentation unit for structured formats.
	// Zero value is empty string; consuming code should set a default.
	Indent string
}

// FormatHeader renders header as comment lines opened by prefix, followed by
// a blank line. An empty header renders as "".
func FormatHeader(header, prefix string) string {
	header = strings.TrimRight(header, "\n")
	if header == "" {
		return ""
	}
	var b strings.Builder
	for line := range strings.SplitSeq(header, "\n") {
		b.WriteString(prefix)
		if line != "" {
			b.WriteString(" ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// IndentOr returns opts.Indent, or def when it is unset.
func IndentOr(opts Options, def string) string {
	if opts.Indent == "" {
		return def
	}
	return opts.Indent
}
