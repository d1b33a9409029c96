/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/transitnet/convert/formatter"
	"bennypowers.dev/transitnet/convert/formatter/jsondoc"
	"bennypowers.dev/transitnet/convert/formatter/lin"
	"bennypowers.dev/transitnet/convert/formatter/yamldoc"
	"bennypowers.dev/transitnet/network"
)

// Format represents an output format for network serialization.
type Format string

const (
	// FormatLin outputs the native description language (default).
	FormatLin Format = "lin"

	// FormatJSON outputs the structural document as JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs the structural document as YAML.
	FormatYAML Format = "yaml"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatLin),
		string(FormatJSON),
		string(FormatYAML),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "lin", "cube", "native", "":
		return FormatLin, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// FormatNetwork converts a network to the specified output format.
func FormatNetwork(n *network.Network, format Format, opts Options) ([]byte, error) {
	fmtOpts := formatter.Options{
		Header: opts.Header,
		Indent: opts.Indent,
	}
	serialize := func(n *network.Network) *formatter.Document {
		return Serialize(n, opts)
	}

	var f formatter.Formatter
	switch format {
	case FormatLin:
		f = lin.New()
	case FormatJSON:
		f = jsondoc.New(serialize)
	case FormatYAML:
		f = yamldoc.New(serialize)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return f.Format(n, fmtOpts)
}
