/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convention

import "strings"

// Marker comment bodies, as they appear after the comment's own ';'.
// Matching is byte-exact.
const (
	TrnbuildMarker = ";<<Trnbuild>>;;"
	PTMarker       = ";<<PT>><<LINE>>;;"
)

// Detect classifies comment bodies by their marker prefixes. When markers
// of both programs appear, the last one wins.
func Detect(comments []string) Convention {
	found := Unknown
	for _, body := range comments {
		switch {
		case strings.HasPrefix(body, TrnbuildMarker):
			found = Trnbuild
		case strings.HasPrefix(body, PTMarker):
			found = PT
		}
	}
	return found
}

// Marker returns the header comment body that identifies c, or "" for
// Unknown.
func (c Convention) Marker() string {
	switch c {
	case Trnbuild:
		return TrnbuildMarker
	case PT:
		return PTMarker
	default:
		return ""
	}
}
