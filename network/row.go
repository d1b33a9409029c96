/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package network

// Kind identifies the variant held by a Row.
type Kind int

const (
	KindComment Kind = iota
	KindLine
	KindLink
	KindPNR
	KindZAC
	KindLinki
	KindSupplink
	KindFactor
	KindFaresystem
)

func (k Kind) String() string {
	switch k {
	case KindComment:
		return "comment"
	case KindLine:
		return "line"
	case KindLink:
		return "link"
	case KindPNR:
		return "pnr"
	case KindZAC:
		return "zac"
	case KindLinki:
		return "linki"
	case KindSupplink:
		return "supplink"
	case KindFactor:
		return "factor"
	case KindFaresystem:
		return "faresystem"
	default:
		return "unknown"
	}
}

// Row is an element of an ordered record collection: either a record or a
// standalone Comment.
type Row interface {
	Kind() Kind
}

// Comment is a comment that belongs to no record. Text is the comment body
// exactly as written after the ';', or the whole "/* */" text when Block
// is set.
type Comment struct {
	Text  string
	Block bool
}

func (Comment) Kind() Kind { return KindComment }

// records returns the rows of type T, skipping comments.
func records[T Row](rows []Row) []T {
	var out []T
	for _, r := range rows {
		if rec, ok := r.(T); ok {
			out = append(out, rec)
		}
	}
	return out
}
