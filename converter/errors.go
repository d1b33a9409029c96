/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package converter

import (
	"errors"
	"fmt"

	"bennypowers.dev/transitnet/internal/logger"
	"bennypowers.dev/transitnet/tree"
)

// Sentinel errors for conversion.
var (
	// ErrInvariantViolation indicates the tree held an item no converter
	// expects at that point, such as an attribute before its record opened.
	ErrInvariantViolation = errors.New("converter invariant violation")

	// ErrMissingKey indicates a record lacks the attribute that identifies it.
	ErrMissingKey = errors.New("record key missing")

	// ErrUnclassifiedLinki indicates access rows were found but no linki
	// kind was supplied.
	ErrUnclassifiedLinki = errors.New("access or transfer rows without a linki kind")

	// ErrNotReset indicates a Converter was reused without calling Reset.
	ErrNotReset = errors.New("converter reused without Reset")
)

// InvariantError describes the item that broke a converter invariant.
type InvariantError struct {
	Kind   string
	Tag    string
	Text   string
	Reason string
}

func (e *InvariantError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s %q", ErrInvariantViolation, e.Kind, e.Tag, e.Text)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}

// violation logs and returns an InvariantError for it.
func violation(kind, reason string, it tree.Item) error {
	err := &InvariantError{Kind: kind, Tag: it.Tag, Text: it.Text, Reason: reason}
	logger.Critical("%v", err)
	return err
}

// missingKey logs and returns an ErrMissingKey error.
func missingKey(kind, key string, it tree.Item) error {
	err := fmt.Errorf("%w: %s record without %s at offset %d", ErrMissingKey, kind, key, it.Start)
	logger.Critical("%v", err)
	return err
}
