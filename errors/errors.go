// seehuhn.de/go/sdfcanvas - signed-distance shape rendering for terminals
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package errors provides the error taxonomy shared by the sdfcanvas packages.
//
// Errors of kind [KindType] and [KindRange] describe bad caller input and
// are returned before any pixel is touched.  Errors of kind [KindConfig]
// describe an internally inconsistent state, typically an unknown enum value
// which slipped past a validation bypass.  Such errors are raised with panic
// at the point of use.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindType indicates an argument of the wrong kind, e.g. a nil shape.
	KindType
	// KindRange indicates a numeric value outside its documented domain.
	KindRange
	// KindConfig indicates an inconsistent configuration reached mid-algorithm.
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindRange:
		return "range"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error is a structured error carrying the failed operation and its kind.
type Error struct {
	// Op is the operation that failed (e.g. "encode.Encode").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Type returns a [KindType] error for operation op.
func Type(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindType, Err: fmt.Errorf(format, args...)}
}

// Range returns a [KindRange] error for operation op.
func Range(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindRange, Err: fmt.Errorf(format, args...)}
}

// Config returns a [KindConfig] error for operation op.
func Config(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindConfig, Err: fmt.Errorf(format, args...)}
}

// IsKind reports whether any error in err's chain is an [*Error] of the
// given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
