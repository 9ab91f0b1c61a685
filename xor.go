// XXOR
//
// Copyright (C) 2026 The XXOR Authors
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package xxor // import "github.com/snqre/xxor"

//--------------------
// IMPORTS
//--------------------

import (
	"fmt"
)

//--------------------
// VARIANT
//--------------------

// Variant identifies which of the two variants a value holds.
type Variant int

const (
	// VariantThis marks a value holding its first type parameter. It is
	// the zero Variant, so the zero value of XOR holds a This.
	VariantThis Variant = iota
	// VariantThat marks a value holding its second type parameter.
	VariantThat
)

// String implements the fmt.Stringer interface.
func (v Variant) String() string {
	switch v {
	case VariantThis:
		return "This"
	case VariantThat:
		return "That"
	default:
		return "invalid variant"
	}
}

//--------------------
// XOR
//--------------------

// XOR holds exactly one of two values of possibly different types: a This
// of type A or a That of type B. Unlike an option, which tells a value from
// its absence, and unlike a result, which tells a value from an error, both
// variants represent valid outcomes.
//
// Values are immutable once constructed. The inactive slot always keeps the
// zero value of its type, so for comparable A and B the == operator compares
// the active variant and its held value only. The zero value of XOR is a
// This holding the zero value of A.
type XOR[A, B any] struct {
	variant Variant
	this    A
	that    B
}

// This creates an XOR holding the given value as its This variant.
func This[A, B any](value A) XOR[A, B] {
	return XOR[A, B]{variant: VariantThis, this: value}
}

// That creates an XOR holding the given value as its That variant.
func That[A, B any](value B) XOR[A, B] {
	return XOR[A, B]{variant: VariantThat, that: value}
}

// Variant returns the active variant.
func (x XOR[A, B]) Variant() Variant {
	return x.variant
}

// IsThis reports whether the value holds its This variant.
func (x XOR[A, B]) IsThis() bool {
	return x.variant == VariantThis
}

// IsThat reports whether the value holds its That variant.
func (x XOR[A, B]) IsThat() bool {
	return x.variant == VariantThat
}

// This returns the held This value and true, or the zero value of A and
// false if the value holds its That variant.
func (x XOR[A, B]) This() (A, bool) {
	return x.this, x.variant == VariantThis
}

// That returns the held That value and true, or the zero value of B and
// false if the value holds its This variant.
func (x XOR[A, B]) That() (B, bool) {
	return x.that, x.variant == VariantThat
}

// ThisOr returns the held This value, or the given fallback if the value
// holds its That variant.
func (x XOR[A, B]) ThisOr(fallback A) A {
	if x.variant != VariantThis {
		return fallback
	}
	return x.this
}

// ThatOr returns the held That value, or the given fallback if the value
// holds its This variant.
func (x XOR[A, B]) ThatOr(fallback B) B {
	if x.variant != VariantThat {
		return fallback
	}
	return x.that
}

//--------------------
// UNWRAPPING
//--------------------

// UnwrapThis returns the held This value. It panics with a
// *WrongVariantError if the value holds its That variant; unwrapping the
// inactive variant signals a programming error and is never recovered by
// the package.
func (x XOR[A, B]) UnwrapThis() A {
	if x.variant != VariantThis {
		panic(&WrongVariantError{Op: "UnwrapThis", Variant: x.variant})
	}
	return x.this
}

// UnwrapThat returns the held That value. It panics with a
// *WrongVariantError if the value holds its This variant.
func (x XOR[A, B]) UnwrapThat() B {
	if x.variant != VariantThat {
		panic(&WrongVariantError{Op: "UnwrapThat", Variant: x.variant})
	}
	return x.that
}

//--------------------
// EQUALITY
//--------------------

// Equal reports whether two values hold the same active variant with equal
// held values. For comparable type parameters the == operator performs the
// same comparison; Equal spells out the constraint.
func Equal[A, B comparable](x, y XOR[A, B]) bool {
	return x == y
}

//--------------------
// STRING
//--------------------

// String implements the fmt.Stringer interface. Values render like their
// constructor call, This(<value>) or That(<value>).
func (x XOR[A, B]) String() string {
	if x.variant == VariantThat {
		return fmt.Sprintf("That(%v)", x.that)
	}
	return fmt.Sprintf("This(%v)", x.this)
}

// EOF
