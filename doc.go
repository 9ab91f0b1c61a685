// XXOR
//
// Copyright (C) 2026 The XXOR Authors
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

/*
Package xxor provides a generic container holding exactly one of two values
of possibly different types, called the This and the That variant. It covers
the case the two classic container types do not: an option tells a value
from its absence and a result tells a value from an error, while an XOR
tells two outcomes apart that are both valid. Reach for it when a
computation legitimately produces one of two shapes - a parser yielding a
number or a quoted literal, a lookup answered from a fresh or a cached
entry, an address resolving to an IPv4 or an IPv6 form - and defining a
dedicated two-case type would be ceremony.

A value is created with one of the two constructors and is immutable
afterwards. Every operation either reads it or derives a new value.

	age := xxor.This[uint8, uint16](42)

	age.IsThis()      // true
	age.IsThat()      // false
	age.Variant()     // xxor.VariantThis

# Inspecting

The comma-ok accessors This and That return the held value of the matching
variant, or the zero value and false for the other one:

	if value, ok := age.This(); ok {
		fmt.Println("narrow age:", value)
	}

ThisOr and ThatOr return a fallback instead of the second return value:

	width := size.ThisOr(640)

# Unwrapping

UnwrapThis and UnwrapThat return the held value directly. Unwrapping the
inactive variant is a programming error: it panics with a
*WrongVariantError naming the failed operation and the variant actually
held. The package never recovers this panic itself.

	port := xxor.That[string, int](8080)

	port.UnwrapThat()     // 8080
	port.UnwrapThis()     // panics: xxor: UnwrapThis on That value

# Transforming

Go methods cannot introduce new type parameters, so the type-changing
transformations are package functions. MapThis applies a function to the
This side and passes That values through unchanged; MapThat mirrors it for
the other side.

	count := xxor.This[int, string](5)
	label := xxor.That[int, string]("x")

	xxor.MapThis(count, func(n int) int { return n + 1 })     // This(6)
	xxor.MapThis(label, func(n int) int { return n + 1 })     // That(x), untouched
	xxor.MapThat(label, strings.ToUpper)                      // That(X)

# Equality

Two values are equal if they hold the same active variant with equal held
values. For comparable type parameters the == operator performs exactly
this comparison, because the constructors leave the inactive slot at its
zero value. The package function Equal spells the same comparison with an
explicit comparable constraint. Note that equality discriminates variants
even when the held values would compare equal:

	xxor.This[int, int](1) == xxor.That[int, int](1)     // false

# The Zero Value

The zero value of XOR[A, B] is a This holding the zero value of A. There is
no empty state; every value, including the zero value, holds exactly one
variant.

# Concurrency

Values are immutable, so sharing them between goroutines for concurrent
reads needs no synchronization.

For a complete API reference visit
https://pkg.go.dev/github.com/snqre/xxor.
*/

package xxor
