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

//--------------------
// TRANSFORMATIONS
//--------------------

// MapThis applies fn to the held This value and returns the result as the
// This variant of a new value. A That value passes through unchanged and fn
// is not called. Go methods cannot introduce type parameters, so the
// type-changing transformations are package functions.
func MapThis[A, B, C any](x XOR[A, B], fn func(A) C) XOR[C, B] {
	if x.variant == VariantThat {
		return That[C, B](x.that)
	}
	return This[C, B](fn(x.this))
}

// MapThat applies fn to the held That value and returns the result as the
// That variant of a new value. A This value passes through unchanged and fn
// is not called.
func MapThat[A, B, C any](x XOR[A, B], fn func(B) C) XOR[A, C] {
	if x.variant == VariantThis {
		return This[A, C](x.this)
	}
	return That[A, C](fn(x.that))
}

// EOF
