// XXOR
//
// Copyright (C) 2026 The XXOR Authors
//
// All rights reserved. Use of this source code is governed
// by the new BSD license.

package xxor

//--------------------
// IMPORTS
//--------------------

import (
	"fmt"
)

//--------------------
// ERROR TYPES
//--------------------

// WrongVariantError describes the single failure mode of the package:
// unwrapping the variant a value does not hold. It is the payload of the
// panics raised by UnwrapThis and UnwrapThat and is never returned by any
// function.
type WrongVariantError struct {
	// Op names the unwrapping operation that failed.
	Op string
	// Variant is the variant the value actually holds.
	Variant Variant
}

// Error implements the error interface.
func (e *WrongVariantError) Error() string {
	return fmt.Sprintf("xxor: %s on %s value", e.Op, e.Variant)
}

// EOF
