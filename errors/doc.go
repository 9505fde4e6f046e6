/*
Package errors implements custom error interfaces for the engine.

Each operation failure is categorized by a registered root error. Errors
are created and wrapped using this package so that the original cause is
preserved, a stack trace is attached at the lowest frame and callers can
test for a category using the root error Is method:

	if errors.ErrUnauthorized.Is(err) {
		...
	}

Errors are pure signals returned to the caller. Nothing is ever logged
from within the engine.
*/
package errors
