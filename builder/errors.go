// SPDX-License-Identifier: MIT
// Package: align3/builder
//
// errors.go - error construction for the builder package.
//
// Error policy (explicit and strict):
//   • The builder reuses the dag sentinels: dag.ErrMalformedInput and
//     dag.ErrResourceExhausted. Callers branch with errors.Is.
//   • Context is attached with a method prefix and %w, never by defining
//     new parameterized sentinels.
//   • Build MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"fmt"
)

// builderErrorf wraps sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
//
// Parameters:
//   - method:   canonical entry point name, e.g. MethodBuild.
//   - sentinel: the error class, kept reachable through errors.Is.
//   - format:   format string for the inner message.
//   - args:     values for the format placeholders.
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	// Build the inner message using fmt.Sprintf
	inner := fmt.Sprintf(format, args...)
	// Prefix with the method name and keep the sentinel in the chain
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
