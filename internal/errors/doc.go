// Package errors provides coded, structured errors for the picklist
// runtime layers.
//
// Each registered code ("E001") carries a category, a short message, a
// detailed explanation, an optional fix suggestion, and a documentation
// URL. The live server, publish store, and CLI return these so failures
// print actionably; the core widget packages are error-free by design
// and never import this package.
//
// # Usage
//
//	err := errors.New("E042").
//	    WithDetail("page %q is not registered", name).
//	    WithSuggestion("Run `picklist render --list` to see the available pages.")
//
//	errors.PrintError(err)
//
// Errors support errors.Is/As through Unwrap, so callers can still reach
// the underlying cause.
package errors
