// Package typeref resolves reflective type references into the canonical
// display strings used by property options.
//
// It also extracts nested element types from generic signature text. The
// text-based extraction is deliberately confined to this package: the rest of
// the generator only sees the narrow resolve contract, so the string scanning
// can be swapped for a structured generic-type model without touching
// discovery.
package typeref
