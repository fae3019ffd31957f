// Package gen renders property-option lists into generated artifacts.
//
// Generation approach uses text/template for readable, deterministic output.
// Two artifacts are produced per class:
//   - a Java source file implementing the property-configuration capability
//     (name-dispatched set/get without runtime reflection)
//   - a registration resource mapping the class's simple name to the
//     generated configurer's fully-qualified name
//
// The incremental writer compares rendered content against what is already on
// disk and only writes on change, so downstream incremental builds never see
// spurious timestamp churn.
package gen
