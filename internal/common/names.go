// Package common provides small string helpers shared across the generator,
// mostly around fully-qualified Java class names.
package common

import "strings"

// Between returns the substring of s between the first occurrence of after
// and the first occurrence of before following it. Returns empty string if
// either marker is missing.
func Between(s, after, before string) string {
	pos := strings.Index(s, after)
	if pos == -1 {
		return ""
	}

	s = s[pos+len(after):]

	pos = strings.Index(s, before)
	if pos == -1 {
		return ""
	}

	return s[:pos]
}

// SimpleName returns the class name without its package qualifier.
// Returns fqn unchanged when it has no package.
func SimpleName(fqn string) string {
	pos := strings.LastIndex(fqn, ".")
	if pos == -1 {
		return fqn
	}

	return fqn[pos+1:]
}

// PackageName returns the package qualifier of a fully-qualified class name.
// Returns empty string when fqn has no package.
func PackageName(fqn string) string {
	pos := strings.LastIndex(fqn, ".")
	if pos == -1 {
		return ""
	}

	return fqn[:pos]
}

// Capitalize upper-cases the first byte of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// Decapitalize lower-cases the first byte of s.
func Decapitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToLower(s[:1]) + s[1:]
}
