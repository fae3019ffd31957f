package runner

import "strings"

// Task pairs a source class with the target name the generated artifacts use.
// Parsed from the token grammar "source[=target]"; without an '=' the target
// is the source itself.
type Task struct {
	Source string
	Target string
}

// ParseTask parses one class token.
func ParseTask(token string) Task {
	source, target, ok := strings.Cut(token, "=")
	if !ok {
		target = source
	}

	return Task{Source: source, Target: target}
}
