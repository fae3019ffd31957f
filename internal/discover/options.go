package discover

// PropertyOption is one resolved configurable property of a class.
// Options are immutable once discovery finishes; a fresh list is built per
// generation task and never shared across tasks.
type PropertyOption struct {
	// Name is the PascalCase property name derived from the setter.
	Name string
	// JavaType is the canonical display string of the setter parameter type.
	JavaType string
	// GetterMethod is the paired accessor name ("getFoo", or "isFoo" for
	// booleans when the class declares one).
	GetterMethod string
	// NestedType is the generic element/value type, empty when the property
	// type is non-generic or the generic cannot be named concretely.
	NestedType string
}

// SetterMethod returns the mutator name for the option.
func (o PropertyOption) SetterMethod() string {
	return "set" + o.Name
}

// Build sequences the engine's output for one class. It exists as the seam
// where per-property policy (defaults, overrides) would hook in without
// touching the discovery walk itself.
func Build(e *Engine, fqn string) ([]PropertyOption, error) {
	class, ok := e.provider.Lookup(fqn)
	if !ok {
		return nil, &UnknownClassError{Class: fqn}
	}

	return e.Discover(class), nil
}

// UnknownClassError reports a class the metadata provider cannot resolve.
type UnknownClassError struct {
	Class string
}

func (e *UnknownClassError) Error() string {
	return "class " + e.Class + " not found in metadata"
}
