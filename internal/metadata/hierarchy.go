package metadata

// VisitMethods calls fn for every method declared by the class and then by
// each superclass, walking the chain upwards. Unresolvable superclasses end
// the walk silently; the index is not required to cover the full JDK.
func VisitMethods(p Provider, c *Class, fn func(owner *Class, m *Method)) {
	visited := make(map[string]bool)

	for c != nil && !visited[c.Name] {
		visited[c.Name] = true

		for i := range c.Methods {
			fn(c, &c.Methods[i])
		}

		c = superOf(p, c)
	}
}

// FindField searches the class hierarchy for a declared field with the exact
// given name. Returns nil when no class in the chain declares it.
func FindField(p Provider, c *Class, name string) *Field {
	visited := make(map[string]bool)

	for c != nil && !visited[c.Name] {
		visited[c.Name] = true

		for i := range c.Fields {
			if c.Fields[i].Name == name {
				return &c.Fields[i]
			}
		}

		c = superOf(p, c)
	}

	return nil
}

// HasPublicNoArgMethod reports whether the class hierarchy declares a public
// zero-parameter method with the given name.
func HasPublicNoArgMethod(p Provider, c *Class, name string) bool {
	found := false

	VisitMethods(p, c, func(_ *Class, m *Method) {
		if m.Name == name && m.IsPublic() && len(m.Parameters) == 0 {
			found = true
		}
	})

	return found
}

// superOf resolves the superclass link, or nil when the chain leaves the
// indexed set.
func superOf(p Provider, c *Class) *Class {
	if c.SuperClass == "" || p == nil {
		return nil
	}

	super, ok := p.Lookup(c.SuperClass)
	if !ok {
		return nil
	}

	return super
}
