package metadata

import "slices"

// Nesting levels recorded in the index.
const (
	NestingTopLevel = "top-level"
	NestingNested   = "nested"
)

// Modifier names recorded on methods and fields.
const (
	ModifierPublic = "public"
	ModifierStatic = "static"
)

// TypeRef is a reference to a Java type using reflective naming:
// primitives by keyword ("int", "boolean"), classes by fully-qualified name,
// arrays in JVM notation ("[B", "[J", "[Ljava.lang.String;").
type TypeRef struct {
	// Name is the reflective type name.
	Name string `yaml:"name"`
	// Signature is the generic signature text, when the declaration has one
	// (e.g. "java.util.Map<java.lang.String,com.example.Foo>").
	Signature string `yaml:"signature,omitempty"`
}

// IsArray reports whether the reference uses JVM array notation.
func (t TypeRef) IsArray() bool {
	return len(t.Name) > 0 && t.Name[0] == '['
}

// IsBoolean reports whether the reference is a primitive or boxed boolean.
func (t TypeRef) IsBoolean() bool {
	return t.Name == "boolean" || t.Name == "java.lang.Boolean"
}

// Field is one declared instance field of an indexed class.
type Field struct {
	Name      string   `yaml:"name"`
	Type      TypeRef  `yaml:"type"`
	Modifiers []string `yaml:"modifiers,omitempty"`
}

// Method is one declared method of an indexed class. Parameters keep
// declaration order; Signature carries the full generic method string when
// the index producer had one available.
type Method struct {
	Name       string    `yaml:"name"`
	Modifiers  []string  `yaml:"modifiers,omitempty"`
	Parameters []TypeRef `yaml:"parameters,omitempty"`
	Returns    string    `yaml:"returns,omitempty"`
	Signature  string    `yaml:"signature,omitempty"`
}

// IsPublic reports whether the method carries the public modifier.
func (m *Method) IsPublic() bool {
	return slices.Contains(m.Modifiers, ModifierPublic)
}

// IsStatic reports whether the method carries the static modifier.
func (m *Method) IsStatic() bool {
	return slices.Contains(m.Modifiers, ModifierStatic)
}

// Annotation is one annotation instance on an indexed class. Values holds the
// annotation's attribute values keyed by attribute name.
type Annotation struct {
	Name   string         `yaml:"name"`
	Values map[string]any `yaml:"values,omitempty"`
}

// BoolValue returns the named attribute as a bool, or def when the attribute
// is absent or not a bool.
func (a *Annotation) BoolValue(name string, def bool) bool {
	if a.Values == nil {
		return def
	}

	v, ok := a.Values[name]
	if !ok {
		return def
	}

	b, ok := v.(bool)
	if !ok {
		return def
	}

	return b
}

// Class is one indexed class. Fields and Methods keep the order the index
// producer recorded, which is the deterministic order discovery walks them in.
type Class struct {
	Name        string       `yaml:"name"`
	SuperClass  string       `yaml:"superClass,omitempty"`
	Nesting     string       `yaml:"nesting,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty"`
	Fields      []Field      `yaml:"fields,omitempty"`
	Methods     []Method     `yaml:"methods,omitempty"`
}

// IsTopLevel reports whether the class is a top-level declaration.
// An absent nesting marker means top-level.
func (c *Class) IsTopLevel() bool {
	return c.Nesting == "" || c.Nesting == NestingTopLevel
}

// Annotation returns the first annotation with the given name, or nil.
func (c *Class) Annotation(name string) *Annotation {
	for i := range c.Annotations {
		if c.Annotations[i].Name == name {
			return &c.Annotations[i]
		}
	}

	return nil
}

// Provider resolves fully-qualified class names to indexed classes.
// It is the only capability setter discovery needs, keeping the discovery
// algorithm independent of how class metadata is obtained.
type Provider interface {
	Lookup(fqn string) (*Class, bool)
}
