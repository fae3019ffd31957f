package discover

import (
	"slices"
	"unicode"

	"configurer-generator/internal/common"
	"configurer-generator/internal/metadata"
	"configurer-generator/internal/typeref"
)

const setterPrefix = "set"

// Engine discovers property options over a metadata provider. One engine can
// serve a whole run; it holds no per-class state.
type Engine struct {
	provider metadata.Provider
}

// NewEngine creates a discovery engine over the given provider.
func NewEngine(p metadata.Provider) *Engine {
	return &Engine{provider: p}
}

// Discover resolves the class's public single-argument setters into property
// options, deduplicated by derived property name. The result order is the
// method order of the class hierarchy walk.
func (e *Engine) Discover(class *metadata.Class) []PropertyOption {
	var options []PropertyOption

	seen := make(map[string]bool)

	metadata.VisitMethods(e.provider, class, func(_ *metadata.Class, m *metadata.Method) {
		if !isSetter(m) || !filterSetter(m) {
			return
		}

		param := m.Parameters[0]
		name := common.Capitalize(m.Name[len(setterPrefix):])
		getter := e.resolveGetter(class, name, param)

		option := PropertyOption{
			Name:         name,
			JavaType:     typeref.JavaType(param),
			GetterMethod: getter,
		}

		switch {
		case !seen[name]:
			seen[name] = true
		case e.fieldPrefersOverload(class, name, param):
			// The declared field's type matches this overload, so it is the
			// more accurate reflection of the stored type. Replace.
			options = slices.DeleteFunc(options, func(o PropertyOption) bool {
				return o.Name == name
			})
		default:
			// Ambiguous overload with no field to arbitrate: first one wins.
			return
		}

		if nested, ok := typeref.NestedType(genericDescriptor(m, param)); ok {
			option.NestedType = nested
		}

		options = append(options, option)
	})

	return options
}

// isSetter applies the mutator naming convention: "set" prefix followed by an
// upper-case character, public, non-static, exactly one parameter.
func isSetter(m *metadata.Method) bool {
	if len(m.Name) < len(setterPrefix)+1 || m.Name[:len(setterPrefix)] != setterPrefix {
		return false
	}

	if !unicode.IsUpper(rune(m.Name[len(setterPrefix)])) {
		return false
	}

	return m.IsPublic() && !m.IsStatic() && len(m.Parameters) == 1
}

// resolveGetter computes the accessor paired with a setter. Boolean-typed
// properties prefer a declared public "is" accessor; absence of one is not an
// error and falls back to the "get" form.
func (e *Engine) resolveGetter(class *metadata.Class, name string, param metadata.TypeRef) string {
	getter := "get" + name

	if param.IsBoolean() {
		isGetter := "is" + name
		if metadata.HasPublicNoArgMethod(e.provider, class, isGetter) {
			return isGetter
		}
	}

	return getter
}

// fieldPrefersOverload reports whether the class hierarchy declares a field
// named after the property whose declared type exactly matches the overload's
// parameter type.
func (e *Engine) fieldPrefersOverload(class *metadata.Class, name string, param metadata.TypeRef) bool {
	field := metadata.FindField(e.provider, class, common.Decapitalize(name))

	return field != nil && field.Type.Name == param.Name
}

// genericDescriptor picks the text nested-type extraction scans: the array
// component name for arrays, otherwise the parameter's generic signature,
// falling back to the method's full signature text.
func genericDescriptor(m *metadata.Method, param metadata.TypeRef) string {
	if param.IsArray() {
		return typeref.ComponentName(param.Name)
	}

	if param.Signature != "" {
		return param.Signature
	}

	return m.Signature
}
