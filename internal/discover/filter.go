package discover

import "configurer-generator/internal/metadata"

const javaLangString = "java.lang.String"

// stringOnlySetters lists setters where the class exposes both a string-based
// and a strongly-typed overload for the same concept and only the string form
// is the public configuration surface.
var stringOnlySetters = map[string]bool{
	"setBindingMode":      true,
	"setHostNameResolver": true,
}

// filterSetter vetoes setter candidates that are not part of the public
// configuration surface.
func filterSetter(m *metadata.Method) bool {
	if stringOnlySetters[m.Name] {
		return m.Parameters[0].Name == javaLangString
	}

	return true
}
