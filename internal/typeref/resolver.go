package typeref

import (
	"strings"

	"configurer-generator/internal/common"
	"configurer-generator/internal/metadata"
)

// primitiveByDescriptor maps JVM array element descriptors to primitive names.
var primitiveByDescriptor = map[byte]string{
	'Z': "boolean",
	'B': "byte",
	'C': "char",
	'S': "short",
	'I': "int",
	'J': "long",
	'F': "float",
	'D': "double",
}

// JavaType returns the canonical display string for a type reference.
// Byte and long arrays keep their literal array notation, other arrays render
// as "<elementFQN>[]", and everything else is the reflective name itself.
func JavaType(t metadata.TypeRef) string {
	switch {
	case t.Name == "[B":
		return "byte[]"
	case t.Name == "[J":
		return "long[]"
	case t.IsArray():
		return ComponentName(t.Name) + "[]"
	default:
		return t.Name
	}
}

// ComponentName returns the element type name of a JVM array name.
// "[Ljava.lang.String;" yields "java.lang.String", "[B" yields "byte", and a
// multi-dimensional name yields the remaining array name ("[[B" -> "[B").
// Non-array names are returned unchanged.
func ComponentName(name string) string {
	if len(name) < 2 || name[0] != '[' {
		return name
	}

	elem := name[1:]

	switch {
	case elem[0] == '[':
		return elem
	case elem[0] == 'L':
		if fqn := common.Between(name, "[L", ";"); fqn != "" {
			return fqn
		}

		return name
	default:
		if prim, ok := primitiveByDescriptor[elem[0]]; ok {
			return prim
		}

		return name
	}
}

// NestedType extracts a concrete nested element type from generic signature
// text. For key/value generics only the value side is considered. Returns
// false when the text has no generic segment, or the candidate is a wildcard,
// an upper-bounded type variable, or empty.
func NestedType(desc string) (string, bool) {
	start := strings.Index(desc, "<")
	end := strings.LastIndex(desc, ">")

	if start == -1 || end == -1 || end < start {
		return "", false
	}

	seg := desc[start+1 : end]

	// Keep only what follows the last top-level comma, so a map's value type
	// wins over its key type.
	if cut := lastTopLevelComma(seg); cut != -1 {
		seg = seg[cut+1:]
	}

	// Nested classes use '$' in reflective names.
	seg = strings.ReplaceAll(seg, "$", ".")
	seg = strings.TrimSpace(seg)

	if seg == "" || strings.Contains(seg, "?") || strings.Contains(seg, " extends ") {
		return "", false
	}

	return seg, true
}

// lastTopLevelComma returns the index of the last comma at angle-bracket
// depth zero, or -1.
func lastTopLevelComma(s string) int {
	depth := 0
	last := -1

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				last = i
			}
		}
	}

	return last
}
