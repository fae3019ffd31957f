package discover

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"configurer-generator/internal/metadata"
)

func publicSetter(name string, param metadata.TypeRef) metadata.Method {
	return metadata.Method{
		Name:       name,
		Modifiers:  []string{metadata.ModifierPublic},
		Parameters: []metadata.TypeRef{param},
	}
}

func publicGetter(name, returns string) metadata.Method {
	return metadata.Method{
		Name:      name,
		Modifiers: []string{metadata.ModifierPublic},
		Returns:   returns,
	}
}

func widgetClass() *metadata.Class {
	return &metadata.Class{
		Name: "com.example.Widget",
		Fields: []metadata.Field{
			{Name: "name", Type: metadata.TypeRef{Name: "java.lang.String"}},
			{Name: "count", Type: metadata.TypeRef{Name: "int"}},
			{Name: "tags", Type: metadata.TypeRef{Name: "java.util.List"}},
		},
		Methods: []metadata.Method{
			publicSetter("setName", metadata.TypeRef{Name: "java.lang.String"}),
			publicGetter("getName", "java.lang.String"),
			publicSetter("setCount", metadata.TypeRef{Name: "int"}),
			publicGetter("getCount", "int"),
			publicSetter("setTags", metadata.TypeRef{
				Name:      "java.util.List",
				Signature: "java.util.List<java.lang.String>",
			}),
			publicGetter("getTags", "java.util.List"),
		},
	}
}

func TestDiscoverWidget(t *testing.T) {
	class := widgetClass()
	engine := NewEngine(metadata.NewRegistry(class))

	options := engine.Discover(class)
	spew.Dump(options)

	require.Len(t, options, 3)

	assert.Equal(t, PropertyOption{
		Name:         "Name",
		JavaType:     "java.lang.String",
		GetterMethod: "getName",
	}, options[0])

	assert.Equal(t, PropertyOption{
		Name:         "Count",
		JavaType:     "int",
		GetterMethod: "getCount",
	}, options[1])

	assert.Equal(t, PropertyOption{
		Name:         "Tags",
		JavaType:     "java.util.List",
		GetterMethod: "getTags",
		NestedType:   "java.lang.String",
	}, options[2])
}

func TestDiscoverSetterConvention(t *testing.T) {
	class := &metadata.Class{
		Name: "com.example.Odd",
		Methods: []metadata.Method{
			// Too short, no property name after the prefix
			publicSetter("set", metadata.TypeRef{Name: "int"}),
			// Lower-case after the prefix
			publicSetter("settle", metadata.TypeRef{Name: "int"}),
			// Not public
			{Name: "setHidden", Parameters: []metadata.TypeRef{{Name: "int"}}},
			// Static
			{
				Name:       "setShared",
				Modifiers:  []string{metadata.ModifierPublic, metadata.ModifierStatic},
				Parameters: []metadata.TypeRef{{Name: "int"}},
			},
			// Two parameters
			{
				Name:       "setPair",
				Modifiers:  []string{metadata.ModifierPublic},
				Parameters: []metadata.TypeRef{{Name: "int"}, {Name: "int"}},
			},
			// The only real mutator
			publicSetter("setValue", metadata.TypeRef{Name: "int"}),
		},
	}

	engine := NewEngine(metadata.NewRegistry(class))
	options := engine.Discover(class)

	require.Len(t, options, 1)
	assert.Equal(t, "Value", options[0].Name)
}

func TestDiscoverBooleanGetter(t *testing.T) {
	t.Run("prefers is accessor when declared", func(t *testing.T) {
		class := &metadata.Class{
			Name: "com.example.Flags",
			Methods: []metadata.Method{
				publicSetter("setEnabled", metadata.TypeRef{Name: "boolean"}),
				publicGetter("isEnabled", "boolean"),
				publicSetter("setLazy", metadata.TypeRef{Name: "java.lang.Boolean"}),
				publicGetter("isLazy", "java.lang.Boolean"),
			},
		}

		engine := NewEngine(metadata.NewRegistry(class))
		options := engine.Discover(class)

		require.Len(t, options, 2)
		assert.Equal(t, "isEnabled", options[0].GetterMethod)
		assert.Equal(t, "isLazy", options[1].GetterMethod)
	})

	t.Run("falls back to get accessor", func(t *testing.T) {
		class := &metadata.Class{
			Name: "com.example.Flags",
			Methods: []metadata.Method{
				publicSetter("setEnabled", metadata.TypeRef{Name: "boolean"}),
				publicGetter("getEnabled", "boolean"),
			},
		}

		engine := NewEngine(metadata.NewRegistry(class))
		options := engine.Discover(class)

		require.Len(t, options, 1)
		assert.Equal(t, "getEnabled", options[0].GetterMethod)
	})

	t.Run("ignores non-public is accessor", func(t *testing.T) {
		class := &metadata.Class{
			Name: "com.example.Flags",
			Methods: []metadata.Method{
				publicSetter("setEnabled", metadata.TypeRef{Name: "boolean"}),
				{Name: "isEnabled", Returns: "boolean"},
			},
		}

		engine := NewEngine(metadata.NewRegistry(class))
		options := engine.Discover(class)

		require.Len(t, options, 1)
		assert.Equal(t, "getEnabled", options[0].GetterMethod)
	})
}

func TestDiscoverOverloadDedup(t *testing.T) {
	t.Run("field type picks the matching overload", func(t *testing.T) {
		class := &metadata.Class{
			Name: "com.example.Client",
			Fields: []metadata.Field{
				{Name: "timeout", Type: metadata.TypeRef{Name: "long"}},
			},
			Methods: []metadata.Method{
				publicSetter("setTimeout", metadata.TypeRef{Name: "java.lang.String"}),
				publicSetter("setTimeout", metadata.TypeRef{Name: "long"}),
			},
		}

		engine := NewEngine(metadata.NewRegistry(class))
		options := engine.Discover(class)

		require.Len(t, options, 1)
		assert.Equal(t, "Timeout", options[0].Name)
		assert.Equal(t, "long", options[0].JavaType)
	})

	t.Run("first overload wins without a matching field", func(t *testing.T) {
		class := &metadata.Class{
			Name: "com.example.Client",
			Methods: []metadata.Method{
				publicSetter("setTimeout", metadata.TypeRef{Name: "java.lang.String"}),
				publicSetter("setTimeout", metadata.TypeRef{Name: "long"}),
			},
		}

		engine := NewEngine(metadata.NewRegistry(class))
		options := engine.Discover(class)

		require.Len(t, options, 1)
		assert.Equal(t, "java.lang.String", options[0].JavaType)
	})

	t.Run("field with a different type keeps the first overload", func(t *testing.T) {
		class := &metadata.Class{
			Name: "com.example.Client",
			Fields: []metadata.Field{
				{Name: "timeout", Type: metadata.TypeRef{Name: "java.time.Duration"}},
			},
			Methods: []metadata.Method{
				publicSetter("setTimeout", metadata.TypeRef{Name: "java.lang.String"}),
				publicSetter("setTimeout", metadata.TypeRef{Name: "long"}),
			},
		}

		engine := NewEngine(metadata.NewRegistry(class))
		options := engine.Discover(class)

		require.Len(t, options, 1)
		assert.Equal(t, "java.lang.String", options[0].JavaType)
	})
}

func TestDiscoverStringOnlyFilter(t *testing.T) {
	class := &metadata.Class{
		Name: "com.example.Rest",
		Methods: []metadata.Method{
			publicSetter("setBindingMode", metadata.TypeRef{Name: "com.example.BindingMode"}),
			publicSetter("setBindingMode", metadata.TypeRef{Name: "java.lang.String"}),
			publicSetter("setHostNameResolver", metadata.TypeRef{Name: "com.example.Resolver"}),
			publicSetter("setHostNameResolver", metadata.TypeRef{Name: "java.lang.String"}),
		},
	}

	engine := NewEngine(metadata.NewRegistry(class))
	options := engine.Discover(class)

	require.Len(t, options, 2)
	assert.Equal(t, "java.lang.String", options[0].JavaType)
	assert.Equal(t, "java.lang.String", options[1].JavaType)
}

func TestDiscoverWalksSuperclasses(t *testing.T) {
	base := &metadata.Class{
		Name: "com.example.Base",
		Methods: []metadata.Method{
			publicSetter("setId", metadata.TypeRef{Name: "java.lang.String"}),
		},
	}
	class := &metadata.Class{
		Name:       "com.example.Child",
		SuperClass: "com.example.Base",
		Methods: []metadata.Method{
			publicSetter("setName", metadata.TypeRef{Name: "java.lang.String"}),
		},
	}

	engine := NewEngine(metadata.NewRegistry(base, class))
	options := engine.Discover(class)

	require.Len(t, options, 2)
	// Own methods come before inherited ones.
	assert.Equal(t, "Name", options[0].Name)
	assert.Equal(t, "Id", options[1].Name)
}

func TestDiscoverArrayTypes(t *testing.T) {
	class := &metadata.Class{
		Name: "com.example.Buffers",
		Methods: []metadata.Method{
			publicSetter("setBody", metadata.TypeRef{Name: "[B"}),
			publicSetter("setOffsets", metadata.TypeRef{Name: "[J"}),
			publicSetter("setHeaders", metadata.TypeRef{Name: "[Ljava.lang.String;"}),
		},
	}

	engine := NewEngine(metadata.NewRegistry(class))
	options := engine.Discover(class)

	require.Len(t, options, 3)
	assert.Equal(t, "byte[]", options[0].JavaType)
	assert.Empty(t, options[0].NestedType)
	assert.Equal(t, "long[]", options[1].JavaType)
	assert.Equal(t, "java.lang.String[]", options[2].JavaType)
}

func TestBuildUnknownClass(t *testing.T) {
	engine := NewEngine(metadata.NewRegistry())

	_, err := Build(engine, "com.example.Missing")
	require.Error(t, err)

	var unknownErr *UnknownClassError

	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "com.example.Missing", unknownErr.Class)
}
