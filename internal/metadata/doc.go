// Package metadata provides the serialized class-metadata model and its
// classpath-scoped loader.
//
// The generator never loads compiled JVM classes. Instead, every classpath
// entry is a directory carrying a YAML index (META-INF/classes.yaml) that
// describes its classes: fields, methods with generic signature text,
// annotations, and the superclass link. The loader reads the indexes once per
// run and resolves fully-qualified names with first-entry-wins semantics,
// mirroring classloader ordering.
//
// Key types:
//   - TypeRef: a reflective type name ("int", "java.lang.String", "[B",
//     "[Ljava.lang.String;") plus optional generic signature text
//   - Class / Method / Field / Annotation: one indexed class
//   - Provider: the lookup capability consumed by setter discovery
//   - Loader: classpath-backed Provider, scoped to a single run
package metadata
