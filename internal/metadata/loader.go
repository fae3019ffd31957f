package metadata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// IndexPath is the index location inside every classpath entry, relative to
// the entry's root directory.
const IndexPath = "META-INF/classes.yaml"

// indexFile is the on-disk shape of one classpath entry's index.
type indexFile struct {
	Classes []Class `yaml:"classes"`
}

// Loader is a classpath-backed Provider. It reads every entry's index once at
// construction and resolves names with first-entry-wins semantics. A Loader is
// scoped to a single generation run and is read-only afterwards.
type Loader struct {
	classes map[string]*Class
}

// NewLoader builds a Loader from an ordered list of classpath entries
// (directories). Entries without an index file are skipped; an entry whose
// index exists but cannot be parsed is an error.
func NewLoader(entries []string) (*Loader, error) {
	l := &Loader{classes: make(map[string]*Class)}

	for _, entry := range entries {
		idx, err := ReadIndex(filepath.Join(entry, IndexPath))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, fmt.Errorf("classpath entry %s: %w", entry, err)
		}

		for i := range idx {
			c := &idx[i]
			// Earlier entries shadow later ones, like classloader ordering.
			if _, ok := l.classes[c.Name]; !ok {
				l.classes[c.Name] = c
			}
		}
	}

	return l, nil
}

// Lookup implements Provider.
func (l *Loader) Lookup(fqn string) (*Class, bool) {
	c, ok := l.classes[fqn]

	return c, ok
}

// Load resolves a fully-qualified class name, failing when no classpath entry
// indexes it.
func (l *Loader) Load(fqn string) (*Class, error) {
	c, ok := l.classes[fqn]
	if !ok {
		return nil, fmt.Errorf("class %s not found on classpath", fqn)
	}

	return c, nil
}

// ReadIndex reads and parses one index file, returning its classes in file
// order.
func ReadIndex(path string) ([]Class, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}

	var idx indexFile

	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing index %s: %w", path, err)
	}

	return idx.Classes, nil
}

// Registry is an in-memory Provider assembled from explicit classes. It backs
// tests and embedders that already hold class metadata.
type Registry struct {
	classes map[string]*Class
}

// NewRegistry builds a Registry over the given classes.
func NewRegistry(classes ...*Class) *Registry {
	r := &Registry{classes: make(map[string]*Class, len(classes))}
	for _, c := range classes {
		r.classes[c.Name] = c
	}

	return r
}

// Add registers a class, replacing any previous class with the same name.
func (r *Registry) Add(c *Class) {
	r.classes[c.Name] = c
}

// Lookup implements Provider.
func (r *Registry) Lookup(fqn string) (*Class, bool) {
	c, ok := r.classes[fqn]

	return c, ok
}
