package metadata

import "path/filepath"

// ConfigurerAnnotation marks classes that want a generated configurer.
const ConfigurerAnnotation = "org.apache.camel.spi.Configurer"

// generateAttr is the annotation attribute that opts a class out of
// generation. Absent means true.
const generateAttr = "generateConfigurer"

// ScanConfigurerClasses reads the index of the given classpath entry and
// returns the names of all top-level classes annotated for configurer
// generation, in index order. A missing or unparsable index is an error here:
// discovery-by-scanning only makes sense when the index producer ran.
func ScanConfigurerClasses(entry string) ([]string, error) {
	classes, err := ReadIndex(filepath.Join(entry, IndexPath))
	if err != nil {
		return nil, err
	}

	var names []string

	for i := range classes {
		c := &classes[i]
		if !c.IsTopLevel() {
			continue
		}

		ann := c.Annotation(ConfigurerAnnotation)
		if ann == nil || !ann.BoolValue(generateAttr, true) {
			continue
		}

		names = append(names, c.Name)
	}

	return names, nil
}
