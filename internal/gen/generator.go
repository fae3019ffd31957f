package gen

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"text/template"

	"configurer-generator/internal/common"
	"configurer-generator/internal/discover"
)

// RegistrationDir is where registration resources live, relative to the
// resources output root. External code resolves a runtime instance's
// configurer by looking up its simple class name under this directory.
const RegistrationDir = "META-INF/services/org/apache/camel/configurer"

// Config holds code generation settings.
type Config struct {
	// BaseClass is the fully-qualified support class the generated
	// configurer extends.
	BaseClass string
	// Marker is the generated-file marker comment placed in every artifact.
	Marker string
}

// DefaultConfig returns the default generation settings.
func DefaultConfig() Config {
	return Config{
		BaseClass: "org.apache.camel.support.component.PropertyConfigurerSupport",
		Marker:    "Generated by configurer-generator - do NOT edit this file!",
	}
}

// Generator renders property options into generated artifacts.
type Generator struct {
	config Config
}

// NewGenerator creates a Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// Artifact is one generated file: a path relative to an output root plus the
// rendered content.
type Artifact struct {
	Path    string
	Content []byte
}

// Configurer renders the configurer source for a class. sourceFqn is the
// class being configured (the cast target inside the generated code);
// targetFqn decides the generated package and class name. The two differ only
// for alias tasks.
func (g *Generator) Configurer(sourceFqn, targetFqn string, options []discover.PropertyOption) (Artifact, error) {
	pn := common.PackageName(targetFqn)
	cn := common.SimpleName(targetFqn) + "Configurer"

	data := &templateData{
		Marker:      g.config.Marker,
		PackageName: pn,
		ClassName:   cn,
		TargetClass: sourceFqn,
		BaseClass:   g.config.BaseClass,
	}

	for _, o := range options {
		data.Options = append(data.Options, optionData{
			Name:       o.Name,
			Keys:       caseKeys(o.Name),
			JavaType:   o.JavaType,
			NestedType: o.NestedType,
			Getter:     o.GetterMethod,
			Setter:     o.SetterMethod(),
		})

		if o.NestedType != "" {
			data.HasNested = true
		}
	}

	var buf bytes.Buffer
	if err := configurerTemplate.Execute(&buf, data); err != nil {
		return Artifact{}, fmt.Errorf("executing configurer template: %w", err)
	}

	return Artifact{
		Path:    path.Join(strings.ReplaceAll(pn, ".", "/"), cn+".java"),
		Content: buf.Bytes(),
	}, nil
}

// Registration renders the registration resource for a class: a two-line text
// file mapping the simple class name to the generated configurer's
// fully-qualified name.
func (g *Generator) Registration(targetFqn string) Artifact {
	pn := common.PackageName(targetFqn)
	en := common.SimpleName(targetFqn)

	var buf bytes.Buffer

	buf.WriteString("# " + g.config.Marker + "\n")
	buf.WriteString("class=" + pn + "." + en + "Configurer\n")

	return Artifact{
		Path:    path.Join(RegistrationDir, en),
		Content: buf.Bytes(),
	}
}

// caseKeys returns the dispatch keys for one property name: the normalized
// form for forgiving lookups, the decapitalized bean-style name, and the
// PascalCase name itself, deduplicated in that order.
func caseKeys(name string) []string {
	keys := []string{NormalizeName(name)}

	if decap := common.Decapitalize(name); decap != keys[0] {
		keys = append(keys, decap)
	}

	if name != keys[0] && name != keys[len(keys)-1] {
		keys = append(keys, name)
	}

	return keys
}

// NormalizeName lower-cases a property name and strips '-' and '_'. The
// generated dispatch code applies the exact same rule at runtime, so the two
// sides can never disagree on a key.
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r != '-' && r != '_' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// templateData holds all data needed for the configurer template.
type templateData struct {
	Marker      string
	PackageName string
	ClassName   string
	TargetClass string
	BaseClass   string
	Options     []optionData
	HasNested   bool
}

type optionData struct {
	Name       string
	Keys       []string
	JavaType   string
	NestedType string
	Getter     string
	Setter     string
}

// Template for the generated configurer source.

var configurerTemplate = template.Must(template.New("configurer").Funcs(template.FuncMap{
	// base renders the simple name of a fully-qualified class.
	"base": common.SimpleName,
	// cases renders the case labels for one property's dispatch keys.
	"cases": func(keys []string) string {
		var b strings.Builder
		for _, k := range keys {
			b.WriteString(`case "` + k + `": `)
		}

		return strings.TrimSuffix(b.String(), " ")
	},
}).Parse(`/* {{.Marker}} */
package {{.PackageName}};

import java.util.LinkedHashMap;
import java.util.Map;

import {{.BaseClass}};

/**
 * Property configurer for {{.TargetClass}}.
 */
@SuppressWarnings("unchecked")
public class {{.ClassName}} extends {{base .BaseClass}} {

    @Override
    public boolean configure(Object obj, String name, Object value, boolean ignoreCase) {
        {{.TargetClass}} target = ({{.TargetClass}}) obj;
        switch (ignoreCase ? normalized(name) : name) {
{{- range .Options}}
        {{cases .Keys}} target.{{.Setter}}(property({{.JavaType}}.class, value)); return true;
{{- end}}
        default: throw new IllegalArgumentException("Unknown property: " + name);
        }
    }

    @Override
    public Object getOptionValue(Object obj, String name, boolean ignoreCase) {
        {{.TargetClass}} target = ({{.TargetClass}}) obj;
        switch (ignoreCase ? normalized(name) : name) {
{{- range .Options}}
        {{cases .Keys}} return target.{{.Getter}}();
{{- end}}
        default: throw new IllegalArgumentException("Unknown property: " + name);
        }
    }

    @Override
    public String getOptionType(String name, boolean ignoreCase) {
        switch (ignoreCase ? normalized(name) : name) {
{{- range .Options}}
        {{cases .Keys}} return "{{.JavaType}}";
{{- end}}
        default: throw new IllegalArgumentException("Unknown property: " + name);
        }
    }

    @Override
    public String getCollectionValueType(String name, boolean ignoreCase) {
{{- if .HasNested}}
        switch (ignoreCase ? normalized(name) : name) {
{{- range .Options}}{{if .NestedType}}
        {{cases .Keys}} return "{{.NestedType}}";
{{- end}}{{end}}
        default: return null;
        }
{{- else}}
        return null;
{{- end}}
    }

    @Override
    public Map<String, String> getAllOptions() {
        Map<String, String> answer = new LinkedHashMap<>();
{{- range .Options}}
        answer.put("{{.Name}}", "{{.JavaType}}");
{{- end}}
        return answer;
    }

    private static String normalized(String name) {
        return name.toLowerCase().replace("-", "").replace("_", "");
    }
}
`))
