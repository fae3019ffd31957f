// Package classpath assembles the ordered classpath for a generation run from
// a project descriptor: the project's own output directory first, then every
// resolved non-test dependency location.
package classpath

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// PackagingPom marks aggregator projects that produce no classes; generation
// is a no-op for them.
const PackagingPom = "pom"

// Dependency scopes relevant to classpath assembly.
const (
	ScopeCompile = "compile"
	ScopeTest    = "test"
)

// Dependency is one resolved dependency of the project: a directory holding
// its class-metadata index plus the version it was resolved at.
type Dependency struct {
	Name    string `yaml:"name"`
	Path    string `yaml:"path"`
	Version string `yaml:"version"`
	Scope   string `yaml:"scope,omitempty"`
}

// Project is the build-time descriptor feeding a generation run.
type Project struct {
	Packaging     string       `yaml:"packaging,omitempty"`
	OutputDir     string       `yaml:"outputDir"`
	TestOutputDir string       `yaml:"testOutputDir,omitempty"`
	Dependencies  []Dependency `yaml:"dependencies,omitempty"`

	// BaseDir is the directory the descriptor was loaded from; relative
	// paths in the descriptor resolve against it.
	BaseDir string `yaml:"-"`
}

// LoadProject reads and parses a project descriptor.
func LoadProject(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project descriptor: %w", err)
	}

	var p Project

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project descriptor %s: %w", path, err)
	}

	p.BaseDir = filepath.Dir(path)

	return &p, nil
}

// VersionError reports a dependency whose version specification cannot be
// parsed during classpath assembly.
type VersionError struct {
	Dependency string
	Version    string
	Err        error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("dependency %s: unable to parse version %q: %v", e.Dependency, e.Version, e.Err)
}

func (e *VersionError) Unwrap() error {
	return e.Err
}

// Assemble returns the ordered classpath entries for the run: the project's
// output directory (or test output directory when testClasspathOnly is set)
// followed by all non-test dependency locations in descriptor order. Every
// dependency version is validated; a malformed version aborts assembly.
func (p *Project) Assemble(testClasspathOnly bool) ([]string, error) {
	out := p.OutputDir
	if testClasspathOnly {
		out = p.TestOutputDir
	}

	entries := []string{p.resolve(out)}

	for _, dep := range p.Dependencies {
		if _, err := semver.NewConstraint(dep.Version); err != nil {
			return nil, &VersionError{Dependency: dep.Name, Version: dep.Version, Err: err}
		}

		if dep.Scope == ScopeTest {
			continue
		}

		entries = append(entries, p.resolve(dep.Path))
	}

	return entries, nil
}

// OutputEntry returns the classpath entry holding the project's own classes,
// which is also where the annotation index for discovery-by-scanning lives.
func (p *Project) OutputEntry(testClasspathOnly bool) string {
	if testClasspathOnly {
		return p.resolve(p.TestOutputDir)
	}

	return p.resolve(p.OutputDir)
}

func (p *Project) resolve(dir string) string {
	if dir == "" || filepath.IsAbs(dir) || p.BaseDir == "" {
		return dir
	}

	return filepath.Join(p.BaseDir, dir)
}
