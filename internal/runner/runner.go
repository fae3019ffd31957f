package runner

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"configurer-generator/internal/classpath"
	"configurer-generator/internal/discover"
	"configurer-generator/internal/gen"
	"configurer-generator/internal/metadata"
)

// Default output directories, relative to the project base dir.
const (
	DefaultSourcesOut   = "src/generated/java"
	DefaultResourcesOut = "src/generated/resources"
)

// Config holds the settings for one generation run.
type Config struct {
	// ProjectFile is the path to the project descriptor. Ignored when
	// Project is set directly.
	ProjectFile string
	// Project is a pre-loaded descriptor, mainly for embedding and tests.
	Project *classpath.Project
	// SourcesOut overrides the generated-sources output directory.
	SourcesOut string
	// ResourcesOut overrides the generated-resources output directory.
	ResourcesOut string
	// Classes are explicit "source[=target]" tokens processed after any
	// discovered classes.
	Classes []string
	// DiscoverClasses enables scanning the project output's annotation
	// index for configurer-annotated classes.
	DiscoverClasses bool
	// TestClasspathOnly switches the run onto the test output directory.
	TestClasspathOnly bool
	// Generation customizes the emitted artifacts; zero value means
	// gen.DefaultConfig.
	Generation gen.Config
	// Logger receives run output. Defaults to the standard logger.
	Logger *log.Logger
}

// Runner executes generation runs.
type Runner struct {
	config Config
	logger *log.Logger
}

// New creates a Runner for the given configuration.
func New(config Config) *Runner {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}

	if config.Generation == (gen.Config{}) {
		config.Generation = gen.DefaultConfig()
	}

	return &Runner{config: config, logger: logger}
}

// Run executes one generation run. Tasks are processed strictly in input
// order (discovered classes first, then explicit ones); the first failure
// aborts the run and earlier artifacts remain on disk.
func (r *Runner) Run() error {
	project := r.config.Project

	if project == nil {
		p, err := classpath.LoadProject(r.config.ProjectFile)
		if err != nil {
			return err
		}

		project = p
	}

	if project.Packaging == classpath.PackagingPom {
		r.logger.Debug("skipping pom-packaging project")

		return nil
	}

	sourcesOut := r.config.SourcesOut
	if sourcesOut == "" {
		sourcesOut = projectPath(project, DefaultSourcesOut)
	}

	resourcesOut := r.config.ResourcesOut
	if resourcesOut == "" {
		resourcesOut = projectPath(project, DefaultResourcesOut)
	}

	entries, err := project.Assemble(r.config.TestClasspathOnly)
	if err != nil {
		return err
	}

	r.logger.Debug("assembled classpath", "entries", entries)

	loader, err := metadata.NewLoader(entries)
	if err != nil {
		return err
	}

	tokens := newOrderedSet()

	if r.config.DiscoverClasses {
		entry := project.OutputEntry(r.config.TestClasspathOnly)

		names, err := metadata.ScanConfigurerClasses(entry)
		if err != nil {
			return &MetadataIndexError{Entry: entry, Err: err}
		}

		for _, name := range names {
			tokens.add(name)
		}
	}

	for _, token := range r.config.Classes {
		tokens.add(token)
	}

	r.logger.Debug("generating configurers", "classes", tokens.items)

	engine := discover.NewEngine(loader)
	generator := gen.NewGenerator(r.config.Generation)

	for _, token := range tokens.items {
		task := ParseTask(token)

		if err := r.process(engine, generator, loader, task, sourcesOut, resourcesOut); err != nil {
			return fmt.Errorf("processing class %s: %w", task.Source, err)
		}
	}

	return nil
}

// process runs one task: discover options, render both artifacts, write them
// incrementally.
func (r *Runner) process(
	engine *discover.Engine,
	generator *gen.Generator,
	loader *metadata.Loader,
	task Task,
	sourcesOut, resourcesOut string,
) error {
	if _, ok := loader.Lookup(task.Source); !ok {
		return &ClassResolutionError{Class: task.Source}
	}

	options, err := discover.Build(engine, task.Source)
	if err != nil {
		return err
	}

	source, err := generator.Configurer(task.Source, task.Target, options)
	if err != nil {
		return err
	}

	if err := r.write(sourcesOut, source); err != nil {
		return err
	}

	return r.write(resourcesOut, generator.Registration(task.Target))
}

func (r *Runner) write(root string, artifact gen.Artifact) error {
	updated, err := gen.WriteIfChanged(root, artifact.Path, artifact.Content)
	if err != nil {
		return err
	}

	if updated {
		r.logger.Info("Updated " + artifact.Path)
	}

	return nil
}

func projectPath(p *classpath.Project, rel string) string {
	if p.BaseDir == "" {
		return rel
	}

	return filepath.Join(p.BaseDir, rel)
}

// orderedSet keeps insertion order with first-seen de-duplication.
type orderedSet struct {
	items []string
	seen  map[string]bool
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) add(v string) {
	if s.seen[v] {
		return
	}

	s.seen[v] = true
	s.items = append(s.items, v)
}
