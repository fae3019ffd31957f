// Package main provides the CLI entrypoint for configurer-generator.
//
// configurer-generator is a deterministic build-time codegen tool that:
//   - Assembles a classpath of class-metadata indexes from a project descriptor
//   - Discovers a class's public single-argument setters (explicit list or
//     annotation scanning)
//   - Resolves types, generics and overloads into property options
//   - Emits a property configurer source file plus a registration resource,
//     rewriting only artifacts whose content changed
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"configurer-generator/internal/runner"
)

func main() {
	var cfg runner.Config

	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "configurer-generator",
		Short: "Generate property configurers from class metadata",
		Long: "Generates a reflection-free property configurer source file and a\n" +
			"registration resource for every requested class, driven by serialized\n" +
			"class-metadata indexes on the project classpath.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger := log.New(os.Stderr)

			if level, err := log.ParseLevel(logLevel); err == nil {
				logger.SetLevel(level)
			}

			cfg.Logger = logger

			return runner.New(cfg).Run()
		},
	}

	rootCmd.Flags().StringVar(&cfg.ProjectFile, "project", "project.yaml", "Path to the project descriptor")
	rootCmd.Flags().StringVar(&cfg.SourcesOut, "sources-out", "", "Generated sources output directory (default <project>/src/generated/java)")
	rootCmd.Flags().StringVar(&cfg.ResourcesOut, "resources-out", "", "Generated resources output directory (default <project>/src/generated/resources)")
	rootCmd.Flags().StringSliceVar(&cfg.Classes, "classes", nil, "Explicit class tokens, each source[=target]")
	rootCmd.Flags().BoolVar(&cfg.DiscoverClasses, "discover", true, "Scan the annotation index for configurer classes")
	rootCmd.Flags().BoolVar(&cfg.TestClasspathOnly, "test-classpath", false, "Run against the test output directory only")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
