// Package config loads grid programs and settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/tisgrid/grid"
	"github.com/ezrec/tisgrid/node"
)

// NodeConfig is the program source of a single node.
// Exactly one of Source and File is set.
type NodeConfig struct {
	Source string `yaml:"source,omitempty"` // Inline assembly text.
	File   string `yaml:"file,omitempty"`   // Assembly file, relative to the config file.
}

// Config is the complete grid configuration.
type Config struct {
	Verbose  bool              `yaml:"verbose"`
	Language string            `yaml:"language,omitempty"`
	Defines  map[string]string `yaml:"defines,omitempty"`
	Nodes    []NodeConfig      `yaml:"nodes"`

	Dir string `yaml:"-"` // Base directory for node files.
}

// defaultSources are the demonstration programs, one per node.
var defaultSources = [grid.NODE_COUNT]string{
	"ADD 1\nSAV\nADD 1\nSWP\nNEG\n",
	"ADD 2\nSUB 400\n",
	"ADD -400\n",
	"ADD 1\nSUB 2\nSUB 4\nSUB 5\n",
}

// Default returns a Config running the demonstration programs.
func Default() Config {
	cfg := Config{
		Dir: ".",
	}

	for _, source := range defaultSources {
		cfg.Nodes = append(cfg.Nodes, NodeConfig{Source: source})
	}

	return cfg
}

// FromFiles returns a Config running one assembly file per node.
func FromFiles(paths ...string) (*Config, error) {
	cfg := Default()
	cfg.Nodes = nil

	for _, path := range paths {
		cfg.Nodes = append(cfg.Nodes, NodeConfig{File: path})
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Load reads and parses a YAML config file.
// Fields missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Dir = filepath.Dir(path)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that all config values are valid.
func Validate(cfg *Config) error {
	if len(cfg.Nodes) != grid.NODE_COUNT {
		return ValidationError{Field: "nodes", Message: fmt.Sprintf("must list exactly %d nodes, not %d", grid.NODE_COUNT, len(cfg.Nodes))}
	}

	for index, nc := range cfg.Nodes {
		field := fmt.Sprintf("nodes[%d]", index)
		hasSource := strings.TrimSpace(nc.Source) != ""
		hasFile := nc.File != ""
		switch {
		case hasSource && hasFile:
			return ValidationError{Field: field, Message: "source and file are exclusive"}
		case !hasSource && !hasFile:
			return ValidationError{Field: field, Message: "source or file is required"}
		}
	}

	for name := range cfg.Defines {
		if name == "" || strings.ContainsAny(name, " \t") {
			return ValidationError{Field: "defines", Message: fmt.Sprintf("invalid name %q", name)}
		}
	}

	return nil
}

// source returns the assembly text of a node, and a name for it.
func (cfg *Config) source(nc NodeConfig) (name string, text string, err error) {
	if nc.File == "" {
		return "source", nc.Source, nil
	}

	name = nc.File
	if !filepath.IsAbs(name) && cfg.Dir != "" {
		name = filepath.Join(cfg.Dir, name)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return name, "", fmt.Errorf("failed to read program: %w", err)
	}

	return name, string(data), nil
}

// Programs assembles the program of every node.
func (cfg *Config) Programs() ([]*node.Program, error) {
	asm := &node.Assembler{Verbose: cfg.Verbose}
	for equ, value := range cfg.Defines {
		asm.Predefine(equ, value)
	}

	programs := make([]*node.Program, 0, len(cfg.Nodes))
	for index, nc := range cfg.Nodes {
		name, text, err := cfg.source(nc)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", index, err)
		}

		prog, err := asm.Parse(strings.NewReader(text))
		if err != nil {
			return nil, fmt.Errorf("node %d: %s: %w", index, name, err)
		}

		if prog.Len() == 0 {
			return nil, ValidationError{Field: fmt.Sprintf("nodes[%d]", index), Message: "program is empty"}
		}

		programs = append(programs, prog)
	}

	return programs, nil
}

// Grid assembles every node program and builds the grid.
func (cfg *Config) Grid() (*grid.Grid, error) {
	programs, err := cfg.Programs()
	if err != nil {
		return nil, err
	}

	g, err := grid.NewGridFromPrograms(programs...)
	if err != nil {
		return nil, err
	}
	g.Verbose = cfg.Verbose

	return g, nil
}
