package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"spirvlink/internal/linker"
)

// linkManifest is a parsed link.toml together with where it was found.
// Relative input paths are resolved against the manifest's directory.
type linkManifest struct {
	Path   string
	Root   string
	Config linkConfig
}

type linkConfig struct {
	Output outputConfig `toml:"output"`
	Inputs inputsConfig `toml:"inputs"`
	Dedup  dedupConfig  `toml:"dedup"`
}

type outputConfig struct {
	Path string `toml:"path"`
}

type inputsConfig struct {
	Files []string `toml:"files"`
}

type dedupConfig struct {
	Capabilities *bool `toml:"capabilities"`
	Imports      *bool `toml:"imports"`
	Types        *bool `toml:"types"`
}

func findLinkToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "link.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadLinkManifest(startDir string) (*linkManifest, bool, error) {
	path, ok, err := findLinkToml(startDir)
	if err != nil || !ok {
		return nil, false, err
	}
	var cfg linkConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &linkManifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

// ApplyDedup copies the manifest's dedup toggles onto opts, leaving any
// toggle the manifest does not mention at its current value.
func (m *linkManifest) ApplyDedup(opts *linker.Options) {
	if m.Config.Dedup.Capabilities != nil {
		opts.DedupCapabilities = *m.Config.Dedup.Capabilities
	}
	if m.Config.Dedup.Imports != nil {
		opts.DedupExtInstImports = *m.Config.Dedup.Imports
	}
	if m.Config.Dedup.Types != nil {
		opts.DedupTypes = *m.Config.Dedup.Types
	}
}

// InputPaths returns the manifest's inputs resolved against its directory.
func (m *linkManifest) InputPaths() []string {
	paths := make([]string, 0, len(m.Config.Inputs.Files))
	for _, f := range m.Config.Inputs.Files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(m.Root, f)
		}
		paths = append(paths, f)
	}
	return paths
}
