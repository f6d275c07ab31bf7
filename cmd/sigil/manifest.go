package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type manifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Package packageConfig `toml:"package"`
	Compile compileConfig `toml:"compile"`
}

type packageConfig struct {
	Prefix string `toml:"prefix"`
}

type compileConfig struct {
	Inputs []string `toml:"inputs"`
}

// findManifest walks up from startDir looking for sigil.toml.
func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "sigil.toml")
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

// loadManifest discovers and parses sigil.toml. Every section is optional;
// an absent manifest is not an error.
func loadManifest(startDir string) (*manifest, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}

	var cfg manifestConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

// inputPaths returns [compile].inputs resolved against the manifest's
// directory, so the unit is the same wherever the tool runs from.
func (m *manifest) inputPaths() []string {
	out := make([]string, 0, len(m.Config.Compile.Inputs))
	for _, in := range m.Config.Compile.Inputs {
		if filepath.IsAbs(in) {
			out = append(out, in)
			continue
		}
		out = append(out, filepath.Join(m.Root, in))
	}
	return out
}
