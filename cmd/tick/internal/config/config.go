// Package config loads the optional tick.yaml file that lists the frame
// rates a project plays back at.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/tick/pkg/errors"
	"github.com/go-drift/tick/pkg/tick"
)

// FileName is the config file looked up in the project root.
const FileName = "tick.yaml"

// EnvPath overrides the config file location. Relative paths are resolved
// against the project root.
const EnvPath = "TICK_CONFIG"

// Config represents the optional tick.yaml configuration.
type Config struct {
	Project     ProjectConfig          `yaml:"project"`
	Rates       []int64                `yaml:"rates,omitempty"`
	Approximate []tick.ApproxFrameRate `yaml:"approximate,omitempty"`
	Strict      *bool                  `yaml:"strict,omitempty"`
}

// ProjectConfig contains project metadata.
type ProjectConfig struct {
	Name string `yaml:"name,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Name       string
	Strict     bool

	// Rates holds the configured rates that divide the tick resolution.
	Rates []tick.FrameRate
	// Inexact holds configured rates that do not. Only populated when
	// Strict is false.
	Inexact     []int64
	Approximate []tick.ApproxFrameRate
}

// Path returns the config file location for a project rooted at dir.
func Path(dir string) string {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	return filepath.Join(dir, FileName)
}

// LoadOptional reads the config file for dir if present. A missing default
// file yields an empty Config; a missing file named by TICK_CONFIG is an
// error.
func LoadOptional(dir string) (*Config, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) && os.Getenv(EnvPath) == "" {
			return &Config{}, nil
		}
		return nil, errors.Wrap("config.LoadOptional", errors.KindConfig, path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap("config.LoadOptional", errors.KindConfig, path, err)
	}
	return &cfg, nil
}

// Resolve loads the config (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cfg.Project.Name)
	if name == "" {
		name = defaultName(modulePath, dir)
	}

	res := &Resolved{
		Root:        dir,
		ModulePath:  modulePath,
		Name:        name,
		Strict:      cfg.Strict == nil || *cfg.Strict,
		Approximate: cfg.Approximate,
	}

	for _, n := range cfg.Rates {
		r, err := tick.NewFrameRate(n)
		switch {
		case err == nil:
			res.Rates = append(res.Rates, r)
		case n > 0 && !res.Strict && stderrors.Is(err, errors.ErrInvalidFrameRate):
			res.Inexact = append(res.Inexact, n)
		default:
			return nil, errors.Wrap("config.Resolve", errors.KindConfig, n, err)
		}
	}
	return res, nil
}

// FindProjectRoot walks up from the current directory to the nearest
// directory holding tick.yaml or go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("config.FindProjectRoot", errors.KindConfig,
				"no tick.yaml or go.mod found")
		}
		dir = parent
	}
}

// modulePath returns the module path declared in dir/go.mod, or "" when
// there is no go.mod.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", errors.New("config.Resolve", errors.KindConfig,
			"could not determine module path from go.mod")
	}
	return path, nil
}

func defaultName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "tick_project"
	}
	return base
}
