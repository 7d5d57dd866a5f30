package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultConfigNames lists the rc file names probed by Discover, in
// preference order.
var DefaultConfigNames = []string{
	".lintgaterc.yml",
	".lintgaterc.yaml",
	".lintgaterc.json",
	".lintgaterc.toml",
}

// Load reads a ConfigData record from a YAML, JSON, or TOML file, picking
// the decoder by extension. The record is normalized but not validated;
// call Validate separately.
func Load(path string) (*ConfigData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &ConfigData{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		// Decode generically, then funnel through the YAML unmarshalers so
		// the custom wire forms behave identically across formats.
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		cfg, err = FromMap(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg.Normalize()
	return cfg, nil
}

// Discover looks for a default rc file in dir. Returns the path of the
// first name that exists, or "" when none does.
func Discover(dir string) (string, error) {
	for _, name := range DefaultConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", err
		}
		return path, nil
	}
	return "", nil
}
