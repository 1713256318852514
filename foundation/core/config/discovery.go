// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for the first configuration
//              file matching a set of base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of config discovery
// - 2026-10-18 v0.2.0: Optional discovery returns an empty config

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/finkit/foundation/core/error"
)

// DiscoveryOptions defines where Discover looks for configuration files
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
	EnvPrefix  string
	Required   bool
}

// DefaultDiscoveryOptions searches the working directory and the user
// config directory for finkit.toml, finkit.yaml or finkit.yml
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "finkit"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"finkit"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "FINKIT",
	}
}

// Candidates returns every path Discover would try, in order
func (o DiscoveryOptions) Candidates() []string {
	var paths []string
	for _, dir := range o.Paths {
		for _, name := range o.Filenames {
			for _, ext := range o.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

// Discover loads the first existing candidate. When none exists it returns
// an error if Required is set and an empty configuration otherwise.
func Discover(options DiscoveryOptions) (*Config, error) {
	candidates := options.Candidates()
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: options.EnvPrefix})
	}

	if options.Required {
		return nil, mdwerror.New("no configuration file found in: "+strings.Join(candidates, ", ")).
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("searchPaths", candidates)
	}
	return Empty(options.EnvPrefix), nil
}
