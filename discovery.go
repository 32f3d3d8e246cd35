// FILE: lixenwraith/dotenv/discovery.go
package dotenv

import (
	"os"
	"path/filepath"
)

// DefaultFileEnvVar names the environment variable holding an explicit source path.
const DefaultFileEnvVar = "DOTENV_FILE"

// FileDiscoveryOptions configures automatic source file discovery
type FileDiscoveryOptions struct {
	// Base name of the file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search paths, searched before the defaults
	Paths []string

	// Environment variable to check for an explicit path
	EnvVar string

	// Whether to search in the current directory
	UseCurrentDir bool

	// Whether to search in XDG config directories under AppName
	UseXDG bool

	// Application directory name used for XDG lookups
	AppName string
}

// DefaultDiscoveryOptions looks for .env.{toml,yaml,yml,json} in the current
// directory and the XDG directories of appName.
func DefaultDiscoveryOptions(appName string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          ".env",
		Extensions:    []string{".toml", ".yaml", ".yml", ".json"},
		EnvVar:        DefaultFileEnvVar,
		UseCurrentDir: true,
		UseXDG:        appName != "",
		AppName:       appName,
	}
}

// DiscoverFile returns the first existing source file for opts.
// An explicit path in opts.EnvVar is returned without checking it exists,
// so a wrong path surfaces as a load error rather than silently falling back.
func DiscoverFile(opts FileDiscoveryOptions) (string, bool) {
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path, true
		}
	}

	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	if opts.UseXDG && opts.AppName != "" {
		searchPaths = append(searchPaths, xdgConfigPaths(opts.AppName)...)
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, true
			}
		}
	}

	return "", false
}

// xdgConfigPaths returns XDG-compliant config search paths
func xdgConfigPaths(appName string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, appName))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, appName))
		}
	} else {
		paths = append(paths,
			filepath.Join("/etc/xdg", appName),
			filepath.Join("/etc", appName),
		)
	}

	return paths
}
