package opts

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/urlflip/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// DefaultConfigFiles are looked up, in order, in the --base-dir directory (or
// the working directory) when no --config flag is given
var DefaultConfigFiles = []string{".urlflip.hcl", ".urlflip.yaml", ".urlflip.yml", ".urlflip.json"}

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile  string
	BaseDir     string
	Debug       bool
	DryRun      bool
	FailOnError bool

	// Endpoints set from flags, they win over the environment and config file
	Endpoints config.Endpoints

	// Stdout and Stderr are set from the root command before any command runs
	Stdout io.Writer
	Stderr io.Writer
}

// 🔍 ConfigPath returns the config file to load, empty when the built-in
// configuration should be used
func (o *RootOpts) ConfigPath() (string, error) {
	if o.ConfigFile != "" {
		return o.ConfigFile, nil
	}

	dir := o.BaseDir
	if dir == "" {
		dir = "."
	}

	for _, name := range DefaultConfigFiles {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", errors.Errorf("checking for %s: %w", path, err)
		}
	}

	return "", nil
}

// 🎯 LoadConfig loads the config file if one is found, the built-in
// configuration otherwise
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	path, err := o.ConfigPath()
	if err != nil {
		return nil, err
	}

	if path == "" {
		zerolog.Ctx(ctx).Debug().Msg("no config file found, using built-in configuration")
		cfg, err := config.Default(ctx, o.Endpoints)
		if err != nil {
			return nil, errors.Errorf("loading built-in config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(ctx, path, o.Endpoints)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// 📁 ResolveBaseDir returns the --base-dir flag when set, the config's base
// directory otherwise
func (o *RootOpts) ResolveBaseDir(cfg *config.Config) (string, error) {
	if o.BaseDir == "" {
		return cfg.ResolveBaseDir()
	}

	abs, err := filepath.Abs(o.BaseDir)
	if err != nil {
		return "", errors.Errorf("resolving base directory: %w", err)
	}
	return abs, nil
}

// 🎚️ LogLevel returns the zerolog level selected by --debug
func (o *RootOpts) LogLevel() zerolog.Level {
	if o.Debug {
		return zerolog.DebugLevel
	}
	return zerolog.WarnLevel
}
