// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/walteh/urlflip/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes, resolving endpoints against overlay
	Parse(ctx context.Context, data []byte, filename string, overlay Endpoints) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Rule is a literal replacement in a profile
type Rule struct {
	Old  string `json:"old" yaml:"old" hcl:"old" validate:"required"`
	New  string `json:"new" yaml:"new" hcl:"new"`
	File string `json:"file,omitempty" yaml:"file,omitempty" hcl:"file,optional"` // Optional glob limiting the rule to matching files
}

// 📦 Profile is a named, ordered rule set
type Profile struct {
	Name        string `json:"name" yaml:"name" hcl:"name,label" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" hcl:"description,optional"`
	Rules       []Rule `json:"rules" yaml:"rules" hcl:"rule,block" validate:"required,min=1,dive"`
}

// ReplacementRules converts the profile into text replacement rules, keeping order
func (p *Profile) ReplacementRules() []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(p.Rules))
	for _, r := range p.Rules {
		rules = append(rules, text.ReplacementRule{
			FromText:       r.Old,
			ToText:         r.New,
			FileFilterGlob: r.File,
		})
	}
	return rules
}

// 📚 Config represents the complete configuration
type Config struct {
	BaseDir   string    `json:"base_dir,omitempty" yaml:"base_dir,omitempty"`
	Files     []string  `json:"files" yaml:"files" validate:"required,min=1,dive,required"`
	Endpoints Endpoints `json:"endpoints" yaml:"endpoints"`
	Profiles  []Profile `json:"profiles,omitempty" yaml:"profiles,omitempty" validate:"dive"`

	location string
}

// Location returns the path the config was loaded from, empty for defaults
func (cfg *Config) Location() string {
	return cfg.location
}

// 🏭 Default returns the built-in configuration
func Default(ctx context.Context, overlay Endpoints) (*Config, error) {
	env, err := EnvEndpoints()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Files:     DefaultFiles(),
		Endpoints: ResolveEndpoints(nil, env.Overlay(overlay)),
	}
	if err := cfg.finalize(ctx); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string, overlay Endpoints) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	env, err := EnvEndpoints()
	if err != nil {
		return nil, err
	}

	cfg, err := p.Parse(ctx, data, path, env.Overlay(overlay))
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path

	if err := cfg.finalize(ctx); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// finalize fills in built-in profiles and validates
func (cfg *Config) finalize(ctx context.Context) error {
	defined := make(map[string]bool, len(cfg.Profiles))
	for _, p := range cfg.Profiles {
		defined[p.Name] = true
	}
	for _, p := range BuiltinProfiles(cfg.Endpoints) {
		if !defined[p.Name] {
			cfg.Profiles = append(cfg.Profiles, p)
		}
	}

	zerolog.Ctx(ctx).Debug().
		Strs("profiles", cfg.ProfileNames()).
		Int("files", len(cfg.Files)).
		Msg("configuration ready")

	return cfg.Validate()
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report yaml names, they match the json and hcl names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return errors.Errorf("%s is invalid (%s)", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag())
		}
		return errors.Errorf("validating config: %w", err)
	}

	replacer := text.NewSimpleTextReplacer()
	seen := make(map[string]bool, len(cfg.Profiles))
	for i := range cfg.Profiles {
		p := &cfg.Profiles[i]
		if seen[p.Name] {
			return errors.Errorf("profile %q is defined more than once", p.Name)
		}
		seen[p.Name] = true

		if err := replacer.ValidateRules(p.ReplacementRules()); err != nil {
			return errors.Errorf("profile %q: %w", p.Name, err)
		}
	}

	return nil
}

// 🎯 Profile returns the profile with the given name
func (cfg *Config) Profile(name string) (*Profile, error) {
	for i := range cfg.Profiles {
		if cfg.Profiles[i].Name == name {
			return &cfg.Profiles[i], nil
		}
	}
	return nil, errors.Errorf("unknown profile %q (available: %s)", name, strings.Join(cfg.ProfileNames(), ", "))
}

// ProfileNames returns profile names in definition order
func (cfg *Config) ProfileNames() []string {
	names := make([]string, 0, len(cfg.Profiles))
	for _, p := range cfg.Profiles {
		names = append(names, p.Name)
	}
	return names
}

// ResolveBaseDir returns the absolute directory target files are relative to.
// A relative base_dir is taken from the config file's directory, or from the
// working directory when no file was loaded.
func (cfg *Config) ResolveBaseDir() (string, error) {
	base := cfg.BaseDir
	if filepath.IsAbs(base) {
		return filepath.Clean(base), nil
	}

	root := "."
	if cfg.location != "" {
		root = filepath.Dir(cfg.location)
	}

	abs, err := filepath.Abs(filepath.Join(root, base))
	if err != nil {
		return "", errors.Errorf("resolving base directory: %w", err)
	}
	return abs, nil
}
