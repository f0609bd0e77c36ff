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
	"bytes"
	"context"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// fileConfig is the on-disk shape shared by the YAML and JSON parsers
type fileConfig struct {
	BaseDir   string     `json:"base_dir,omitempty" yaml:"base_dir,omitempty"`
	Files     []string   `json:"files" yaml:"files"`
	Endpoints *Endpoints `json:"endpoints,omitempty" yaml:"endpoints,omitempty"`
	Profiles  []Profile  `json:"profiles,omitempty" yaml:"profiles,omitempty"`
}

func (fc *fileConfig) toConfig(overlay Endpoints) *Config {
	return &Config{
		BaseDir:   fc.BaseDir,
		Files:     fc.Files,
		Endpoints: ResolveEndpoints(fc.Endpoints, overlay),
		Profiles:  fc.Profiles,
	}
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}

// 📝 Parse parses the config from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte, filename string, overlay Endpoints) (*Config, error) {
	var fc fileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// an empty document decodes to an empty config, validation reports what is missing
	if err := decoder.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return fc.toConfig(overlay), nil
}
