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
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// hclEndpoints is decoded first so the rest of the file can reference endpoints
type hclEndpoints struct {
	Endpoints *Endpoints `hcl:"endpoints,block"`
	Remain    hcl.Body   `hcl:",remain"`
}

type hclConfig struct {
	BaseDir  string    `hcl:"base_dir,optional"`
	Files    []string  `hcl:"files"`
	Profiles []Profile `hcl:"profile,block"`
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte, filename string, overlay Endpoints) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filepath.Base(filename))
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	var head hclEndpoints
	diags = gohcl.DecodeBody(hclFile.Body, nil, &head)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL endpoints: %s", diags.Error())
	}

	endpoints := ResolveEndpoints(head.Endpoints, overlay)

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"endpoints": endpointsValue(endpoints),
		},
	}

	var body hclConfig
	diags = gohcl.DecodeBody(head.Remain, evalCtx, &body)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &Config{
		BaseDir:   body.BaseDir,
		Files:     body.Files,
		Endpoints: endpoints,
		Profiles:  body.Profiles,
	}, nil
}

// endpointsValue exposes resolved endpoints to HCL expressions
func endpointsValue(e Endpoints) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"local_backend":       cty.StringVal(e.LocalBackend),
		"local_frontend":      cty.StringVal(e.LocalFrontend),
		"production_backend":  cty.StringVal(e.ProductionBackend),
		"production_frontend": cty.StringVal(e.ProductionFrontend),
	})
}
