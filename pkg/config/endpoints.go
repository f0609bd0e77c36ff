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
	"github.com/kelseyhightower/envconfig"
	"gitlab.com/tozd/go/errors"
)

// EnvPrefix is the prefix of the endpoint environment variables
const EnvPrefix = "URLFLIP"

// 🌐 Endpoints holds the backend and frontend URLs of both environments
type Endpoints struct {
	LocalBackend       string `json:"local_backend,omitempty" yaml:"local_backend,omitempty" hcl:"local_backend,optional" envconfig:"LOCAL_BACKEND" validate:"required,url"`
	LocalFrontend      string `json:"local_frontend,omitempty" yaml:"local_frontend,omitempty" hcl:"local_frontend,optional" envconfig:"LOCAL_FRONTEND" validate:"required,url"`
	ProductionBackend  string `json:"production_backend,omitempty" yaml:"production_backend,omitempty" hcl:"production_backend,optional" envconfig:"PRODUCTION_BACKEND" validate:"required,url"`
	ProductionFrontend string `json:"production_frontend,omitempty" yaml:"production_frontend,omitempty" hcl:"production_frontend,optional" envconfig:"PRODUCTION_FRONTEND" validate:"required,url"`
}

// EnvEndpoints reads endpoint overrides from URLFLIP_* environment variables.
// Unset variables stay empty.
func EnvEndpoints() (Endpoints, error) {
	var e Endpoints
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return Endpoints{}, errors.Errorf("reading endpoints from environment: %w", err)
	}
	return e, nil
}

// Overlay returns e with every non-empty field of top applied over it
func (e Endpoints) Overlay(top Endpoints) Endpoints {
	if top.LocalBackend != "" {
		e.LocalBackend = top.LocalBackend
	}
	if top.LocalFrontend != "" {
		e.LocalFrontend = top.LocalFrontend
	}
	if top.ProductionBackend != "" {
		e.ProductionBackend = top.ProductionBackend
	}
	if top.ProductionFrontend != "" {
		e.ProductionFrontend = top.ProductionFrontend
	}
	return e
}

// ResolveEndpoints layers the config file values and the overlay over the defaults
func ResolveEndpoints(file *Endpoints, overlay Endpoints) Endpoints {
	e := DefaultEndpoints()
	if file != nil {
		e = e.Overlay(*file)
	}
	return e.Overlay(overlay)
}
