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

/*
Package config manages rule profiles, target files and endpoints for urlflip.

	            +-------------+
	            |   Config    |
	            | (Profiles)  |
	            +------+------+
	                   |
	      +-----------+-----------+-----------+
	      |           |           |           |
	+-----+----+ +----+----+ +----+----+ +----+----+
	| Defaults | |  YAML   | |  JSON   | |   HCL   |
	+----------+ +---------+ +---------+ +---------+

🎯 Purpose:
- Provides the built-in target file list and endpoint values
- Builds the "production" and "localhost" rule profiles from endpoints
- Loads project config files (format chosen by extension)
- Validates everything before a single file is touched

🔄 Endpoint precedence (lowest first):
1. Built-in defaults
2. The config file's endpoints block
3. URLFLIP_* environment variables
4. Command line flags (passed in as the overlay)

HCL files are evaluated with an "endpoints" object variable holding the
resolved values, so a rule can be written as:

	profile "staging" {
	  rule {
	    old = endpoints.local_backend
	    new = "https://staging.example.com"
	  }
	}

🔍 Example:

	cfg, err := config.Load(ctx, ".urlflip.hcl", config.Endpoints{})
	if err != nil {
		return err
	}
	profile, err := cfg.Profile("production")
	rules := profile.ReplacementRules()
*/
package config
