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

package text

import (
	"context"
	"io"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ReplacementRule defines a single literal text replacement
type ReplacementRule struct {
	// FromText is the literal text to replace, it must not be empty
	FromText string

	// ToText is the literal replacement text
	ToText string

	// FileFilterGlob limits the rule to matching target paths, empty matches every file
	FileFilterGlob string
}

// Applies reports whether the rule should run on path. Paths are matched in
// slash form so one glob works on every platform; a malformed glob matches
// nothing.
func (r ReplacementRule) Applies(path string) bool {
	if r.FileFilterGlob == "" {
		return true
	}
	matched, err := doublestar.Match(r.FileFilterGlob, filepath.ToSlash(path))
	return err == nil && matched
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of occurrences replaced across all rules
	ReplacementCount int

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies the rules, in order, to the content.
	// Each rule sees the output of the rules before it.
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}
