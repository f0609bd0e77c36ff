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
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements TextReplacer using literal string replacement
type SimpleTextReplacer struct{}

var _ TextReplacer = (*SimpleTextReplacer)(nil)

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	logger := zerolog.Ctx(ctx)

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for _, rule := range rules {
		if rule.FromText == "" {
			continue
		}

		count := strings.Count(currentContent, rule.FromText)
		if count == 0 {
			continue
		}

		newContent := strings.ReplaceAll(currentContent, rule.FromText, rule.ToText)
		if newContent != currentContent {
			result.WasModified = true
			result.ReplacementCount += count
		}

		logger.Debug().
			Str("from", rule.FromText).
			Str("to", rule.ToText).
			Int("count", count).
			Msg("applied replacement rule")

		currentContent = newContent
	}

	// a rule can undo an earlier one, so compare against the original
	if currentContent == string(originalContent) {
		result.WasModified = false
		return result, nil
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	if len(rules) == 0 {
		return errors.New("at least one rule is required")
	}
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file_filter_glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}

// ForFile returns the rules that apply to path, keeping their order
func ForFile(rules []ReplacementRule, path string) []ReplacementRule {
	out := make([]ReplacementRule, 0, len(rules))
	for _, rule := range rules {
		if rule.Applies(path) {
			out = append(out, rule)
		}
	}
	return out
}
