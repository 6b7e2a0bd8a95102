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
	"regexp"

	"gitlab.com/tozd/go/errors"
)

var tagNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// Pattern compiles the rule into its matching expression.
//
// Without a marker the region is `<tag ...>` up to the nearest `</tag>`. With a
// marker it starts at the marker, taking the horizontal whitespace in front of
// it, and ends at the nearest `</tag>`. Either way the match is non-greedy and
// spans newlines, so nested elements with the same tag name are not supported.
func (r BlockRule) Pattern() (*regexp.Regexp, error) {
	if !tagNameRe.MatchString(r.Tag) {
		return nil, errors.Errorf("invalid tag name %q", r.Tag)
	}
	tag := regexp.QuoteMeta(r.Tag)
	if r.Marker != "" {
		return regexp.Compile(`(?s)[ \t]*` + regexp.QuoteMeta(r.Marker) + `.*?</` + tag + `>`)
	}
	return regexp.Compile(`(?s)<` + tag + `\b[^>]*>.*?</` + tag + `>`)
}

// BlockReplacer implements TextReplacer by overwriting tag-bounded regions
type BlockReplacer struct{}

var _ TextReplacer = (*BlockReplacer)(nil)

// NewBlockReplacer creates a new BlockReplacer
func NewBlockReplacer() *BlockReplacer {
	return &BlockReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText.
// Each rule replaces only its first match; rules run in order against the
// output of the previous rule.
func (r *BlockReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []BlockRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	current := string(originalContent)
	for _, rule := range rules {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("replacing %s: %w", rule.Tag, err)
		}

		re, err := rule.Pattern()
		if err != nil {
			return nil, errors.Errorf("compiling rule for %s: %w", rule.Tag, err)
		}

		loc := re.FindStringIndex(current)
		if loc == nil {
			result.Missing = append(result.Missing, rule.Tag)
			continue
		}

		result.Matched = append(result.Matched, rule.Tag)
		current = current[:loc[0]] + rule.Template + current[loc[1]:]
	}

	if current != string(originalContent) {
		result.WasModified = true
		result.ModifiedContent = []byte(current)
	}

	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *BlockReplacer) ValidateRules(rules []BlockRule) error {
	if len(rules) == 0 {
		return errors.Errorf("at least one rule is required")
	}
	seen := make(map[string]bool, len(rules))
	for i, rule := range rules {
		if _, err := rule.Pattern(); err != nil {
			return errors.Errorf("rule %d: %w", i, err)
		}
		if rule.Template == "" {
			return errors.Errorf("rule %d: template for %s is empty", i, rule.Tag)
		}
		if seen[rule.Tag] {
			return errors.Errorf("rule %d: duplicate rule for %s", i, rule.Tag)
		}
		seen[rule.Tag] = true
	}
	return nil
}

// Extract returns the first region matched by rule in content.
func Extract(content string, rule BlockRule) (string, bool, error) {
	re, err := rule.Pattern()
	if err != nil {
		return "", false, errors.Errorf("compiling rule for %s: %w", rule.Tag, err)
	}
	loc := re.FindStringIndex(content)
	if loc == nil {
		return "", false, nil
	}
	return content[loc[0]:loc[1]], true, nil
}
