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
)

// BlockRule describes one region of a page to overwrite.
type BlockRule struct {
	// Tag is the element name bounding the region, e.g. "header"
	Tag string

	// Marker is optional literal text that must start the region. When set the
	// region runs from the marker (plus its line indentation) to the nearest
	// closing tag instead of from the opening tag.
	Marker string

	// Template is the text written in place of the region
	Template string
}

// ReplacementResult contains the results of applying a set of rules
type ReplacementResult struct {
	// WasModified indicates the content differs from the original
	WasModified bool

	// Matched lists the tags whose region was found, in rule order
	Matched []string

	// Missing lists the tags whose region was not found, in rule order
	Missing []string

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for block replacement operations
type TextReplacer interface {
	// ReplaceText applies a set of rules to the content
	ReplaceText(ctx context.Context, content io.Reader, rules []BlockRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are usable
	ValidateRules(rules []BlockRule) error
}
