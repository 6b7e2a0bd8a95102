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

// Package templates holds the canonical page chrome shipped with the binary.
//
// The payloads were taken from the site's contact page and are opaque text:
// nothing in this module parses or rewrites them.
package templates

import (
	"embed"
	"sort"

	"gitlab.com/tozd/go/errors"
)

// Builtin template names
const (
	Header       = "header"        // tag-bounded header, starts at <header
	Footer       = "footer"        // tag-bounded footer, starts at <footer
	MarkedHeader = "header-marked" // header preceded by its <!-- Header --> marker line
)

//go:embed data/*.html
var data embed.FS

var files = map[string]string{
	Header:       "data/header.html",
	Footer:       "data/footer.html",
	MarkedHeader: "data/header_marked.html",
}

// Builtin returns the embedded template with the given name.
func Builtin(name string) (string, error) {
	file, ok := files[name]
	if !ok {
		return "", errors.Errorf("unknown builtin template %q", name)
	}
	content, err := data.ReadFile(file)
	if err != nil {
		return "", errors.Errorf("reading builtin template %s: %w", name, err)
	}
	return string(content), nil
}

// Names lists the builtin template names in sorted order.
func Names() []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
