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

package status

import (
	"strings"
)

// 📊 FileStatus is the result of processing one page
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusUpdated              // Blocks replaced and the page written back
	StatusUnchanged            // Page already canonical, or nothing matched
	StatusNotFound             // No block matched and the run reports misses
	StatusError                // Page could not be read or written
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusUnchanged:
		return "unchanged"
	case StatusNotFound:
		return "not found"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 Outcome is what happened to one candidate page
type Outcome struct {
	Path    string     // Path relative to the base directory
	Status  FileStatus // What happened
	Missing []string   // Tags whose region was not found
	DryRun  bool       // The update was computed but not written
	Err     error      // Set when Status is StatusError
}

// MissingTags joins the missing tags for display
func (o Outcome) MissingTags() string {
	return strings.Join(o.Missing, ", ")
}

// 📈 Summary counts outcomes over a run
type Summary struct {
	Total     int
	Updated   int
	Unchanged int
	NotFound  int
	Errors    int
}

// Add records one outcome
func (s *Summary) Add(o Outcome) {
	s.Total++
	switch o.Status {
	case StatusUpdated:
		s.Updated++
	case StatusUnchanged:
		s.Unchanged++
	case StatusNotFound:
		s.NotFound++
	case StatusError:
		s.Errors++
	}
}
