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
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 💾 FileManager reads and rewrites pages addressed by slash paths relative
// to a base directory
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile overwrites an existing file in place. It never creates files.
	WriteFile(ctx context.Context, path string, content []byte) error
	// FS exposes the base directory for discovery
	FS() fs.FS
}

// 🔧 Manager implements FileManager on the local filesystem
type Manager struct {
	baseDir string
}

var _ FileManager = (*Manager)(nil)

// 🏭 New creates a new file manager rooted at baseDir
func New(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
	}
}

// 🔒 getAbsPath returns the absolute path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, filepath.FromSlash(path))
}

func (m *Manager) FS() fs.FS {
	return os.DirFS(m.baseDir)
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFile truncates and rewrites the file, keeping its permissions. The
// write is not atomic.
func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	f, err := os.OpenFile(m.getAbsPath(path), os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errors.Errorf("opening file for write: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return errors.Errorf("writing file: %w", err)
	}

	if err := f.Close(); err != nil {
		return errors.Errorf("closing file: %w", err)
	}

	return nil
}
