// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package descriptor

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/defaults"
)

// Line is a single descriptor line.
type Line struct {
	// Raw is the line as it appears in the file, without the line delimiter.
	Raw string
	// Key and Value are set for assignment lines only.
	Key   string
	Value string

	assignment bool
}

// IsAssignment reports whether the line is a key/value assignment.
func (l Line) IsAssignment() bool {
	return l.assignment
}

// File is an ordered, line-preserving descriptor.
// It is not safe for concurrent use.
type File struct {
	lines           []Line
	trailingNewline bool
	exists          bool
}

// Exists reports whether the descriptor was read from disk.
func (f *File) Exists() bool {
	return f.exists
}

// Len returns the number of lines.
func (f *File) Len() int {
	return len(f.lines)
}

// Lines returns a copy of all lines in file order.
func (f *File) Lines() []Line {
	out := make([]Line, len(f.lines))
	copy(out, f.lines)
	return out
}

// Lookup returns the value assigned to key. When a key is assigned more than
// once the last assignment wins.
func (f *File) Lookup(key string) (string, bool) {
	for i := len(f.lines) - 1; i >= 0; i-- {
		if f.lines[i].assignment && f.lines[i].Key == key {
			return f.lines[i].Value, true
		}
	}
	return "", false
}

// Get returns the value assigned to key, or def when the key is absent.
func (f *File) Get(key, def string) string {
	if v, ok := f.Lookup(key); ok {
		return v
	}
	return def
}

// Keys returns the distinct assigned keys in order of first appearance.
func (f *File) Keys() []string {
	seen := make(map[string]struct{}, len(f.lines))
	keys := make([]string, 0, len(f.lines))
	for _, l := range f.lines {
		if !l.assignment {
			continue
		}
		if _, ok := seen[l.Key]; ok {
			continue
		}
		seen[l.Key] = struct{}{}
		keys = append(keys, l.Key)
	}
	return keys
}

// Set assigns value to key. Every existing assignment of key is rewritten in
// place and true is returned. When the key is absent a new assignment line is
// appended and false is returned.
func (f *File) Set(key, value string) bool {
	replaced := false
	for i := range f.lines {
		l := &f.lines[i]
		if !l.assignment || l.Key != key {
			continue
		}
		l.Raw = f.format(key, value, strings.HasSuffix(l.Raw, "\r"))
		l.Value = value
		replaced = true
	}
	if replaced {
		return true
	}

	cr := f.crlf()
	if n := len(f.lines); cr && !f.trailingNewline && n > 0 && !strings.HasSuffix(f.lines[n-1].Raw, "\r") {
		f.lines[n-1].Raw += "\r"
	}
	f.lines = append(f.lines, Line{
		Raw:        f.format(key, value, cr && f.trailingNewline),
		Key:        key,
		Value:      value,
		assignment: true,
	})
	return false
}

// crlf reports whether the last terminated line ends with "\r\n".
func (f *File) crlf() bool {
	terminated := f.lines
	if !f.trailingNewline && len(terminated) > 0 {
		terminated = terminated[:len(terminated)-1]
	}
	if len(terminated) == 0 {
		return false
	}
	return strings.HasSuffix(terminated[len(terminated)-1].Raw, "\r")
}

func (f *File) format(key, value string, cr bool) string {
	s := key + kvDelimiter + value
	if cr {
		s += "\r"
	}
	return s
}

// Bytes serializes the descriptor.
func (f *File) Bytes() []byte {
	var sb strings.Builder
	for i, l := range f.lines {
		if i > 0 {
			sb.WriteString(lineDelimiter)
		}
		sb.WriteString(l.Raw)
	}
	if f.trailingNewline && len(f.lines) > 0 {
		sb.WriteString(lineDelimiter)
	}
	return []byte(sb.String())
}

// Save replaces the file at path with the serialized descriptor.
//
// Content is written to a temporary file in the same directory, synced and
// renamed over the target. An existing file keeps its permissions and a
// symlinked descriptor is updated at its target.
func (f *File) Save(path string) error {
	if path == "" {
		return fmt.Errorf("descriptor path cannot be empty")
	}

	target := path
	mode := defaults.DescriptorFileMode
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
		if fi, statErr := os.Stat(resolved); statErr == nil {
			mode = fi.Mode().Perm()
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary descriptor: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		if rmErr := os.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
			slog.Warn("failed to remove temporary descriptor", "path", tmpName, "error", rmErr)
		}
	}

	if _, err := tmp.Write(f.Bytes()); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to write descriptor: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("failed to sync descriptor: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close descriptor: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		cleanup()
		return fmt.Errorf("failed to set descriptor permissions: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace descriptor %q: %w", target, err)
	}

	f.exists = true
	slog.Debug("descriptor saved", "path", target, "lines", len(f.lines))
	return nil
}
