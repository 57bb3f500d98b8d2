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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	kvDelimiter    = "="
	defaultMaxSize = 1 << 20 // 1MB
	lineDelimiter  = "\n"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser parses descriptor files with customizable settings.
type Parser struct {
	maxSize         int
	commentPrefixes []string
}

// WithMaxSize sets the maximum size (in bytes) of a descriptor.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithCommentPrefixes sets the prefixes that mark comment lines.
// Default is "#" and "!".
func WithCommentPrefixes(prefixes ...string) Option {
	return func(p *Parser) {
		p.commentPrefixes = prefixes
	}
}

// NewParser creates a new descriptor parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize:         defaultMaxSize,
		commentPrefixes: []string{"#", "!"},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse parses descriptor content.
// An error is returned only if data exceeds the maximum size. Content is not
// decoded; any byte sequence outside assignments is kept as is.
func (p *Parser) Parse(data []byte) (*File, error) {
	if len(data) > p.maxSize {
		return nil, fmt.Errorf("descriptor exceeds maximum size of %d bytes", p.maxSize)
	}

	f := &File{}
	if len(data) == 0 {
		return f, nil
	}

	content := string(data)
	if strings.HasSuffix(content, lineDelimiter) {
		f.trailingNewline = true
		content = strings.TrimSuffix(content, lineDelimiter)
	}

	for _, raw := range strings.Split(content, lineDelimiter) {
		f.lines = append(f.lines, p.parseLine(raw))
	}

	return f, nil
}

func (p *Parser) parseLine(raw string) Line {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Line{Raw: raw}
	}
	for _, prefix := range p.commentPrefixes {
		if strings.HasPrefix(text, prefix) {
			return Line{Raw: raw}
		}
	}

	key, value, found := strings.Cut(text, kvDelimiter)
	key = strings.TrimSpace(key)
	if !found || key == "" {
		slog.Debug("keeping descriptor line without assignment", "line", raw)
		return Line{Raw: raw}
	}

	return Line{
		Raw:        raw,
		Key:        key,
		Value:      strings.TrimSpace(value),
		assignment: true,
	}
}

// Load reads and parses the descriptor at path.
// A missing file is not an error: an empty File is returned and Exists reports false.
func (p *Parser) Load(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("descriptor path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("descriptor not found, using defaults", "path", path)
			return &File{trailingNewline: true}, nil
		}
		return nil, fmt.Errorf("failed to read descriptor %q: %w", path, err)
	}

	f, err := p.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor %q: %w", path, err)
	}
	f.exists = true

	return f, nil
}

// Parse parses descriptor content with the default parser.
func Parse(data []byte) (*File, error) {
	return NewParser().Parse(data)
}

// Load reads the descriptor at path with the default parser.
func Load(path string) (*File, error) {
	return NewParser().Load(path)
}
