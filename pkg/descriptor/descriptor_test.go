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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDescriptor = "minecraft=1.21.8\nplugin_major=1\nplugin_minor=3\nplugin_patch=0"

func TestNewParser(t *testing.T) {
	tests := []struct {
		name             string
		opts             []Option
		expectedMaxSize  int
		expectedComments []string
	}{
		{
			name:             "default options",
			expectedMaxSize:  1 << 20,
			expectedComments: []string{"#", "!"},
		},
		{
			name:             "all options",
			opts:             []Option{WithMaxSize(64), WithCommentPrefixes("//")},
			expectedMaxSize:  64,
			expectedComments: []string{"//"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.opts...)
			assert.Equal(t, tt.expectedMaxSize, p.maxSize)
			assert.Equal(t, tt.expectedComments, p.commentPrefixes)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
		opaque   int
	}{
		{
			name:  "standard descriptor",
			input: sampleDescriptor,
			expected: map[string]string{
				"minecraft":    "1.21.8",
				"plugin_major": "1",
				"plugin_minor": "3",
				"plugin_patch": "0",
			},
		},
		{
			name:     "comments and blanks",
			input:    "# version file\n\n! legacy comment\nminecraft=1.21.8\n",
			expected: map[string]string{"minecraft": "1.21.8"},
			opaque:   3,
		},
		{
			name:     "whitespace around key and value",
			input:    "  plugin_patch = 4  \n",
			expected: map[string]string{"plugin_patch": "4"},
		},
		{
			name:     "value containing delimiter",
			input:    "url=https://example.com/?a=b",
			expected: map[string]string{"url": "https://example.com/?a=b"},
		},
		{
			name:     "line without delimiter is opaque",
			input:    "just text\nplugin_minor=3",
			expected: map[string]string{"plugin_minor": "3"},
			opaque:   1,
		},
		{
			name:     "empty key is opaque",
			input:    "=orphan",
			expected: map[string]string{},
			opaque:   1,
		},
		{
			name:     "crlf line endings",
			input:    "minecraft=1.21.8\r\nplugin_patch=2\r\n",
			expected: map[string]string{"minecraft": "1.21.8", "plugin_patch": "2"},
		},
		{
			name:     "empty value",
			input:    "minecraft=",
			expected: map[string]string{"minecraft": ""},
		},
		{
			name:     "empty input",
			input:    "",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.input))
			require.NoError(t, err)

			opaque := 0
			got := make(map[string]string)
			for _, l := range f.Lines() {
				if !l.IsAssignment() {
					opaque++
					continue
				}
				got[l.Key] = l.Value
			}
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.opaque, opaque)
			assert.Equal(t, tt.input, string(f.Bytes()), "unmodified descriptor must round trip")
		})
	}
}

func TestParseLimits(t *testing.T) {
	_, err := NewParser(WithMaxSize(8)).Parse([]byte(sampleDescriptor))
	assert.Error(t, err)

	_, err = NewParser(WithMaxSize(len(sampleDescriptor))).Parse([]byte(sampleDescriptor))
	assert.NoError(t, err)
}

func TestParseNonUTF8(t *testing.T) {
	input := "# caf\xe9\nminecraft=1.21.8\nplugin_major=1\nplugin_minor=3\nplugin_patch=0\n"

	f, err := Parse([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, "1.21.8", f.Get("minecraft", ""))
	assert.Equal(t, input, string(f.Bytes()))

	f.Set("plugin_patch", "1")
	assert.Equal(t, "# caf\xe9\nminecraft=1.21.8\nplugin_major=1\nplugin_minor=3\nplugin_patch=1\n", string(f.Bytes()))
}

func TestParseCommentPrefixes(t *testing.T) {
	f, err := NewParser(WithCommentPrefixes("//")).Parse([]byte("// minecraft=1.20\n#plugin_patch=4\n"))
	require.NoError(t, err)

	_, ok := f.Lookup("minecraft")
	assert.False(t, ok, "custom prefix marks a comment")
	v, ok := f.Lookup("#plugin_patch")
	assert.True(t, ok, "default prefixes no longer apply")
	assert.Equal(t, "4", v)
}

func TestLookupAndGet(t *testing.T) {
	f, err := Parse([]byte("a=1\nb=2\na=3"))
	require.NoError(t, err)

	v, ok := f.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v, "last assignment wins")

	_, ok = f.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, "2", f.Get("b", "x"))
	assert.Equal(t, "x", f.Get("missing", "x"))
	assert.Equal(t, []string{"a", "b"}, f.Keys())
}

func TestSetInPlace(t *testing.T) {
	input := "# header\nminecraft=1.21.8\nplugin_major=1\n\nplugin_minor=3\nplugin_patch=0\n# footer"
	f, err := Parse([]byte(input))
	require.NoError(t, err)

	replaced := f.Set("plugin_minor", "4")
	assert.True(t, replaced)
	f.Set("plugin_patch", "0")

	want := "# header\nminecraft=1.21.8\nplugin_major=1\n\nplugin_minor=4\nplugin_patch=0\n# footer"
	assert.Equal(t, want, string(f.Bytes()))
	assert.Equal(t, 7, f.Len())
}

func TestSetNormalizesSpacing(t *testing.T) {
	f, err := Parse([]byte("plugin_patch = 4\n"))
	require.NoError(t, err)

	f.Set("plugin_patch", "5")
	assert.Equal(t, "plugin_patch=5\n", string(f.Bytes()))
}

func TestSetKeepsCRLF(t *testing.T) {
	f, err := Parse([]byte("minecraft=1.21.8\r\nplugin_patch=2\r\n"))
	require.NoError(t, err)

	f.Set("plugin_patch", "3")
	assert.Equal(t, "minecraft=1.21.8\r\nplugin_patch=3\r\n", string(f.Bytes()))
}

func TestSetDuplicateKeys(t *testing.T) {
	f, err := Parse([]byte("plugin_patch=1\nother=x\nplugin_patch=2"))
	require.NoError(t, err)

	f.Set("plugin_patch", "9")
	assert.Equal(t, "plugin_patch=9\nother=x\nplugin_patch=9", string(f.Bytes()))
}

func TestSetAppendsMissingKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no trailing newline", "minecraft=1.21.8", "minecraft=1.21.8\nplugin_patch=1"},
		{"trailing newline", "minecraft=1.21.8\n", "minecraft=1.21.8\nplugin_patch=1\n"},
		{"empty", "", "plugin_patch=1"},
		{"crlf", "minecraft=1.21.8\r\nplugin_minor=3\r\n", "minecraft=1.21.8\r\nplugin_minor=3\r\nplugin_patch=1\r\n"},
		{"crlf no trailing newline", "minecraft=1.21.8\r\nplugin_minor=3", "minecraft=1.21.8\r\nplugin_minor=3\r\nplugin_patch=1"},
		{"crlf followed by comment", "minecraft=1.21.8\r\n# end\r\n", "minecraft=1.21.8\r\n# end\r\nplugin_patch=1\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.input))
			require.NoError(t, err)

			replaced := f.Set("plugin_patch", "1")
			assert.False(t, replaced)
			assert.Equal(t, tt.want, string(f.Bytes()))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.properties")

	f, err := Load(path)
	require.NoError(t, err)
	assert.False(t, f.Exists())
	assert.Zero(t, f.Len())
	assert.Equal(t, "1.21.8", f.Get("minecraft", "1.21.8"))

	f.Set("minecraft", "1.21.9")
	require.NoError(t, f.Save(path))
	assert.True(t, f.Exists())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "minecraft=1.21.9\n", string(b))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	dir := t.TempDir()
	_, err = Load(dir)
	assert.Error(t, err, "a directory is not a descriptor")
}

func TestLoadIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.properties")
	require.NoError(t, os.WriteFile(path, []byte("# c\n"+sampleDescriptor), 0644))

	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, first.Exists())
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "version.properties")
	input := "# WhispWaypoints version\n" + sampleDescriptor + "\n"
	require.NoError(t, os.WriteFile(path, []byte(input), 0600))

	f, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, f.Save(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, input, string(b))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), fi.Mode().Perm(), "existing mode is kept")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestSaveThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.properties")
	link := filepath.Join(dir, "version.properties")
	require.NoError(t, os.WriteFile(target, []byte(sampleDescriptor), 0644))
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	f, err := Load(link)
	require.NoError(t, err)
	f.Set("plugin_patch", "1")
	require.NoError(t, f.Save(link))

	fi, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, fi.Mode()&os.ModeSymlink, "link is preserved")

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(b), "plugin_patch=1"))
}

func TestSaveErrors(t *testing.T) {
	f, err := Parse([]byte(sampleDescriptor))
	require.NoError(t, err)

	assert.Error(t, f.Save(""))
	assert.Error(t, f.Save(filepath.Join(t.TempDir(), "missing", "version.properties")))
}
