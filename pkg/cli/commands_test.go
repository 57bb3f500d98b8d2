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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	cnserrors "github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/errors"
)

const sampleDescriptor = "# WhispWaypoints\nminecraft=1.21.8\nplugin_major=1\nplugin_minor=3\nplugin_patch=0\n"

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "version.properties")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

// run executes the root command against the descriptor at path and returns stdout.
func run(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	argv := append([]string{name, "--file", path, "--log-level", "error"}, args...)
	err := newRootCmd(&out).Run(context.Background(), argv)
	return out.String(), err
}

func TestBuildVersionCommand(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "full descriptor", content: sampleDescriptor, want: "1.21.8_1.3.0\n"},
		{name: "missing keys use defaults", content: "minecraft=1.20.4\n", want: "1.20.4_1.3.0\n"},
		{name: "raw values are not parsed", content: "plugin_patch=abc\n", want: "1.21.8_1.3.abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, writeDescriptor(t, tt.content), "build-version")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildVersionCommandMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.properties")

	got, err := run(t, path, "build-version")
	require.NoError(t, err)
	assert.Equal(t, "1.21.8_1.3.0\n", got)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "query must not create the descriptor")
}

func TestIncrementCommands(t *testing.T) {
	tests := []struct {
		name    string
		command string
		output  string
		want    string
	}{
		{
			name:    "patch",
			command: "increment-patch",
			output:  "Plugin patch version incremented: 0 -> 1\n",
			want:    "# WhispWaypoints\nminecraft=1.21.8\nplugin_major=1\nplugin_minor=3\nplugin_patch=1\n",
		},
		{
			name:    "minor",
			command: "increment-minor",
			output:  "Plugin minor version incremented: 3 -> 4 (patch reset to 0)\n",
			want:    "# WhispWaypoints\nminecraft=1.21.8\nplugin_major=1\nplugin_minor=4\nplugin_patch=0\n",
		},
		{
			name:    "major",
			command: "increment-major",
			output:  "Plugin major version incremented: 1 -> 2 (minor/patch reset to 0)\n",
			want:    "# WhispWaypoints\nminecraft=1.21.8\nplugin_major=2\nplugin_minor=0\nplugin_patch=0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDescriptor(t, sampleDescriptor)

			got, err := run(t, path, tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.output, got)
			assert.Equal(t, tt.want, readFile(t, path))
		})
	}
}

func TestIncrementCommandUnparsableCounter(t *testing.T) {
	content := "minecraft=1.21.8\nplugin_major=1\nplugin_minor=3\nplugin_patch=abc\n"
	path := writeDescriptor(t, content)

	_, err := run(t, path, "increment-patch")
	require.Error(t, err)
	assert.Equal(t, cnserrors.ErrCodeInvalidRequest, cnserrors.CodeOf(err))
	assert.Equal(t, content, readFile(t, path))
}

func TestIncrementMinorCommandResetsBrokenPatch(t *testing.T) {
	path := writeDescriptor(t, "minecraft=1.21.8\nplugin_major=1\nplugin_minor=3\nplugin_patch=abc\n")

	got, err := run(t, path, "increment-minor")
	require.NoError(t, err)
	assert.Equal(t, "Plugin minor version incremented: 3 -> 4 (patch reset to 0)\n", got)
	assert.Equal(t, "minecraft=1.21.8\nplugin_major=1\nplugin_minor=4\nplugin_patch=0\n", readFile(t, path))
}

func TestSetMinecraftCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "positional argument", args: []string{"1.21.9"}, want: "1.21.9"},
		{name: "flag", args: []string{"--mc-version", "1.22"}, want: "1.22"},
		{name: "argument wins over flag", args: []string{"--mc-version", "1.22", "1.21.9"}, want: "1.21.9"},
		{name: "default", args: nil, want: "1.21.8"},
		{name: "not validated", args: []string{"snapshot-25w02a"}, want: "snapshot-25w02a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDescriptor(t, strings.Replace(sampleDescriptor, "1.21.8", "1.20.1", 1))

			got, err := run(t, path, append([]string{"set-minecraft"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, "Minecraft version set to: "+tt.want+"\n", got)
			assert.Contains(t, readFile(t, path), "\nminecraft="+tt.want+"\n")
		})
	}
}

func TestSetMinecraftCommandTooManyArgs(t *testing.T) {
	path := writeDescriptor(t, sampleDescriptor)

	_, err := run(t, path, "set-minecraft", "1.21.9", "1.22")
	require.Error(t, err)
	assert.Equal(t, sampleDescriptor, readFile(t, path))
}

func TestShowCommand(t *testing.T) {
	path := writeDescriptor(t, "minecraft=1.21.4\nplugin_major=2\n")

	t.Run("json", func(t *testing.T) {
		got, err := run(t, path, "show", "--format", "json")
		require.NoError(t, err)

		var report map[string]any
		require.NoError(t, json.Unmarshal([]byte(got), &report))
		assert.Equal(t, "VersionReport", report["kind"])
		assert.Equal(t, "1.21.4_2.3.0", report["buildVersion"])
		assert.Equal(t, true, report["exists"])
		assert.ElementsMatch(t, []any{"plugin_minor", "plugin_patch"}, report["defaulted"])
	})

	t.Run("yaml to file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "report.yaml")
		got, err := run(t, path, "show", "-t", "yaml", "-o", out)
		require.NoError(t, err)
		assert.Empty(t, got)

		var report map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(readFile(t, out)), &report))
		assert.Equal(t, "1.21.4", report["minecraft"])
		assert.Equal(t, "2", report["pluginMajor"])
	})

	t.Run("table", func(t *testing.T) {
		got, err := run(t, path, "show", "--format", "table")
		require.NoError(t, err)
		assert.Contains(t, got, "buildVersion")
		assert.Contains(t, got, "1.21.4_2.3.0")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := run(t, path, "show", "--format", "xml")
		assert.Error(t, err)
	})
}

func TestCheckCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeDescriptor(t, sampleDescriptor)
		got, err := run(t, path, "check")
		require.NoError(t, err)
		assert.Equal(t, path+": ok\n", got)
	})

	t.Run("warnings only", func(t *testing.T) {
		path := writeDescriptor(t, "minecraft=1.21.8\n")
		got, err := run(t, path, "check")
		require.NoError(t, err)
		assert.Contains(t, got, "warning: plugin_major")
		assert.Contains(t, got, ": ok\n")
	})

	t.Run("errors fail", func(t *testing.T) {
		content := "minecraft=1.21.8\nplugin_major=x\nplugin_minor=3\nplugin_patch=0\n"
		path := writeDescriptor(t, content)
		got, err := run(t, path, "check")
		require.Error(t, err)
		assert.Equal(t, cnserrors.ErrCodeInvalidState, cnserrors.CodeOf(err))
		assert.Contains(t, got, "error: plugin_major")
		assert.Equal(t, content, readFile(t, path))
	})

	t.Run("json report", func(t *testing.T) {
		path := writeDescriptor(t, sampleDescriptor)
		got, err := run(t, path, "check", "-t", "json")
		require.NoError(t, err)

		var report map[string]any
		require.NoError(t, json.Unmarshal([]byte(got), &report))
		assert.Equal(t, "CheckReport", report["kind"])
		assert.Equal(t, true, report["valid"])
	})
}

func TestManifestCommand(t *testing.T) {
	path := writeDescriptor(t, sampleDescriptor)

	t.Run("built-in properties", func(t *testing.T) {
		got, err := run(t, path, "manifest")
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(got), &m))
		assert.Equal(t, "1.21.8_1.3.0", m["version"])
		assert.Equal(t, "WhispWaypoints", m["name"])
		assert.Equal(t, "1.21", m["api-version"])
	})

	t.Run("template", func(t *testing.T) {
		dir := t.TempDir()
		tmpl := filepath.Join(dir, "plugin.yml")
		require.NoError(t, os.WriteFile(tmpl, []byte("name: ${name}\nversion: ${version}\nkeep: ${unknown}\n"), 0o644))
		out := filepath.Join(dir, "out", "plugin.yml")
		require.NoError(t, os.MkdirAll(filepath.Dir(out), 0o755))

		got, err := run(t, path, "manifest", "--template", tmpl, "-o", out)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.Equal(t, "name: WhispWaypoints\nversion: 1.21.8_1.3.0\nkeep: ${unknown}\n", readFile(t, out))
	})

	t.Run("properties override", func(t *testing.T) {
		props := filepath.Join(t.TempDir(), "props.yaml")
		require.NoError(t, os.WriteFile(props, []byte("name: Renamed\nversion: 9.9.9\n"), 0o644))

		got, err := run(t, path, "manifest", "--properties", props)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(got), &m))
		assert.Equal(t, "Renamed", m["name"])
		assert.Equal(t, "1.21.8_1.3.0", m["version"])
	})

	t.Run("flags override properties file", func(t *testing.T) {
		props := filepath.Join(t.TempDir(), "props.yaml")
		require.NoError(t, os.WriteFile(props, []byte("name: FromFile\ndescription: from file\n"), 0o644))

		got, err := run(t, path, "manifest", "--properties", props,
			"--name", "FromFlag", "--author", "alice", "--author", "bob", "--depend", "ProtocolLib", "--depend", "Vault")
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(got), &m))
		assert.Equal(t, "FromFlag", m["name"])
		assert.Equal(t, "from file", m["description"])
		assert.Equal(t, []any{"alice", "bob"}, m["authors"])
		assert.Equal(t, []any{"ProtocolLib", "Vault"}, m["depend"])
	})

	t.Run("description flag in template", func(t *testing.T) {
		tmpl := filepath.Join(t.TempDir(), "plugin.yml")
		require.NoError(t, os.WriteFile(tmpl, []byte("description: $description\n"), 0o644))

		got, err := run(t, path, "manifest", "--template", tmpl, "--description", "Waypoints")
		require.NoError(t, err)
		assert.Equal(t, "description: Waypoints\n", got)
	})

	t.Run("properties from stdin", func(t *testing.T) {
		var out bytes.Buffer
		root := newRootCmd(&out)
		root.Reader = strings.NewReader(`{"name": "Piped", "website": "example.org"}`)

		err := root.Run(context.Background(), []string{name, "--file", path, "--log-level", "error", "manifest", "--properties", "-"})
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &m))
		assert.Equal(t, "Piped", m["name"])
		assert.Equal(t, "example.org", m["website"])
		assert.Equal(t, "1.21.8_1.3.0", m["version"])
	})

	t.Run("missing template", func(t *testing.T) {
		_, err := run(t, path, "manifest", "--template", filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})
}

func TestDescriptorFromEnv(t *testing.T) {
	path := writeDescriptor(t, "minecraft=1.19.2\n")
	t.Setenv(EnvDescriptorFile, path)

	var out bytes.Buffer
	err := newRootCmd(&out).Run(context.Background(), []string{name, "--log-level", "error", "build-version"})
	require.NoError(t, err)
	assert.Equal(t, "1.19.2_1.3.0\n", out.String())
}

func TestServeCommandValidation(t *testing.T) {
	path := writeDescriptor(t, sampleDescriptor)

	tests := []struct {
		name string
		args []string
	}{
		{name: "negative port", args: []string{"serve", "--port=-1"}},
		{name: "port out of range", args: []string{"serve", "--port", "70000"}},
		{name: "zero rate limit", args: []string{"serve", "--port", "0", "--rate-limit", "0"}},
		{name: "zero burst", args: []string{"serve", "--port", "0", "--rate-burst", "0"}},
		{name: "zero shutdown timeout", args: []string{"serve", "--port", "0", "--shutdown-timeout", "0s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, path, tt.args...)
			assert.Error(t, err)
		})
	}
}
