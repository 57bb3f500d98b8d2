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

package versioning

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"pgregory.net/rapid"
)

type descriptorState struct {
	minecraft           string
	major, minor, patch int
}

func (d descriptorState) content(comment string) string {
	return fmt.Sprintf("%s\nminecraft=%s\nplugin_major=%d\nplugin_minor=%d\nplugin_patch=%d\n",
		comment, d.minecraft, d.major, d.minor, d.patch)
}

func (d descriptorState) build() string {
	return fmt.Sprintf("%s_%d.%d.%d", d.minecraft, d.major, d.minor, d.patch)
}

func stateGen() *rapid.Generator[descriptorState] {
	return rapid.Custom(func(t *rapid.T) descriptorState {
		return descriptorState{
			minecraft: rapid.StringMatching(`1\.[0-9]{1,2}(\.[0-9]{1,2})?`).Draw(t, "minecraft"),
			major:     rapid.IntRange(0, 1000).Draw(t, "major"),
			minor:     rapid.IntRange(0, 1000).Draw(t, "minor"),
			patch:     rapid.IntRange(0, 1000).Draw(t, "patch"),
		}
	})
}

// propertyEnv hands out fresh descriptor paths inside one temp dir.
type propertyEnv struct {
	dir string
	n   int
}

func (e *propertyEnv) write(t *rapid.T, content string) string {
	e.n++
	path := filepath.Join(e.dir, "v"+strconv.Itoa(e.n)+".properties")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}
	return path
}

func (e *propertyEnv) load(t *rapid.T, path string) *Store {
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	return s
}

func (e *propertyEnv) state(t *rapid.T, path string) descriptorState {
	s := e.load(t, path)
	v, err := s.Plugin()
	if err != nil {
		t.Fatalf("Plugin(): %v", err)
	}
	return descriptorState{minecraft: s.Minecraft(), major: v.Major, minor: v.Minor, patch: v.Patch}
}

func TestPropertyComposeBuildVersion(t *testing.T) {
	env := &propertyEnv{dir: t.TempDir()}
	rapid.Check(t, func(t *rapid.T) {
		d := stateGen().Draw(t, "descriptor")
		path := env.write(t, d.content("# compose"))

		if got := env.load(t, path).BuildVersion(); got != d.build() {
			t.Fatalf("BuildVersion() = %q, want %q", got, d.build())
		}
	})
}

func TestPropertyIncrementPatch(t *testing.T) {
	env := &propertyEnv{dir: t.TempDir()}
	rapid.Check(t, func(t *rapid.T) {
		d := stateGen().Draw(t, "descriptor")
		path := env.write(t, d.content("# patch"))

		if _, err := env.load(t, path).IncrementPatch(); err != nil {
			t.Fatalf("IncrementPatch: %v", err)
		}
		got := env.state(t, path)
		want := descriptorState{d.minecraft, d.major, d.minor, d.patch + 1}
		if got != want {
			t.Fatalf("after IncrementPatch got %+v, want %+v", got, want)
		}
	})
}

func TestPropertyIncrementMinor(t *testing.T) {
	env := &propertyEnv{dir: t.TempDir()}
	rapid.Check(t, func(t *rapid.T) {
		d := stateGen().Draw(t, "descriptor")
		path := env.write(t, d.content("# minor"))

		if _, err := env.load(t, path).IncrementMinor(); err != nil {
			t.Fatalf("IncrementMinor: %v", err)
		}
		got := env.state(t, path)
		want := descriptorState{d.minecraft, d.major, d.minor + 1, 0}
		if got != want {
			t.Fatalf("after IncrementMinor got %+v, want %+v", got, want)
		}
	})
}

func TestPropertyIncrementMajor(t *testing.T) {
	env := &propertyEnv{dir: t.TempDir()}
	rapid.Check(t, func(t *rapid.T) {
		d := stateGen().Draw(t, "descriptor")
		path := env.write(t, d.content("# major"))

		if _, err := env.load(t, path).IncrementMajor(); err != nil {
			t.Fatalf("IncrementMajor: %v", err)
		}
		got := env.state(t, path)
		want := descriptorState{d.minecraft, d.major + 1, 0, 0}
		if got != want {
			t.Fatalf("after IncrementMajor got %+v, want %+v", got, want)
		}
	})
}

func TestPropertySetMinecraftKeepsCounters(t *testing.T) {
	env := &propertyEnv{dir: t.TempDir()}
	rapid.Check(t, func(t *rapid.T) {
		d := stateGen().Draw(t, "descriptor")
		tag := rapid.StringMatching(`[0-9a-z.\-]{1,12}`).Draw(t, "tag")
		path := env.write(t, d.content("# set"))

		if _, err := env.load(t, path).SetMinecraftVersion(tag); err != nil {
			t.Fatalf("SetMinecraftVersion: %v", err)
		}
		got := env.state(t, path)
		want := descriptorState{tag, d.major, d.minor, d.patch}
		if got != want {
			t.Fatalf("after SetMinecraftVersion got %+v, want %+v", got, want)
		}
	})
}

func TestPropertyMutationsKeepLineCount(t *testing.T) {
	env := &propertyEnv{dir: t.TempDir()}
	rapid.Check(t, func(t *rapid.T) {
		d := stateGen().Draw(t, "descriptor")
		op := rapid.SampledFrom([]string{"patch", "minor", "major", "minecraft"}).Draw(t, "op")
		content := d.content("# lines")
		path := env.write(t, content)

		s := env.load(t, path)
		var err error
		switch op {
		case "patch":
			_, err = s.IncrementPatch()
		case "minor":
			_, err = s.IncrementMinor()
		case "major":
			_, err = s.IncrementMajor()
		default:
			_, err = s.SetMinecraftVersion("1.99")
		}
		if err != nil {
			t.Fatalf("%s: %v", op, err)
		}

		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if len(b) == 0 || b[0] != '#' {
			t.Fatalf("leading comment lost: %q", b)
		}
		if s.file.Len() != 5 {
			t.Fatalf("line count changed to %d", s.file.Len())
		}
	})
}
