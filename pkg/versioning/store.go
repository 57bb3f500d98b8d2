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
	"log/slog"
	"strconv"

	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/defaults"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/descriptor"
	cnserrors "github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/errors"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/version"
)

// Store is the version descriptor bound to its path.
type Store struct {
	path string
	file *descriptor.File
}

// Load reads the descriptor at path. A missing file yields a Store that
// reports the documented defaults for every field.
func Load(path string) (*Store, error) {
	parser := descriptor.NewParser(
		descriptor.WithMaxSize(defaults.DescriptorMaxSize),
		descriptor.WithCommentPrefixes(defaults.DescriptorCommentPrefixes()...),
	)
	f, err := parser.Load(path)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInternal,
			"failed to load version descriptor", err, map[string]any{"path": path})
	}

	slog.Debug("version descriptor loaded",
		"path", path,
		"exists", f.Exists(),
		"keys", f.Keys())

	return &Store{path: path, file: f}, nil
}

// Path returns the descriptor path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the descriptor exists on disk.
func (s *Store) Exists() bool {
	return s.file.Exists()
}

// Field returns the value of key, or def when the key is absent.
func (s *Store) Field(key, def string) string {
	return s.file.Get(key, def)
}

// Has reports whether key is present in the descriptor.
func (s *Store) Has(key string) bool {
	_, ok := s.file.Lookup(key)
	return ok
}

// Minecraft returns the platform version tag.
func (s *Store) Minecraft() string {
	return s.Field(defaults.KeyMinecraft, defaults.Minecraft)
}

// Build returns the composite build version from the raw field values.
func (s *Store) Build() version.Build {
	return version.Build{
		Platform: s.Minecraft(),
		Major:    s.Field(defaults.KeyPluginMajor, defaults.PluginMajor),
		Minor:    s.Field(defaults.KeyPluginMinor, defaults.PluginMinor),
		Patch:    s.Field(defaults.KeyPluginPatch, defaults.PluginPatch),
	}
}

// BuildVersion returns "{minecraft}_{plugin_major}.{plugin_minor}.{plugin_patch}".
// It never fails and has no side effects.
func (s *Store) BuildVersion() string {
	return s.Build().String()
}

// Plugin parses the plugin counters into a Version.
func (s *Store) Plugin() (version.Version, error) {
	major, err := s.counter(defaults.KeyPluginMajor, defaults.PluginMajor)
	if err != nil {
		return version.Version{}, err
	}
	minor, err := s.counter(defaults.KeyPluginMinor, defaults.PluginMinor)
	if err != nil {
		return version.Version{}, err
	}
	patch, err := s.counter(defaults.KeyPluginPatch, defaults.PluginPatch)
	if err != nil {
		return version.Version{}, err
	}
	return version.NewVersion(major, minor, patch), nil
}

func (s *Store) counter(key, def string) (int, error) {
	raw := s.Field(key, def)
	n, err := version.ParseComponent(raw)
	if err != nil {
		return 0, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("descriptor field %s is not a non-negative integer", key), err,
			map[string]any{"path": s.path, "key": key, "value": raw})
	}
	return n, nil
}

// IncrementPatch increments plugin_patch.
func (s *Store) IncrementPatch() (*Change, error) {
	return s.bump(KindPatch, defaults.KeyPluginPatch, version.Version.BumpPatch)
}

// IncrementMinor increments plugin_minor and resets plugin_patch to 0.
func (s *Store) IncrementMinor() (*Change, error) {
	return s.bump(KindMinor, defaults.KeyPluginMinor, version.Version.BumpMinor)
}

// IncrementMajor increments plugin_major and resets plugin_minor and plugin_patch to 0.
func (s *Store) IncrementMajor() (*Change, error) {
	return s.bump(KindMajor, defaults.KeyPluginMajor, version.Version.BumpMajor)
}

func (s *Store) bump(kind Kind, key string, next func(version.Version) version.Version) (*Change, error) {
	n, err := s.counter(key, mustDefault(key))
	if err != nil {
		return nil, err
	}

	// Only the bumped counter is read. Higher counters are left untouched and
	// lower ones are reset whatever they hold.
	var old version.Version
	switch kind {
	case KindMajor:
		old.Major = n
	case KindMinor:
		old.Minor = n
	default:
		old.Patch = n
	}
	updated := next(old)
	if !updated.IsNewer(old) {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidState,
			fmt.Sprintf("plugin %s version cannot be incremented", kind),
			map[string]any{"path": s.path, "key": key, "value": n})
	}

	c := &Change{
		Kind:  kind,
		Field: key,
		Old:   s.Field(key, mustDefault(key)),
	}

	// Only the bumped counter and the ones it resets are written.
	writes := []struct {
		key   string
		value int
	}{
		{defaults.KeyPluginMajor, updated.Major},
		{defaults.KeyPluginMinor, updated.Minor},
		{defaults.KeyPluginPatch, updated.Patch},
	}
	for _, w := range writes {
		if rankOf(w.key) > kind.rank() {
			continue
		}
		if !s.file.Set(w.key, strconv.Itoa(w.value)) {
			c.Inserted = append(c.Inserted, w.key)
		}
		if w.key == key {
			c.New = strconv.Itoa(w.value)
		}
	}

	if err := s.save(); err != nil {
		return nil, err
	}
	c.Build = s.BuildVersion()

	slog.Info("plugin version incremented",
		"path", s.path,
		"field", key,
		"old", c.Old,
		"new", c.New,
		"build", c.Build,
		"inserted", c.Inserted)

	return c, nil
}

// SetMinecraftVersion sets the platform version tag. The value is not
// validated; an empty value falls back to the documented default.
func (s *Store) SetMinecraftVersion(value string) (*Change, error) {
	if value == "" {
		value = defaults.Minecraft
	}

	c := &Change{
		Kind:  KindMinecraft,
		Field: defaults.KeyMinecraft,
		Old:   s.Minecraft(),
		New:   value,
	}
	if !s.file.Set(defaults.KeyMinecraft, value) {
		c.Inserted = append(c.Inserted, defaults.KeyMinecraft)
	}

	if err := s.save(); err != nil {
		return nil, err
	}
	c.Build = s.BuildVersion()

	slog.Info("minecraft version set",
		"path", s.path,
		"old", c.Old,
		"new", c.New,
		"build", c.Build)

	return c, nil
}

func (s *Store) save() error {
	if err := s.file.Save(s.path); err != nil {
		return cnserrors.WrapWithContext(cnserrors.ErrCodeInternal,
			"failed to save version descriptor", err, map[string]any{"path": s.path})
	}
	return nil
}

func mustDefault(key string) string {
	v, _ := defaults.Default(key)
	return v
}
