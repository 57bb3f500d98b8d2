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

package version

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
	ErrInvalidVersion    = errors.New("version is not major.minor.patch")
	ErrUnsupportedExtras = errors.New("version prerelease and build metadata are not supported")
	ErrComponentOverflow = errors.New("version component is too large")
)

// Version represents the plugin's semantic version with Major, Minor, and Patch components.
// Unlike general semantic versions it never carries prerelease or build metadata:
// the platform tag plays that role in the composite Build version.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`
}

// NewVersion creates a new Version with the specified major, minor, and patch values.
func NewVersion(major, minor, patch int) Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// String returns "Major.Minor.Patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseComponent parses a single counter as stored in the descriptor.
// Only plain decimal digits are accepted; signs, spaces and fractions are rejected.
func ParseComponent(s string) (int, error) {
	if s == "" {
		return 0, ErrEmptyVersion
	}
	if strings.HasPrefix(s, "-") {
		if _, err := strconv.Atoi(s); err == nil {
			return 0, fmt.Errorf("%w: %s", ErrNegativeComponent, s)
		}
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNonNumeric, s)
		}
	}
	num, err := strconv.Atoi(s)
	if err != nil {
		// all digits, so the only failure left is range
		return 0, fmt.Errorf("%w: %s", ErrComponentOverflow, s)
	}
	return num, nil
}

// ParseVersion parses a strict "Major.Minor.Patch" string with an optional "v" prefix.
// Leading zeros, missing components, prerelease identifiers and build metadata are rejected,
// so every accepted value is also a valid SemVer 2.0.0 version.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	sv, err := semver.StrictNewVersion(strings.TrimPrefix(s, "v"))
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q: %v", ErrInvalidVersion, s, err)
	}
	if sv.Prerelease() != "" || sv.Metadata() != "" {
		return Version{}, fmt.Errorf("%w: %q", ErrUnsupportedExtras, s)
	}

	parts := []uint64{sv.Major(), sv.Minor(), sv.Patch()}
	for _, p := range parts {
		if p > math.MaxInt {
			return Version{}, fmt.Errorf("%w: %d", ErrComponentOverflow, p)
		}
	}

	return NewVersion(int(parts[0]), int(parts[1]), int(parts[2])), nil
}

// BumpPatch returns v with Patch incremented.
func (v Version) BumpPatch() Version {
	return NewVersion(v.Major, v.Minor, v.Patch+1)
}

// BumpMinor returns v with Minor incremented and Patch reset to 0.
func (v Version) BumpMinor() Version {
	return NewVersion(v.Major, v.Minor+1, 0)
}

// BumpMajor returns v with Major incremented and Minor and Patch reset to 0.
func (v Version) BumpMajor() Version {
	return NewVersion(v.Major+1, 0, 0)
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return cmpInt(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpInt(v.Minor, other.Minor)
	default:
		return cmpInt(v.Patch, other.Patch)
	}
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// IsNewer returns true if v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// IsValid returns true if all components are non-negative.
func (v Version) IsValid() bool {
	return v.Major >= 0 && v.Minor >= 0 && v.Patch >= 0
}

// Build is the composite version published for the plugin artifact:
// the platform tag followed by the plugin version, "{platform}_{major}.{minor}.{patch}".
//
// Components are kept as the raw descriptor strings so that composing a build version
// never fails, even when a counter is not numeric.
type Build struct {
	Platform string `json:"platform" yaml:"platform"`
	Major    string `json:"major" yaml:"major"`
	Minor    string `json:"minor" yaml:"minor"`
	Patch    string `json:"patch" yaml:"patch"`
}

// String returns "{platform}_{major}.{minor}.{patch}".
func (b Build) String() string {
	return b.Platform + "_" + b.Plugin()
}

// Plugin returns the plugin part, "{major}.{minor}.{patch}".
func (b Build) Plugin() string {
	return b.Major + "." + b.Minor + "." + b.Patch
}

// Version parses the plugin part into a Version.
func (b Build) Version() (Version, error) {
	return ParseVersion(b.Plugin())
}
