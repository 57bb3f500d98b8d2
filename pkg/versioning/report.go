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
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/defaults"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/header"
)

// Report is a read-only view of the descriptor for display.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	Path         string `json:"path" yaml:"path"`
	Exists       bool   `json:"exists" yaml:"exists"`
	Minecraft    string `json:"minecraft" yaml:"minecraft"`
	PluginMajor  string `json:"pluginMajor" yaml:"pluginMajor"`
	PluginMinor  string `json:"pluginMinor" yaml:"pluginMinor"`
	PluginPatch  string `json:"pluginPatch" yaml:"pluginPatch"`
	BuildVersion string `json:"buildVersion" yaml:"buildVersion"`

	// Defaulted lists recognized keys absent from the descriptor.
	Defaulted []string `json:"defaulted,omitempty" yaml:"defaulted,omitempty"`
}

// Report builds a Report stamped with the tool version.
func (s *Store) Report(toolVersion string) *Report {
	b := s.Build()
	r := &Report{
		Header: *header.New(
			header.WithKind(header.KindVersionReport),
			header.WithAPIVersion(header.APIVersionV1),
			header.WithVersion(toolVersion),
			header.WithMetadata("path", s.path),
		),
		Path:         s.path,
		Exists:       s.Exists(),
		Minecraft:    b.Platform,
		PluginMajor:  b.Major,
		PluginMinor:  b.Minor,
		PluginPatch:  b.Patch,
		BuildVersion: b.String(),
	}

	for _, key := range defaults.Keys() {
		if !s.Has(key) {
			r.Defaulted = append(r.Defaulted, key)
		}
	}

	return r
}

// CheckReport wraps Check findings for display.
type CheckReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Path     string    `json:"path" yaml:"path"`
	Valid    bool      `json:"valid" yaml:"valid"`
	Findings []Finding `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// CheckReport runs Check and wraps the result.
func (s *Store) CheckReport(toolVersion string) *CheckReport {
	findings := s.Check()
	r := &CheckReport{
		Header: *header.New(
			header.WithKind(header.KindCheckReport),
			header.WithAPIVersion(header.APIVersionV1),
			header.WithVersion(toolVersion),
		),
		Path:     s.path,
		Valid:    !HasErrors(findings),
		Findings: findings,
	}
	return r
}
