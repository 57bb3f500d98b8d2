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

	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/defaults"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/version"
)

// Severity classifies a Finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is a single problem reported by Check.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Key      string   `json:"key,omitempty" yaml:"key,omitempty"`
	Message  string   `json:"message" yaml:"message"`
}

func (f Finding) String() string {
	if f.Key == "" {
		return fmt.Sprintf("%s: %s", f.Severity, f.Message)
	}
	return fmt.Sprintf("%s: %s: %s", f.Severity, f.Key, f.Message)
}

// Check inspects the descriptor without changing it.
//
// Warnings cover state that still works through defaults: a missing file,
// missing keys, duplicate assignments and an empty platform tag. Errors cover
// state that makes increments fail or yields an invalid plugin version.
func (s *Store) Check() []Finding {
	var findings []Finding

	if !s.Exists() {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("descriptor %s does not exist; defaults are used", s.path),
		})
	}

	counts := make(map[string]int)
	for _, l := range s.file.Lines() {
		if l.IsAssignment() {
			counts[l.Key]++
		}
	}

	for _, key := range defaults.Keys() {
		def, _ := defaults.Default(key)
		switch n := counts[key]; {
		case n == 0 && s.Exists():
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Key:      key,
				Message:  fmt.Sprintf("missing; default %q is used and the key is appended on the next change", def),
			})
		case n > 1:
			findings = append(findings, Finding{
				Severity: SeverityWarning,
				Key:      key,
				Message:  fmt.Sprintf("assigned %d times; the last value wins", n),
			})
		}
	}

	if s.Minecraft() == "" {
		findings = append(findings, Finding{
			Severity: SeverityWarning,
			Key:      defaults.KeyMinecraft,
			Message:  "platform version is empty",
		})
	}

	counterErr := false
	for _, key := range []string{defaults.KeyPluginMajor, defaults.KeyPluginMinor, defaults.KeyPluginPatch} {
		def, _ := defaults.Default(key)
		raw := s.Field(key, def)
		if _, err := version.ParseComponent(raw); err != nil {
			counterErr = true
			findings = append(findings, Finding{
				Severity: SeverityError,
				Key:      key,
				Message:  err.Error(),
			})
		}
	}

	if !counterErr {
		if _, err := s.Build().Version(); err != nil {
			findings = append(findings, Finding{
				Severity: SeverityError,
				Message:  fmt.Sprintf("plugin version %s is not valid semantic version: %v", s.Build().Plugin(), err),
			})
		}
	}

	return findings
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
