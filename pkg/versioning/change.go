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
)

// Kind identifies a descriptor mutation.
type Kind string

const (
	KindPatch     Kind = "patch"
	KindMinor     Kind = "minor"
	KindMajor     Kind = "major"
	KindMinecraft Kind = "minecraft"
)

func (k Kind) String() string {
	return string(k)
}

// rank orders counters so that a bump rewrites its own counter and every
// lower-order one.
func (k Kind) rank() int {
	switch k {
	case KindMajor:
		return 3
	case KindMinor:
		return 2
	case KindPatch:
		return 1
	default:
		return 0
	}
}

func rankOf(key string) int {
	switch key {
	case defaults.KeyPluginMajor:
		return KindMajor.rank()
	case defaults.KeyPluginMinor:
		return KindMinor.rank()
	case defaults.KeyPluginPatch:
		return KindPatch.rank()
	default:
		return 0
	}
}

// Change reports the outcome of a mutation.
type Change struct {
	Kind  Kind   `json:"kind" yaml:"kind"`
	Field string `json:"field" yaml:"field"`
	Old   string `json:"old" yaml:"old"`
	New   string `json:"new" yaml:"new"`

	// Build is the composite build version after the change.
	Build string `json:"build" yaml:"build"`

	// Inserted lists keys that were absent and got appended to the descriptor.
	Inserted []string `json:"inserted,omitempty" yaml:"inserted,omitempty"`
}

// String renders the change the way the build prints it.
func (c *Change) String() string {
	switch c.Kind {
	case KindPatch:
		return fmt.Sprintf("Plugin patch version incremented: %s -> %s", c.Old, c.New)
	case KindMinor:
		return fmt.Sprintf("Plugin minor version incremented: %s -> %s (patch reset to 0)", c.Old, c.New)
	case KindMajor:
		return fmt.Sprintf("Plugin major version incremented: %s -> %s (minor/patch reset to 0)", c.Old, c.New)
	case KindMinecraft:
		return fmt.Sprintf("Minecraft version set to: %s", c.New)
	default:
		return fmt.Sprintf("%s changed: %s -> %s", c.Field, c.Old, c.New)
	}
}
