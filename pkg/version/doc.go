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

// Package version provides the plugin's semantic version and the composite
// build version published for the plugin artifact.
//
// # Overview
//
// A plugin version has three numeric components, Major.Minor.Patch. The build
// version prefixes it with the opaque platform (Minecraft) version tag:
//
//	1.21.8_1.3.0
//	^^^^^^ ^^^^^
//	  |      plugin version
//	  platform tag
//
// # Bump Rules
//
// Incrementing a higher-order component resets every lower-order component:
//
//   - BumpPatch: 1.3.0 -> 1.3.1
//   - BumpMinor: 1.3.7 -> 1.4.0
//   - BumpMajor: 1.3.7 -> 2.0.0
//
// # Usage
//
// Parse a version string:
//
//	v, err := version.ParseVersion("1.3.0")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.BumpMinor()) // Output: 1.4.0
//
// Compose a build version:
//
//	b := version.Build{Platform: "1.21.8", Major: "1", Minor: "3", Patch: "0"}
//	fmt.Println(b) // Output: 1.21.8_1.3.0
//
// # Error Handling
//
// Parsing returns sentinel errors usable with errors.Is:
//
//   - ErrEmptyVersion: Input string is empty
//   - ErrNonNumeric: Counter contains non-numeric characters
//   - ErrNegativeComponent: Counter is a negative number
//   - ErrInvalidVersion: String is not a strict SemVer Major.Minor.Patch
//   - ErrUnsupportedExtras: Prerelease or build metadata present
//   - ErrComponentOverflow: Counter does not fit in an int
package version
