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

// Package defaults provides centralized configuration constants for whispver.
//
// This package defines the descriptor file name, the documented field defaults used
// when a key is missing from the descriptor, file permissions and the plugin manifest
// values passed through to plugin.yml. Centralizing these values keeps the CLI, the
// version store and the manifest renderer in agreement.
//
// # Categories
//
//   - Descriptor: file name, keys and their defaults
//   - Files: permissions for newly created files
//   - Manifest: descriptive fields of the generated plugin.yml
//
// # Usage
//
//	store, err := versioning.Load(defaults.DescriptorFile)
//	minor := store.Field(defaults.KeyPluginMinor, defaults.PluginMinor)
package defaults
