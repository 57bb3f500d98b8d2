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

// Package manifest renders the plugin manifest (plugin.yml) that publishes the
// build version.
//
// The manifest fields are passed through untouched: the package neither
// validates nor interprets them. Two renderings are supported:
//
//   - YAML marshals the properties with the plugin.yml key names.
//   - Expand substitutes ${key} placeholders in an existing template, the way
//     resource filtering does in the plugin build.
//
// # Usage
//
//	p := manifest.New(store.BuildVersion(), manifest.WithAuthors("dlee13"))
//	out, err := p.YAML()
//
//	tmpl, _ := os.ReadFile("src/main/resources/plugin.yml")
//	out := p.Expand(tmpl)
package manifest
