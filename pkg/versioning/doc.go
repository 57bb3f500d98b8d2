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

// Package versioning owns the plugin's version descriptor.
//
// # Overview
//
// A Store is loaded from a descriptor path, answers reads with documented
// defaults for absent keys, and applies at most one mutation per load:
//
//	store, err := versioning.Load("version.properties")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(store.BuildVersion()) // 1.21.8_1.3.0
//
//	change, err := store.IncrementMinor()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(change) // Plugin minor version incremented: 3 -> 4 (patch reset to 0)
//
// # Mutations
//
//   - IncrementPatch: patch += 1
//   - IncrementMinor: minor += 1, patch = 0
//   - IncrementMajor: major += 1, minor = 0, patch = 0
//   - SetMinecraftVersion: minecraft = value
//
// Every mutation rewrites the changed lines in place and saves the whole
// descriptor before returning. A key missing from the descriptor is appended
// so that the reported and the persisted state always agree. A counter that
// is not a non-negative integer aborts the mutation before anything is written.
//
// # Concurrency
//
// A Store is meant for one load-mutate-save cycle in a single process. Two
// processes mutating the same descriptor concurrently race on the file.
package versioning
