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

// Package header provides the common envelope stamped on whispver reports.
//
// # Header Structure
//
//	type Header struct {
//	    Kind       Kind              `json:"kind" yaml:"kind"`             // Report type
//	    APIVersion string            `json:"apiVersion" yaml:"apiVersion"` // Report schema version
//	    Metadata   map[string]string `json:"metadata" yaml:"metadata"`     // timestamp, tool version, descriptor path
//	}
//
// # Usage
//
//	h := header.New(
//	    header.WithKind(header.KindVersionReport),
//	    header.WithAPIVersion(header.APIVersionV1),
//	    header.WithVersion(toolVersion),
//	    header.WithMetadata("path", "version.properties"),
//	)
//
// New always records a UTC "timestamp" metadata entry.
package header
