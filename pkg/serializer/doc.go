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

// Package serializer encodes whispver reports and decodes input documents.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable representation for build drivers
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE listing for terminals
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
//	w := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// Write to a file instead of stdout:
//
//	ser, err := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "report.json")
//	if err != nil {
//	    return err
//	}
//	defer ser.Close()
//
// # Usage - Decoding
//
//	props, err := serializer.FromFile[manifest.Properties]("manifest.yaml")
//
// The format of a file is detected from its extension; see FormatFromPath.
package serializer
