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

// Package descriptor reads and writes key=value descriptor files while
// preserving everything it does not understand.
//
// A descriptor is an ordered list of lines. A line is an assignment when,
// after leading whitespace, it is not empty, does not start with '#' or '!',
// and contains the key/value delimiter with a non-empty key. Every other line
// (comments, blanks, free text) is kept verbatim at its position.
//
// # Usage
//
//	f, err := descriptor.Load("version.properties")
//	if err != nil {
//	    return err
//	}
//	patch := f.Get("plugin_patch", "0")
//	f.Set("plugin_patch", "1")
//	if err := f.Save("version.properties"); err != nil {
//	    return err
//	}
//
// # Guarantees
//
//   - Bytes reproduces the parsed input byte for byte until a Set changes it.
//   - Set rewrites matching lines in place and appends only when the key is absent.
//   - Save replaces the file through a temporary file and rename, so readers
//     see either the previous or the new content.
//   - A missing file loads as an empty descriptor; it is not an error.
package descriptor
