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

// Package api serves read-only descriptor queries over HTTP.
//
// Each request loads the descriptor from disk, so the responses follow
// whatever the build last wrote. Nothing is ever written through the API;
// mutations stay with the CLI.
//
//	GET /v1/version        VersionReport (fields with defaults, build version)
//	GET /v1/build-version  {"buildVersion": "1.21.8_1.3.0"}
//	GET /v1/check          CheckReport; "valid" is false when errors were found
//	GET /v1/manifest       plugin.yml rendered with the build version
//
// Health, readiness and metrics routes come from package server.
package api
