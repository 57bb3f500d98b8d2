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

package defaults

import (
	"os"
	"time"
)

// DescriptorFile is the descriptor read when no --file flag is given.
const DescriptorFile = "version.properties"

// DescriptorMaxSize bounds the version descriptor read by the store.
// The file holds a handful of lines; anything larger is not a descriptor.
const DescriptorMaxSize = 64 << 10

// DescriptorCommentPrefixes returns the prefixes of .properties comment lines.
func DescriptorCommentPrefixes() []string {
	return []string{"#", "!"}
}

// Descriptor keys.
const (
	KeyMinecraft   = "minecraft"
	KeyPluginMajor = "plugin_major"
	KeyPluginMinor = "plugin_minor"
	KeyPluginPatch = "plugin_patch"
)

// Field defaults applied when a key is absent from the descriptor.
const (
	// Minecraft is the platform version tag. It is opaque and never incremented.
	Minecraft = "1.21.8"

	PluginMajor = "1"
	PluginMinor = "3"
	PluginPatch = "0"
)

// Keys returns the recognized descriptor keys in their canonical file order.
func Keys() []string {
	return []string{KeyMinecraft, KeyPluginMajor, KeyPluginMinor, KeyPluginPatch}
}

// Default returns the documented default for a recognized key and false otherwise.
func Default(key string) (string, bool) {
	switch key {
	case KeyMinecraft:
		return Minecraft, true
	case KeyPluginMajor:
		return PluginMajor, true
	case KeyPluginMinor:
		return PluginMinor, true
	case KeyPluginPatch:
		return PluginPatch, true
	default:
		return "", false
	}
}

// File permissions.
const (
	// DescriptorFileMode is used when the descriptor does not exist yet.
	// An existing descriptor keeps its mode across rewrites.
	DescriptorFileMode os.FileMode = 0644

	// OutputFileMode is used for reports and rendered manifests.
	OutputFileMode os.FileMode = 0644
)

// Manifest values passed through to plugin.yml.
const (
	ManifestMain        = "xyz.holocons.mc.waypoints.WaypointsPlugin"
	ManifestName        = "WhispWaypoints"
	ManifestDescription = "WhispWaypoints - Banner waypoints for Minecraft servers"
	ManifestAPIVersion  = "1.21"
	ManifestWebsite     = "github.com/WolfTailVale/holocons-waypoints-whispcraft"
	ManifestPrefix      = "WhispWaypoints"
)

// ManifestAuthors returns the default plugin authors.
func ManifestAuthors() []string {
	return []string{"dlee13", "wolftailvale"}
}

// ManifestDepend returns the plugins the manifest declares as hard dependencies.
func ManifestDepend() []string {
	return []string{"ProtocolLib"}
}

// Query API server settings.
const (
	// ServerPort is the listen port when PORT is not set.
	ServerPort = 8080

	// ServerRateLimit is the sustained request rate per second.
	ServerRateLimit = 50

	// ServerRateLimitBurst is the rate limiter bucket size.
	ServerRateLimitBurst = 100

	// ServerReadTimeout is the maximum duration for reading a request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)
