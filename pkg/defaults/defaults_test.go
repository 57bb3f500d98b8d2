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
	"strconv"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{KeyMinecraft, "1.21.8"},
		{KeyPluginMajor, "1"},
		{KeyPluginMinor, "3"},
		{KeyPluginPatch, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := Default(tt.key)
			if !ok {
				t.Fatalf("Default(%q) reported unknown key", tt.key)
			}
			if got != tt.want {
				t.Errorf("Default(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestDefaultUnknownKey(t *testing.T) {
	if v, ok := Default("plugin_build"); ok {
		t.Errorf("Default(plugin_build) = %q, want unknown", v)
	}
}

func TestKeysHaveDefaults(t *testing.T) {
	keys := Keys()
	if len(keys) != 4 {
		t.Fatalf("expected 4 keys, got %d", len(keys))
	}
	for _, k := range keys {
		if _, ok := Default(k); !ok {
			t.Errorf("key %q has no default", k)
		}
	}
}

func TestCounterDefaultsAreNumeric(t *testing.T) {
	for _, v := range []string{PluginMajor, PluginMinor, PluginPatch} {
		n, err := strconv.Atoi(v)
		if err != nil {
			t.Errorf("counter default %q is not numeric: %v", v, err)
			continue
		}
		if n < 0 {
			t.Errorf("counter default %q is negative", v)
		}
	}
}

func TestServerTimeouts(t *testing.T) {
	if ServerReadHeaderTimeout >= ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should be less than ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}
	if ServerReadTimeout >= ServerWriteTimeout {
		t.Errorf("ServerReadTimeout (%v) should be less than ServerWriteTimeout (%v)",
			ServerReadTimeout, ServerWriteTimeout)
	}
	if ServerWriteTimeout > ServerShutdownTimeout {
		t.Errorf("ServerWriteTimeout (%v) should not exceed ServerShutdownTimeout (%v)",
			ServerWriteTimeout, ServerShutdownTimeout)
	}
	if ServerRateLimitBurst < ServerRateLimit {
		t.Errorf("ServerRateLimitBurst (%d) should be at least ServerRateLimit (%d)",
			ServerRateLimitBurst, ServerRateLimit)
	}
}
