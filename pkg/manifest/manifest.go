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

package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/defaults"
)

// Properties are the values a plugin manifest is built from.
type Properties struct {
	Main        string   `json:"main,omitempty" yaml:"main,omitempty"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	APIVersion  string   `json:"apiVersion,omitempty" yaml:"api-version,omitempty"`
	Authors     []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Website     string   `json:"website,omitempty" yaml:"website,omitempty"`
	Depend      []string `json:"depend,omitempty" yaml:"depend,omitempty"`
	Prefix      string   `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

// Option configures Properties.
type Option func(*Properties)

// WithName sets the plugin name.
func WithName(name string) Option {
	return func(p *Properties) {
		p.Name = name
	}
}

// WithDescription sets the plugin description.
func WithDescription(description string) Option {
	return func(p *Properties) {
		p.Description = description
	}
}

// WithAuthors replaces the author list.
func WithAuthors(authors ...string) Option {
	return func(p *Properties) {
		p.Authors = authors
	}
}

// WithDepend replaces the hard dependency list.
func WithDepend(depend ...string) Option {
	return func(p *Properties) {
		p.Depend = depend
	}
}

// WithOverrides copies every non-empty field of o, except Version.
func WithOverrides(o *Properties) Option {
	return func(p *Properties) {
		if o == nil {
			return
		}
		setIfNotEmpty(&p.Main, o.Main)
		setIfNotEmpty(&p.Name, o.Name)
		setIfNotEmpty(&p.Description, o.Description)
		setIfNotEmpty(&p.APIVersion, o.APIVersion)
		setIfNotEmpty(&p.Website, o.Website)
		setIfNotEmpty(&p.Prefix, o.Prefix)
		if len(o.Authors) > 0 {
			p.Authors = o.Authors
		}
		if len(o.Depend) > 0 {
			p.Depend = o.Depend
		}
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// New creates Properties for buildVersion, starting from the project defaults.
func New(buildVersion string, opts ...Option) *Properties {
	p := &Properties{
		Main:        defaults.ManifestMain,
		Name:        defaults.ManifestName,
		Version:     buildVersion,
		Description: defaults.ManifestDescription,
		APIVersion:  defaults.ManifestAPIVersion,
		Authors:     defaults.ManifestAuthors(),
		Website:     defaults.ManifestWebsite,
		Depend:      defaults.ManifestDepend(),
		Prefix:      defaults.ManifestPrefix,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// YAML renders the properties as plugin.yml.
func (p *Properties) YAML() ([]byte, error) {
	b, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to render manifest: %w", err)
	}
	return b, nil
}

// Values returns the template variables. Lists render as "[a, b]".
func (p *Properties) Values() map[string]string {
	return map[string]string{
		"main":        p.Main,
		"name":        p.Name,
		"version":     p.Version,
		"description": p.Description,
		"apiVersion":  p.APIVersion,
		"authors":     formatList(p.Authors),
		"website":     p.Website,
		"depend":      formatList(p.Depend),
		"prefix":      p.Prefix,
	}
}

func formatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

// placeholder matches "${key}", "$key" and the escaped dollar "\$".
var placeholder = regexp.MustCompile(`\\\$|\$\{([A-Za-z_][A-Za-z0-9_]*)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// Expand replaces ${key} and $key placeholders in tmpl with the property
// values, the way Gradle's expand does. "\$" renders a literal dollar sign.
// Placeholders for unknown keys are left untouched.
func (p *Properties) Expand(tmpl []byte) []byte {
	values := p.Values()
	return placeholder.ReplaceAllFunc(tmpl, func(m []byte) []byte {
		sub := placeholder.FindSubmatch(m)
		key := string(sub[1])
		if key == "" {
			key = string(sub[2])
		}
		if key == "" {
			return []byte("$")
		}
		if v, ok := values[key]; ok {
			return []byte(v)
		}
		return m
	})
}
