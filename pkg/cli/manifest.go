/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/defaults"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/manifest"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/serializer"
)

func manifestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "manifest",
		EnableShellCompletion: true,
		Usage:                 "Render the plugin manifest with the current build version",
		Description: `Render plugin.yml with version set to the composite build version.

Without --template the manifest is generated from the built-in plugin
properties. With --template, ${key} and $key placeholders in the template
are replaced instead and "\$" keeps a literal dollar sign. Known keys are
main, name, version, description, apiVersion, authors, website, depend
and prefix. Unknown placeholders are left as they are.

Use --properties to override the built-in properties from a YAML or JSON
file, or from stdin with "--properties -". --name, --description, --author
and --depend take precedence over both. The version is always taken from
the descriptor.

# Examples

  whispver manifest -o build/resources/main/plugin.yml
  whispver manifest --template src/main/resources/plugin.yml -o build/plugin.yml
  whispver manifest --author dlee13 --author wolftailvale --depend ProtocolLib`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "template",
				Usage: "Manifest template with ${key} or $key placeholders",
			},
			&cli.StringFlag{
				Name:  "properties",
				Usage: "YAML or JSON file overriding the built-in plugin properties (- for stdin)",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Plugin name",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "Plugin description",
			},
			&cli.StringSliceFlag{
				Name:  "author",
				Usage: "Plugin author (repeatable, replaces the author list)",
			},
			&cli.StringSliceFlag{
				Name:  "depend",
				Usage: "Hard plugin dependency (repeatable, replaces the dependency list)",
			},
			outputFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			var opts []manifest.Option
			if path := cmd.String("properties"); path != "" {
				overrides, err := loadProperties(cmd, path)
				if err != nil {
					return fmt.Errorf("failed to load manifest properties: %w", err)
				}
				opts = append(opts, manifest.WithOverrides(overrides))
			}
			opts = append(opts, manifestFlagOptions(cmd)...)

			props := manifest.New(store.BuildVersion(), opts...)

			var out []byte
			if path := cmd.String("template"); path != "" {
				tmpl, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read manifest template %q: %w", path, err)
				}
				out = props.Expand(tmpl)
			} else {
				out, err = props.YAML()
				if err != nil {
					return err
				}
			}

			return writeOutput(cmd, out)
		},
	}
}

// loadProperties reads manifest overrides from path, or from stdin for "-".
// Stdin is decoded as YAML, which also accepts JSON.
func loadProperties(cmd *cli.Command, path string) (*manifest.Properties, error) {
	if path != "-" {
		return serializer.FromFile[manifest.Properties](path)
	}

	r, err := serializer.NewReader(serializer.FormatYAML, io.NopCloser(stdin(cmd)))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var p manifest.Properties
	if err := r.Deserialize(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// manifestFlagOptions turns the property flags that were set into options.
func manifestFlagOptions(cmd *cli.Command) []manifest.Option {
	var opts []manifest.Option
	if cmd.IsSet("name") {
		opts = append(opts, manifest.WithName(cmd.String("name")))
	}
	if cmd.IsSet("description") {
		opts = append(opts, manifest.WithDescription(cmd.String("description")))
	}
	if cmd.IsSet("author") {
		opts = append(opts, manifest.WithAuthors(cmd.StringSlice("author")...))
	}
	if cmd.IsSet("depend") {
		opts = append(opts, manifest.WithDepend(cmd.StringSlice("depend")...))
	}
	return opts
}

// writeOutput writes b to --output, or to stdout when it is empty.
func writeOutput(cmd *cli.Command, b []byte) error {
	path := strings.TrimSpace(cmd.String("output"))
	if path == "" {
		_, err := stdout(cmd).Write(b)
		return err
	}

	if err := os.WriteFile(path, b, defaults.OutputFileMode); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	slog.Debug("output written", "path", path, "bytes", len(b))
	return nil
}
