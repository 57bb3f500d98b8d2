/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/defaults"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/versioning"
)

func buildVersionCmd() *cli.Command {
	return &cli.Command{
		Name:                  "build-version",
		EnableShellCompletion: true,
		Usage:                 "Print the composite build version",
		Description: `Print the build version composed from the descriptor:

  {minecraft}_{plugin_major}.{plugin_minor}.{plugin_patch}

Missing keys and a missing descriptor fall back to the documented defaults.
Values are printed as stored; nothing is parsed or written.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout(cmd), store.BuildVersion())
			return err
		},
	}
}

// incrementCmd builds the increment-<kind> command for a plugin counter.
func incrementCmd(kind versioning.Kind) *cli.Command {
	var (
		usage string
		run   func(*versioning.Store) (*versioning.Change, error)
	)

	switch kind {
	case versioning.KindMajor:
		usage = "Increment the plugin major version (minor and patch reset to 0)"
		run = (*versioning.Store).IncrementMajor
	case versioning.KindMinor:
		usage = "Increment the plugin minor version (patch reset to 0)"
		run = (*versioning.Store).IncrementMinor
	default:
		kind = versioning.KindPatch
		usage = "Increment the plugin patch version"
		run = (*versioning.Store).IncrementPatch
	}

	return &cli.Command{
		Name:                  "increment-" + kind.String(),
		EnableShellCompletion: true,
		Usage:                 usage,
		Description: `All three plugin counters must be non-negative integers. On failure the
descriptor is left untouched. A counter missing from the descriptor is
appended with its new value.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			c, err := run(store)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout(cmd), c.String())
			return err
		},
	}
}

func setMinecraftCmd() *cli.Command {
	return &cli.Command{
		Name:                  "set-minecraft",
		EnableShellCompletion: true,
		Usage:                 "Set the Minecraft platform version tag",
		ArgsUsage:             "[VERSION]",
		Description: fmt.Sprintf(`Set the minecraft key of the descriptor. The value is stored verbatim and
never validated. The positional argument takes precedence over --mc-version;
when neither is given the tag is set to %s.`, defaults.Minecraft),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "mc-version",
				Usage: "Minecraft version tag",
				Value: defaults.Minecraft,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return fmt.Errorf("expected at most one VERSION argument, got %d", cmd.Args().Len())
			}

			value := cmd.String("mc-version")
			if cmd.Args().Present() {
				value = cmd.Args().First()
			}

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			c, err := store.SetMinecraftVersion(value)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout(cmd), c.String())
			return err
		},
	}
}
