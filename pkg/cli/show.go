/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	cnserrors "github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/errors"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/serializer"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:                  "show",
		EnableShellCompletion: true,
		Usage:                 "Show the version descriptor",
		Description: `Print every descriptor field with defaults applied, the composite build
version and the keys that fell back to defaults.

The report can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			return writeReport(ctx, cmd, outFormat, store.Report(version))
		},
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Check the version descriptor for problems",
		Description: `Inspect the descriptor without changing it. Warnings cover state that
still works through defaults; errors cover state that makes increments
fail. The command fails when any error is found.

Without --format or --output, findings are printed one per line. With
--output alone the format follows the file extension.`,
		Flags: []cli.Flag{
			outputFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Usage:   "Report format (json, yaml, table); plain text when empty",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			report := store.CheckReport(version)

			if cmd.String("format") == "" && cmd.String("output") == "" {
				out := stdout(cmd)
				for _, f := range report.Findings {
					fmt.Fprintln(out, f.String())
				}
				if report.Valid {
					fmt.Fprintf(out, "%s: ok\n", store.Path())
				}
			} else {
				outFormat := serializer.FormatFromPath(cmd.String("output"))
				if cmd.String("format") != "" {
					if outFormat, err = parseOutputFormat(cmd); err != nil {
						return err
					}
				}
				if err := writeReport(ctx, cmd, outFormat, report); err != nil {
					return err
				}
			}

			if !report.Valid {
				return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidState,
					"version descriptor check failed", map[string]any{
						"path":     store.Path(),
						"findings": len(report.Findings),
					})
			}
			return nil
		},
	}
}

func writeReport(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) error {
	ser, err := newOutputSerializer(cmd, format)
	if err != nil {
		return fmt.Errorf("failed to create output writer: %w", err)
	}
	defer func() {
		if cerr := ser.Close(); cerr != nil {
			slog.Warn("failed to close output writer", "error", cerr)
		}
	}()

	if err := ser.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
