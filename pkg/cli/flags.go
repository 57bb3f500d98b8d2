/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/defaults"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/logging"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/serializer"
)

// Flags are built per command tree: urfave/cli keeps parsed state on the
// flag value, so a shared instance would leak between runs.

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Path to the version descriptor",
		Sources: cli.EnvVars(EnvDescriptorFile),
		Value:   defaults.DescriptorFile,
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars(logging.EnvLogLevel),
		Value:   "info",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("Output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
		Value:   string(serializer.FormatYAML),
	}
}

// parseOutputFormat reads --format and rejects unsupported values.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}

// newOutputSerializer writes to --output when set, otherwise to the root writer.
func newOutputSerializer(cmd *cli.Command, format serializer.Format) (serializer.Serializer, error) {
	if path := strings.TrimSpace(cmd.String("output")); path != "" {
		return serializer.NewFileWriterOrStdout(format, path)
	}
	return serializer.NewWriter(format, stdout(cmd)), nil
}
