/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/defaults"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/logging"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/versioning"
)

const (
	name           = "whispver"
	versionDefault = "dev"

	// EnvDescriptorFile overrides the --file flag.
	EnvDescriptorFile = "WHISPVER_FILE"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute builds the root command and runs it against os.Args.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd(os.Stdout).Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:                  name,
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Usage:                 "WhispWaypoints version descriptor tooling",
		Description: fmt.Sprintf(`whispver owns the plugin's %s file: it prints the composite
build version, increments the plugin version components and sets the
Minecraft platform tag. Build scripts call it instead of editing the
descriptor by hand.`, defaults.DescriptorFile),
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			fileFlag(),
			logLevelFlag(),
		},
		Before: initLogger,
		Commands: []*cli.Command{
			buildVersionCmd(),
			incrementCmd(versioning.KindPatch),
			incrementCmd(versioning.KindMinor),
			incrementCmd(versioning.KindMajor),
			setMinecraftCmd(),
			showCmd(),
			checkCmd(),
			manifestCmd(),
			serveCmd(),
		},
	}
}

// initLogger configures the default slog logger from --log-level.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
	return ctx, nil
}

// loadStore loads the descriptor named by --file.
func loadStore(cmd *cli.Command) (*versioning.Store, error) {
	return versioning.Load(cmd.String("file"))
}

// stdout returns the writer the root command prints to.
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// stdin returns the reader the root command reads from.
func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}
