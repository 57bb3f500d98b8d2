/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/api"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/defaults"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Serve read-only descriptor queries over HTTP",
		Description: `Start an HTTP server answering build version queries for CI and
dashboards. The descriptor is re-read on every request and never written.

  GET /v1/version        descriptor report
  GET /v1/build-version  composite build version
  GET /v1/check          check report
  GET /v1/manifest       rendered plugin.yml
  GET /health, /ready    probes
  GET /metrics           Prometheus metrics

The server stops on SIGINT or SIGTERM after draining in-flight requests.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "address",
				Usage:   "Listen address (empty for all interfaces)",
				Sources: cli.EnvVars("WHISPVER_ADDRESS"),
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "Listen port",
				Sources: cli.EnvVars("PORT"),
				Value:   defaults.ServerPort,
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Usage: "Sustained requests per second",
				Value: defaults.ServerRateLimit,
			},
			&cli.IntFlag{
				Name:  "rate-burst",
				Usage: "Rate limiter burst size",
				Value: defaults.ServerRateLimitBurst,
			},
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Usage: "Time allowed to drain in-flight requests on shutdown",
				Value: defaults.ServerShutdownTimeout,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			port := cmd.Int("port")
			if port < 0 || port > 65535 {
				return fmt.Errorf("invalid port: %d", port)
			}
			if cmd.Float("rate-limit") <= 0 || cmd.Int("rate-burst") <= 0 {
				return fmt.Errorf("rate limit and burst must be positive")
			}

			if cmd.Duration("shutdown-timeout") <= 0 {
				return fmt.Errorf("shutdown timeout must be positive")
			}

			cfg := server.NewConfig()
			cfg.Address = cmd.String("address")
			cfg.Port = port
			cfg.RateLimit = rate.Limit(cmd.Float("rate-limit"))
			cfg.RateLimitBurst = cmd.Int("rate-burst")
			if cmd.IsSet("shutdown-timeout") {
				cfg.ShutdownTimeout = cmd.Duration("shutdown-timeout")
			}

			return api.Serve(ctx, cmd.String("file"), version, server.WithConfig(cfg))
		},
	}
}
