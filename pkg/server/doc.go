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

// Package server is the HTTP server behind the whispver read-only query API.
//
// # Architecture
//
// The server is stateless; API handlers are supplied by the caller. Every
// API route goes through the same middleware chain:
//
//   - Prometheus RED metrics, labeled by route pattern
//   - API version negotiation via the Accept header
//   - Request ID tracking (X-Request-Id, UUID)
//   - Panic recovery
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Debug request logging
//
// System routes bypass the chain:
//
//	GET /health   liveness
//	GET /ready    readiness; 503 while starting or shutting down
//	GET /metrics  Prometheus exposition
//	GET /         name, version and the list of API routes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("whispver"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/version": handleVersion,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run stops on context cancellation, SIGINT or SIGTERM and drains in-flight
// requests for up to Config.ShutdownTimeout. When started by systemd with
// Type=notify, readiness and stopping are reported through sd_notify.
//
// # Configuration
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown timeout (default 30)
//
// # Errors
//
// Non-2xx responses carry an ErrorResponse. WriteErrorFromErr maps a
// StructuredError code to the HTTP status and keeps its context as details.
package server
