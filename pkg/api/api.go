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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	cnserrors "github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/errors"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/manifest"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/serializer"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/server"
	"github.com/WolfTailVale/holocons-waypoints-whispcraft/pkg/versioning"
)

const name = "whispver"

var descriptorLoads = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "whispver_descriptor_loads_total",
		Help: "Total number of descriptor loads by result",
	},
	[]string{"result"},
)

// Handler answers descriptor queries for a single descriptor file.
type Handler struct {
	path    string
	version string
}

// NewHandler returns a Handler for the descriptor at path. version is the
// tool version stamped on reports.
func NewHandler(path, version string) *Handler {
	return &Handler{path: path, version: version}
}

// Routes returns the API routes for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/version":       h.HandleVersion,
		"/v1/build-version": h.HandleBuildVersion,
		"/v1/check":         h.HandleCheck,
		"/v1/manifest":      h.HandleManifest,
	}
}

// HandleVersion handles GET /v1/version.
func (h *Handler) HandleVersion(w http.ResponseWriter, r *http.Request) {
	store, ok := h.load(w, r)
	if !ok {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, store.Report(h.version))
}

// HandleBuildVersion handles GET /v1/build-version.
func (h *Handler) HandleBuildVersion(w http.ResponseWriter, r *http.Request) {
	store, ok := h.load(w, r)
	if !ok {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, map[string]string{
		"buildVersion": store.BuildVersion(),
	})
}

// HandleCheck handles GET /v1/check.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	store, ok := h.load(w, r)
	if !ok {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, store.CheckReport(h.version))
}

// HandleManifest handles GET /v1/manifest.
func (h *Handler) HandleManifest(w http.ResponseWriter, r *http.Request) {
	store, ok := h.load(w, r)
	if !ok {
		return
	}

	out, err := manifest.New(store.BuildVersion()).YAML()
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to render manifest", nil)
		return
	}
	serializer.RespondBytes(w, http.StatusOK, "application/yaml", out)
}

// load rejects non-GET requests and loads the descriptor, writing the error
// response itself when it returns false.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*versioning.Store, bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return nil, false
	}

	store, err := versioning.Load(h.path)
	if err != nil {
		descriptorLoads.WithLabelValues("error").Inc()
		slog.Error("failed to load descriptor",
			"path", h.path,
			"requestID", server.RequestIDFromContext(r.Context()),
			"error", err)
		server.WriteErrorFromErr(w, r, err, "failed to load version descriptor", map[string]any{"path": h.path})
		return nil, false
	}

	descriptorLoads.WithLabelValues("ok").Inc()
	slog.Debug("descriptor loaded",
		"path", h.path,
		"exists", store.Exists(),
		"apiVersion", server.APIVersionFromContext(r.Context()),
		"requestID", server.RequestIDFromContext(r.Context()))
	return store, true
}

// Serve runs the query API for the descriptor at path until ctx is done.
// The name, version and routes are applied after opts.
func Serve(ctx context.Context, path, version string, opts ...server.Option) error {
	slog.Info("starting query api",
		"name", name,
		"version", version,
		"descriptor", path,
	)

	all := append(append([]server.Option{}, opts...),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(NewHandler(path, version).Routes()),
	)

	if err := server.New(all...).Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
