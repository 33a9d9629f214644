/*
 * Copyright 2024 The module-resolver Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package res_hdl

import (
	"context"

	"github.com/modres/module-resolver/handler"
	"github.com/modres/module-resolver/handler/registry_hdl"
)

// Handler is the operation engine. It composes the module registry, the
// catalog adapter and the solver adapter into the batch operations of the
// public API. Per-spec failures inside a batch are collected and surfaced
// as one aggregate error after the batch ran to completion.
type Handler struct {
	registry *registry_hdl.Handler
	catalog  handler.CatalogAdapter
	solver   handler.SolverAdapter
}

func New(registry *registry_hdl.Handler, catalog handler.CatalogAdapter, solver handler.SolverAdapter) *Handler {
	return &Handler{
		registry: registry,
		catalog:  catalog,
		solver:   solver,
	}
}

// Init feeds the catalog content into the registry, checks persisted
// configurations against the catalog and establishes the initial active
// package view.
func (h *Handler) Init(ctx context.Context) error {
	if err := h.registry.Init(ctx); err != nil {
		return err
	}
	for _, mv := range h.catalog.All() {
		h.registry.AddVersion(mv)
	}
	h.registry.CheckConfs()
	h.refreshActive()
	return nil
}

// refreshActive re-filters the catalog's active package view against the
// currently enabled streams, disabled modules and hotfix repositories. The
// filtering itself is the catalog's concern, the engine only supplies the
// current state.
func (h *Handler) refreshActive() {
	h.catalog.FilterModules(h.registry.EnabledStreams(), h.registry.DisabledModules(), h.catalog.HotfixRepos())
}
