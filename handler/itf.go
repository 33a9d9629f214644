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

package handler

import (
	"context"

	lib_model "github.com/modres/module-resolver/lib/model"
	"github.com/modres/module-resolver/model"
)

// ModConfStorageHandler persists one ModuleConf per module name.
type ModConfStorageHandler interface {
	Init() error
	List(ctx context.Context) (map[string]model.ModuleConf, error)
	Write(ctx context.Context, conf model.ModuleConf) error
}

// CatalogAdapter is the query boundary to the external package/module
// catalog. Query filters are conjunctive, absent fields match any value.
type CatalogAdapter interface {
	All() []model.ModuleVersion
	Query(id model.ModuleID) []model.ModuleVersion
	IsActive(fullID string) bool
	DefaultStream(name string) string
	DefaultProfiles(name, stream string) []string
	HotfixRepos() []string
	FilterModules(enabledStreams map[string]string, disabled map[string]struct{}, hotfixRepos []string)
}

// SolverAdapter hands package selections to the external dependency solver.
type SolverAdapter interface {
	Install(ctx context.Context, selections []model.PkgSelection) error
	Upgrade(ctx context.Context, pkgNames []string) error
	Remove(ctx context.Context, pkgNames []string) error
}

type JobHandler interface {
	Create(desc string, tFunc func(context.Context, context.CancelFunc) error) (string, error)
	Get(id string) (lib_model.Job, error)
	Cancel(id string) error
	List(filter lib_model.JobFilter) []lib_model.Job
	PurgeJobs(maxAge int64) int
}
