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

package lib

import (
	"context"

	"github.com/modres/module-resolver/lib/model"
)

type Api interface {
	GetModules(ctx context.Context, installed bool) ([]model.ModuleMeta, error)
	GetModuleVersion(ctx context.Context, name string, filter model.ModVersionFilter) (model.ModuleMeta, error)
	GetModuleInfo(ctx context.Context, name string, filter model.ModVersionFilter) ([]model.ModuleInfo, error)
	EnableModules(ctx context.Context, moduleSpecs []string) error
	DisableModules(ctx context.Context, moduleSpecs []string) error
	ResetModules(ctx context.Context, moduleSpecs []string) error
	InstallModules(ctx context.Context, moduleSpecs []string, strict bool) (string, error)
	UpgradeModules(ctx context.Context, moduleSpecs []string) (string, error)
	RemoveModules(ctx context.Context, moduleSpecs []string) (string, error)
	GetJobs(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	GetJob(ctx context.Context, jID string) (model.Job, error)
	CancelJob(ctx context.Context, jID string) error
}
