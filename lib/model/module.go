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

package model

type ModuleState = string

type ModuleMeta struct {
	Name          string `json:"name"`
	Stream        string `json:"stream"`
	Version       int64  `json:"version"`
	Context       string `json:"context"`
	Arch          string `json:"arch"`
	RepoID        string `json:"repo_id"`
	Summary       string `json:"summary"`
	DefaultStream bool   `json:"default_stream"`
	Enabled       bool   `json:"enabled"`
}

type ModuleInfo struct {
	ModuleMeta
	Description     string        `json:"description"`
	Profiles        []ProfileInfo `json:"profiles"`
	DefaultProfiles []string      `json:"default_profiles"`
	Artifacts       []string      `json:"artifacts"`
}

type ProfileInfo struct {
	Name      string   `json:"name"`
	Default   bool     `json:"default"`
	Installed bool     `json:"installed"`
	Packages  []string `json:"packages"`
}

type ModStateRequest struct {
	ModuleSpecs []string `json:"module_specs"`
}

type ModInstallRequest struct {
	ModuleSpecs []string `json:"module_specs"`
	Strict      bool     `json:"strict"`
}

type ModVersionFilter struct {
	Stream  string
	Version *int64
}
