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
	"sort"

	lib_model "github.com/modres/module-resolver/lib/model"
	"github.com/modres/module-resolver/model"
)

// Modules lists the latest version of every known module and stream. With
// installed set, the listing is reduced to modules that are enabled on the
// matching stream and have at least one installed profile.
func (h *Handler) Modules(installed bool) []lib_model.ModuleMeta {
	var versions []model.ModuleVersion
	if installed {
		versions = h.registry.InstalledVersions()
	} else {
		versions = h.registry.LatestVersions()
	}
	var metas []lib_model.ModuleMeta
	for _, v := range versions {
		metas = append(metas, h.Meta(v))
	}
	return metas
}

// FindVersion is a pure lookup: stream precedence applies when no stream is
// given, an explicit version must exist in that stream, otherwise the latest
// wins. Any miss returns ok == false, lookups never produce errors.
func (h *Handler) FindVersion(name string, filter lib_model.ModVersionFilter) (model.ModuleVersion, bool) {
	stream := filter.Stream
	if stream == "" {
		var err error
		if stream, err = h.resolveStream(name, ""); err != nil {
			return model.ModuleVersion{}, false
		}
	}
	if filter.Version != nil {
		return h.registry.Version(name, stream, *filter.Version)
	}
	return h.registry.Latest(name, stream)
}

// Info assembles the full per-version report of a module: profiles with
// default and installed markers, default profiles, artifacts.
func (h *Handler) Info(name string, filter lib_model.ModVersionFilter) []lib_model.ModuleInfo {
	versions := h.catalog.Query(model.ModuleID{
		Name:    name,
		Stream:  filter.Stream,
		Version: filter.Version,
	})
	conf, hasConf := h.registry.Conf(name)
	var infos []lib_model.ModuleInfo
	for _, v := range versions {
		defaults := h.catalog.DefaultProfiles(v.Name, v.Stream)
		info := lib_model.ModuleInfo{
			ModuleMeta:      h.Meta(v),
			Description:     v.Description,
			DefaultProfiles: defaults,
			Artifacts:       v.Artifacts,
		}
		var profileNames []string
		for p := range v.Profiles {
			profileNames = append(profileNames, p)
		}
		sort.Strings(profileNames)
		for _, p := range profileNames {
			info.Profiles = append(info.Profiles, lib_model.ProfileInfo{
				Name:      p,
				Default:   contains(defaults, p),
				Installed: hasConf && conf.Stream == v.Stream && conf.Profiles.Has(p),
				Packages:  v.Profiles[p],
			})
		}
		infos = append(infos, info)
	}
	return infos
}

// Meta derives the listing record of a version, marking the catalog default
// stream and the enabled stream of the module.
func (h *Handler) Meta(v model.ModuleVersion) lib_model.ModuleMeta {
	state, stream := h.registry.State(v.Name)
	return lib_model.ModuleMeta{
		Name:          v.Name,
		Stream:        v.Stream,
		Version:       v.Version,
		Context:       v.Context,
		Arch:          v.Arch,
		RepoID:        v.RepoID,
		Summary:       v.Summary,
		DefaultStream: h.catalog.DefaultStream(v.Name) == v.Stream,
		Enabled:       state == lib_model.ModStateEnabled && stream == v.Stream,
	}
}
