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
	"sort"

	"github.com/modres/module-resolver/util"
	"github.com/modres/module-resolver/util/set"
)

// Upgrade resolves every spec without committing any enable, then requests
// an upgrade of the package names currently provided by the module's
// installed profiles. Default profiles are not re-expanded, only content
// that was installed before is upgraded.
func (h *Handler) Upgrade(ctx context.Context, moduleSpecs []string) error {
	var noMatchSpecs []string
	var errorSpecs []string
	pkgNames := make(set.Set[string])
	for _, spec := range dedupe(moduleSpecs) {
		id, versions, ok := h.matchSpec(spec)
		if !ok {
			noMatchSpecs = append(noMatchSpecs, spec)
			continue
		}
		_, group, err := h.resolveStreamGroup(id.Name, versions)
		if err != nil {
			util.Logger.Errorf("upgrade '%s': %s", spec, err)
			errorSpecs = append(errorSpecs, spec)
			continue
		}
		latestVer, ok := h.latestActive(group)
		if !ok {
			util.Logger.Errorf("upgrade '%s': no active version", spec)
			errorSpecs = append(errorSpecs, spec)
			continue
		}
		installed := h.registry.InstalledProfiles(id.Name)
		if id.Profile != "" {
			if !contains(installed, id.Profile) {
				util.Logger.Errorf("upgrade '%s': profile '%s' is not installed", spec, id.Profile)
				errorSpecs = append(errorSpecs, spec)
				continue
			}
			installed = []string{id.Profile}
		}
		for _, profile := range installed {
			for _, pkgName := range latestVer.Profiles[profile] {
				pkgNames.Add(pkgName)
			}
		}
	}
	if len(pkgNames) > 0 {
		names := pkgNames.Slice()
		sort.Strings(names)
		if err := h.solver.Upgrade(ctx, names); err != nil {
			return err
		}
	}
	return markingErr(noMatchSpecs, errorSpecs)
}

func contains(items []string, item string) bool {
	for _, i := range items {
		if i == item {
			return true
		}
	}
	return false
}
