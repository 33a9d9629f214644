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

	lib_model "github.com/modres/module-resolver/lib/model"
	"github.com/modres/module-resolver/util"
	"github.com/modres/module-resolver/util/set"
)

// Remove resolves every spec without committing any enable, uninstalls the
// matched installed profiles and requests removal of their package content.
// Packages still provided by a profile that stays installed, on any module,
// are kept.
func (h *Handler) Remove(ctx context.Context, moduleSpecs []string) error {
	var noMatchSpecs []string
	var errorSpecs []string
	candidates := make(set.Set[string])
	for _, spec := range dedupe(moduleSpecs) {
		id, versions, ok := h.matchSpec(spec)
		if !ok {
			noMatchSpecs = append(noMatchSpecs, spec)
			continue
		}
		_, group, err := h.resolveStreamGroup(id.Name, versions)
		if err != nil {
			util.Logger.Errorf("remove '%s': %s", spec, err)
			errorSpecs = append(errorSpecs, spec)
			continue
		}
		latestVer, ok := latest(group)
		if !ok {
			errorSpecs = append(errorSpecs, spec)
			continue
		}
		installed := h.registry.InstalledProfiles(id.Name)
		if id.Profile != "" {
			if !contains(installed, id.Profile) {
				err = &lib_model.ProfileNotInstalledError{Name: id.Name, Profile: id.Profile}
				util.Logger.Errorf("remove '%s': %s", spec, err)
				errorSpecs = append(errorSpecs, spec)
				continue
			}
			installed = []string{id.Profile}
		} else if len(installed) == 0 {
			err = &lib_model.NoProfileToRemoveError{Name: id.Name}
			util.Logger.Errorf("remove '%s': %s", spec, err)
			errorSpecs = append(errorSpecs, spec)
			continue
		}
		// content resolution and uninstall bookkeeping run as one pass
		for _, profile := range installed {
			for _, pkgName := range latestVer.Profiles[profile] {
				candidates.Add(pkgName)
			}
			if err = h.registry.UninstallProfile(ctx, id.Name, profile); err != nil {
				return err
			}
		}
	}
	keep := h.registry.InstalledPkgNames()
	var removeNames []string
	for _, name := range candidates.Slice() {
		if !keep.Has(name) {
			removeNames = append(removeNames, name)
		}
	}
	sort.Strings(removeNames)
	if len(removeNames) > 0 {
		if err := h.solver.Remove(ctx, removeNames); err != nil {
			return err
		}
	}
	return markingErr(noMatchSpecs, errorSpecs)
}
