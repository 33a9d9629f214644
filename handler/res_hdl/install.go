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

	"github.com/modres/module-resolver/model"
	"github.com/modres/module-resolver/util"
	"github.com/modres/module-resolver/util/parser"
)

// Install resolves every spec, commits the winning stream as enabled,
// expands the requested or default profiles of the latest active version
// into a package selection bounded by the version's artifacts and hands the
// selection to the solver. With strict unset, unresolvable packages are
// marked optional for the solver instead of failing the transaction.
func (h *Handler) Install(ctx context.Context, moduleSpecs []string, strict bool) error {
	var noMatchSpecs []string
	var errorSpecs []string
	batchEnabled := make(map[string]string)
	selections := make(map[string]*model.PkgSelection)
	var selOrder []string
	for _, spec := range dedupe(moduleSpecs) {
		id, versions, ok := h.matchSpec(spec)
		if !ok {
			noMatchSpecs = append(noMatchSpecs, spec)
			continue
		}
		stream, group, err := h.resolveStreamGroup(id.Name, versions)
		if err != nil {
			util.Logger.Errorf("install '%s': %s", spec, err)
			errorSpecs = append(errorSpecs, spec)
			continue
		}
		if err = h.commitEnable(ctx, id.Name, stream, batchEnabled); err != nil {
			util.Logger.Errorf("install '%s': %s", spec, err)
			errorSpecs = append(errorSpecs, spec)
			continue
		}
		h.refreshActive()
		latestVer, ok := h.latestActive(group)
		if !ok {
			util.Logger.Errorf("install '%s': no active version in stream '%s'", spec, stream)
			errorSpecs = append(errorSpecs, spec)
			continue
		}
		profiles, err := h.resolveInstallProfiles(ctx, latestVer, id.Profile)
		if err != nil {
			util.Logger.Errorf("install '%s': %s", spec, err)
			errorSpecs = append(errorSpecs, spec)
			continue
		}
		specOK := true
		for _, profile := range profiles {
			if err = h.registry.InstallProfile(ctx, id.Name, profile); err != nil {
				return err
			}
			for _, pkgName := range latestVer.Profiles[profile] {
				artifacts := matchingArtifacts(latestVer.Artifacts, pkgName)
				if len(artifacts) == 0 {
					util.Logger.Errorf("install '%s': no match for package '%s'", spec, pkgName)
					specOK = false
					continue
				}
				sel, ok := selections[pkgName]
				if !ok {
					sel = &model.PkgSelection{Name: pkgName, Optional: !strict}
					selections[pkgName] = sel
					selOrder = append(selOrder, pkgName)
				}
				sel.Artifacts = append(sel.Artifacts, artifacts...)
			}
		}
		if !specOK {
			errorSpecs = append(errorSpecs, spec)
		}
	}
	h.refreshActive()
	if len(selOrder) > 0 {
		var sels []model.PkgSelection
		for _, name := range selOrder {
			sels = append(sels, *selections[name])
		}
		if err := h.solver.Install(ctx, sels); err != nil {
			return err
		}
	}
	return markingErr(noMatchSpecs, errorSpecs)
}

// resolveInstallProfiles picks the profiles to materialize for a version. A
// requested profile must exist on the version. Without a request the catalog
// default profiles apply, falling back to the literal name "default" when
// the catalog declares none. A missing "default" fallback still records the
// install marker so that a module installed before its metadata is fully
// populated keeps its installed state.
func (h *Handler) resolveInstallProfiles(ctx context.Context, mv model.ModuleVersion, requested string) ([]string, error) {
	if requested != "" {
		if _, ok := mv.Profiles[requested]; !ok {
			return nil, &profileNotFoundError{name: mv.Name, profile: requested}
		}
		return []string{requested}, nil
	}
	candidates := h.catalog.DefaultProfiles(mv.Name, mv.Stream)
	fallback := false
	if len(candidates) == 0 {
		candidates = []string{"default"}
		fallback = true
	}
	var profiles []string
	for _, p := range candidates {
		if _, ok := mv.Profiles[p]; ok {
			profiles = append(profiles, p)
			continue
		}
		if fallback {
			if err := h.registry.InstallProfile(ctx, mv.Name, p); err != nil {
				return nil, err
			}
			continue
		}
		util.Logger.Warningf("default profile '%s' not matched for module '%s:%s'", p, mv.Name, mv.Stream)
	}
	return profiles, nil
}

// matchingArtifacts bounds a package name to the exact package references of
// the module version it was resolved from.
func matchingArtifacts(artifacts []string, pkgName string) []string {
	var matched []string
	for _, a := range artifacts {
		name, err := parser.ArtifactPkgName(a)
		if err != nil {
			continue
		}
		if name == pkgName {
			matched = append(matched, a)
		}
	}
	return matched
}

type profileNotFoundError struct {
	name    string
	profile string
}

func (e *profileNotFoundError) Error() string {
	return "unable to match profile '" + e.profile + "' of module '" + e.name + "'"
}
