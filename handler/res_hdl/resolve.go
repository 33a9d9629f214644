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

	lib_model "github.com/modres/module-resolver/lib/model"
	"github.com/modres/module-resolver/model"
	"github.com/modres/module-resolver/util/parser"
)

// matchSpec tries every candidate decomposition of spec against the catalog
// and commits to the first that yields at least one match. A spec that
// matches nothing returns ok == false and counts as a no-match, never as an
// error.
func (h *Handler) matchSpec(spec string) (model.ModuleID, []model.ModuleVersion, bool) {
	for _, id := range parser.ModuleSpecPossibilities(spec) {
		if versions := h.catalog.Query(id); len(versions) > 0 {
			return id, versions, true
		}
	}
	return model.ModuleID{}, nil, false
}

// resolveStream picks a stream for a module by strict precedence: explicit
// user input, then the persisted enabled stream, then the catalog default.
// User intent overrides memory, memory overrides defaults.
func (h *Handler) resolveStream(name, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if state, stream := h.registry.State(name); state == lib_model.ModStateEnabled && stream != "" {
		return stream, nil
	}
	if stream := h.catalog.DefaultStream(name); stream != "" {
		return stream, nil
	}
	return "", &lib_model.NoStreamSpecifiedError{Name: name}
}

// resolveStreamGroup reduces a spec's catalog matches to exactly one stream
// group. Matches spanning more than one stream are only acceptable when the
// module's state is default or enabled, in which case the enabled stream
// respectively the catalog default decides; a winner outside the matched
// streams is a conflict.
func (h *Handler) resolveStreamGroup(name string, versions []model.ModuleVersion) (string, []model.ModuleVersion, error) {
	groups := make(map[string][]model.ModuleVersion)
	for _, v := range versions {
		groups[v.Stream] = append(groups[v.Stream], v)
	}
	if len(groups) == 1 {
		for stream, group := range groups {
			return stream, group, nil
		}
	}
	state, enabledStream := h.registry.State(name)
	var winning string
	switch state {
	case lib_model.ModStateEnabled:
		winning = enabledStream
	case lib_model.ModStateDefault:
		winning = h.catalog.DefaultStream(name)
	default:
		return "", nil, &lib_model.EnableMultipleStreamsError{Name: name}
	}
	group, ok := groups[winning]
	if !ok {
		return "", nil, &lib_model.EnableMultipleStreamsError{Name: name}
	}
	return winning, group, nil
}

// commitEnable records the winning stream as enabled. Two specs of the same
// batch committing different streams for one module is a conflict; committing
// the same stream twice is not.
func (h *Handler) commitEnable(ctx context.Context, name, stream string, batchEnabled map[string]string) error {
	if prev, ok := batchEnabled[name]; ok && prev != stream {
		return &lib_model.DifferentStreamEnabledError{Name: name, Enabled: prev, Requested: stream}
	}
	if err := h.registry.Enable(ctx, name, stream); err != nil {
		return err
	}
	batchEnabled[name] = stream
	return nil
}

// latestActive returns the highest version of the group that the catalog
// still flags active after module filtering.
func (h *Handler) latestActive(versions []model.ModuleVersion) (model.ModuleVersion, bool) {
	var latest model.ModuleVersion
	found := false
	for _, v := range versions {
		if !h.catalog.IsActive(v.FullID()) {
			continue
		}
		if !found || v.Version > latest.Version {
			latest = v
			found = true
		}
	}
	return latest, found
}

func latest(versions []model.ModuleVersion) (model.ModuleVersion, bool) {
	var l model.ModuleVersion
	found := false
	for _, v := range versions {
		if !found || v.Version > l.Version {
			l = v
			found = true
		}
	}
	return l, found
}

func dedupe(specs []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range specs {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// markingErr builds the aggregate batch error, nil when both lists are empty.
func markingErr(noMatchSpecs, errorSpecs []string) error {
	if len(noMatchSpecs) == 0 && len(errorSpecs) == 0 {
		return nil
	}
	return &lib_model.ModuleMarkingError{NoMatchSpecs: noMatchSpecs, ErrorSpecs: errorSpecs}
}
