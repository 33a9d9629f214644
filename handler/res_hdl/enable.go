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

	"github.com/modres/module-resolver/util"
)

// Enable resolves every spec and commits the winning stream as enabled.
// Profile qualifiers carry no meaning here and are ignored with a warning.
// Failures are collected per spec and reported together after the whole
// batch was processed, successful specs take effect regardless.
func (h *Handler) Enable(ctx context.Context, moduleSpecs []string) error {
	var noMatchSpecs []string
	var errorSpecs []string
	batchEnabled := make(map[string]string)
	for _, spec := range dedupe(moduleSpecs) {
		id, versions, ok := h.matchSpec(spec)
		if !ok {
			noMatchSpecs = append(noMatchSpecs, spec)
			continue
		}
		if id.Profile != "" {
			util.Logger.Warningf("ignoring unnecessary profile '%s/%s'", id.Name, id.Profile)
		}
		stream, _, err := h.resolveStreamGroup(id.Name, versions)
		if err != nil {
			util.Logger.Errorf("enable '%s': %s", spec, err)
			errorSpecs = append(errorSpecs, spec)
			continue
		}
		if err = h.commitEnable(ctx, id.Name, stream, batchEnabled); err != nil {
			util.Logger.Errorf("enable '%s': %s", spec, err)
			errorSpecs = append(errorSpecs, spec)
		}
	}
	h.refreshActive()
	return markingErr(noMatchSpecs, errorSpecs)
}
