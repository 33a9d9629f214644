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

// Disable opts every matched module out unconditionally, regardless of its
// prior state. Idempotent.
func (h *Handler) Disable(ctx context.Context, moduleSpecs []string) error {
	return h.applyState(ctx, moduleSpecs, "disable", h.registry.Disable)
}

// Reset clears every matched module's configuration back to unset.
// Installed-profile bookkeeping stays untouched.
func (h *Handler) Reset(ctx context.Context, moduleSpecs []string) error {
	return h.applyState(ctx, moduleSpecs, "reset", h.registry.Reset)
}

func (h *Handler) applyState(ctx context.Context, moduleSpecs []string, op string, apply func(context.Context, string) error) error {
	var noMatchSpecs []string
	var errorSpecs []string
	for _, spec := range dedupe(moduleSpecs) {
		id, _, ok := h.matchSpec(spec)
		if !ok {
			noMatchSpecs = append(noMatchSpecs, spec)
			continue
		}
		if id.Profile != "" {
			util.Logger.Warningf("ignoring unnecessary profile '%s/%s'", id.Name, id.Profile)
		}
		if err := apply(ctx, id.Name); err != nil {
			util.Logger.Errorf("%s '%s': %s", op, spec, err)
			errorSpecs = append(errorSpecs, spec)
		}
	}
	h.refreshActive()
	return markingErr(noMatchSpecs, errorSpecs)
}
