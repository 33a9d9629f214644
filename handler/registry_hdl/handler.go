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

package registry_hdl

import (
	"context"
	"sync"

	"github.com/modres/module-resolver/handler"
	lib_model "github.com/modres/module-resolver/lib/model"
	"github.com/modres/module-resolver/model"
	"github.com/modres/module-resolver/util"
	"github.com/modres/module-resolver/util/set"
)

// Handler is the in-memory module registry. Module entries are created
// lazily on first reference, by a loaded config or an added catalog version,
// and live for the process lifetime. Insertion order is kept for
// deterministic listing output.
type Handler struct {
	storageHandler handler.ModConfStorageHandler
	modules        map[string]*repoModule
	order          []string
	mu             sync.RWMutex
}

func New(storageHandler handler.ModConfStorageHandler) *Handler {
	return &Handler{
		storageHandler: storageHandler,
		modules:        make(map[string]*repoModule),
	}
}

// Init loads all persisted module configurations.
func (h *Handler) Init(ctx context.Context) error {
	confs, err := h.storageHandler.List(ctx)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for name, conf := range confs {
		m := h.get(name)
		if conf.Profiles == nil {
			conf.Profiles = make(set.Set[string])
		}
		m.conf = conf
	}
	return nil
}

// get returns the entry for name, creating it if absent. Caller must hold
// the write lock.
func (h *Handler) get(name string) *repoModule {
	m, ok := h.modules[name]
	if !ok {
		m = newRepoModule(name)
		h.modules[name] = m
		h.order = append(h.order, name)
	}
	return m
}

func (h *Handler) AddVersion(mv model.ModuleVersion) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.get(mv.Name).addVersion(mv)
}

// CheckConfs logs modules whose persisted enabled stream is no longer
// present in the catalog. The invariant is detected, not repaired.
func (h *Handler) CheckConfs() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, name := range h.order {
		m := h.modules[name]
		if m.conf.State == lib_model.ModStateEnabled {
			if _, ok := m.streams[m.conf.Stream]; !ok {
				util.Logger.Warningf("module '%s': enabled stream '%s' not found in catalog", name, m.conf.Stream)
			}
		}
	}
}

func (h *Handler) State(name string) (lib_model.ModuleState, string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	m, ok := h.modules[name]
	if !ok {
		return lib_model.ModStateDefault, ""
	}
	return m.conf.State, m.conf.Stream
}

func (h *Handler) Conf(name string) (model.ModuleConf, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	m, ok := h.modules[name]
	if !ok {
		return model.ModuleConf{}, false
	}
	conf := m.conf
	conf.Profiles = set.New(m.conf.Profiles.Slice()...)
	return conf, true
}

// Enable records the enabled stream. A later call with another stream
// overrides an earlier one, conflict detection within a single resolution
// pass is the concern of the resolution handler.
func (h *Handler) Enable(ctx context.Context, name, stream string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	m := h.get(name)
	m.conf.State = lib_model.ModStateEnabled
	m.conf.Stream = stream
	return h.writeConf(ctx, m)
}

// Disable opts the module out unconditionally. Stream and installed-profile
// bookkeeping stay untouched.
func (h *Handler) Disable(ctx context.Context, name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	m := h.get(name)
	m.conf.State = lib_model.ModStateDisabled
	return h.writeConf(ctx, m)
}

// Reset clears the configuration back to unset. Installed-profile
// bookkeeping stays untouched.
func (h *Handler) Reset(ctx context.Context, name string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	m := h.get(name)
	m.conf.State = lib_model.ModStateUnknown
	m.conf.Stream = ""
	return h.writeConf(ctx, m)
}

func (h *Handler) InstallProfile(ctx context.Context, name, profile string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	m := h.get(name)
	if m.conf.Profiles.Has(profile) {
		return nil
	}
	m.conf.Profiles.Add(profile)
	return h.writeConf(ctx, m)
}

func (h *Handler) UninstallProfile(ctx context.Context, name, profile string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	m := h.get(name)
	if !m.conf.Profiles.Has(profile) {
		return nil
	}
	m.conf.Profiles.Remove(profile)
	return h.writeConf(ctx, m)
}

func (h *Handler) writeConf(ctx context.Context, m *repoModule) error {
	conf := m.conf
	conf.Profiles = set.New(m.conf.Profiles.Slice()...)
	return h.storageHandler.Write(ctx, conf)
}

func (h *Handler) InstalledProfiles(name string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	m, ok := h.modules[name]
	if !ok {
		return nil
	}
	return m.conf.Profiles.Slice()
}

func (h *Handler) Latest(name, stream string) (model.ModuleVersion, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	m, ok := h.modules[name]
	if !ok {
		return model.ModuleVersion{}, false
	}
	return m.latest(stream)
}

func (h *Handler) Version(name, stream string, version int64) (model.ModuleVersion, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	m, ok := h.modules[name]
	if !ok {
		return model.ModuleVersion{}, false
	}
	return m.version(stream, version)
}

// LatestVersions returns the latest version of every known stream of every
// known module, in stable registry order.
func (h *Handler) LatestVersions() []model.ModuleVersion {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var versions []model.ModuleVersion
	for _, name := range h.order {
		m := h.modules[name]
		for _, stream := range m.streamNames() {
			if v, ok := m.latest(stream); ok {
				versions = append(versions, v)
			}
		}
	}
	return versions
}

// InstalledVersions filters the latest versions down to modules that are
// enabled on the matching stream and have at least one installed profile.
func (h *Handler) InstalledVersions() []model.ModuleVersion {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var versions []model.ModuleVersion
	for _, name := range h.order {
		m := h.modules[name]
		if m.conf.State != lib_model.ModStateEnabled || len(m.conf.Profiles) == 0 {
			continue
		}
		for _, stream := range m.streamNames() {
			v, ok := m.latest(stream)
			if ok && m.conf.Stream == v.Stream {
				versions = append(versions, v)
			}
		}
	}
	return versions
}

// InstalledPkgNames returns the union of package names provided by installed
// profiles across all modules.
func (h *Handler) InstalledPkgNames() set.Set[string] {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make(set.Set[string])
	for _, name := range h.order {
		m := h.modules[name]
		if len(m.conf.Profiles) == 0 || m.conf.Stream == "" {
			continue
		}
		v, ok := m.latest(m.conf.Stream)
		if !ok {
			continue
		}
		for profile := range m.conf.Profiles {
			for _, pkgName := range v.Profiles[profile] {
				names.Add(pkgName)
			}
		}
	}
	return names
}

func (h *Handler) EnabledStreams() map[string]string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	streams := make(map[string]string)
	for _, name := range h.order {
		m := h.modules[name]
		if m.conf.State == lib_model.ModStateEnabled {
			streams[name] = m.conf.Stream
		}
	}
	return streams
}

func (h *Handler) DisabledModules() map[string]struct{} {
	h.mu.RLock()
	defer h.mu.RUnlock()
	disabled := make(map[string]struct{})
	for _, name := range h.order {
		if h.modules[name].conf.State == lib_model.ModStateDisabled {
			disabled[name] = struct{}{}
		}
	}
	return disabled
}
