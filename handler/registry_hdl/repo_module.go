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
	"sort"

	"github.com/modres/module-resolver/model"
)

// repoModule aggregates the known versions and the persisted configuration
// of one module name. Owned exclusively by the registry handler.
type repoModule struct {
	name    string
	streams map[string][]model.ModuleVersion
	conf    model.ModuleConf
}

func newRepoModule(name string) *repoModule {
	return &repoModule{
		name:    name,
		streams: make(map[string][]model.ModuleVersion),
		conf:    model.NewModuleConf(name),
	}
}

func (m *repoModule) addVersion(mv model.ModuleVersion) {
	versions := m.streams[mv.Stream]
	for _, v := range versions {
		if v.FullID() == mv.FullID() {
			return
		}
	}
	versions = append(versions, mv)
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Version < versions[j].Version
	})
	m.streams[mv.Stream] = versions
}

// latest returns the highest version of the given stream.
func (m *repoModule) latest(stream string) (model.ModuleVersion, bool) {
	versions := m.streams[stream]
	if len(versions) == 0 {
		return model.ModuleVersion{}, false
	}
	return versions[len(versions)-1], true
}

func (m *repoModule) version(stream string, version int64) (model.ModuleVersion, bool) {
	for _, v := range m.streams[stream] {
		if v.Version == version {
			return v, true
		}
	}
	return model.ModuleVersion{}, false
}

func (m *repoModule) streamNames() []string {
	var names []string
	for name := range m.streams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
