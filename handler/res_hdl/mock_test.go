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
)

type catalogMock struct {
	Versions        []model.ModuleVersion
	DefaultStreams  map[string]string
	DefaultProfs    map[string]map[string][]string
	HotfixRepoIDs   []string
	Inactive        map[string]struct{}
	FilterC         int
	LastEnabled     map[string]string
	LastDisabled    map[string]struct{}
	LastHotfixRepos []string
}

func (m *catalogMock) All() []model.ModuleVersion {
	return m.Versions
}

func (m *catalogMock) Query(id model.ModuleID) []model.ModuleVersion {
	var matches []model.ModuleVersion
	for _, v := range m.Versions {
		if id.Name != "" && v.Name != id.Name {
			continue
		}
		if id.Stream != "" && v.Stream != id.Stream {
			continue
		}
		if id.Version != nil && v.Version != *id.Version {
			continue
		}
		if id.Context != "" && v.Context != id.Context {
			continue
		}
		if id.Arch != "" && v.Arch != id.Arch {
			continue
		}
		matches = append(matches, v)
	}
	return matches
}

func (m *catalogMock) IsActive(fullID string) bool {
	_, ok := m.Inactive[fullID]
	return !ok
}

func (m *catalogMock) DefaultStream(name string) string {
	return m.DefaultStreams[name]
}

func (m *catalogMock) DefaultProfiles(name, stream string) []string {
	return m.DefaultProfs[name][stream]
}

func (m *catalogMock) HotfixRepos() []string {
	return m.HotfixRepoIDs
}

func (m *catalogMock) FilterModules(enabledStreams map[string]string, disabled map[string]struct{}, hotfixRepos []string) {
	m.FilterC++
	m.LastEnabled = enabledStreams
	m.LastDisabled = disabled
	m.LastHotfixRepos = hotfixRepos
}

type solverMock struct {
	Installs [][]model.PkgSelection
	Upgrades [][]string
	Removes  [][]string
	Err      error
}

func (m *solverMock) Install(_ context.Context, selections []model.PkgSelection) error {
	if m.Err != nil {
		return m.Err
	}
	m.Installs = append(m.Installs, selections)
	return nil
}

func (m *solverMock) Upgrade(_ context.Context, pkgNames []string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Upgrades = append(m.Upgrades, pkgNames)
	return nil
}

func (m *solverMock) Remove(_ context.Context, pkgNames []string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Removes = append(m.Removes, pkgNames)
	return nil
}

type storageMock struct {
	Confs map[string]model.ModuleConf
}

func (m *storageMock) Init() error {
	return nil
}

func (m *storageMock) List(_ context.Context) (map[string]model.ModuleConf, error) {
	return m.Confs, nil
}

func (m *storageMock) Write(_ context.Context, conf model.ModuleConf) error {
	if m.Confs == nil {
		m.Confs = make(map[string]model.ModuleConf)
	}
	m.Confs[conf.Name] = conf
	return nil
}
