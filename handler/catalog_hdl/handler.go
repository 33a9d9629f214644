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

package catalog_hdl

import (
	"fmt"
	"os"
	"path"
	"strings"
	"sync"

	lib_model "github.com/modres/module-resolver/lib/model"
	"github.com/modres/module-resolver/model"
	"gopkg.in/yaml.v3"
)

const repoFileExt = ".yaml"

// Handler is an in-memory catalog loaded from one metadata file per
// repository. It answers NSVCA queries, default stream and profile lookups
// and keeps the active-version view in sync with enabled module streams.
type Handler struct {
	metadataPath    string
	versions        []model.ModuleVersion
	defaultStreams  map[string]string
	defaultProfiles map[string]map[string][]string
	hotfixRepos     []string
	active          map[string]struct{}
	mu              sync.RWMutex
}

type repoFile struct {
	ID             string                `yaml:"id"`
	Name           string                `yaml:"name"`
	ModuleHotfixes bool                  `yaml:"module_hotfixes"`
	Modules        []model.ModuleVersion `yaml:"modules"`
	Defaults       []defaultsEntry       `yaml:"defaults"`
}

type defaultsEntry struct {
	Name     string              `yaml:"name"`
	Stream   string              `yaml:"stream"`
	Profiles map[string][]string `yaml:"profiles"`
}

func New(metadataPath string) (*Handler, error) {
	if !path.IsAbs(metadataPath) {
		return nil, fmt.Errorf("metadata path must be absolute")
	}
	return &Handler{
		metadataPath:    metadataPath,
		defaultStreams:  make(map[string]string),
		defaultProfiles: make(map[string]map[string][]string),
		active:          make(map[string]struct{}),
	}, nil
}

func (h *Handler) Init() error {
	dirEntries, err := os.ReadDir(h.metadataPath)
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), repoFileExt) {
			continue
		}
		if err = h.readRepo(path.Join(h.metadataPath, entry.Name())); err != nil {
			return lib_model.NewInternalError(fmt.Errorf("reading repo metadata '%s': %s", entry.Name(), err))
		}
	}
	return nil
}

func (h *Handler) readRepo(pth string) error {
	file, err := os.Open(pth)
	if err != nil {
		return err
	}
	defer file.Close()
	var repo repoFile
	if err = yaml.NewDecoder(file).Decode(&repo); err != nil {
		return err
	}
	if repo.ID == "" {
		return fmt.Errorf("missing repo id")
	}
	if repo.ModuleHotfixes {
		h.hotfixRepos = append(h.hotfixRepos, repo.ID)
	}
	for _, mv := range repo.Modules {
		mv.RepoID = repo.ID
		h.versions = append(h.versions, mv)
	}
	for _, def := range repo.Defaults {
		if def.Stream != "" {
			h.defaultStreams[def.Name] = def.Stream
		}
		for stream, profiles := range def.Profiles {
			sp, ok := h.defaultProfiles[def.Name]
			if !ok {
				sp = make(map[string][]string)
				h.defaultProfiles[def.Name] = sp
			}
			sp[stream] = profiles
		}
	}
	return nil
}

func (h *Handler) All() []model.ModuleVersion {
	h.mu.RLock()
	defer h.mu.RUnlock()
	versions := make([]model.ModuleVersion, len(h.versions))
	copy(versions, h.versions)
	return versions
}

// Query returns all versions matching the identifier. Filters are
// conjunctive, absent fields match any value. A miss yields an empty result,
// never an error.
func (h *Handler) Query(id model.ModuleID) []model.ModuleVersion {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var matches []model.ModuleVersion
	for _, v := range h.versions {
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

func (h *Handler) IsActive(fullID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.active[fullID]
	return ok
}

func (h *Handler) DefaultStream(name string) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.defaultStreams[name]
}

func (h *Handler) DefaultProfiles(name, stream string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.defaultProfiles[name][stream]
}

func (h *Handler) HotfixRepos() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	repos := make([]string, len(h.hotfixRepos))
	copy(repos, h.hotfixRepos)
	return repos
}

// FilterModules recomputes the active-version view. A version is active if
// its repository bypasses module filtering, or its stream is the enabled
// stream of its module, or, for unconfigured modules, the default stream.
func (h *Handler) FilterModules(enabledStreams map[string]string, disabled map[string]struct{}, hotfixRepos []string) {
	hotfix := make(map[string]struct{}, len(hotfixRepos))
	for _, id := range hotfixRepos {
		hotfix[id] = struct{}{}
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.active = make(map[string]struct{})
	for _, v := range h.versions {
		if _, ok := hotfix[v.RepoID]; ok {
			h.active[v.FullID()] = struct{}{}
			continue
		}
		if _, ok := disabled[v.Name]; ok {
			continue
		}
		if stream, ok := enabledStreams[v.Name]; ok {
			if v.Stream == stream {
				h.active[v.FullID()] = struct{}{}
			}
			continue
		}
		if stream := h.defaultStreams[v.Name]; stream != "" && v.Stream == stream {
			h.active[v.FullID()] = struct{}{}
		}
	}
}
