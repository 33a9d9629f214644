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

package model

import (
	"fmt"
	"strconv"
)

// ModuleID is one candidate decomposition of a module spec string. Empty
// string fields and a nil Version act as wildcards during catalog queries.
type ModuleID struct {
	Name    string
	Stream  string
	Version *int64
	Context string
	Arch    string
	Profile string
}

func (d ModuleID) String() string {
	s := d.Name
	if d.Stream != "" {
		s += ":" + d.Stream
	}
	if d.Version != nil {
		s += ":" + strconv.FormatInt(*d.Version, 10)
	}
	if d.Context != "" {
		s += ":" + d.Context
	}
	if d.Arch != "" {
		s += ":" + d.Arch
	}
	if d.Profile != "" {
		s += "/" + d.Profile
	}
	return s
}

// ModuleVersion is an immutable catalog record addressed by its NSVCA tuple.
type ModuleVersion struct {
	Name        string              `yaml:"name" json:"name"`
	Stream      string              `yaml:"stream" json:"stream"`
	Version     int64               `yaml:"version" json:"version"`
	Context     string              `yaml:"context" json:"context"`
	Arch        string              `yaml:"arch" json:"arch"`
	Summary     string              `yaml:"summary" json:"summary"`
	Description string              `yaml:"description" json:"description"`
	Profiles    map[string][]string `yaml:"profiles" json:"profiles"`
	Artifacts   []string            `yaml:"artifacts" json:"artifacts"`
	RepoID      string              `yaml:"-" json:"repo_id"`
}

// FullID returns the NSVCA identifier of the version, unique per catalog.
func (v ModuleVersion) FullID() string {
	return fmt.Sprintf("%s:%s:%d:%s:%s", v.Name, v.Stream, v.Version, v.Context, v.Arch)
}

// PkgSelection bounds the installation of one package name to the artifacts
// of the module versions it was resolved from.
type PkgSelection struct {
	Name      string   `json:"name"`
	Artifacts []string `json:"artifacts"`
	Optional  bool     `json:"optional"`
}
