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
	lib_model "github.com/modres/module-resolver/lib/model"
	"github.com/modres/module-resolver/util/set"
)

// ModuleConf is the persisted per-module configuration. State "enabled"
// implies Stream is set; the invariant is checked against the catalog by the
// caller, not repaired here.
type ModuleConf struct {
	Name     string                `yaml:"name" json:"name"`
	State    lib_model.ModuleState `yaml:"state" json:"state"`
	Stream   string                `yaml:"stream" json:"stream"`
	Profiles set.Set[string]       `yaml:"profiles" json:"profiles"`
}

func NewModuleConf(name string) ModuleConf {
	return ModuleConf{
		Name:     name,
		State:    lib_model.ModStateDefault,
		Profiles: make(set.Set[string]),
	}
}
