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

package parser

import (
	"reflect"
	"testing"

	"github.com/modres/module-resolver/model"
)

func TestModuleSpecPossibilities(t *testing.T) {
	v := int64(20240101)
	b := ModuleSpecPossibilities("nodejs")
	a := []model.ModuleID{{Name: "nodejs"}}
	if reflect.DeepEqual(a, b) == false {
		t.Errorf("%v != %v", a, b)
	}
	// ------------------------------
	b = ModuleSpecPossibilities("nodejs:18")
	a = []model.ModuleID{
		{Name: "nodejs", Stream: "18"},
		{Name: "nodejs", Arch: "18"},
	}
	if reflect.DeepEqual(a, b) == false {
		t.Errorf("%v != %v", a, b)
	}
	// ------------------------------
	b = ModuleSpecPossibilities("nodejs:18:20240101")
	a = []model.ModuleID{
		{Name: "nodejs", Stream: "18", Version: &v},
		{Name: "nodejs", Stream: "18", Arch: "20240101"},
	}
	if reflect.DeepEqual(a, b) == false {
		t.Errorf("%v != %v", a, b)
	}
	// ------------------------------
	b = ModuleSpecPossibilities("nodejs:18:x86_64")
	a = []model.ModuleID{
		{Name: "nodejs", Stream: "18", Arch: "x86_64"},
	}
	if reflect.DeepEqual(a, b) == false {
		t.Errorf("%v != %v", a, b)
	}
	// ------------------------------
	b = ModuleSpecPossibilities("nodejs:18:20240101:abcd1234:x86_64/minimal")
	a = []model.ModuleID{
		{Name: "nodejs", Stream: "18", Version: &v, Context: "abcd1234", Arch: "x86_64", Profile: "minimal"},
	}
	if reflect.DeepEqual(a, b) == false {
		t.Errorf("%v != %v", a, b)
	}
	// ------------------------------
	b = ModuleSpecPossibilities("nodejs/")
	a = []model.ModuleID{{Name: "nodejs"}}
	if reflect.DeepEqual(a, b) == false {
		t.Errorf("%v != %v", a, b)
	}
	// ------------------------------
	if b = ModuleSpecPossibilities(""); b != nil {
		t.Errorf("%v != nil", b)
	}
	if b = ModuleSpecPossibilities("nodejs::18"); b != nil {
		t.Errorf("%v != nil", b)
	}
	if b = ModuleSpecPossibilities("a:b:c:d"); b != nil {
		t.Errorf("%v != nil", b)
	}
}

func TestModuleSpecPossibilities_Order(t *testing.T) {
	b := ModuleSpecPossibilities("nodejs:18:20240101")
	if len(b) != 2 {
		t.Fatalf("len(%v) != 2", b)
	}
	if b[0].Version == nil {
		t.Error("most constrained candidate not first")
	}
}

func TestArtifactPkgName(t *testing.T) {
	b, err := ArtifactPkgName("nodejs-1:18.12.1-1.module_el8.x86_64")
	if err != nil {
		t.Error("err != nil")
	}
	if b != "nodejs" {
		t.Errorf("unexpected name '%s'", b)
	}
	// ------------------------------
	b, err = ArtifactPkgName("perl-App-cpanminus-1.7044-5.module.noarch")
	if err != nil {
		t.Error("err != nil")
	}
	if b != "perl-App-cpanminus" {
		t.Errorf("unexpected name '%s'", b)
	}
	// ------------------------------
	if _, err = ArtifactPkgName("nodejs"); err == nil {
		t.Error("err == nil")
	}
}
