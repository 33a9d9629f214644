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

package conf_storage_hdl

import (
	"context"
	"os"
	"path"
	"reflect"
	"testing"

	lib_model "github.com/modres/module-resolver/lib/model"
	"github.com/modres/module-resolver/model"
	"github.com/modres/module-resolver/util"
	"github.com/modres/module-resolver/util/set"
	"github.com/y-du/go-log-level/level"
)

func TestMain(m *testing.M) {
	util.InitLogger(util.LoggerConfig{Level: level.Error, Terminal: true})
	m.Run()
}

func TestNew(t *testing.T) {
	if _, err := New("test/path", 0770); err == nil {
		t.Error("err == nil")
	}
	if _, err := New("/test/path", 0770); err != nil {
		t.Error("err != nil")
	}
}

func TestHandler_WriteList(t *testing.T) {
	ctx := context.Background()
	h, err := New(t.TempDir(), 0770)
	if err != nil {
		t.Fatal("err != nil")
	}
	if err = h.Init(); err != nil {
		t.Fatal("err != nil")
	}
	confs, err := h.List(ctx)
	if err != nil {
		t.Error("err != nil")
	}
	if len(confs) != 0 {
		t.Errorf("%d != 0", len(confs))
	}
	conf := model.ModuleConf{
		Name:     "nodejs",
		State:    lib_model.ModStateEnabled,
		Stream:   "18",
		Profiles: set.New("default"),
	}
	if err = h.Write(ctx, conf); err != nil {
		t.Error("err != nil")
	}
	confs, err = h.List(ctx)
	if err != nil {
		t.Error("err != nil")
	}
	a := map[string]model.ModuleConf{"nodejs": conf}
	if !reflect.DeepEqual(a, confs) {
		t.Errorf("%v != %v", a, confs)
	}
	conf.State = lib_model.ModStateDisabled
	if err = h.Write(ctx, conf); err != nil {
		t.Error("err != nil")
	}
	confs, _ = h.List(ctx)
	if confs["nodejs"].State != lib_model.ModStateDisabled {
		t.Errorf("%s != %s", confs["nodejs"].State, lib_model.ModStateDisabled)
	}
}

func TestHandler_WriteMissingName(t *testing.T) {
	h, err := New(t.TempDir(), 0770)
	if err != nil {
		t.Fatal("err != nil")
	}
	if err = h.Init(); err != nil {
		t.Fatal("err != nil")
	}
	if err = h.Write(context.Background(), model.ModuleConf{}); err == nil {
		t.Error("err == nil")
	}
}

func TestHandler_ListSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	h, err := New(dir, 0770)
	if err != nil {
		t.Fatal("err != nil")
	}
	if err = h.Init(); err != nil {
		t.Fatal("err != nil")
	}
	if err = os.WriteFile(path.Join(dir, "broken.yaml"), []byte("state: enabled"), 0660); err != nil {
		t.Fatal("err != nil")
	}
	if err = os.WriteFile(path.Join(dir, "sparse.yaml"), []byte("name: sparse"), 0660); err != nil {
		t.Fatal("err != nil")
	}
	if err = os.WriteFile(path.Join(dir, "ignored.txt"), []byte("x"), 0660); err != nil {
		t.Fatal("err != nil")
	}
	confs, err := h.List(context.Background())
	if err != nil {
		t.Error("err != nil")
	}
	if len(confs) != 1 {
		t.Fatalf("%d != 1", len(confs))
	}
	if confs["sparse"].State != lib_model.ModStateDefault {
		t.Errorf("%s != %s", confs["sparse"].State, lib_model.ModStateDefault)
	}
}
