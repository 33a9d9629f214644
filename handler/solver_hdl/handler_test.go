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

package solver_hdl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	lib_model "github.com/modres/module-resolver/lib/model"
	"github.com/modres/module-resolver/model"
)

func TestHandler_Install(t *testing.T) {
	var request transactionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("%s != POST", r.Method)
		}
		if r.URL.Path != transactionsPath {
			t.Errorf("%s != %s", r.URL.Path, transactionsPath)
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Error("err != nil")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	h := New(srv.URL, time.Second)
	selections := []model.PkgSelection{
		{Name: "nodejs", Artifacts: []string{"nodejs-1:18.12.1-1.module.x86_64"}, Optional: true},
	}
	if err := h.Install(context.Background(), selections); err != nil {
		t.Error("err != nil")
	}
	if request.Action != actionInstall {
		t.Errorf("%s != %s", request.Action, actionInstall)
	}
	if !reflect.DeepEqual(request.Selections, selections) {
		t.Errorf("%v != %v", request.Selections, selections)
	}
}

func TestHandler_UpgradeRemove(t *testing.T) {
	var requests []transactionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request transactionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Error("err != nil")
		}
		requests = append(requests, request)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	h := New(srv.URL, time.Second)
	if err := h.Upgrade(context.Background(), []string{"nodejs"}); err != nil {
		t.Error("err != nil")
	}
	if err := h.Remove(context.Background(), []string{"npm"}); err != nil {
		t.Error("err != nil")
	}
	if len(requests) != 2 {
		t.Fatalf("%d != 2", len(requests))
	}
	if requests[0].Action != actionUpgrade || !reflect.DeepEqual(requests[0].PkgNames, []string{"nodejs"}) {
		t.Errorf("unexpected request %v", requests[0])
	}
	if requests[1].Action != actionRemove || !reflect.DeepEqual(requests[1].PkgNames, []string{"npm"}) {
		t.Errorf("unexpected request %v", requests[1])
	}
}

func TestHandler_SolverFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("conflicting requests"))
	}))
	defer srv.Close()
	h := New(srv.URL, time.Second)
	err := h.Remove(context.Background(), []string{"nodejs"})
	if err == nil {
		t.Fatal("err == nil")
	}
	var iErr *lib_model.InternalError
	if !errors.As(err, &iErr) {
		t.Error("err != InternalError")
	}
}
