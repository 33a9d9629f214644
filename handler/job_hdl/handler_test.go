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

package job_hdl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SENERGY-Platform/go-cc-job-handler/ccjh"
	lib_model "github.com/modres/module-resolver/lib/model"
)

func TestHandler_CreateGetCancel(t *testing.T) {
	h := New(context.Background(), ccjh.New(10))
	id, err := h.Create("test job", func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		return nil
	})
	if err != nil {
		t.Fatal("err != nil")
	}
	if id == "" {
		t.Error("id == \"\"")
	}
	job, err := h.Get(id)
	if err != nil {
		t.Error("err != nil")
	}
	if job.Description != "test job" {
		t.Errorf("%s != test job", job.Description)
	}
	if job.Started != nil || job.Completed != nil || job.Canceled != nil {
		t.Error("job not pending")
	}
	if _, err = h.Get("unknown"); err == nil {
		t.Error("err == nil")
	}
	var nfErr *lib_model.NotFoundError
	if !errors.As(h.Cancel("unknown"), &nfErr) {
		t.Error("err != NotFoundError")
	}
	if err = h.Cancel(id); err != nil {
		t.Error("err != nil")
	}
	job, _ = h.Get(id)
	if job.Canceled == nil {
		t.Error("Canceled == nil")
	}
}

func TestHandler_ListFilter(t *testing.T) {
	h := New(context.Background(), ccjh.New(10))
	idA, err := h.Create("a", func(ctx context.Context, cf context.CancelFunc) error { return nil })
	if err != nil {
		t.Fatal("err != nil")
	}
	_, err = h.Create("b", func(ctx context.Context, cf context.CancelFunc) error { return nil })
	if err != nil {
		t.Fatal("err != nil")
	}
	jobs := h.List(lib_model.JobFilter{})
	if len(jobs) != 2 {
		t.Errorf("%d != 2", len(jobs))
	}
	if jobs[0].Created.After(jobs[1].Created) {
		t.Error("jobs not ascending")
	}
	jobs = h.List(lib_model.JobFilter{Status: lib_model.JobPending})
	if len(jobs) != 2 {
		t.Errorf("%d != 2", len(jobs))
	}
	if err = h.Cancel(idA); err != nil {
		t.Error("err != nil")
	}
	jobs = h.List(lib_model.JobFilter{Status: lib_model.JobCanceled})
	if len(jobs) != 1 {
		t.Errorf("%d != 1", len(jobs))
	}
	if jobs[0].ID != idA {
		t.Errorf("%s != %s", jobs[0].ID, idA)
	}
	jobs = h.List(lib_model.JobFilter{Until: time.Now().UTC().Add(-time.Hour)})
	if len(jobs) != 0 {
		t.Errorf("%d != 0", len(jobs))
	}
}

func TestHandler_PurgeJobs(t *testing.T) {
	h := New(context.Background(), ccjh.New(10))
	id, err := h.Create("a", func(ctx context.Context, cf context.CancelFunc) error { return nil })
	if err != nil {
		t.Fatal("err != nil")
	}
	if n := h.PurgeJobs(0); n != 0 {
		t.Errorf("%d != 0", n)
	}
	if err = h.Cancel(id); err != nil {
		t.Error("err != nil")
	}
	if n := h.PurgeJobs(0); n != 1 {
		t.Errorf("%d != 1", n)
	}
	var nfErr *lib_model.NotFoundError
	if !errors.As(h.Cancel(id), &nfErr) {
		t.Error("err != NotFoundError")
	}
}
