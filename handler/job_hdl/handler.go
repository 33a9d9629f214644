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
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SENERGY-Platform/go-cc-job-handler/ccjh"
	"github.com/google/uuid"
	lib_model "github.com/modres/module-resolver/lib/model"
)

type Handler struct {
	ctx       context.Context
	ccHandler *ccjh.Handler
	jobs      map[string]*job
	mu        sync.RWMutex
}

func New(ctx context.Context, ccHandler *ccjh.Handler) *Handler {
	return &Handler{
		ctx:       ctx,
		ccHandler: ccHandler,
		jobs:      make(map[string]*job),
	}
}

func (h *Handler) Create(desc string, tFunc func(context.Context, context.CancelFunc) error) (string, error) {
	uid, err := uuid.NewRandom()
	if err != nil {
		return "", lib_model.NewInternalError(err)
	}
	id := uid.String()
	ctx, cf := context.WithCancel(h.ctx)
	j := job{
		meta: lib_model.Job{
			ID:          id,
			Created:     time.Now().UTC(),
			Description: desc,
		},
		tFunc: tFunc,
		ctx:   ctx,
		cFunc: cf,
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err = h.ccHandler.Add(&j); err != nil {
		return "", lib_model.NewInternalError(err)
	}
	h.jobs[id] = &j
	return id, nil
}

func (h *Handler) Get(id string) (lib_model.Job, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	j, ok := h.jobs[id]
	if !ok {
		return lib_model.Job{}, lib_model.NewNotFoundError(fmt.Errorf("job '%s' not found", id))
	}
	return j.Meta(), nil
}

func (h *Handler) Cancel(id string) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	j, ok := h.jobs[id]
	if !ok {
		return lib_model.NewNotFoundError(fmt.Errorf("job '%s' not found", id))
	}
	j.Cancel()
	return nil
}

func (h *Handler) List(filter lib_model.JobFilter) []lib_model.Job {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var jobs []lib_model.Job
	for _, j := range h.jobs {
		if check(filter, j.Meta()) {
			jobs = append(jobs, j.Meta())
		}
	}
	if filter.SortDesc {
		sort.Slice(jobs, func(i, j int) bool {
			return jobs[i].Created.After(jobs[j].Created)
		})
	} else {
		sort.Slice(jobs, func(i, j int) bool {
			return jobs[i].Created.Before(jobs[j].Created)
		})
	}
	return jobs
}

func (h *Handler) PurgeJobs(maxAge int64) int {
	var old []string
	tNow := time.Now().UTC()
	h.mu.RLock()
	for id, j := range h.jobs {
		m := j.Meta()
		if j.IsCanceled() || m.Completed != nil || m.Canceled != nil {
			if tNow.Sub(m.Created).Microseconds() >= maxAge {
				old = append(old, id)
			}
		}
	}
	h.mu.RUnlock()
	h.mu.Lock()
	for _, id := range old {
		delete(h.jobs, id)
	}
	h.mu.Unlock()
	return len(old)
}

func check(filter lib_model.JobFilter, job lib_model.Job) bool {
	if !filter.Since.IsZero() && !job.Created.After(filter.Since) {
		return false
	}
	if !filter.Until.IsZero() && !job.Created.Before(filter.Until) {
		return false
	}
	switch filter.Status {
	case lib_model.JobPending:
		if job.Started != nil || job.Canceled != nil || job.Completed != nil {
			return false
		}
	case lib_model.JobRunning:
		if job.Started == nil || job.Canceled != nil || job.Completed != nil {
			return false
		}
	case lib_model.JobCanceled:
		if job.Canceled == nil {
			return false
		}
	case lib_model.JobCompleted:
		if job.Completed == nil {
			return false
		}
	case lib_model.JobError:
		if job.Completed == nil || job.Error == nil {
			return false
		}
	case lib_model.JobOK:
		if job.Completed == nil || job.Error != nil {
			return false
		}
	}
	return true
}
