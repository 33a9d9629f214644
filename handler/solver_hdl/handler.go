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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	lib_model "github.com/modres/module-resolver/lib/model"
	"github.com/modres/module-resolver/model"
)

const transactionsPath = "/transactions"

const (
	actionInstall = "install"
	actionUpgrade = "upgrade"
	actionRemove  = "remove"
)

// Handler hands package selections to an external dependency solver service.
// Solver failures are surfaced verbatim.
type Handler struct {
	baseUrl    string
	httpClient *http.Client
}

type transactionRequest struct {
	Action     string               `json:"action"`
	Selections []model.PkgSelection `json:"selections,omitempty"`
	PkgNames   []string             `json:"pkg_names,omitempty"`
}

func New(baseUrl string, timeout time.Duration) *Handler {
	return &Handler{
		baseUrl:    baseUrl,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (h *Handler) Install(ctx context.Context, selections []model.PkgSelection) error {
	return h.post(ctx, transactionRequest{Action: actionInstall, Selections: selections})
}

func (h *Handler) Upgrade(ctx context.Context, pkgNames []string) error {
	return h.post(ctx, transactionRequest{Action: actionUpgrade, PkgNames: pkgNames})
}

func (h *Handler) Remove(ctx context.Context, pkgNames []string) error {
	return h.post(ctx, transactionRequest{Action: actionRemove, PkgNames: pkgNames})
}

func (h *Handler) post(ctx context.Context, tr transactionRequest) error {
	body, err := json.Marshal(tr)
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseUrl+transactionsPath, bytes.NewReader(body))
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return lib_model.NewInternalError(fmt.Errorf("solver %s transaction failed: %s %s", tr.Action, resp.Status, b))
	}
	_, _ = io.ReadAll(resp.Body)
	return nil
}
