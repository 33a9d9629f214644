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
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	lib_model "github.com/modres/module-resolver/lib/model"
	"github.com/modres/module-resolver/model"
	"github.com/modres/module-resolver/util"
	"gopkg.in/yaml.v3"
)

const confFileExt = ".yaml"

// Handler persists one module configuration file per module name under the
// configured modules directory.
type Handler struct {
	wrkSpcPath string
	perm       fs.FileMode
}

func New(workspacePath string, perm fs.FileMode) (*Handler, error) {
	if !path.IsAbs(workspacePath) {
		return nil, fmt.Errorf("workspace path must be absolute")
	}
	return &Handler{
		wrkSpcPath: workspacePath,
		perm:       perm,
	}, nil
}

func (h *Handler) Init() error {
	return os.MkdirAll(h.wrkSpcPath, h.perm)
}

func (h *Handler) List(ctx context.Context) (map[string]model.ModuleConf, error) {
	dirEntries, err := os.ReadDir(h.wrkSpcPath)
	if err != nil {
		return nil, lib_model.NewInternalError(err)
	}
	confs := make(map[string]model.ModuleConf)
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), confFileExt) {
			continue
		}
		conf, err := h.readConf(path.Join(h.wrkSpcPath, entry.Name()))
		if err != nil {
			util.Logger.Errorf("reading module config '%s' failed: %s", entry.Name(), err)
			continue
		}
		confs[conf.Name] = conf
		if ctx.Err() != nil {
			return nil, lib_model.NewInternalError(ctx.Err())
		}
	}
	return confs, nil
}

func (h *Handler) Write(_ context.Context, conf model.ModuleConf) error {
	if conf.Name == "" {
		return lib_model.NewInvalidInputError(fmt.Errorf("missing module name"))
	}
	file, err := os.OpenFile(path.Join(h.wrkSpcPath, conf.Name+confFileExt), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, h.perm)
	if err != nil {
		return lib_model.NewInternalError(err)
	}
	defer file.Close()
	if err = yaml.NewEncoder(file).Encode(conf); err != nil {
		return lib_model.NewInternalError(err)
	}
	return nil
}

func (h *Handler) readConf(pth string) (model.ModuleConf, error) {
	file, err := os.Open(pth)
	if err != nil {
		return model.ModuleConf{}, err
	}
	defer file.Close()
	var conf model.ModuleConf
	if err = yaml.NewDecoder(file).Decode(&conf); err != nil {
		return model.ModuleConf{}, err
	}
	if conf.Name == "" {
		return model.ModuleConf{}, fmt.Errorf("missing module name")
	}
	if conf.State == "" {
		conf.State = lib_model.ModStateDefault
	}
	return conf, nil
}
