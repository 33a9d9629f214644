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

package api

import (
	"context"
	"fmt"
	"strings"

	lib_model "github.com/modres/module-resolver/lib/model"
)

func (a *Api) GetModules(_ context.Context, installed bool) ([]lib_model.ModuleMeta, error) {
	return a.resHandler.Modules(installed), nil
}

func (a *Api) GetModuleVersion(_ context.Context, name string, filter lib_model.ModVersionFilter) (lib_model.ModuleMeta, error) {
	mv, ok := a.resHandler.FindVersion(name, filter)
	if !ok {
		return lib_model.ModuleMeta{}, lib_model.NewNotFoundError(&lib_model.NoModuleFoundError{Spec: name})
	}
	return a.resHandler.Meta(mv), nil
}

func (a *Api) GetModuleInfo(_ context.Context, name string, filter lib_model.ModVersionFilter) ([]lib_model.ModuleInfo, error) {
	infos := a.resHandler.Info(name, filter)
	if len(infos) == 0 {
		return nil, lib_model.NewNotFoundError(&lib_model.NoModuleFoundError{Spec: name})
	}
	return infos, nil
}

func (a *Api) EnableModules(ctx context.Context, moduleSpecs []string) error {
	return a.resHandler.Enable(ctx, moduleSpecs)
}

func (a *Api) DisableModules(ctx context.Context, moduleSpecs []string) error {
	return a.resHandler.Disable(ctx, moduleSpecs)
}

func (a *Api) ResetModules(ctx context.Context, moduleSpecs []string) error {
	return a.resHandler.Reset(ctx, moduleSpecs)
}

func (a *Api) InstallModules(_ context.Context, moduleSpecs []string, strict bool) (string, error) {
	return a.jobHandler.Create(fmt.Sprintf("install modules '%s'", strings.Join(moduleSpecs, ", ")), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.resHandler.Install(ctx, moduleSpecs, strict)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}

func (a *Api) UpgradeModules(_ context.Context, moduleSpecs []string) (string, error) {
	return a.jobHandler.Create(fmt.Sprintf("upgrade modules '%s'", strings.Join(moduleSpecs, ", ")), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.resHandler.Upgrade(ctx, moduleSpecs)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}

func (a *Api) RemoveModules(_ context.Context, moduleSpecs []string) (string, error) {
	return a.jobHandler.Create(fmt.Sprintf("remove modules '%s'", strings.Join(moduleSpecs, ", ")), func(ctx context.Context, cf context.CancelFunc) error {
		defer cf()
		err := a.resHandler.Remove(ctx, moduleSpecs)
		if err == nil {
			err = ctx.Err()
		}
		return err
	})
}
