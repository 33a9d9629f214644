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

package http_hdl

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/modres/module-resolver/lib"
	"github.com/modres/module-resolver/lib/model"
)

const modNameParam = "m"

type modulesQuery struct {
	Installed bool `form:"installed"`
}

type modVersionQuery struct {
	Stream  string `form:"stream"`
	Version string `form:"version"`
}

func getModulesH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		query := modulesQuery{}
		if err := gc.ShouldBindQuery(&query); err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		modules, err := a.GetModules(gc.Request.Context(), query.Installed)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, modules)
	}
}

func getModuleVersionH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		filter, err := parseModVersionQuery(gc)
		if err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		meta, err := a.GetModuleVersion(gc.Request.Context(), gc.Param(modNameParam), filter)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, meta)
	}
}

func getModuleInfoH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		filter, err := parseModVersionQuery(gc)
		if err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		infos, err := a.GetModuleInfo(gc.Request.Context(), gc.Param(modNameParam), filter)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, infos)
	}
}

func parseModVersionQuery(gc *gin.Context) (model.ModVersionFilter, error) {
	query := modVersionQuery{}
	if err := gc.ShouldBindQuery(&query); err != nil {
		return model.ModVersionFilter{}, err
	}
	filter := model.ModVersionFilter{Stream: query.Stream}
	if query.Version != "" {
		v, err := strconv.ParseInt(query.Version, 10, 64)
		if err != nil {
			return model.ModVersionFilter{}, err
		}
		filter.Version = &v
	}
	return filter, nil
}

func postModStateEnableH(a lib.Api) gin.HandlerFunc {
	return modStateH(func(gc *gin.Context, specs []string) error {
		return a.EnableModules(gc.Request.Context(), specs)
	})
}

func postModStateDisableH(a lib.Api) gin.HandlerFunc {
	return modStateH(func(gc *gin.Context, specs []string) error {
		return a.DisableModules(gc.Request.Context(), specs)
	})
}

func postModStateResetH(a lib.Api) gin.HandlerFunc {
	return modStateH(func(gc *gin.Context, specs []string) error {
		return a.ResetModules(gc.Request.Context(), specs)
	})
}

func modStateH(apply func(*gin.Context, []string) error) gin.HandlerFunc {
	return func(gc *gin.Context) {
		req := model.ModStateRequest{}
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		if err := apply(gc, req.ModuleSpecs); err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func postModInstallationsH(a lib.Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		req := model.ModInstallRequest{}
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		jID, err := a.InstallModules(gc.Request.Context(), req.ModuleSpecs, req.Strict)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}

func patchModInstallationsH(a lib.Api) gin.HandlerFunc {
	return modInstallationsH(func(gc *gin.Context, specs []string) (string, error) {
		return a.UpgradeModules(gc.Request.Context(), specs)
	})
}

func deleteModInstallationsH(a lib.Api) gin.HandlerFunc {
	return modInstallationsH(func(gc *gin.Context, specs []string) (string, error) {
		return a.RemoveModules(gc.Request.Context(), specs)
	})
}

func modInstallationsH(apply func(*gin.Context, []string) (string, error)) gin.HandlerFunc {
	return func(gc *gin.Context) {
		req := model.ModStateRequest{}
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(model.NewInvalidInputError(err))
			return
		}
		jID, err := apply(gc, req.ModuleSpecs)
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.String(http.StatusOK, jID)
	}
}
