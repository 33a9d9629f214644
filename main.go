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

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/SENERGY-Platform/go-cc-job-handler/ccjh"
	sb_logger "github.com/SENERGY-Platform/go-service-base/logger"
	srv_base "github.com/SENERGY-Platform/go-service-base/srv-base"
	srv_base_types "github.com/SENERGY-Platform/go-service-base/srv-base/types"
	"github.com/modres/module-resolver/api"
	"github.com/modres/module-resolver/handler/catalog_hdl"
	"github.com/modres/module-resolver/handler/conf_storage_hdl"
	"github.com/modres/module-resolver/handler/http_hdl"
	"github.com/modres/module-resolver/handler/job_hdl"
	"github.com/modres/module-resolver/handler/registry_hdl"
	"github.com/modres/module-resolver/handler/res_hdl"
	"github.com/modres/module-resolver/handler/solver_hdl"
	lib_model "github.com/modres/module-resolver/lib/model"
	"github.com/modres/module-resolver/util"
)

var version string

func main() {
	srv_base.PrintInfo(lib_model.ServiceName, version)

	flags := util.NewFlags()

	config, err := util.NewConfig(flags.ConfPath)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logFile, err := util.InitLogger(config.Logger)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		var logFileError *sb_logger.LogFileError
		if errors.As(err, &logFileError) {
			os.Exit(1)
		}
	}
	if logFile != nil {
		defer logFile.Close()
	}

	util.Logger.Debugf("config: %s", srv_base.ToJsonStr(config))

	storageHandler, err := conf_storage_hdl.New(config.ModConfStorage.ModulesDirPath, 0644)
	if err != nil {
		util.Logger.Error(err)
		return
	}
	if err = storageHandler.Init(); err != nil {
		util.Logger.Error(err)
		return
	}

	catalogHandler, err := catalog_hdl.New(config.Catalog.MetadataPath)
	if err != nil {
		util.Logger.Error(err)
		return
	}
	if err = catalogHandler.Init(); err != nil {
		util.Logger.Error(err)
		return
	}

	registryHandler := registry_hdl.New(storageHandler)
	solverHandler := solver_hdl.New(config.Solver.BaseUrl, time.Duration(config.Solver.Timeout))
	resHandler := res_hdl.New(registryHandler, catalogHandler, solverHandler)
	if err = resHandler.Init(context.Background()); err != nil {
		util.Logger.Error(err)
		return
	}

	ccHandler := ccjh.New(config.Jobs.BufferSize)
	jobCtx, jobCF := context.WithCancel(context.Background())
	defer jobCF()
	jobHandler := job_hdl.New(jobCtx, ccHandler)

	purgeCtx, purgeCF := context.WithCancel(context.Background())
	defer purgeCF()
	go func() {
		ticker := time.NewTicker(time.Duration(config.Jobs.PJHInterval) * time.Microsecond)
		defer ticker.Stop()
		for {
			select {
			case <-purgeCtx.Done():
				return
			case <-ticker.C:
				if n := jobHandler.PurgeJobs(config.Jobs.MaxAge); n > 0 {
					util.Logger.Debugf("purged %d jobs", n)
				}
			}
		}
	}()

	mApi := api.New(resHandler, jobHandler)

	httpHandler := http_hdl.New(mApi, map[string]string{
		lib_model.HeaderApiVer:  version,
		lib_model.HeaderSrvName: lib_model.ServiceName,
	})

	if err = ccHandler.RunAsync(config.Jobs.MaxNumber, time.Duration(config.Jobs.CCHInterval)*time.Microsecond); err != nil {
		util.Logger.Error(err)
		return
	}

	listener, err := net.Listen("tcp", ":"+strconv.FormatInt(int64(config.ServerPort), 10))
	if err != nil {
		util.Logger.Error(err)
		return
	}
	srv_base.StartServer(&http.Server{Handler: httpHandler}, listener, srv_base_types.DefaultShutdownSignals)

	ccHandler.Stop()
}
