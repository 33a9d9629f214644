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
	"github.com/modres/module-resolver/handler"
	"github.com/modres/module-resolver/handler/res_hdl"
)

type Api struct {
	resHandler *res_hdl.Handler
	jobHandler handler.JobHandler
}

func New(resHandler *res_hdl.Handler, jobHandler handler.JobHandler) *Api {
	return &Api{
		resHandler: resHandler,
		jobHandler: jobHandler,
	}
}
