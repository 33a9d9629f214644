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

package util

import (
	"errors"
	"net/http"

	lib_model "github.com/modres/module-resolver/lib/model"
)

func GetStatusCode(err error) int {
	var nfe *lib_model.NotFoundError
	if errors.As(err, &nfe) {
		return http.StatusNotFound
	}
	var iie *lib_model.InvalidInputError
	if errors.As(err, &iie) {
		return http.StatusBadRequest
	}
	var nse *lib_model.NoStreamSpecifiedError
	if errors.As(err, &nse) {
		return http.StatusBadRequest
	}
	var mme *lib_model.ModuleMarkingError
	if errors.As(err, &mme) {
		return http.StatusConflict
	}
	var eme *lib_model.EnableMultipleStreamsError
	if errors.As(err, &eme) {
		return http.StatusConflict
	}
	var dse *lib_model.DifferentStreamEnabledError
	if errors.As(err, &dse) {
		return http.StatusConflict
	}
	var ie *lib_model.InternalError
	if errors.As(err, &ie) {
		return http.StatusInternalServerError
	}
	return 0
}
