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

package model

import (
	"fmt"
	"strings"
)

type InternalError struct {
	err error
}

func NewInternalError(err error) *InternalError {
	return &InternalError{err: err}
}

func (e *InternalError) Error() string {
	return e.err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.err
}

type NotFoundError struct {
	err error
}

func NewNotFoundError(err error) *NotFoundError {
	return &NotFoundError{err: err}
}

func (e *NotFoundError) Error() string {
	return e.err.Error()
}

func (e *NotFoundError) Unwrap() error {
	return e.err
}

type InvalidInputError struct {
	err error
}

func NewInvalidInputError(err error) *InvalidInputError {
	return &InvalidInputError{err: err}
}

func (e *InvalidInputError) Error() string {
	return e.err.Error()
}

func (e *InvalidInputError) Unwrap() error {
	return e.err
}

// NoStreamSpecifiedError signals that stream precedence (explicit spec,
// enabled stream, catalog default) produced no stream for a module.
type NoStreamSpecifiedError struct {
	Name string
}

func (e *NoStreamSpecifiedError) Error() string {
	return fmt.Sprintf("no stream specified for module '%s'", e.Name)
}

type NoModuleFoundError struct {
	Spec string
}

func (e *NoModuleFoundError) Error() string {
	return fmt.Sprintf("no module found for '%s'", e.Spec)
}

type ProfileNotInstalledError struct {
	Name    string
	Profile string
}

func (e *ProfileNotInstalledError) Error() string {
	return fmt.Sprintf("profile '%s' of module '%s' is not installed", e.Profile, e.Name)
}

type NoProfileToRemoveError struct {
	Name string
}

func (e *NoProfileToRemoveError) Error() string {
	return fmt.Sprintf("no installed profile to remove for module '%s'", e.Name)
}

// EnableMultipleStreamsError signals that a single spec matched versions from
// more than one stream of a module and no stream could be committed.
type EnableMultipleStreamsError struct {
	Name string
}

func (e *EnableMultipleStreamsError) Error() string {
	return fmt.Sprintf("cannot enable multiple streams for module '%s'", e.Name)
}

// DifferentStreamEnabledError signals that a batch tried to enable a stream
// although a different stream of the same module was already committed
// within the same resolution pass.
type DifferentStreamEnabledError struct {
	Name      string
	Enabled   string
	Requested string
}

func (e *DifferentStreamEnabledError) Error() string {
	return fmt.Sprintf("stream '%s' of module '%s' already enabled, cannot enable '%s'", e.Enabled, e.Name, e.Requested)
}

// ModuleMarkingError aggregates the per-spec failures of one batch operation.
// NoMatchSpecs holds specs that matched nothing in the catalog, ErrorSpecs
// holds specs that matched but failed resolution downstream.
type ModuleMarkingError struct {
	NoMatchSpecs []string `json:"no_match_specs"`
	ErrorSpecs   []string `json:"error_specs"`
}

func (e *ModuleMarkingError) Error() string {
	var parts []string
	if len(e.NoMatchSpecs) > 0 {
		parts = append(parts, fmt.Sprintf("unable to match argument(s): %s", strings.Join(e.NoMatchSpecs, ", ")))
	}
	if len(e.ErrorSpecs) > 0 {
		parts = append(parts, fmt.Sprintf("unable to resolve argument(s): %s", strings.Join(e.ErrorSpecs, ", ")))
	}
	return strings.Join(parts, "; ")
}
