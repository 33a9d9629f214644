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

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/modres/module-resolver/model"
)

// ModuleSpecPossibilities decomposes a module spec string into candidate
// identifier tuples, most constrained first. A trailing "/profile" segment is
// always treated as a profile qualifier, colons separate the NSVCA fields.
// Syntactic forms: N, N:S, N:A, N:S:V, N:S:A, N:S:V:A, N:S:V:C:A, each with
// an optional profile. A version field must parse as a base-10 integer,
// otherwise forms that would place a version there are skipped. Module spec
// syntax overlaps with plain package names, which is why every plausible
// decomposition is produced instead of a single parse.
func ModuleSpecPossibilities(spec string) []model.ModuleID {
	profile := ""
	rest := spec
	if i := strings.LastIndex(spec, "/"); i >= 0 {
		profile = spec[i+1:]
		rest = spec[:i]
	}
	if rest == "" {
		return nil
	}
	parts := strings.Split(rest, ":")
	for _, p := range parts {
		if p == "" {
			return nil
		}
	}
	var ids []model.ModuleID
	add := func(id model.ModuleID) {
		id.Profile = profile
		ids = append(ids, id)
	}
	version := func(s string) *int64 {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil
		}
		return &v
	}
	switch len(parts) {
	case 1:
		add(model.ModuleID{Name: parts[0]})
	case 2:
		add(model.ModuleID{Name: parts[0], Stream: parts[1]})
		add(model.ModuleID{Name: parts[0], Arch: parts[1]})
	case 3:
		if v := version(parts[2]); v != nil {
			add(model.ModuleID{Name: parts[0], Stream: parts[1], Version: v})
		}
		add(model.ModuleID{Name: parts[0], Stream: parts[1], Arch: parts[2]})
	case 4:
		if v := version(parts[2]); v != nil {
			add(model.ModuleID{Name: parts[0], Stream: parts[1], Version: v, Arch: parts[3]})
		}
	case 5:
		if v := version(parts[2]); v != nil {
			add(model.ModuleID{Name: parts[0], Stream: parts[1], Version: v, Context: parts[3], Arch: parts[4]})
		}
	}
	return ids
}

// ArtifactPkgName extracts the package name from an exact package reference
// of the form "name-[epoch:]version-release.arch".
func ArtifactPkgName(artifact string) (string, error) {
	i := strings.LastIndex(artifact, ".")
	if i < 0 {
		return "", fmt.Errorf("invalid artifact '%s'", artifact)
	}
	nvr := artifact[:i]
	j := strings.LastIndex(nvr, "-")
	if j < 0 {
		return "", fmt.Errorf("invalid artifact '%s'", artifact)
	}
	nv := nvr[:j]
	k := strings.LastIndex(nv, "-")
	if k < 0 {
		return "", fmt.Errorf("invalid artifact '%s'", artifact)
	}
	return nv[:k], nil
}
