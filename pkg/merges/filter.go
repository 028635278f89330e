/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package merges

import "github.com/kubernetes-sigs/merges2csv/pkg/version"

// ShouldEmit decides whether a record becomes a row. With excludeSame only
// packages strictly behind Debian pass.
func ShouldEmit(ordering version.Ordering, excludeSame, teamIncluded bool) bool {
	if excludeSame && ordering != version.Less {
		return false
	}
	return teamIncluded
}
