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

package version

import (
	debversion "github.com/knqyf263/go-deb-version"
	"github.com/pkg/errors"
)

// NativeOrderer implements Debian version precedence in process. The empty
// version sorts before every other version, as it does for dpkg.
type NativeOrderer struct{}

func (NativeOrderer) GreaterOrEqual(a, b string) (bool, error) {
	if len(a) == 0 || len(b) == 0 {
		return len(b) == 0, nil
	}
	va, err := debversion.NewVersion(a)
	if err != nil {
		return false, errors.Wrapf(err, "invalid version %q", a)
	}
	vb, err := debversion.NewVersion(b)
	if err != nil {
		return false, errors.Wrapf(err, "invalid version %q", b)
	}
	return va.Compare(vb) >= 0, nil
}
