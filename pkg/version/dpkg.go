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
	"os/exec"

	"github.com/pkg/errors"
)

// DpkgOrderer asks "dpkg --compare-versions" for every decision.
type DpkgOrderer struct {
	path string
}

// NewDpkgOrderer fails when no dpkg executable is on PATH.
func NewDpkgOrderer() (*DpkgOrderer, error) {
	path, err := exec.LookPath("dpkg")
	if err != nil {
		return nil, errors.Wrap(err, "dpkg is required by the dpkg version orderer")
	}
	return &DpkgOrderer{path: path}, nil
}

func (d *DpkgOrderer) GreaterOrEqual(a, b string) (bool, error) {
	cmd := exec.Command(d.path, "--compare-versions", a, "ge", b)
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, errors.Wrapf(err, "dpkg --compare-versions %s ge %s", a, b)
}
