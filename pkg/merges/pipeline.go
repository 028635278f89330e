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

import (
	"github.com/pkg/errors"

	"github.com/kubernetes-sigs/merges2csv/pkg/log"
	"github.com/kubernetes-sigs/merges2csv/pkg/teams"
	"github.com/kubernetes-sigs/merges2csv/pkg/utils"
	"github.com/kubernetes-sigs/merges2csv/pkg/version"
)

// Options control which records survive Transform.
type Options struct {
	Orderer version.Orderer
	// Resolver is nil when no team filter was requested.
	Resolver            *teams.Resolver
	ExcludeSameUpstream bool
}

// Transform resolves teams, compares versions, filters and projects every
// record in input order. The first comparison failure aborts the whole run.
func Transform(records []utils.MergeRecord, opts Options) ([][]string, error) {
	if opts.Orderer == nil {
		return nil, errors.New("no version orderer configured")
	}
	var rows [][]string
	for _, record := range records {
		pkg := record.SourcePackage()
		responsibility, included := opts.Resolver.Resolve(pkg)
		if responsibility != "" {
			record = record.WithField(ResponsibilityKey, responsibility)
		}

		local, reference := record.Field("left_version"), record.Field("right_version")
		if len(local) == 0 || len(reference) == 0 {
			log.Warning("%s has no left_version or right_version, comparing it as empty", pkg)
		}
		ordering, err := version.Compare(opts.Orderer, local, reference)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to compare versions of %s", pkg)
		}

		if !ShouldEmit(ordering, opts.ExcludeSameUpstream, included) {
			log.DebugH2("skipping %s (%s %s %s, team match %v)", pkg, local, ordering, reference, included)
			continue
		}
		rows = append(rows, Project(record, ordering))
	}
	return rows, nil
}
