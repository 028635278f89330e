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

// Package teams decides which requested teams own a source package.
package teams

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/kubernetes-sigs/merges2csv/pkg/utils"
)

// All requests every team in the mapping.
const All = "all"

// Unsubscribed is the mapping's bucket for packages without a team.
const Unsubscribed = "unsubscribed"

// Mode selects how per-team matches turn into an inclusion decision.
type Mode string

const (
	// ModeAny includes a package owned by at least one requested team.
	ModeAny Mode = "any"
	// ModeLast includes a package only when the last requested team owns it.
	ModeLast Mode = "last"
)

// ParseMode accepts "any" (or empty) and "last".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAny:
		return ModeAny, nil
	case ModeLast:
		return ModeLast, nil
	}
	return "", fmt.Errorf("unknown team mode %q, expected one of \"any\" \"last\"", s)
}

var defaultDisplayNames = utils.DisplayNames{
	"ubuntu-server":    "Server",
	"foundations-bugs": "Foundations",
	"desktop-packages": "Desktop",
	"kernel-packages":  "Kernel",
	"ubuntu-openstack": "OpenStack",
	"ubuntu-security":  "Security",
	"kubuntu-bugs":     "Kubuntu",
	"translators":      "Translations",
	Unsubscribed:       "",
}

// DefaultDisplayNames returns a copy of the built-in labels.
func DefaultDisplayNames() utils.DisplayNames {
	return MergeDisplayNames(defaultDisplayNames, nil)
}

// MergeDisplayNames returns base with overrides applied on top.
func MergeDisplayNames(base, overrides utils.DisplayNames) utils.DisplayNames {
	out := make(utils.DisplayNames, len(base)+len(overrides))
	for team, label := range base {
		out[team] = label
	}
	for team, label := range overrides {
		out[team] = label
	}
	return out
}

// Label returns the display label of team, or team itself when unmapped.
func Label(names utils.DisplayNames, team string) string {
	if label, ok := names[team]; ok {
		return label
	}
	return team
}

// UnknownTeamError is returned when a requested team is not in the mapping.
type UnknownTeamError struct {
	Unknown []string
	Known   []string
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("unknown team(s) %s", strings.Join(e.Unknown, ", "))
}

// Resolver computes the Responsibility label and the inclusion decision for
// a package against a fixed list of requested teams.
type Resolver struct {
	requested []string
	members   map[string]sets.String
	names     utils.DisplayNames
	mode      Mode
}

// NewResolver expands "all" to every team in sorted order, drops duplicate
// requests and rejects identifiers missing from teamMap.
func NewResolver(teamMap utils.TeamMap, names utils.DisplayNames, requested []string, mode Mode) (*Resolver, error) {
	known := sets.NewString(teamMap.Teams()...)
	seen := sets.NewString()
	unknown := sets.NewString()
	var expanded []string
	for _, team := range requested {
		candidates := []string{team}
		if team == All {
			candidates = known.List()
		}
		for _, candidate := range candidates {
			if !known.Has(candidate) {
				unknown.Insert(candidate)
				continue
			}
			if seen.Has(candidate) {
				continue
			}
			seen.Insert(candidate)
			expanded = append(expanded, candidate)
		}
	}
	if unknown.Len() > 0 {
		return nil, &UnknownTeamError{Unknown: unknown.List(), Known: known.List()}
	}

	members := make(map[string]sets.String, len(expanded))
	for _, team := range expanded {
		members[team] = sets.NewString(teamMap[team]...)
	}
	return &Resolver{
		requested: expanded,
		members:   members,
		names:     names,
		mode:      mode,
	}, nil
}

// Teams returns the requested teams after expansion.
func (r *Resolver) Teams() []string {
	return append([]string(nil), r.requested...)
}

// Resolve returns the comma separated labels of the requested teams owning
// pkg, in request order, and whether the package is included. Empty labels
// are left out of the responsibility string. A nil Resolver applies no team
// filter and includes everything.
func (r *Resolver) Resolve(pkg string) (string, bool) {
	if r == nil {
		return "", true
	}
	var labels []string
	included := false
	for i, team := range r.requested {
		owned := r.members[team].Has(pkg)
		if owned {
			if label := Label(r.names, team); label != "" {
				labels = append(labels, label)
			}
		}
		switch r.mode {
		case ModeLast:
			if i == len(r.requested)-1 {
				included = owned
			}
		default:
			included = included || owned
		}
	}
	return strings.Join(labels, ", "), included
}
