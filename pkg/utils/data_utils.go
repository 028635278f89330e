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

package utils

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MergeRecord is one entry of a merges.ubuntu.com component report, keyed
// by the JSON field names (source_package, left_version, right_version, ...).
type MergeRecord map[string]interface{}

// SourcePackage returns the record's identity.
func (r MergeRecord) SourcePackage() string {
	return r.Field("source_package")
}

// Field renders the value stored under key as spreadsheet cell text.
// Missing and null values render as the empty string.
func (r MergeRecord) Field(key string) string {
	return renderValue(r[key])
}

// WithField returns a shallow copy of r with key set to value.
func (r MergeRecord) WithField(key, value string) MergeRecord {
	out := make(MergeRecord, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	out[key] = value
	return out
}

func renderValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case []interface{}:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, renderValue(item))
		}
		return strings.Join(items, ", ")
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// TeamMap maps a team identifier to the source packages it is subscribed to.
type TeamMap map[string][]string

// Teams returns the known team identifiers in sorted order.
func (m TeamMap) Teams() []string {
	teams := make([]string, 0, len(m))
	for team := range m {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}

// DisplayNames maps a team identifier to the label written into the
// Responsibility column.
type DisplayNames map[string]string
