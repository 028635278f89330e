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

// Package merges turns merge records into spreadsheet rows.
package merges

import (
	"github.com/kubernetes-sigs/merges2csv/pkg/utils"
	"github.com/kubernetes-sigs/merges2csv/pkg/version"
)

const (
	// ResponsibilityKey holds the derived team labels.
	ResponsibilityKey = "responsibility"
	// VsDebianKey holds the version comparison symbol.
	VsDebianKey = "vs debian"
	// escapedEqual keeps spreadsheets from reading "=" as a formula.
	escapedEqual = "'="
)

// Column pairs a record key with its header text.
type Column struct {
	Key     string
	Heading string
}

var columns = []Column{
	{Key: "source_package", Heading: "source_package"},
	{Key: ResponsibilityKey, Heading: "Responsibility"},
	{Key: "status", Heading: "Status"},
	{Key: "progress", Heading: "Progress"},
	{Key: "left_version", Heading: "Ubuntu Version"},
	{Key: "right_version", Heading: "Debian Version"},
	{Key: VsDebianKey, Heading: "vs debian"},
	{Key: "base_version", Heading: "Upstream Version"},
	{Key: "age", Heading: "Days since last merge"},
	{Key: "user", Heading: "Last Uploader"},
	{Key: "link", Heading: "link"},
	{Key: "uploader", Heading: "uploader"},
	{Key: "binaries", Heading: "binaries"},
	{Key: "short_description", Heading: "short_description"},
	{Key: "uploaded", Heading: "uploaded"},
}

// Header returns the header row.
func Header() []string {
	header := make([]string, len(columns))
	for i, column := range columns {
		header[i] = column.Heading
	}
	return header
}

// Project renders record as one output row.
func Project(record utils.MergeRecord, ordering version.Ordering) []string {
	row := make([]string, len(columns))
	for i, column := range columns {
		if column.Key == VsDebianKey {
			row[i] = orderingCell(ordering)
			continue
		}
		row[i] = record.Field(column.Key)
	}
	return row
}

func orderingCell(ordering version.Ordering) string {
	if ordering == version.Equal {
		return escapedEqual
	}
	return string(ordering)
}
