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
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	yaml3 "gopkg.in/yaml.v3"
	"sigs.k8s.io/yaml"
)

// IsURL reports whether source should be fetched over HTTP rather than read
// from disk.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// GetData reads source from an http(s) URL, a file:// URL or a plain path.
func GetData(ctx context.Context, client *resty.Client, source string) ([]byte, error) {
	if IsURL(source) {
		return FetchURL(ctx, client, source)
	}
	if strings.Contains(source, "://") && !strings.HasPrefix(source, "file://") {
		return nil, errors.Errorf("unsupported source %s", source)
	}
	filename, _ := filepath.Abs(strings.TrimPrefix(source, "file://"))
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", filename)
	}
	return data, nil
}

// GetMergesFromBytes decodes a merges report. Numbers keep their original
// text so ages and similar fields are written back unchanged.
func GetMergesFromBytes(data []byte) ([]MergeRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var records []MergeRecord
	if err := dec.Decode(&records); err != nil {
		return nil, errors.Wrap(err, "unable to parse merges json")
	}
	return records, nil
}

// GetTeamMapFromBytes decodes a team to packages mapping, given either as
// JSON or as YAML.
func GetTeamMapFromBytes(data []byte) (TeamMap, error) {
	teams := TeamMap{}
	if err := yaml.Unmarshal(data, &teams); err != nil {
		return nil, errors.Wrap(err, "unable to parse team mapping")
	}
	return teams, nil
}

// GetDisplayNames reads a YAML file of team identifier to label overrides.
func GetDisplayNames(filename string) (DisplayNames, error) {
	yamlFile, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	names := DisplayNames{}
	if err := yaml3.Unmarshal(yamlFile, &names); err != nil {
		return nil, errors.Wrapf(err, "error parsing file: %s", filename)
	}
	return names, nil
}
