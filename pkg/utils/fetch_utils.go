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
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const userAgent = "merges2csv"

// NewHTTPClient returns the client used for every remote fetch. A zero
// timeout leaves the transport default in place.
func NewHTTPClient(timeout time.Duration) *resty.Client {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client
}

// FetchURL performs a single GET and returns the body. Any non-2xx status is
// an error; there are no retries.
func FetchURL(ctx context.Context, client *resty.Client, url string) ([]byte, error) {
	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", url)
	}
	if !resp.IsSuccess() {
		return nil, errors.Errorf("failed to fetch %s: bad status code %d (%s)",
			url, resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}
	return resp.Body(), nil
}
