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
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Emit writes header followed by rows as CSV with "\n" line endings.
func Emit(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}
	for i, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write CSV row %d", i)
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush CSV writer")
}

// WriteFile creates path and emits the CSV into it. The file is closed on
// every path; a partially written file is left behind on error.
func WriteFile(path string, header []string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "failed to close %s", path)
		}
	}()
	return Emit(f, header, rows)
}
