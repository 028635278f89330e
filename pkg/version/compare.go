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

// Package version orders Ubuntu package versions against their Debian
// counterparts.
package version

import (
	"fmt"
	"strings"
)

// Ordering is the symbol written into the "vs debian" column.
type Ordering string

const (
	Less    Ordering = "<"
	Equal   Ordering = "="
	Greater Ordering = ">"
)

// Orderer decides Debian version precedence.
type Orderer interface {
	// GreaterOrEqual reports whether a sorts at or after b.
	GreaterOrEqual(a, b string) (bool, error)
}

// Compare orders local against reference. Versions whose upstream parts
// (everything before the first "-") are identical are Equal regardless of
// packaging revision; otherwise the full strings are handed to o.
func Compare(o Orderer, local, reference string) (Ordering, error) {
	if upstreamPart(local) == upstreamPart(reference) {
		return Equal, nil
	}
	ge, err := o.GreaterOrEqual(local, reference)
	if err != nil {
		return "", err
	}
	if ge {
		return Greater, nil
	}
	return Less, nil
}

func upstreamPart(v string) string {
	if i := strings.Index(v, "-"); i >= 0 {
		return v[:i]
	}
	return v
}

// New returns the orderer registered under name: "native" or "dpkg".
func New(name string) (Orderer, error) {
	switch name {
	case "", "native":
		return NativeOrderer{}, nil
	case "dpkg":
		return NewDpkgOrderer()
	}
	return nil, fmt.Errorf("unknown version orderer %q, expected one of \"native\" \"dpkg\"", name)
}
