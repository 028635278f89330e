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

// Package log prints coloured progress and error messages to the console.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	debugMode = false

	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// SetOutput redirects informational and error output.
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

// Debug logs debug messages when debug mode is enabled
func Debug(format string, elem ...any) {
	if debugMode {
		fmt.Fprintln(stdout, color.CyanString("[DEBUG] ")+fmt.Sprintf(format, elem...))
	}
}

// DebugH2 logs indented debug messages when debug mode is enabled
func DebugH2(format string, elem ...any) {
	if debugMode {
		fmt.Fprintln(stdout, color.CyanString("  [DEBUG] ")+fmt.Sprintf(format, elem...))
	}
}

// Info logs an informational message
func Info(format string, elem ...any) {
	fmt.Fprintln(stdout, color.BlueString(">>>>> ")+fmt.Sprintf(format, elem...))
}

// InfoH2 logs an indented informational message
func InfoH2(format string, elem ...any) {
	fmt.Fprintln(stdout, color.GreenString("  ")+fmt.Sprintf(format, elem...))
}

// Warning logs a warning to stderr
func Warning(format string, elem ...any) {
	fmt.Fprintln(stderr, color.YellowString("WARNING: ")+fmt.Sprintf(format, elem...))
}

// Error logs an error message to stderr
func Error(format string, elem ...any) {
	fmt.Fprintln(stderr, color.RedString("ERROR: ")+fmt.Sprintf(format, elem...))
}
