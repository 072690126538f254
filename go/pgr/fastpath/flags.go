/*
Copyright 2025 The PGRouter Authors.

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

package fastpath

import (
	"github.com/spf13/pflag"
)

var enableFastPathPlanning = true

// RegisterFlags installs the fast-path flags on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&enableFastPathPlanning, "enable-fast-path-planning", enableFastPathPlanning,
		"Allow the router to skip full planning for statements provably confined to a single shard.")
}

// Options carries the per-call classifier configuration. The process-wide
// flag only seeds DefaultOptions; every call reads its own copy, so
// nothing is shared between concurrent classifications.
type Options struct {
	// Enabled gates fast-path classification entirely. When false,
	// Classify rejects every statement.
	Enabled bool
}

// DefaultOptions returns the Options seeded from the process flags.
func DefaultOptions() Options {
	return Options{Enabled: enableFastPathPlanning}
}
