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
	"github.com/pgrouter/pgrouter/go/pgr/parsetree"
)

// columnAppearsMultipleTimes reports whether column occurs more than once
// anywhere in quals. Unlike the matcher's descent this deliberately scans
// the entire tree, OR and NOT branches included: a second appearance of
// the distribution column rejects the statement outright, even in a
// branch that played no part in establishing eligibility. The scan stops
// at the second occurrence.
func columnAppearsMultipleTimes(quals parsetree.Expr, column *parsetree.ColumnRef) bool {
	count := 0
	parsetree.Walk(func(node parsetree.Expr) bool {
		if c, ok := node.(*parsetree.ColumnRef); ok && parsetree.EqualsRefOfColumnRef(c, column) {
			count++
			if count > 1 {
				return false
			}
		}
		return true
	}, quals)
	return count > 1
}
