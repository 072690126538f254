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
	"github.com/pgrouter/pgrouter/go/pgr/catalog"
	"github.com/pgrouter/pgrouter/go/pgr/log"
	"github.com/pgrouter/pgrouter/go/pgr/parsetree"
)

// Eligible certifies that a statement passed fast-path classification.
// Classify is the only producer of Eligible values; holding one proves
// the certified statement satisfies every fast-path requirement.
type Eligible struct {
	stmt *parsetree.Statement

	// Key is the routing key value captured from the predicate: a
	// *parsetree.Const or *parsetree.Param deep-copied out of the input
	// tree, or nil when classification succeeded without capturing one
	// (INSERTs, reference tables, type-mismatched literals).
	Key parsetree.Expr
}

// Statement returns the certified statement.
func (e *Eligible) Statement() *parsetree.Statement {
	return e.stmt
}

// Classify decides whether a statement can take the fast path. The
// requirements:
//
//   - no CTEs, sublinks, set operations or set-returning targets
//   - every INSERT qualifies (multi-row included), except INSERT ... SELECT
//   - otherwise a single base relation, hash-distributed or reference
//   - for hash-distributed tables, an equality filter on the distribution
//     column ANDed with any other filters, with the distribution column
//     appearing nowhere else in the WHERE clause
//
// A nil result means the statement must go through full planning; that is
// the expected outcome for most statements, not a failure. Catalog lookup
// errors reject the statement the same way.
func Classify(stmt *parsetree.Statement, cat catalog.Catalog, opts Options) *Eligible {
	if !opts.Enabled || stmt == nil {
		return nil
	}

	// Only very simple statements qualify. Some of these checks are
	// stricter than strictly necessary; we prefer it that way.
	if stmt.HasCTEs || stmt.HasSubLinks || stmt.HasSetOperations ||
		stmt.HasTargetSRFs || stmt.HasModifyingCTE {
		return nil
	}

	if stmt.CommandType == parsetree.CmdInsert {
		if stmt.InsertSelect {
			// INSERT ... SELECT takes the richer insert-select planner.
			return nil
		}
		// A plain INSERT targets one statically known table; no predicate
		// analysis needed.
		return &Eligible{stmt: stmt}
	}

	// The FROM clause must hold exactly one base relation.
	if len(stmt.RangeTable) != 1 {
		return nil
	}
	rte := stmt.RangeTable[0]
	if rte.Kind != parsetree.RelationEntry {
		return nil
	}

	table, err := cat.FindTable(rte.RelationID)
	if err != nil {
		log.V(2).Infof("fast path: no usable metadata for relation %d: %v", rte.RelationID, err)
		return nil
	}

	// Range- and append-distributed tables cannot be routed by a single
	// key equality.
	if table.Method == catalog.Range || table.Method == catalog.Append {
		return nil
	}

	// The WHERE clause may only be empty for reference tables, which are
	// fully replicated and reachable on any worker.
	if stmt.JoinTree == nil ||
		(table.Method == catalog.Hash && stmt.JoinTree.Quals == nil) {
		return nil
	}

	distColumn := table.DistributionColumn(1)
	if distColumn == nil {
		return &Eligible{stmt: stmt}
	}

	quals := stmt.JoinTree.Quals
	if list, ok := quals.(parsetree.ExprList); ok {
		quals = parsetree.AndExprs(list)
	}

	// Two individual checks together guarantee single-shard routing:
	// (a) a top-level AND conjunct of the form `dist_key = value`, and
	// (b) no second appearance of the distribution column anywhere in the
	// quals. Allowing repeated appearances would force this code to
	// reason about the interaction of multiple key filters; rejecting
	// them keeps both checks trivial.
	key, found := conjunctionContainsColumnFilter(quals, distColumn)
	if !found || columnAppearsMultipleTimes(quals, distColumn) {
		return nil
	}
	return &Eligible{stmt: stmt, Key: key}
}
