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
	"github.com/pgrouter/pgrouter/go/pgr/parsetree"
	"github.com/pgrouter/pgrouter/go/pgr/pgerrors"
	"github.com/pgrouter/pgrouter/go/pgr/simplify"
)

// BindVariables holds externally bound parameter values keyed by
// parameter id. The planner never substitutes them; they are applied by
// the executor at bind time.
type BindVariables map[int]*parsetree.Const

// Evaluator is the expression simplification collaborator applied to the
// working statement before classification. simplify.Evaluator is the
// default implementation.
type Evaluator interface {
	SimplifyExpr(parsetree.Expr) parsetree.Expr
	SimplifyTargetList([]*parsetree.TargetEntry) []*parsetree.TargetEntry
}

// PlanFastPath plans a statement the classifier certified, replacing full
// planning entirely. The planner relies on the usual simplification of
// the working statement's target list and quals, so that pass is applied
// here; the placeholder plan is then built from the original statement to
// preserve its target-list shape for downstream consumers. bindVars are
// accepted for interface symmetry with the full planner and are not
// consulted.
//
// When original does not classify, PlanFastPath returns a
// FailedPrecondition error: the caller invoked the fast path for a
// statement it never certified.
func PlanFastPath(original, working *parsetree.Statement, bindVars BindVariables, ev Evaluator, cat catalog.Catalog, opts Options) (*PlaceholderPlan, error) {
	if ev == nil {
		ev = simplify.Evaluator{}
	}
	if working != nil {
		working.TargetList = ev.SimplifyTargetList(working.TargetList)
		if working.JoinTree != nil && working.JoinTree.Quals != nil {
			working.JoinTree.Quals = ev.SimplifyExpr(working.JoinTree.Quals)
		}
	}

	el := Classify(original, cat, opts)
	if el == nil {
		return nil, pgerrors.New(pgerrors.FailedPrecondition,
			"fast path invoked for a statement that is not fast-path eligible")
	}
	return BuildPlaceholderPlan(el), nil
}
