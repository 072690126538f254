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

// conjunctionContainsColumnFilter reports whether the predicate contains
// an equality filter on column ANDed with the rest of the tree. The
// descent stops at any combinator other than AND: a filter inside an OR
// or under NOT does not count, even when it is logically equivalent to a
// plain equality (e.g. `dist_key = 5 OR false`).
//
// key is the routing key value captured while matching, deep-copied out
// of the tree. The first capture in document order wins; recursion below
// merges candidates and never overwrites an earlier one. key can be set
// even when found is false, since operand inspection runs before the
// operator check.
func conjunctionContainsColumnFilter(node parsetree.Expr, column *parsetree.ColumnRef) (key parsetree.Expr, found bool) {
	switch node := node.(type) {
	case *parsetree.OpExpr:
		return distKeyInSimpleOpExpr(node, column)
	case *parsetree.BoolExpr:
		if node.Operator != parsetree.AndOp {
			return nil, false
		}
		for _, arg := range node.Args {
			k, ok := conjunctionContainsColumnFilter(arg, column)
			if key == nil {
				key = k
			}
			if ok {
				return key, true
			}
		}
	}
	return key, false
}

// distKeyInSimpleOpExpr checks whether expr compares the distribution
// column against a literal or an externally bound parameter, in either
// operand order. The comparison only qualifies when the operator has
// equality semantics.
//
// A literal is captured as the routing key only when its type matches the
// column's declared type; on a mismatch the filter still qualifies and
// shard resolution reconciles the types later. Parameters are captured
// regardless of type, since their values are unknown until bind time.
func distKeyInSimpleOpExpr(expr *parsetree.OpExpr, column *parsetree.ColumnRef) (key parsetree.Expr, matched bool) {
	var columnOperand *parsetree.ColumnRef
	var param *parsetree.Param
	var constant *parsetree.Const

	var other parsetree.Expr
	if c, ok := expr.Left.(*parsetree.ColumnRef); ok {
		columnOperand, other = c, expr.Right
	} else if c, ok := expr.Right.(*parsetree.ColumnRef); ok {
		columnOperand, other = c, expr.Left
	} else {
		return nil, false
	}
	switch other := other.(type) {
	case *parsetree.Param:
		param = other
	case *parsetree.Const:
		constant = other
	default:
		return nil, false
	}

	if param != nil && param.Kind != parsetree.ParamExternal {
		// only externally bound parameters have a value at bind time
		return nil, false
	}
	if constant != nil && constant.IsNull {
		// `dist_key = NULL` is never true, not a routing filter
		return nil, false
	}

	if !parsetree.EqualsRefOfColumnRef(columnOperand, column) {
		return nil, false
	}

	if constant != nil && constant.Type == column.Type {
		key = parsetree.CloneRefOfConst(constant)
	} else if param != nil {
		key = parsetree.CloneRefOfParam(param)
	}
	return key, expr.Operator.ImplementsEquality()
}
