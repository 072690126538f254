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

// Package simplify folds constant boolean structure out of expression
// trees before planning: AND/OR chains with literal true/false operands,
// negated literals, and single-operand combinators. It never evaluates
// operators or parameters; value-level folding is the frontend's job.
// Inputs are left untouched, the result shares no nodes with them.
package simplify

import (
	"github.com/pgrouter/pgrouter/go/pgr/parsetree"
)

// Evaluator is the default expression simplification pass. The zero value
// is ready to use.
type Evaluator struct{}

// SimplifyExpr returns a simplified deep copy of expr. A nil expr stays
// nil.
func (Evaluator) SimplifyExpr(expr parsetree.Expr) parsetree.Expr {
	return simplifyExpr(expr)
}

// SimplifyTargetList returns a target list with every entry expression
// simplified. Entry order, names and ordinals are preserved.
func (Evaluator) SimplifyTargetList(tl []*parsetree.TargetEntry) []*parsetree.TargetEntry {
	if tl == nil {
		return nil
	}
	out := make([]*parsetree.TargetEntry, len(tl))
	for i, te := range tl {
		entry := *te
		entry.Expr = simplifyExpr(te.Expr)
		out[i] = &entry
	}
	return out
}

func simplifyExpr(expr parsetree.Expr) parsetree.Expr {
	switch expr := expr.(type) {
	case *parsetree.OpExpr:
		return &parsetree.OpExpr{
			Operator: expr.Operator,
			Left:     simplifyExpr(expr.Left),
			Right:    simplifyExpr(expr.Right),
		}
	case *parsetree.BoolExpr:
		return simplifyBoolExpr(expr)
	case parsetree.ExprList:
		out := make(parsetree.ExprList, len(expr))
		for i, e := range expr {
			out[i] = simplifyExpr(e)
		}
		return out
	default:
		return parsetree.CloneExpr(expr)
	}
}

func simplifyBoolExpr(expr *parsetree.BoolExpr) parsetree.Expr {
	args := make([]parsetree.Expr, 0, len(expr.Args))
	for _, arg := range expr.Args {
		args = append(args, simplifyExpr(arg))
	}

	switch expr.Operator {
	case parsetree.NotOp:
		if len(args) == 1 {
			if v, ok := parsetree.BoolConstValue(args[0]); ok {
				return parsetree.NewBoolConst(!v)
			}
		}
		return &parsetree.BoolExpr{Operator: parsetree.NotOp, Args: args}

	case parsetree.AndOp:
		// false short-circuits, true operands drop out
		kept := args[:0]
		for _, arg := range args {
			v, ok := parsetree.BoolConstValue(arg)
			if !ok {
				kept = append(kept, arg)
				continue
			}
			if !v {
				return parsetree.NewBoolConst(false)
			}
		}
		return collapse(parsetree.AndOp, kept, true)

	case parsetree.OrOp:
		kept := args[:0]
		for _, arg := range args {
			v, ok := parsetree.BoolConstValue(arg)
			if !ok {
				kept = append(kept, arg)
				continue
			}
			if v {
				return parsetree.NewBoolConst(true)
			}
		}
		return collapse(parsetree.OrOp, kept, false)
	}
	return &parsetree.BoolExpr{Operator: expr.Operator, Args: args}
}

// collapse reduces a combinator with zero or one remaining operands to
// its identity constant or the operand itself.
func collapse(op parsetree.BoolOperator, args []parsetree.Expr, identity bool) parsetree.Expr {
	switch len(args) {
	case 0:
		return parsetree.NewBoolConst(identity)
	case 1:
		return args[0]
	default:
		return &parsetree.BoolExpr{Operator: op, Args: args}
	}
}
