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

package parsetree

// CloneExpr creates a deep clone of the input.
func CloneExpr(in Expr) Expr {
	if in == nil {
		return nil
	}
	switch in := in.(type) {
	case *OpExpr:
		return CloneRefOfOpExpr(in)
	case *BoolExpr:
		return CloneRefOfBoolExpr(in)
	case *ColumnRef:
		return CloneRefOfColumnRef(in)
	case *Param:
		return CloneRefOfParam(in)
	case *Const:
		return CloneRefOfConst(in)
	case ExprList:
		return CloneExprList(in)
	default:
		// this should never happen
		return nil
	}
}

// CloneExprs creates a deep clone of the input.
func CloneExprs(n []Expr) []Expr {
	if n == nil {
		return nil
	}
	res := make([]Expr, len(n))
	for i, x := range n {
		res[i] = CloneExpr(x)
	}
	return res
}

// CloneExprList creates a deep clone of the input.
func CloneExprList(n ExprList) ExprList {
	if n == nil {
		return nil
	}
	res := make(ExprList, len(n))
	for i, x := range n {
		res[i] = CloneExpr(x)
	}
	return res
}

// CloneRefOfOpExpr creates a deep clone of the input.
func CloneRefOfOpExpr(n *OpExpr) *OpExpr {
	if n == nil {
		return nil
	}
	out := *n
	out.Left = CloneExpr(n.Left)
	out.Right = CloneExpr(n.Right)
	return &out
}

// CloneRefOfBoolExpr creates a deep clone of the input.
func CloneRefOfBoolExpr(n *BoolExpr) *BoolExpr {
	if n == nil {
		return nil
	}
	out := *n
	out.Args = CloneExprs(n.Args)
	return &out
}

// CloneRefOfColumnRef creates a deep clone of the input.
func CloneRefOfColumnRef(n *ColumnRef) *ColumnRef {
	if n == nil {
		return nil
	}
	out := *n
	return &out
}

// CloneRefOfParam creates a deep clone of the input.
func CloneRefOfParam(n *Param) *Param {
	if n == nil {
		return nil
	}
	out := *n
	return &out
}

// CloneRefOfConst creates a deep clone of the input.
func CloneRefOfConst(n *Const) *Const {
	if n == nil {
		return nil
	}
	out := *n
	return &out
}

// CloneRefOfRangeTableEntry creates a deep clone of the input.
func CloneRefOfRangeTableEntry(n *RangeTableEntry) *RangeTableEntry {
	if n == nil {
		return nil
	}
	out := *n
	return &out
}

// CloneSliceOfRefOfRangeTableEntry creates a deep clone of the input.
func CloneSliceOfRefOfRangeTableEntry(n []*RangeTableEntry) []*RangeTableEntry {
	if n == nil {
		return nil
	}
	res := make([]*RangeTableEntry, len(n))
	for i, x := range n {
		res[i] = CloneRefOfRangeTableEntry(x)
	}
	return res
}

// CloneRefOfTargetEntry creates a deep clone of the input.
func CloneRefOfTargetEntry(n *TargetEntry) *TargetEntry {
	if n == nil {
		return nil
	}
	out := *n
	out.Expr = CloneExpr(n.Expr)
	return &out
}

// CloneSliceOfRefOfTargetEntry creates a deep clone of the input.
func CloneSliceOfRefOfTargetEntry(n []*TargetEntry) []*TargetEntry {
	if n == nil {
		return nil
	}
	res := make([]*TargetEntry, len(n))
	for i, x := range n {
		res[i] = CloneRefOfTargetEntry(x)
	}
	return res
}

// CloneRefOfFromExpr creates a deep clone of the input.
func CloneRefOfFromExpr(n *FromExpr) *FromExpr {
	if n == nil {
		return nil
	}
	out := *n
	out.Quals = CloneExpr(n.Quals)
	return &out
}

// CloneRefOfStatement creates a deep clone of the input.
func CloneRefOfStatement(n *Statement) *Statement {
	if n == nil {
		return nil
	}
	out := *n
	out.RangeTable = CloneSliceOfRefOfRangeTableEntry(n.RangeTable)
	out.JoinTree = CloneRefOfFromExpr(n.JoinTree)
	out.TargetList = CloneSliceOfRefOfTargetEntry(n.TargetList)
	out.ReturningList = CloneSliceOfRefOfTargetEntry(n.ReturningList)
	return &out
}
