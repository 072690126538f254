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

// AndExprs turns a list of conjuncts into an explicit AND-rooted tree.
// An empty list yields nil and a single conjunct is returned as is.
func AndExprs(exprs []Expr) Expr {
	switch len(exprs) {
	case 0:
		return nil
	case 1:
		return exprs[0]
	default:
		return &BoolExpr{Operator: AndOp, Args: exprs}
	}
}

// Quals returns the statement's predicate root, or nil when the statement
// has no join tree or no WHERE clause.
func (s *Statement) Quals() Expr {
	if s.JoinTree == nil {
		return nil
	}
	return s.JoinTree.Quals
}

// NewBoolConst returns a non-null boolean literal.
func NewBoolConst(v bool) *Const {
	val := "false"
	if v {
		val = "true"
	}
	return &Const{Type: TypeBool, Val: val}
}

// NewIntConst returns a non-null literal of the given integer type.
func NewIntConst(t TypeID, val string) *Const {
	return &Const{Type: t, Val: val}
}

// NewNullConst returns a null literal of the given type.
func NewNullConst(t TypeID) *Const {
	return &Const{Type: t, IsNull: true}
}

// BoolConstValue reports the value of a non-null boolean literal. ok is
// false for any other node.
func BoolConstValue(e Expr) (v, ok bool) {
	c, isConst := e.(*Const)
	if !isConst || c.IsNull || c.Type != TypeBool {
		return false, false
	}
	return c.Val == "true", true
}
