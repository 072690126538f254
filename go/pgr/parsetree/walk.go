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

// Visit is the visitor function for Walk. It is called for every node
// in pre-order. Returning false aborts the walk.
type Visit func(node Expr) bool

// Walk calls visit on every node of the given expression trees in
// document order, stopping early when visit returns false.
func Walk(visit Visit, nodes ...Expr) {
	for _, node := range nodes {
		if !walkExpr(visit, node) {
			return
		}
	}
}

func walkExpr(visit Visit, node Expr) bool {
	if node == nil {
		return true
	}
	if !visit(node) {
		return false
	}
	switch node := node.(type) {
	case *OpExpr:
		return walkExpr(visit, node.Left) && walkExpr(visit, node.Right)
	case *BoolExpr:
		for _, arg := range node.Args {
			if !walkExpr(visit, arg) {
				return false
			}
		}
	case ExprList:
		for _, e := range node {
			if !walkExpr(visit, e) {
				return false
			}
		}
	}
	return true
}
