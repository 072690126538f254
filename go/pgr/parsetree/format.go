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

import (
	"fmt"
	"strings"
)

// String returns a readable rendering of the expression, for logs and
// diagnostics. It is not valid SQL.
func String(node Expr) string {
	var buf strings.Builder
	formatExpr(&buf, node)
	return buf.String()
}

func formatExpr(buf *strings.Builder, node Expr) {
	switch node := node.(type) {
	case nil:
		buf.WriteString("<nil>")
	case *OpExpr:
		buf.WriteByte('(')
		formatExpr(buf, node.Left)
		fmt.Fprintf(buf, " %s ", node.Operator)
		formatExpr(buf, node.Right)
		buf.WriteByte(')')
	case *BoolExpr:
		buf.WriteString(node.Operator.String())
		buf.WriteByte('(')
		for i, arg := range node.Args {
			if i > 0 {
				buf.WriteString(", ")
			}
			formatExpr(buf, arg)
		}
		buf.WriteByte(')')
	case *ColumnRef:
		fmt.Fprintf(buf, "col%d.%d", node.TableIndex, node.AttrNum)
	case *Param:
		fmt.Fprintf(buf, ":%d", node.ID)
	case *Const:
		if node.IsNull {
			buf.WriteString("null")
			return
		}
		if node.Type == TypeText {
			fmt.Fprintf(buf, "'%s'", node.Val)
			return
		}
		buf.WriteString(node.Val)
	case ExprList:
		for i, e := range node {
			if i > 0 {
				buf.WriteString(", ")
			}
			formatExpr(buf, e)
		}
	}
}
