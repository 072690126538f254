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

// EqualsExpr does deep equals between the two objects.
func EqualsExpr(inA, inB Expr) bool {
	if inA == nil && inB == nil {
		return true
	}
	if inA == nil || inB == nil {
		return false
	}
	switch a := inA.(type) {
	case *OpExpr:
		b, ok := inB.(*OpExpr)
		if !ok {
			return false
		}
		return EqualsRefOfOpExpr(a, b)
	case *BoolExpr:
		b, ok := inB.(*BoolExpr)
		if !ok {
			return false
		}
		return EqualsRefOfBoolExpr(a, b)
	case *ColumnRef:
		b, ok := inB.(*ColumnRef)
		if !ok {
			return false
		}
		return EqualsRefOfColumnRef(a, b)
	case *Param:
		b, ok := inB.(*Param)
		if !ok {
			return false
		}
		return EqualsRefOfParam(a, b)
	case *Const:
		b, ok := inB.(*Const)
		if !ok {
			return false
		}
		return EqualsRefOfConst(a, b)
	case ExprList:
		b, ok := inB.(ExprList)
		if !ok {
			return false
		}
		return EqualsExprs(a, b)
	default:
		return false
	}
}

// EqualsExprs does deep equals between the two objects.
func EqualsExprs(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualsExpr(a[i], b[i]) {
			return false
		}
	}
	return true
}

// EqualsRefOfOpExpr does deep equals between the two objects.
func EqualsRefOfOpExpr(a, b *OpExpr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Operator == b.Operator &&
		EqualsExpr(a.Left, b.Left) &&
		EqualsExpr(a.Right, b.Right)
}

// EqualsRefOfBoolExpr does deep equals between the two objects.
func EqualsRefOfBoolExpr(a, b *BoolExpr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Operator == b.Operator && EqualsExprs(a.Args, b.Args)
}

// EqualsRefOfColumnRef does deep equals between the two objects.
func EqualsRefOfColumnRef(a, b *ColumnRef) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.TableIndex == b.TableIndex &&
		a.AttrNum == b.AttrNum &&
		a.Type == b.Type
}

// EqualsRefOfParam does deep equals between the two objects.
func EqualsRefOfParam(a, b *Param) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Kind == b.Kind && a.ID == b.ID && a.Type == b.Type
}

// EqualsRefOfConst does deep equals between the two objects.
func EqualsRefOfConst(a, b *Const) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Type == b.Type && a.Val == b.Val && a.IsNull == b.IsNull
}
