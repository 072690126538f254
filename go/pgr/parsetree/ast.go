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

// Package parsetree defines the statement and expression trees the router
// plans over. The trees arrive from the SQL frontend fully analyzed:
// column references are resolved to range-table positions and attribute
// ordinals, and types are already assigned. Nodes are treated as immutable
// once built; consumers that need to keep a piece of a tree take a deep
// copy with the Clone functions.
package parsetree

// CommandType identifies the statement kind.
type CommandType int8

const (
	CmdUnknown CommandType = iota
	CmdSelect
	CmdInsert
	CmdUpdate
	CmdDelete
)

func (c CommandType) String() string {
	switch c {
	case CmdSelect:
		return "SELECT"
	case CmdInsert:
		return "INSERT"
	case CmdUpdate:
		return "UPDATE"
	case CmdDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// RelationID identifies a relation in the catalog.
type RelationID uint32

// TypeID identifies a value type. The set is closed; the router never
// inspects values, it only compares declared types.
type TypeID uint32

const (
	TypeUnknown TypeID = iota
	TypeBool
	TypeInt4
	TypeInt8
	TypeFloat8
	TypeText
)

func (t TypeID) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeInt4:
		return "int4"
	case TypeInt8:
		return "int8"
	case TypeFloat8:
		return "float8"
	case TypeText:
		return "text"
	default:
		return "unknown"
	}
}

// RTEKind tags a range-table entry with the kind of source it names.
type RTEKind int8

const (
	// RelationEntry is a plain base relation.
	RelationEntry RTEKind = iota
	// SubqueryEntry is a derived table produced by a subquery.
	SubqueryEntry
	// JoinEntry is a join alias entry.
	JoinEntry
	// ValuesEntry is a VALUES list.
	ValuesEntry
	// FunctionEntry is a function call in FROM.
	FunctionEntry
)

// RangeTableEntry is one entry of a statement's range table.
type RangeTableEntry struct {
	Kind       RTEKind
	RelationID RelationID
	Alias      string
}

// FromExpr is the join tree of a statement: the implicit from-list plus an
// optional predicate root. Quals may be nil (no WHERE clause) or an
// ExprList of implicit top-level conjuncts.
type FromExpr struct {
	Quals Expr
}

// TargetEntry is one entry of a projection or returning list.
type TargetEntry struct {
	Expr  Expr
	Name  string
	ResNo int
}

// Statement is an analyzed query tree.
type Statement struct {
	CommandType CommandType

	// QueryID and StmtLen identify the statement for diagnostics.
	QueryID uint64
	StmtLen int

	HasCTEs          bool
	HasSubLinks      bool
	HasSetOperations bool
	HasTargetSRFs    bool
	HasModifyingCTE  bool

	// InsertSelect is set when an INSERT sources its rows from a query
	// rather than a VALUES list.
	InsertSelect bool

	RangeTable    []*RangeTableEntry
	JoinTree      *FromExpr
	TargetList    []*TargetEntry
	ReturningList []*TargetEntry
}

// Expr is an expression tree node. The node set is closed: OpExpr,
// BoolExpr, ColumnRef, Param, Const and ExprList.
type Expr interface {
	iExpr()
}

// OperatorID identifies a binary operator.
type OperatorID int16

const (
	OpInvalid OperatorID = iota
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

// ImplementsEquality reports whether the operator has equality semantics.
func (op OperatorID) ImplementsEquality() bool {
	return op == OpEqual
}

func (op OperatorID) String() string {
	switch op {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "<>"
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// BoolOperator is the operator of a BoolExpr.
type BoolOperator int8

const (
	AndOp BoolOperator = iota
	OrOp
	NotOp
)

func (op BoolOperator) String() string {
	switch op {
	case AndOp:
		return "AND"
	case OrOp:
		return "OR"
	case NotOp:
		return "NOT"
	default:
		return "?"
	}
}

// ParamKind tags how a Param gets its value.
type ParamKind int8

const (
	// ParamExternal is bound by the client at execute time.
	ParamExternal ParamKind = iota
	// ParamExec is supplied by another plan node at run time.
	ParamExec
	// ParamSublink is a placeholder for a sublink output.
	ParamSublink
)

func (k ParamKind) String() string {
	switch k {
	case ParamExternal:
		return "extern"
	case ParamExec:
		return "exec"
	case ParamSublink:
		return "sublink"
	default:
		return "?"
	}
}

type (
	// OpExpr is a binary operator application.
	OpExpr struct {
		Operator OperatorID
		Left     Expr
		Right    Expr
	}

	// BoolExpr combines operand expressions with AND, OR or NOT.
	BoolExpr struct {
		Operator BoolOperator
		Args     []Expr
	}

	// ColumnRef identifies a column by range-table position and attribute
	// ordinal, both 1-based, plus its declared type.
	ColumnRef struct {
		TableIndex int
		AttrNum    int
		Type       TypeID
	}

	// Param is a parameter placeholder.
	Param struct {
		Kind ParamKind
		ID   int
		Type TypeID
	}

	// Const is a literal constant. Val holds the textual form of the
	// value; it is opaque to the router.
	Const struct {
		Type   TypeID
		Val    string
		IsNull bool
	}

	// ExprList is an implicit list of top-level conjuncts, as the
	// frontend leaves a WHERE clause that was never rewritten into an
	// explicit AND tree.
	ExprList []Expr
)

func (*OpExpr) iExpr()    {}
func (*BoolExpr) iExpr()  {}
func (*ColumnRef) iExpr() {}
func (*Param) iExpr()     {}
func (*Const) iExpr()     {}
func (ExprList) iExpr()   {}
