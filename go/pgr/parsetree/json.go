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
	"encoding/json"

	"github.com/pgrouter/pgrouter/go/pgr/pgerrors"
)

// The JSON form exists for fixtures and the fastpathcheck tool. Expression
// nodes are encoded as objects with a "kind" discriminator.

type statementJSON struct {
	Command          string            `json:"command"`
	QueryID          uint64            `json:"query_id,omitempty"`
	StmtLen          int               `json:"stmt_len,omitempty"`
	HasCTEs          bool              `json:"has_ctes,omitempty"`
	HasSubLinks      bool              `json:"has_sublinks,omitempty"`
	HasSetOperations bool              `json:"has_set_operations,omitempty"`
	HasTargetSRFs    bool              `json:"has_target_srfs,omitempty"`
	HasModifyingCTE  bool              `json:"has_modifying_cte,omitempty"`
	InsertSelect     bool              `json:"insert_select,omitempty"`
	RangeTable       []rangeTableJSON  `json:"range_table,omitempty"`
	JoinTree         *joinTreeJSON     `json:"join_tree,omitempty"`
	TargetList       []targetEntryJSON `json:"target_list,omitempty"`
	Returning        []targetEntryJSON `json:"returning,omitempty"`
}

type rangeTableJSON struct {
	Kind       string     `json:"kind"`
	RelationID RelationID `json:"relation_id,omitempty"`
	Alias      string     `json:"alias,omitempty"`
}

type joinTreeJSON struct {
	Quals json.RawMessage `json:"quals,omitempty"`
}

type targetEntryJSON struct {
	Name  string          `json:"name,omitempty"`
	ResNo int             `json:"res_no,omitempty"`
	Expr  json.RawMessage `json:"expr"`
}

type exprJSON struct {
	Kind string `json:"kind"`

	// op
	Operator string          `json:"operator,omitempty"`
	Left     json.RawMessage `json:"left,omitempty"`
	Right    json.RawMessage `json:"right,omitempty"`

	// bool, list
	Args []json.RawMessage `json:"args,omitempty"`

	// column
	Table int `json:"table,omitempty"`
	Attr  int `json:"attr,omitempty"`

	// column, param, const
	Type string `json:"type,omitempty"`

	// param
	ParamKind string `json:"param_kind,omitempty"`
	ID        int    `json:"id,omitempty"`

	// const
	Value string `json:"value,omitempty"`
	Null  bool   `json:"null,omitempty"`
}

// DecodeStatement builds a Statement from its JSON form.
func DecodeStatement(data []byte) (*Statement, error) {
	var raw statementJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, pgerrors.Wrap(err, "decoding statement")
	}
	cmd, err := commandTypeFromName(raw.Command)
	if err != nil {
		return nil, err
	}
	stmt := &Statement{
		CommandType:      cmd,
		QueryID:          raw.QueryID,
		StmtLen:          raw.StmtLen,
		HasCTEs:          raw.HasCTEs,
		HasSubLinks:      raw.HasSubLinks,
		HasSetOperations: raw.HasSetOperations,
		HasTargetSRFs:    raw.HasTargetSRFs,
		HasModifyingCTE:  raw.HasModifyingCTE,
		InsertSelect:     raw.InsertSelect,
	}
	for _, rte := range raw.RangeTable {
		kind, err := rteKindFromName(rte.Kind)
		if err != nil {
			return nil, err
		}
		stmt.RangeTable = append(stmt.RangeTable, &RangeTableEntry{
			Kind:       kind,
			RelationID: rte.RelationID,
			Alias:      rte.Alias,
		})
	}
	if raw.JoinTree != nil {
		stmt.JoinTree = &FromExpr{}
		if len(raw.JoinTree.Quals) > 0 {
			quals, err := DecodeExpr(raw.JoinTree.Quals)
			if err != nil {
				return nil, err
			}
			stmt.JoinTree.Quals = quals
		}
	}
	if stmt.TargetList, err = decodeTargetList(raw.TargetList); err != nil {
		return nil, err
	}
	if stmt.ReturningList, err = decodeTargetList(raw.Returning); err != nil {
		return nil, err
	}
	return stmt, nil
}

func decodeTargetList(raw []targetEntryJSON) ([]*TargetEntry, error) {
	var out []*TargetEntry
	for i, te := range raw {
		expr, err := DecodeExpr(te.Expr)
		if err != nil {
			return nil, err
		}
		resNo := te.ResNo
		if resNo == 0 {
			resNo = i + 1
		}
		out = append(out, &TargetEntry{Expr: expr, Name: te.Name, ResNo: resNo})
	}
	return out, nil
}

// DecodeExpr builds an expression tree from its JSON form.
func DecodeExpr(data []byte) (Expr, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var raw exprJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, pgerrors.Wrap(err, "decoding expression")
	}
	switch raw.Kind {
	case "op":
		op, err := operatorFromName(raw.Operator)
		if err != nil {
			return nil, err
		}
		left, err := DecodeExpr(raw.Left)
		if err != nil {
			return nil, err
		}
		right, err := DecodeExpr(raw.Right)
		if err != nil {
			return nil, err
		}
		return &OpExpr{Operator: op, Left: left, Right: right}, nil
	case "bool":
		op, err := boolOperatorFromName(raw.Operator)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprs(raw.Args)
		if err != nil {
			return nil, err
		}
		return &BoolExpr{Operator: op, Args: args}, nil
	case "column":
		typ, err := typeIDFromName(raw.Type)
		if err != nil {
			return nil, err
		}
		return &ColumnRef{TableIndex: raw.Table, AttrNum: raw.Attr, Type: typ}, nil
	case "param":
		kind, err := paramKindFromName(raw.ParamKind)
		if err != nil {
			return nil, err
		}
		typ, err := typeIDFromName(raw.Type)
		if err != nil {
			return nil, err
		}
		return &Param{Kind: kind, ID: raw.ID, Type: typ}, nil
	case "const":
		typ, err := typeIDFromName(raw.Type)
		if err != nil {
			return nil, err
		}
		return &Const{Type: typ, Val: raw.Value, IsNull: raw.Null}, nil
	case "list":
		args, err := decodeExprs(raw.Args)
		if err != nil {
			return nil, err
		}
		return ExprList(args), nil
	default:
		return nil, pgerrors.Errorf(pgerrors.InvalidArgument, "unknown expression kind %q", raw.Kind)
	}
}

func decodeExprs(raw []json.RawMessage) ([]Expr, error) {
	var out []Expr
	for _, r := range raw {
		e, err := DecodeExpr(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func commandTypeFromName(name string) (CommandType, error) {
	switch name {
	case "select":
		return CmdSelect, nil
	case "insert":
		return CmdInsert, nil
	case "update":
		return CmdUpdate, nil
	case "delete":
		return CmdDelete, nil
	default:
		return CmdUnknown, pgerrors.Errorf(pgerrors.InvalidArgument, "unknown command type %q", name)
	}
}

func rteKindFromName(name string) (RTEKind, error) {
	switch name {
	case "relation":
		return RelationEntry, nil
	case "subquery":
		return SubqueryEntry, nil
	case "join":
		return JoinEntry, nil
	case "values":
		return ValuesEntry, nil
	case "function":
		return FunctionEntry, nil
	default:
		return RelationEntry, pgerrors.Errorf(pgerrors.InvalidArgument, "unknown range table entry kind %q", name)
	}
}

func operatorFromName(name string) (OperatorID, error) {
	switch name {
	case "=":
		return OpEqual, nil
	case "<>", "!=":
		return OpNotEqual, nil
	case "<":
		return OpLess, nil
	case "<=":
		return OpLessEqual, nil
	case ">":
		return OpGreater, nil
	case ">=":
		return OpGreaterEqual, nil
	default:
		return OpInvalid, pgerrors.Errorf(pgerrors.InvalidArgument, "unknown operator %q", name)
	}
}

func boolOperatorFromName(name string) (BoolOperator, error) {
	switch name {
	case "and":
		return AndOp, nil
	case "or":
		return OrOp, nil
	case "not":
		return NotOp, nil
	default:
		return AndOp, pgerrors.Errorf(pgerrors.InvalidArgument, "unknown boolean operator %q", name)
	}
}

func paramKindFromName(name string) (ParamKind, error) {
	switch name {
	case "", "extern":
		return ParamExternal, nil
	case "exec":
		return ParamExec, nil
	case "sublink":
		return ParamSublink, nil
	default:
		return ParamExternal, pgerrors.Errorf(pgerrors.InvalidArgument, "unknown parameter kind %q", name)
	}
}

func typeIDFromName(name string) (TypeID, error) {
	switch name {
	case "bool":
		return TypeBool, nil
	case "int4":
		return TypeInt4, nil
	case "int8":
		return TypeInt8, nil
	case "float8":
		return TypeFloat8, nil
	case "text":
		return TypeText, nil
	case "", "unknown":
		return TypeUnknown, nil
	default:
		return TypeUnknown, pgerrors.Errorf(pgerrors.InvalidArgument, "unknown type %q", name)
	}
}

// TypeIDFromName maps a type name from catalog or fixture JSON to a TypeID.
func TypeIDFromName(name string) (TypeID, error) {
	return typeIDFromName(name)
}
