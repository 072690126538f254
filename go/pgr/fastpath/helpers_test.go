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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pgrouter/pgrouter/go/pgr/catalog"
	"github.com/pgrouter/pgrouter/go/pgr/parsetree"
)

const (
	ordersRelID parsetree.RelationID = 16384
	refRelID    parsetree.RelationID = 16390
	rangeRelID  parsetree.RelationID = 16395
	appendRelID parsetree.RelationID = 16400
)

var enabled = Options{Enabled: true}

// testSchema has one table per distribution method. orders is
// hash-distributed on its first column, an int8.
func testSchema(t *testing.T) *catalog.Schema {
	t.Helper()
	schema := catalog.NewSchema()
	for _, table := range []*catalog.Table{
		{Name: "orders", RelationID: ordersRelID, Method: catalog.Hash, DistColumnAttr: 1, DistColumnType: parsetree.TypeInt8},
		{Name: "countries", RelationID: refRelID, Method: catalog.Reference},
		{Name: "events", RelationID: rangeRelID, Method: catalog.Range, DistColumnAttr: 1, DistColumnType: parsetree.TypeInt8},
		{Name: "logs", RelationID: appendRelID, Method: catalog.Append, DistColumnAttr: 1, DistColumnType: parsetree.TypeInt8},
	} {
		require.NoError(t, schema.AddTable(table))
	}
	return schema
}

// distCol is the orders distribution column as seen from range-table
// position 1.
func distCol() *parsetree.ColumnRef {
	return &parsetree.ColumnRef{TableIndex: 1, AttrNum: 1, Type: parsetree.TypeInt8}
}

// otherCol is a non-distribution column of orders.
func otherCol() *parsetree.ColumnRef {
	return &parsetree.ColumnRef{TableIndex: 1, AttrNum: 2, Type: parsetree.TypeInt4}
}

func int8Const(val string) *parsetree.Const {
	return &parsetree.Const{Type: parsetree.TypeInt8, Val: val}
}

func int4Const(val string) *parsetree.Const {
	return &parsetree.Const{Type: parsetree.TypeInt4, Val: val}
}

func externParam(id int) *parsetree.Param {
	return &parsetree.Param{Kind: parsetree.ParamExternal, ID: id, Type: parsetree.TypeInt8}
}

func binOp(op parsetree.OperatorID, left, right parsetree.Expr) *parsetree.OpExpr {
	return &parsetree.OpExpr{Operator: op, Left: left, Right: right}
}

func eq(left, right parsetree.Expr) *parsetree.OpExpr {
	return binOp(parsetree.OpEqual, left, right)
}

func and(args ...parsetree.Expr) *parsetree.BoolExpr {
	return &parsetree.BoolExpr{Operator: parsetree.AndOp, Args: args}
}

func or(args ...parsetree.Expr) *parsetree.BoolExpr {
	return &parsetree.BoolExpr{Operator: parsetree.OrOp, Args: args}
}

func not(arg parsetree.Expr) *parsetree.BoolExpr {
	return &parsetree.BoolExpr{Operator: parsetree.NotOp, Args: []parsetree.Expr{arg}}
}

// selectOn builds a single-table SELECT with the given WHERE clause.
func selectOn(rel parsetree.RelationID, quals parsetree.Expr) *parsetree.Statement {
	return &parsetree.Statement{
		CommandType: parsetree.CmdSelect,
		QueryID:     42,
		StmtLen:     71,
		RangeTable: []*parsetree.RangeTableEntry{
			{Kind: parsetree.RelationEntry, RelationID: rel, Alias: "t"},
		},
		JoinTree: &parsetree.FromExpr{Quals: quals},
		TargetList: []*parsetree.TargetEntry{
			{Expr: distCol(), Name: "id", ResNo: 1},
		},
	}
}

func insertInto(rel parsetree.RelationID) *parsetree.Statement {
	return &parsetree.Statement{
		CommandType: parsetree.CmdInsert,
		QueryID:     43,
		StmtLen:     38,
		RangeTable: []*parsetree.RangeTableEntry{
			{Kind: parsetree.RelationEntry, RelationID: rel, Alias: "t"},
		},
		JoinTree: &parsetree.FromExpr{},
		TargetList: []*parsetree.TargetEntry{
			{Expr: int8Const("1"), Name: "id", ResNo: 1},
		},
	}
}
