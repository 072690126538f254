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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgrouter/pgrouter/go/pgr/parsetree"
	"github.com/pgrouter/pgrouter/go/test/utils"
)

func TestClassifyToggleDisabled(t *testing.T) {
	schema := testSchema(t)
	stmts := []*parsetree.Statement{
		selectOn(ordersRelID, eq(distCol(), int8Const("5"))),
		insertInto(ordersRelID),
		selectOn(refRelID, nil),
	}
	for _, stmt := range stmts {
		assert.Nil(t, Classify(stmt, schema, Options{Enabled: false}))
	}
}

func TestClassifyNilStatement(t *testing.T) {
	assert.Nil(t, Classify(nil, testSchema(t), enabled))
}

func TestClassifyStatementFlags(t *testing.T) {
	schema := testSchema(t)
	testcases := []struct {
		name string
		set  func(*parsetree.Statement)
	}{{
		name: "ctes",
		set:  func(s *parsetree.Statement) { s.HasCTEs = true },
	}, {
		name: "sublinks",
		set:  func(s *parsetree.Statement) { s.HasSubLinks = true },
	}, {
		name: "set operations",
		set:  func(s *parsetree.Statement) { s.HasSetOperations = true },
	}, {
		name: "set-returning targets",
		set:  func(s *parsetree.Statement) { s.HasTargetSRFs = true },
	}, {
		name: "modifying cte",
		set:  func(s *parsetree.Statement) { s.HasModifyingCTE = true },
	}}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			stmt := selectOn(ordersRelID, eq(distCol(), int8Const("5")))
			require.NotNil(t, Classify(stmt, schema, enabled))
			tc.set(stmt)
			assert.Nil(t, Classify(stmt, schema, enabled))
		})
	}
}

func TestClassifyPlainInsert(t *testing.T) {
	schema := testSchema(t)
	el := Classify(insertInto(ordersRelID), schema, enabled)
	require.NotNil(t, el)
	assert.Nil(t, el.Key)

	// inserts into reference tables qualify too
	el = Classify(insertInto(refRelID), schema, enabled)
	require.NotNil(t, el)
	assert.Nil(t, el.Key)

	// an insert never reaches predicate analysis, so flags still reject
	stmt := insertInto(ordersRelID)
	stmt.HasSubLinks = true
	assert.Nil(t, Classify(stmt, schema, enabled))
}

func TestClassifyInsertSelect(t *testing.T) {
	stmt := insertInto(ordersRelID)
	stmt.InsertSelect = true
	assert.Nil(t, Classify(stmt, testSchema(t), enabled))
}

func TestClassifyRangeTableShape(t *testing.T) {
	schema := testSchema(t)

	t.Run("two relations", func(t *testing.T) {
		stmt := selectOn(ordersRelID, eq(distCol(), int8Const("5")))
		stmt.RangeTable = append(stmt.RangeTable,
			&parsetree.RangeTableEntry{Kind: parsetree.RelationEntry, RelationID: refRelID})
		assert.Nil(t, Classify(stmt, schema, enabled))
	})

	t.Run("no relations", func(t *testing.T) {
		stmt := selectOn(ordersRelID, eq(distCol(), int8Const("5")))
		stmt.RangeTable = nil
		assert.Nil(t, Classify(stmt, schema, enabled))
	})

	t.Run("subquery source", func(t *testing.T) {
		stmt := selectOn(ordersRelID, eq(distCol(), int8Const("5")))
		stmt.RangeTable[0].Kind = parsetree.SubqueryEntry
		assert.Nil(t, Classify(stmt, schema, enabled))
	})

	t.Run("relation missing from catalog", func(t *testing.T) {
		stmt := selectOn(99999, eq(distCol(), int8Const("5")))
		assert.Nil(t, Classify(stmt, schema, enabled))
	})
}

func TestClassifyDistributionMethods(t *testing.T) {
	schema := testSchema(t)
	quals := eq(distCol(), int8Const("5"))

	assert.Nil(t, Classify(selectOn(rangeRelID, quals), schema, enabled),
		"range-distributed tables are not fast-path routable")
	assert.Nil(t, Classify(selectOn(appendRelID, quals), schema, enabled),
		"append-distributed tables are not fast-path routable")
}

func TestClassifyReferenceTable(t *testing.T) {
	schema := testSchema(t)

	// fully replicated: eligible even without any predicate
	el := Classify(selectOn(refRelID, nil), schema, enabled)
	require.NotNil(t, el)
	assert.Nil(t, el.Key)

	// predicates on reference tables are fine and never capture a key
	el = Classify(selectOn(refRelID, eq(otherCol(), int4Const("3"))), schema, enabled)
	require.NotNil(t, el)
	assert.Nil(t, el.Key)
}

func TestClassifyMissingJoinTree(t *testing.T) {
	schema := testSchema(t)

	stmt := selectOn(refRelID, nil)
	stmt.JoinTree = nil
	assert.Nil(t, Classify(stmt, schema, enabled))

	stmt = selectOn(ordersRelID, nil)
	stmt.JoinTree = nil
	assert.Nil(t, Classify(stmt, schema, enabled))
}

func TestClassifyHashNeedsPredicate(t *testing.T) {
	assert.Nil(t, Classify(selectOn(ordersRelID, nil), testSchema(t), enabled))
}

func TestClassifyEqualityOnDistColumn(t *testing.T) {
	schema := testSchema(t)

	el := Classify(selectOn(ordersRelID, eq(distCol(), int8Const("15"))), schema, enabled)
	require.NotNil(t, el)
	utils.MustMatch(t, int8Const("15"), el.Key, "captured routing key")

	// operand order does not matter
	el = Classify(selectOn(ordersRelID, eq(int8Const("15"), distCol())), schema, enabled)
	require.NotNil(t, el)
	utils.MustMatch(t, int8Const("15"), el.Key, "captured routing key")
}

func TestClassifyLiteralTypeMismatch(t *testing.T) {
	// int4 literal on an int8 column: still eligible, but the key is left
	// for shard resolution to coerce
	el := Classify(selectOn(ordersRelID, eq(distCol(), int4Const("15"))), testSchema(t), enabled)
	require.NotNil(t, el)
	assert.Nil(t, el.Key)
}

func TestClassifyExternalParam(t *testing.T) {
	el := Classify(selectOn(ordersRelID, eq(distCol(), externParam(1))), testSchema(t), enabled)
	require.NotNil(t, el)
	utils.MustMatch(t, externParam(1), el.Key, "captured routing key")
}

func TestClassifyEqualityInsideOr(t *testing.T) {
	quals := or(
		eq(distCol(), int8Const("1")),
		eq(otherCol(), int4Const("2")),
	)
	assert.Nil(t, Classify(selectOn(ordersRelID, quals), testSchema(t), enabled))
}

func TestClassifyDuplicateDistColumn(t *testing.T) {
	schema := testSchema(t)

	// both conjuncts match individually, together they are rejected
	quals := and(
		eq(distCol(), int8Const("1")),
		eq(distCol(), int8Const("2")),
	)
	assert.Nil(t, Classify(selectOn(ordersRelID, quals), schema, enabled))

	// the second appearance may hide in a branch the matcher never
	// descends into; the duplicate scan still finds it
	quals = and(
		eq(distCol(), int8Const("1")),
		or(
			eq(otherCol(), int4Const("2")),
			binOp(parsetree.OpLess, distCol(), int8Const("3")),
		),
	)
	assert.Nil(t, Classify(selectOn(ordersRelID, quals), schema, enabled))

	quals = and(
		eq(distCol(), int8Const("1")),
		not(eq(distCol(), int8Const("3"))),
	)
	assert.Nil(t, Classify(selectOn(ordersRelID, quals), schema, enabled))
}

func TestClassifyConjunctionWithOtherFilters(t *testing.T) {
	quals := and(
		eq(distCol(), int8Const("1")),
		eq(otherCol(), int4Const("2")),
	)
	el := Classify(selectOn(ordersRelID, quals), testSchema(t), enabled)
	require.NotNil(t, el)
	utils.MustMatch(t, int8Const("1"), el.Key, "captured routing key")
}

func TestClassifyImplicitConjunctList(t *testing.T) {
	quals := parsetree.ExprList{
		eq(otherCol(), int4Const("2")),
		eq(distCol(), int8Const("1")),
	}
	el := Classify(selectOn(ordersRelID, quals), testSchema(t), enabled)
	require.NotNil(t, el)
	utils.MustMatch(t, int8Const("1"), el.Key, "captured routing key")
}

func TestClassifyUpdateAndDelete(t *testing.T) {
	schema := testSchema(t)
	for _, cmd := range []parsetree.CommandType{parsetree.CmdUpdate, parsetree.CmdDelete} {
		stmt := selectOn(ordersRelID, eq(distCol(), int8Const("5")))
		stmt.CommandType = cmd
		el := Classify(stmt, schema, enabled)
		require.NotNil(t, el, "%s should classify", cmd)
		utils.MustMatch(t, int8Const("5"), el.Key, "captured routing key")
	}
}

func TestClassifyKeyIsACopy(t *testing.T) {
	literal := int8Const("15")
	stmt := selectOn(ordersRelID, eq(distCol(), literal))

	el := Classify(stmt, testSchema(t), enabled)
	require.NotNil(t, el)

	// the captured key must outlive changes to the input tree
	literal.Val = "99"
	utils.MustMatch(t, int8Const("15"), el.Key, "captured routing key")
}

func TestClassifyIdempotent(t *testing.T) {
	schema := testSchema(t)
	stmt := selectOn(ordersRelID, eq(distCol(), int8Const("5")))

	first := Classify(stmt, schema, enabled)
	second := Classify(stmt, schema, enabled)
	require.NotNil(t, first)
	require.NotNil(t, second)
	utils.MustMatch(t, first.Key, second.Key, "captured routing key")
	assert.Same(t, stmt, first.Statement())
	assert.Same(t, stmt, second.Statement())
}
