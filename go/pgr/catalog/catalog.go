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

// Package catalog holds the distribution metadata the planner consults:
// which relations are distributed, how, and by which column. The planner
// only reads this metadata; keeping it current is the job of the metadata
// sync machinery, which caches per relation and is safe for concurrent
// lookups.
package catalog

import (
	"github.com/pgrouter/pgrouter/go/pgr/parsetree"
	"github.com/pgrouter/pgrouter/go/pgr/pgerrors"
)

// DistributionMethod is how a table's rows are spread across workers.
type DistributionMethod int8

const (
	// Hash distributes rows by a hash of the distribution column.
	Hash DistributionMethod = iota
	// Range distributes rows by value ranges of the distribution column.
	Range
	// Append distributes rows by append-time shard placement.
	Append
	// Reference replicates the full table to every worker. Reference
	// tables have no distribution column.
	Reference
)

func (m DistributionMethod) String() string {
	switch m {
	case Hash:
		return "hash"
	case Range:
		return "range"
	case Append:
		return "append"
	case Reference:
		return "reference"
	default:
		return "unknown"
	}
}

// Table is the distribution metadata of a single relation.
type Table struct {
	Name       string
	RelationID parsetree.RelationID
	Method     DistributionMethod

	// DistColumnAttr is the 1-based ordinal of the distribution column,
	// 0 when the table has none. DistColumnType is its declared type.
	DistColumnAttr int
	DistColumnType parsetree.TypeID
}

// DistributionColumn returns a column reference for the table's
// distribution column as it would appear at the given range-table
// position, or nil when the table has no distribution column.
func (t *Table) DistributionColumn(tableIndex int) *parsetree.ColumnRef {
	if t.DistColumnAttr == 0 {
		return nil
	}
	return &parsetree.ColumnRef{
		TableIndex: tableIndex,
		AttrNum:    t.DistColumnAttr,
		Type:       t.DistColumnType,
	}
}

// Catalog is the metadata lookup interface the planner depends on.
type Catalog interface {
	// FindTable returns the distribution metadata for a relation. The
	// returned Table is shared and must not be modified.
	FindTable(id parsetree.RelationID) (*Table, error)
}

// Schema is an in-memory Catalog.
type Schema struct {
	tables map[parsetree.RelationID]*Table
}

// NewSchema returns an empty Schema.
func NewSchema() *Schema {
	return &Schema{tables: make(map[parsetree.RelationID]*Table)}
}

// AddTable registers a table. Hash-distributed tables must name a
// distribution column; reference tables must not.
func (s *Schema) AddTable(t *Table) error {
	if t.RelationID == 0 {
		return pgerrors.Errorf(pgerrors.InvalidArgument, "table %s has no relation id", t.Name)
	}
	if _, ok := s.tables[t.RelationID]; ok {
		return pgerrors.Errorf(pgerrors.AlreadyExists, "relation %d is already registered", t.RelationID)
	}
	if t.Method == Hash && t.DistColumnAttr == 0 {
		return pgerrors.Errorf(pgerrors.InvalidArgument, "hash-distributed table %s has no distribution column", t.Name)
	}
	if t.Method == Reference && t.DistColumnAttr != 0 {
		return pgerrors.Errorf(pgerrors.InvalidArgument, "reference table %s cannot have a distribution column", t.Name)
	}
	s.tables[t.RelationID] = t
	return nil
}

// FindTable implements Catalog.
func (s *Schema) FindTable(id parsetree.RelationID) (*Table, error) {
	t, ok := s.tables[id]
	if !ok {
		return nil, pgerrors.Errorf(pgerrors.NotFound, "relation %d is not in the catalog", id)
	}
	return t, nil
}
