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
	"github.com/pgrouter/pgrouter/go/pgr/parsetree"
)

// PlaceholderPlan is a minimal plan for a fast-path statement. It is not
// a complete executable plan: no quals are attached and no output-column
// wiring is done. It carries exactly what the router executor needs, a
// properly set target list plus the table metadata, and nothing else.
// The range table and target list are deep copies; a PlaceholderPlan
// shares no nodes with the statement it was built from.
type PlaceholderPlan struct {
	CommandType parsetree.CommandType
	QueryID     uint64
	StmtLen     int

	// RangeTable is carried over for access permission checks.
	RangeTable []*parsetree.RangeTableEntry
	TargetList []*parsetree.TargetEntry

	// ScanRelID is the range-table position scanned, always 1: a
	// fast-path statement has a single relation entry.
	ScanRelID int

	HasReturning bool

	// RelationIDs holds the single relation the statement touches.
	RelationIDs []parsetree.RelationID
}

// BuildPlaceholderPlan builds the placeholder plan for a certified
// statement. The Eligible token is the proof of the precondition; only
// Classify issues one. Passing a nil or zero token is a caller-contract
// breach and panics.
func BuildPlaceholderPlan(el *Eligible) *PlaceholderPlan {
	if el == nil || el.stmt == nil {
		panic("fastpath: BuildPlaceholderPlan called without a certified statement")
	}
	stmt := el.stmt
	if len(stmt.RangeTable) == 0 {
		panic("fastpath: certified statement has an empty range table")
	}

	return &PlaceholderPlan{
		CommandType:  stmt.CommandType,
		QueryID:      stmt.QueryID,
		StmtLen:      stmt.StmtLen,
		RangeTable:   parsetree.CloneSliceOfRefOfRangeTableEntry(stmt.RangeTable),
		TargetList:   parsetree.CloneSliceOfRefOfTargetEntry(stmt.TargetList),
		ScanRelID:    1,
		HasReturning: len(stmt.ReturningList) > 0,
		RelationIDs:  []parsetree.RelationID{stmt.RangeTable[0].RelationID},
	}
}
