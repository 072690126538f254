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

package catalog

import (
	"encoding/json"

	"github.com/pgrouter/pgrouter/go/pgr/parsetree"
	"github.com/pgrouter/pgrouter/go/pgr/pgerrors"
)

type schemaJSON struct {
	Tables []tableJSON `json:"tables"`
}

type tableJSON struct {
	Name       string               `json:"name"`
	RelationID parsetree.RelationID `json:"relation_id"`
	Method     string               `json:"method"`
	DistColumn *distColumnJSON      `json:"dist_column,omitempty"`
}

type distColumnJSON struct {
	Attr int    `json:"attr"`
	Type string `json:"type"`
}

// LoadSchema builds a Schema from its JSON form:
//
//	{"tables": [
//	  {"name": "orders", "relation_id": 16384, "method": "hash",
//	   "dist_column": {"attr": 1, "type": "int8"}},
//	  {"name": "countries", "relation_id": 16390, "method": "reference"}
//	]}
func LoadSchema(data []byte) (*Schema, error) {
	var raw schemaJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, pgerrors.Wrap(err, "loading schema")
	}
	schema := NewSchema()
	for _, t := range raw.Tables {
		method, err := methodFromName(t.Method)
		if err != nil {
			return nil, pgerrors.Wrapf(err, "table %s", t.Name)
		}
		table := &Table{
			Name:       t.Name,
			RelationID: t.RelationID,
			Method:     method,
		}
		if t.DistColumn != nil {
			typ, err := parsetree.TypeIDFromName(t.DistColumn.Type)
			if err != nil {
				return nil, pgerrors.Wrapf(err, "table %s", t.Name)
			}
			table.DistColumnAttr = t.DistColumn.Attr
			table.DistColumnType = typ
		}
		if err := schema.AddTable(table); err != nil {
			return nil, err
		}
	}
	return schema, nil
}

func methodFromName(name string) (DistributionMethod, error) {
	switch name {
	case "hash":
		return Hash, nil
	case "range":
		return Range, nil
	case "append":
		return Append, nil
	case "reference":
		return Reference, nil
	default:
		return Hash, pgerrors.Errorf(pgerrors.InvalidArgument, "unknown distribution method %q", name)
	}
}
