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

// fastpathcheck runs fast-path classification over a statement fixture
// against a catalog fixture and reports the verdict. It exists for
// eyeballing classifier decisions without a running router:
//
//	fastpathcheck --catalog schema.json --statement stmt.json
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pgrouter/pgrouter/go/pgr/catalog"
	"github.com/pgrouter/pgrouter/go/pgr/fastpath"
	"github.com/pgrouter/pgrouter/go/pgr/log"
	"github.com/pgrouter/pgrouter/go/pgr/parsetree"
)

var (
	catalogPath   string
	statementPath string

	root = &cobra.Command{
		Use:   "fastpathcheck",
		Short: "Classify a statement fixture for fast-path routing.",
		Long: "fastpathcheck loads a catalog and a statement from JSON fixtures, " +
			"runs fast-path classification, and prints the placeholder plan " +
			"summary when the statement is eligible.",
		Args:    cobra.NoArgs,
		PreRunE: validate,
		RunE:    run,
	}
)

func init() {
	root.Flags().StringVar(&catalogPath, "catalog", "", "path to the catalog JSON fixture")
	root.Flags().StringVar(&statementPath, "statement", "", "path to the statement JSON fixture")
	fastpath.RegisterFlags(root.Flags())
	log.RegisterFlags(root.Flags())
}

func validate(cmd *cobra.Command, args []string) error {
	if catalogPath == "" || statementPath == "" {
		return fmt.Errorf("both --catalog and --statement are required")
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	catalogData, err := os.ReadFile(catalogPath)
	if err != nil {
		return err
	}
	schema, err := catalog.LoadSchema(catalogData)
	if err != nil {
		return err
	}

	statementData, err := os.ReadFile(statementPath)
	if err != nil {
		return err
	}
	stmt, err := parsetree.DecodeStatement(statementData)
	if err != nil {
		return err
	}

	el := fastpath.Classify(stmt, schema, fastpath.DefaultOptions())
	if el == nil {
		fmt.Println("not eligible: statement requires full planning")
		return nil
	}

	plan := fastpath.BuildPlaceholderPlan(el)
	fmt.Printf("eligible: %s on relation %d\n", plan.CommandType, plan.RelationIDs[0])
	if el.Key != nil {
		fmt.Printf("routing key: %s\n", parsetree.String(el.Key))
	} else {
		fmt.Println("routing key: none (resolved at shard pruning)")
	}
	fmt.Printf("target list: %d entries, returning: %v\n", len(plan.TargetList), plan.HasReturning)
	return nil
}

func main() {
	defer log.Flush()
	if err := root.Execute(); err != nil {
		log.Exitf("%v", err)
	}
}
