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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFixtures(t *testing.T) {
	catalogPath = "testdata/schema.json"
	statementPath = "testdata/statement.json"
	require.NoError(t, validate(root, nil))
	require.NoError(t, run(root, nil))
}

func TestValidateMissingFlags(t *testing.T) {
	catalogPath = ""
	statementPath = "testdata/statement.json"
	assert.Error(t, validate(root, nil))
}
