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

/*
Package fastpath classifies statements that can skip full planning and
builds the placeholder plans the router executor runs them with.

Full planning exists mostly to produce the restriction information that
shard pruning needs. For statements of the form

	SELECT ... FROM single_table WHERE distribution_key = X;
	DELETE FROM single_table WHERE distribution_key = X;
	UPDATE single_table SET v = v + 1 WHERE distribution_key = X;

none of that machinery is needed: the statement touches one table, and the
equality on the distribution column pins it to one shard. GROUP BY, window
functions, ORDER BY and HAVING are all fine; the only requirements are the
single table and the ANDed equality filter. Classify recognizes these
statements (and all plain INSERTs) and hands back the routing key value
when the filter carries one; BuildPlaceholderPlan then produces the
minimal plan the router executor needs, skipping cost estimation and path
generation entirely.

Not eligible, by design: INSERT ... SELECT, CTEs, sublinks, set
operations, and set-returning targets. Those always take the full planner.
*/
package fastpath
