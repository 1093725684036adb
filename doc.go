// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package servicelimits exports Google Cloud service quota limits to BigQuery

## What

For a set of projects, and for a set of services enabled in these projects, read the quota limits
defined by each service and stream them as rows into a BigQuery table. One row per limit, with
the limit values per dimension, e.g. global or per region, flattened as key/value records.

### Use cases

1. Know the limits before a capacity plan hits them
2. Compare limits across projects and environments
3. Join limits with usage metrics exported elsewhere to alert on headroom

## How

- services/getservicelimits: the export, triggered by a Pub/Sub message carrying a verification token
- cmd/getservicelimits: hosts the push endpoint as a standalone HTTP server
- cmd/triggerlimits: publishes a trigger message
- utilities: one package per Google API or concern, e.g. grm resource manager, gsu service usage, gbq BigQuery
*/
package servicelimits
