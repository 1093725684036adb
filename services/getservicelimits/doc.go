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
Package getservicelimits exports the quota limits of Google Cloud services into BigQuery

Triggered by

Pub/Sub messages, either pushed to an HTTP endpoint or delivered to a background function.
The message data is a JSON document carrying the verification token: {"token": "..."}

Instances

One per set of inclusion settings, usually one.

Output

One row per quota limit in a day partitioned BigQuery table, sent in a single insertAll request.
Rows rejected by BigQuery are counted and logged, the others are kept.

Automatic retrying

No. Push requests are always acknowledged with a 200 status, a redelivery would duplicate rows.

Required environment variables

- SETTINGSFILEPATH optional path to the YAML settings file, default ./settings.yaml
- ENVIRONMENT optional environment name used to situate per environment settings
- VERIFICATIONTOKEN optional, overrides the token found in settings

Implementation example

 package p
 import (
     "context"
     "net/http"

     "github.com/BrunoReboul/servicelimits/services/getservicelimits"
 )
 var global getservicelimits.Global
 var ctx = context.Background()
 // EntryPoint is the function to be executed for each cloud function occurence
 func EntryPoint(w http.ResponseWriter, r *http.Request) {
     getservicelimits.EntryPoint(w, r, &global)
 }

 func init() {
     getservicelimits.Initialize(ctx, &global)
 }
*/
package getservicelimits
