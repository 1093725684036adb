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
Package gsu Google Service Usage: services of a project and their quota limits

Two phases per project

1) discovery, either the enabled services listed by the API or the configured service names.

2) quota fetch, each service is read by exact name. Its state at that moment is the only gate:
a service no longer ENABLED contributes no limits.

Failure policy

- abort (default): the first failing fetch stops the run.

- isolate: the failure is recorded on the project and the next service is fetched.
*/
package gsu
