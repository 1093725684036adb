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
Package grm Google Resource Manager: enumerate the projects in scope of an export

Either list all the projects visible to the function service account, optionally filtered
https://cloud.google.com/resource-manager/reference/rest/v1/projects/list#query-parameters

Or get each project of an explicit list of project IDs.

Required role

roles/browser on the organization, folders or projects to export
*/
package grm
