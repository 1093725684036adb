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
Package glo Google Cloud Logging structured entries

Entries are written as one JSON document per line on the standard logger, the Cloud Functions
runtime forwards them to Cloud Logging where the special fields (severity, message) are parsed.

Message keywords

- init_cold_start: function instance initialized

- start_cloud_event: a triggering message is being processed

- finish: a triggering message has been processed

- noretry: processing stopped, the event will not be processed again

- redo_on_transient: processing stopped on what looks like a transient error
*/
package glo
