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

package gfs

import "time"

// ExportRecord counts of one export run
type ExportRecord struct {
	ProjectCount        int       `firestore:"projectCount"`
	ServiceCount        int       `firestore:"serviceCount"`
	DroppedServiceCount int       `firestore:"droppedServiceCount"`
	ServiceErrorCount   int       `firestore:"serviceErrorCount"`
	RowCount            int       `firestore:"rowCount"`
	FailedRowCount      int       `firestore:"failedRowCount"`
	StartTime           time.Time `firestore:"startTime"`
	EndTime             time.Time `firestore:"endTime"`
	MicroserviceName    string    `firestore:"microserviceName"`
	InstanceName        string    `firestore:"instanceName"`
	Environment         string    `firestore:"environment"`
}
