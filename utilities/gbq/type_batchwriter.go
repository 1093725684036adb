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

package gbq

import (
	bigqueryv2 "google.golang.org/api/bigquery/v2"
)

const insertAllKind = "bigquery#tableDataInsertAllRequest"

// BatchWriter streams export rows into one BigQuery table
type BatchWriter struct {
	tabledataService *bigqueryv2.TabledataService
	projectID        string
	datasetID        string
	tableID          string
}

// WriteResult counts of one insertAll call
type WriteResult struct {
	RowCount       int
	FailedRowCount int
}

// NewBatchWriter create a batch writer on table projectID.datasetID.tableID
func NewBatchWriter(bigqueryService *bigqueryv2.Service, projectID string, datasetID string, tableID string) *BatchWriter {
	return &BatchWriter{
		tabledataService: bigqueryv2.NewTabledataService(bigqueryService),
		projectID:        projectID,
		datasetID:        datasetID,
		tableID:          tableID,
	}
}
