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
	"context"
	"fmt"
	"log"

	"github.com/BrunoReboul/servicelimits/utilities/lim"
	bigqueryv2 "google.golang.org/api/bigquery/v2"
)

// Write sends all rows in one insertAll request, invalid rows are skipped and unknown fields ignored.
// Rows rejected by BigQuery are counted and logged, not returned as an error.
// No insertId is set: writing the same rows twice stores two copies.
func (batchWriter *BatchWriter) Write(ctx context.Context, rows []lim.ExportRow) (writeResult WriteResult, err error) {
	if len(rows) == 0 {
		log.Printf("gbq %s.%s nothing to write", batchWriter.datasetID, batchWriter.tableID)
		return writeResult, nil
	}
	request := &bigqueryv2.TableDataInsertAllRequest{
		Kind:                insertAllKind,
		SkipInvalidRows:     true,
		IgnoreUnknownValues: true,
		Rows:                make([]*bigqueryv2.TableDataInsertAllRequestRows, len(rows)),
	}
	for i, row := range rows {
		request.Rows[i] = &bigqueryv2.TableDataInsertAllRequestRows{Json: toJSONObject(row.JSONValue())}
	}
	response, err := batchWriter.tabledataService.InsertAll(batchWriter.projectID, batchWriter.datasetID, batchWriter.tableID, request).Context(ctx).Do()
	if err != nil {
		return writeResult, fmt.Errorf("gbq tabledataService.InsertAll %s.%s %w", batchWriter.datasetID, batchWriter.tableID, err)
	}
	writeResult.RowCount = len(rows)
	if len(response.InsertErrors) > 0 {
		writeResult.FailedRowCount = len(response.InsertErrors)
		log.Printf("gbq %s.%s insertAll rejected %d row(s) out of %d, first: %s",
			batchWriter.datasetID, batchWriter.tableID, writeResult.FailedRowCount, len(rows), firstInsertError(response.InsertErrors))
		return writeResult, nil
	}
	log.Printf("gbq %s.%s inserted %d row(s)", batchWriter.datasetID, batchWriter.tableID, len(rows))
	return writeResult, nil
}

func toJSONObject(m map[string]interface{}) map[string]bigqueryv2.JsonValue {
	jsonObject := make(map[string]bigqueryv2.JsonValue, len(m))
	for k, v := range m {
		jsonObject[k] = v
	}
	return jsonObject
}

func firstInsertError(insertErrors []*bigqueryv2.TableDataInsertAllResponseInsertErrors) string {
	insertError := insertErrors[0]
	if insertError == nil || len(insertError.Errors) == 0 || insertError.Errors[0] == nil {
		return "unknown"
	}
	return fmt.Sprintf("row %d %s %s", insertError.Index, insertError.Errors[0].Reason, insertError.Errors[0].Message)
}
