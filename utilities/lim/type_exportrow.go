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

package lim

import "time"

// KeyValue one dimension of a quota limit values map
type KeyValue struct {
	Key   string
	Value int64
}

// ExportRow one quota limit of one service of one project, JSONValue names its BigQuery columns
type ExportRow struct {
	ProjectID    string
	Service      string
	Name         string
	Description  string
	DefaultLimit int64
	MaxLimit     int64
	FreeTier     int64
	Duration     string
	Metric       string
	Unit         string
	DisplayName  string
	UpdateTime   time.Time
	Values       []KeyValue
}

// JSONValue renders the row as the column name to value map expected by insertAll
func (row ExportRow) JSONValue() map[string]interface{} {
	values := make([]map[string]interface{}, len(row.Values))
	for i, keyValue := range row.Values {
		values[i] = map[string]interface{}{
			"key":   keyValue.Key,
			"value": keyValue.Value,
		}
	}
	return map[string]interface{}{
		"project_id":   row.ProjectID,
		"service":      row.Service,
		"name":         row.Name,
		"description":  row.Description,
		"defaultLimit": row.DefaultLimit,
		"maxLimit":     row.MaxLimit,
		"freeTier":     row.FreeTier,
		"duration":     row.Duration,
		"metric":       row.Metric,
		"unit":         row.Unit,
		"displayName":  row.DisplayName,
		"update_time":  row.UpdateTime.Format(time.RFC3339Nano),
		"values":       values,
	}
}
