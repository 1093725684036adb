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

import "cloud.google.com/go/bigquery"

// GetServiceLimitsSchema defines the service limits table schema
func GetServiceLimitsSchema() bigquery.Schema {
	return bigquery.Schema{
		{Name: "project_id", Required: true, Type: bigquery.StringFieldType, Description: "Project the limit applies to"},
		{Name: "service", Required: true, Type: bigquery.StringFieldType, Description: "Service name e.g. compute.googleapis.com"},
		{Name: "name", Required: false, Type: bigquery.StringFieldType, Description: "Quota limit name"},
		{Name: "description", Required: false, Type: bigquery.StringFieldType},
		{Name: "defaultLimit", Required: false, Type: bigquery.IntegerFieldType},
		{Name: "maxLimit", Required: false, Type: bigquery.IntegerFieldType},
		{Name: "freeTier", Required: false, Type: bigquery.IntegerFieldType},
		{Name: "duration", Required: false, Type: bigquery.StringFieldType},
		{Name: "metric", Required: false, Type: bigquery.StringFieldType},
		{Name: "unit", Required: false, Type: bigquery.StringFieldType},
		{Name: "displayName", Required: false, Type: bigquery.StringFieldType},
		{Name: "update_time", Required: true, Type: bigquery.TimestampFieldType, Description: "Time the row was built"},
		{
			Name:        "values",
			Type:        bigquery.RecordFieldType,
			Repeated:    true,
			Description: "Limit value per dimension, e.g. global or a region",
			Schema: bigquery.Schema{
				{Name: "key", Required: false, Type: bigquery.StringFieldType},
				{Name: "value", Required: false, Type: bigquery.IntegerFieldType},
			},
		},
	}
}
