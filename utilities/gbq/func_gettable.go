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
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
)

func getTable(ctx context.Context, tableName string, dataset *bigquery.Dataset, schema bigquery.Schema) (table *bigquery.Table, err error) {
	table = dataset.Table(tableName)
	tableMetadata, err := table.Metadata(ctx)
	if err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("gbq table.Metadata %s %w", tableName, err)
		}
		var tableToCreateMetadata bigquery.TableMetadata
		tableToCreateMetadata.Name = tableName
		tableToCreateMetadata.Description = fmt.Sprintf("%s - %s", description, tableName)
		tableToCreateMetadata.Labels = map[string]string{"name": strings.ToLower(tableName)}
		tableToCreateMetadata.TimePartitioning = &bigquery.TimePartitioning{
			Type:       bigquery.DayPartitioningType,
			Expiration: time.Duration(0),
		}
		tableToCreateMetadata.Schema = schema

		err = table.Create(ctx, &tableToCreateMetadata)
		if err != nil {
			// concurrent cold starts
			if strings.Contains(strings.ToLower(err.Error()), "already exists") {
				return table, nil
			}
			return nil, fmt.Errorf("gbq table.Create %s %w", tableName, err)
		}
		log.Printf("gbq created table %s", tableName)
		return table, nil
	}
	log.Printf("gbq found table %s", tableName)
	needToUpdate := false
	var tableMetadataToUpdate bigquery.TableMetadataToUpdate
	if value, ok := tableMetadata.Labels["name"]; !ok || !strings.EqualFold(value, tableName) {
		tableMetadataToUpdate.SetLabel("name", strings.ToLower(tableName))
		log.Printf("gbq need to update table labels %s", tableName)
		needToUpdate = true
	}
	if missing := missingFields(tableMetadata.Schema, schema); len(missing) > 0 {
		// additive only, BigQuery rejects dropping or retyping columns
		tableMetadataToUpdate.Schema = append(tableMetadata.Schema, missing...)
		log.Printf("gbq need to add %d column(s) on table %s", len(missing), tableName)
		needToUpdate = true
	}
	if needToUpdate {
		_, err = table.Update(ctx, tableMetadataToUpdate, tableMetadata.ETag)
		if err != nil {
			return nil, fmt.Errorf("gbq table.Update %s %w", tableName, err)
		}
		log.Printf("gbq table updated %s", tableName)
	}
	return table, nil
}

func missingFields(current bigquery.Schema, wanted bigquery.Schema) (missing bigquery.Schema) {
	names := make(map[string]bool, len(current))
	for _, field := range current {
		names[field.Name] = true
	}
	for _, field := range wanted {
		if !names[field.Name] {
			missing = append(missing, field)
		}
	}
	return missing
}
