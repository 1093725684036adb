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

	"cloud.google.com/go/bigquery"
)

const description = "Service limits export"

func getDataset(ctx context.Context, datasetName string, location string, bigQueryClient *bigquery.Client) (dataset *bigquery.Dataset, err error) {
	dataset = bigQueryClient.Dataset(datasetName)
	datasetMetadata, err := dataset.Metadata(ctx)
	if err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("gbq dataset.Metadata %s %w", datasetName, err)
		}
		var datasetToCreateMetadata bigquery.DatasetMetadata
		datasetToCreateMetadata.Name = datasetName
		datasetToCreateMetadata.Location = location
		datasetToCreateMetadata.Description = description
		datasetToCreateMetadata.Labels = map[string]string{"name": strings.ToLower(datasetName)}

		err = dataset.Create(ctx, &datasetToCreateMetadata)
		if err != nil {
			// concurrent cold starts
			if strings.Contains(strings.ToLower(err.Error()), "already exists") {
				return dataset, nil
			}
			return nil, fmt.Errorf("gbq dataset.Create %s %w", datasetName, err)
		}
		log.Printf("gbq created dataset %s", datasetName)
		return dataset, nil
	}
	if value, ok := datasetMetadata.Labels["name"]; !ok || value != strings.ToLower(datasetName) {
		var datasetMetadataToUpdate bigquery.DatasetMetadataToUpdate
		datasetMetadataToUpdate.SetLabel("name", strings.ToLower(datasetName))
		_, err = dataset.Update(ctx, datasetMetadataToUpdate, "")
		if err != nil {
			return nil, fmt.Errorf("gbq dataset.Update labels %s %w", datasetName, err)
		}
		log.Printf("gbq updated dataset labels %s", datasetName)
	}
	return dataset, nil
}

func isNotFound(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "notfound") ||
		strings.Contains(strings.ToLower(err.Error()), "not found")
}
