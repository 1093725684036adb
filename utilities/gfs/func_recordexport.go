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

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
)

// RecordExport writes the export record of a run, one document per triggering message
func RecordExport(ctx context.Context, firestoreClient *firestore.Client, collectionID string, pubsubID string, exportRecord ExportRecord) (documentPath string, err error) {
	documentPath = getDocumentPath(collectionID, pubsubID, exportRecord)
	_, err = firestoreClient.Doc(documentPath).Set(ctx, exportRecord)
	if err != nil {
		return documentPath, fmt.Errorf("firestoreClient.Doc(documentPath).Set %s %v", documentPath, err)
	}
	return documentPath, nil
}

func getDocumentPath(collectionID string, pubsubID string, exportRecord ExportRecord) string {
	documentID := strings.Replace(pubsubID, "/", "_", -1)
	if documentID == "" {
		documentID = fmt.Sprintf("manual_%d", exportRecord.StartTime.UnixNano())
	}
	return fmt.Sprintf("%s/%s", collectionID, documentID)
}
