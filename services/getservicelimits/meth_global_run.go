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

package getservicelimits

import (
	"context"
	"fmt"
	"time"

	"github.com/BrunoReboul/servicelimits/utilities/gfs"
	"github.com/BrunoReboul/servicelimits/utilities/glo"
	"github.com/BrunoReboul/servicelimits/utilities/gsu"
)

// run exports the limits of the selected services of the selected projects, sequentially, as one batch
func (global *Global) run(ctx context.Context, ev glo.EntryValues) (err error) {
	exportRecord := gfs.ExportRecord{
		StartTime:        time.Now(),
		MicroserviceName: ev.MicroserviceName,
		InstanceName:     ev.InstanceName,
		Environment:      ev.Environment,
	}
	projects, err := global.projectEnumerator.Projects(ctx, global.policy.ProjectMode())
	if err != nil {
		return err
	}
	exportRecord.ProjectCount = len(projects)
	glo.LogInfo(ev, "projects_selected", fmt.Sprintf("%d project(s) mode %s", len(projects), global.policy.ProjectMode().Kind))

	projectsLimits := make([]gsu.ProjectLimits, 0, len(projects))
	for _, project := range projects {
		projectLimits, err := global.serviceEnumerator.Collect(ctx, project, global.policy.ServiceMode())
		if err != nil {
			return err
		}
		for _, serviceLimits := range projectLimits.Services {
			exportRecord.ServiceCount++
			if serviceLimits.Dropped {
				exportRecord.DroppedServiceCount++
			}
		}
		for _, serviceError := range projectLimits.Errors {
			exportRecord.ServiceErrorCount++
			glo.Log(ev, glo.Entry{
				Severity:    "ERROR",
				Message:     "service_quota_fetch_failed",
				Description: serviceError.Err.Error(),
				ProjectID:   serviceError.ProjectID,
				ServiceName: serviceError.ServiceName,
			})
		}
		projectsLimits = append(projectsLimits, projectLimits)
	}

	rows, err := global.rowBuilder.BuildRows(projectsLimits)
	if err != nil {
		return err
	}
	writeResult, err := global.batchWriter.Write(ctx, rows)
	if err != nil {
		return err
	}
	exportRecord.RowCount = writeResult.RowCount
	exportRecord.FailedRowCount = writeResult.FailedRowCount
	if writeResult.FailedRowCount > 0 {
		glo.Log(ev, glo.Entry{
			Severity:       "ERROR",
			Message:        "rows_rejected",
			Description:    fmt.Sprintf("%d row(s) rejected out of %d", writeResult.FailedRowCount, writeResult.RowCount),
			RowCount:       writeResult.RowCount,
			FailedRowCount: writeResult.FailedRowCount,
		})
	}
	global.recordExport(ctx, ev, exportRecord)
	glo.LogFinish(ev, fmt.Sprintf("%d service(s) %d dropped %d failed", exportRecord.ServiceCount, exportRecord.DroppedServiceCount, exportRecord.ServiceErrorCount),
		exportRecord.StartTime, exportRecord.ProjectCount, writeResult.RowCount, writeResult.FailedRowCount)
	return nil
}

// recordExport keeps an audit trail of the run, never fails the run
func (global *Global) recordExport(ctx context.Context, ev glo.EntryValues, exportRecord gfs.ExportRecord) {
	if global.firestoreClient == nil || global.exportsCollectionID == "" {
		return
	}
	exportRecord.EndTime = time.Now()
	documentPath, err := gfs.RecordExport(ctx, global.firestoreClient, global.exportsCollectionID, ev.TriggeringPubsubID, exportRecord)
	if err != nil {
		glo.LogWarning(ev, "export_record_failed", err.Error())
		return
	}
	glo.LogInfo(ev, "export_recorded", documentPath)
}
