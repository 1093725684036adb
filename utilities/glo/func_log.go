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

package glo

import (
	"log"
	"time"
)

// LogInitColdStart records the cold start of a function instance
func LogInitColdStart(ev EntryValues) {
	log.Println(ev.entry("NOTICE", "init_cold_start", ""))
}

// LogStartCloudEvent records the begining of the processing of a triggering event
func LogStartCloudEvent(ev EntryValues, eventTimestamp time.Time) {
	e := ev.entry("INFO", "start_cloud_event", "")
	if !eventTimestamp.IsZero() {
		e.LatencySeconds = time.Since(eventTimestamp).Seconds()
	}
	log.Println(e)
}

// LogFinish records the end of the processing of a triggering event
func LogFinish(ev EntryValues, description string, start time.Time, projectCount int, rowCount int, failedRowCount int) {
	e := ev.entry("NOTICE", "finish", description)
	e.ProjectCount = projectCount
	e.RowCount = rowCount
	e.FailedRowCount = failedRowCount
	e.LatencySeconds = time.Since(start).Seconds()
	log.Println(e)
}

// LogInfo records an informational entry
func LogInfo(ev EntryValues, message string, description string) {
	log.Println(ev.entry("INFO", message, description))
}

// LogWarning records an entry that does not stop the processing
func LogWarning(ev EntryValues, message string, description string) {
	log.Println(ev.entry("WARNING", message, description))
}

// LogCriticalNoRetry records a failure that stops the processing of the event, the event is not redelivered
func LogCriticalNoRetry(ev EntryValues, description string) {
	log.Println(ev.entry("CRITICAL", "noretry", description))
}

// LogCriticalRetry records a failure that stops the processing of the event and looks transient
func LogCriticalRetry(ev EntryValues, description string) {
	log.Println(ev.entry("CRITICAL", "redo_on_transient", description))
}

// Log records an already built entry, filling the instance fields when missing
func Log(ev EntryValues, e Entry) {
	if e.MicroserviceName == "" {
		e.MicroserviceName = ev.MicroserviceName
		e.InstanceName = ev.InstanceName
		e.Environment = ev.Environment
	}
	if e.InitID == "" {
		e.InitID = ev.InitID
	}
	if e.TriggeringPubsubID == "" {
		e.TriggeringPubsubID = ev.TriggeringPubsubID
	}
	log.Println(e)
}
