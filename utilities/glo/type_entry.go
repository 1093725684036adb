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
	"encoding/json"
	"log"
	"time"
)

// Entry defines a Google Cloud logging structured entry
// https://cloud.google.com/logging/docs/agent/configuration#special-fields
type Entry struct {
	MicroserviceName   string    `json:"microservice_name"`
	InstanceName       string    `json:"instance_name"`
	Environment        string    `json:"environment"`
	Severity           string    `json:"severity,omitempty"`
	Message            string    `json:"message"`
	Description        string    `json:"description"`
	Now                time.Time `json:"now,omitempty"`
	InitID             string    `json:"init_id,omitempty"`
	TriggeringPubsubID string    `json:"triggering_pubsub_id,omitempty"`
	ProjectID          string    `json:"project_id,omitempty"`
	ServiceName        string    `json:"service_name,omitempty"`
	ProjectCount       int       `json:"project_count,omitempty"`
	RowCount           int       `json:"row_count,omitempty"`
	FailedRowCount     int       `json:"failed_row_count,omitempty"`
	LatencySeconds     float64   `json:"latency_seconds,omitempty"`
}

// EntryValues groups the fields repeated on every entry of a given function instance
type EntryValues struct {
	MicroserviceName   string
	InstanceName       string
	Environment        string
	InitID             string
	TriggeringPubsubID string
}

// String renders an entry structure to the JSON format expected by Cloud Logging.
func (e Entry) String() string {
	if e.Severity == "" {
		e.Severity = "INFO"
	}
	if e.Now.IsZero() {
		e.Now = time.Now()
	}
	out, err := json.Marshal(e)
	if err != nil {
		log.Printf("json.Marshal: %v", err)
	}
	return string(out)
}

func (ev EntryValues) entry(severity string, message string, description string) Entry {
	return Entry{
		MicroserviceName:   ev.MicroserviceName,
		InstanceName:       ev.InstanceName,
		Environment:        ev.Environment,
		Severity:           severity,
		Message:            message,
		Description:        description,
		InitID:             ev.InitID,
		TriggeringPubsubID: ev.TriggeringPubsubID,
	}
}
