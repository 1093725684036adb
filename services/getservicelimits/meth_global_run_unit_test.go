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
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/BrunoReboul/servicelimits/utilities/gbq"
	"github.com/BrunoReboul/servicelimits/utilities/glo"
	"github.com/BrunoReboul/servicelimits/utilities/gsu"
	"github.com/BrunoReboul/servicelimits/utilities/lim"
	bigqueryv2 "google.golang.org/api/bigquery/v2"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/serviceusage/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"gopkg.in/yaml.v2"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) record(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func newFakeResourceManager(t *testing.T, rec *recorder) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path != "/v1/projects/proj-1" {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"error":{"code":403,"message":"Permission denied","status":"PERMISSION_DENIED"}}`)
			return
		}
		json.NewEncoder(w).Encode(cloudresourcemanager.Project{
			ProjectId:      "proj-1",
			ProjectNumber:  111,
			Name:           "proj 1",
			LifecycleState: "ACTIVE",
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func newFakeServiceUsage(t *testing.T, rec *recorder) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path != "/v1/projects/111/services/svc-a.googleapis.com" {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":{"code":404,"message":"not found","status":"NOT_FOUND"}}`)
			return
		}
		json.NewEncoder(w).Encode(serviceusage.GoogleApiServiceusageV1Service{
			Name:  "projects/111/services/svc-a.googleapis.com",
			State: "ENABLED",
			Config: &serviceusage.GoogleApiServiceusageV1ServiceConfig{
				Name: "svc-a.googleapis.com",
				Quota: &serviceusage.Quota{
					Limits: []*serviceusage.QuotaLimit{{
						Name:   "requests-per-day",
						Metric: "svc-a.googleapis.com/requests",
						Values: map[string]string{"global": "1000"},
					}},
				},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func newFakeBigQuery(t *testing.T, rec *recorder, requests *[]bigqueryv2.TableDataInsertAllRequest) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		var request bigqueryv2.TableDataInsertAllRequest
		json.NewDecoder(r.Body).Decode(&request)
		rec.mu.Lock()
		*requests = append(*requests, request)
		rec.mu.Unlock()
		fmt.Fprint(w, `{"kind":"bigquery#tableDataInsertAllResponse"}`)
	}))
	t.Cleanup(server.Close)
	return server
}

func clientOptions(server *httptest.Server) []option.ClientOption {
	return []option.ClientOption{
		option.WithEndpoint(server.URL + "/"),
		option.WithoutAuthentication(),
	}
}

func TestUnitRunEndToEnd(t *testing.T) {
	buffer := captureLog(t)
	ctx := context.Background()
	var crmCalls, suCalls, bqCalls recorder
	var insertAllRequests []bigqueryv2.TableDataInsertAllRequest
	crmServer := newFakeResourceManager(t, &crmCalls)
	suServer := newFakeServiceUsage(t, &suCalls)
	bqServer := newFakeBigQuery(t, &bqCalls, &insertAllRequests)

	var instanceDeployment InstanceDeployment
	if err := yaml.Unmarshal([]byte(settingsYAML("abort")), &instanceDeployment); err != nil {
		t.Fatalf("yaml.Unmarshal %v", err)
	}
	instanceDeployment.Settings.Solution.Situate("dev")

	var global Global
	err := configure(ctx, &global, &instanceDeployment, ClientOptions{
		Cloudresourcemanager: clientOptions(crmServer),
		Serviceusage:         clientOptions(suServer),
		Bigquery:             clientOptions(bqServer),
	})
	if err != nil {
		t.Fatalf("configure %v", err)
	}

	// spy on the rows handed to the real batch writer
	spy := &forwardingBatchWriter{next: global.batchWriter}
	global.batchWriter = spy

	ev := global.ev
	ev.TriggeringPubsubID = "4242"
	if err = global.run(ctx, ev); err != nil {
		t.Fatalf("Want no error got %v", err)
	}

	if crmPaths := crmCalls.recorded(); !reflect.DeepEqual(crmPaths, []string{"/v1/projects/proj-1"}) {
		t.Errorf("Want one project get got %v", crmPaths)
	}
	if suPaths := suCalls.recorded(); !reflect.DeepEqual(suPaths, []string{"/v1/projects/111/services/svc-a.googleapis.com"}) {
		t.Errorf("Want one service get by project number got %v", suPaths)
	}
	if len(spy.batches) != 1 || len(spy.batches[0]) != 1 {
		t.Fatalf("Want the batch writer invoked once with one row got %v", spy.batches)
	}
	row := spy.batches[0][0]
	if row.ProjectID != "proj-1" || row.Service != "svc-a.googleapis.com" || row.Name != "requests-per-day" {
		t.Errorf("Unexpected row identity %s %s %s", row.ProjectID, row.Service, row.Name)
	}
	if !reflect.DeepEqual(row.Values, []lim.KeyValue{{Key: "global", Value: 1000}}) {
		t.Errorf("Want values [{global 1000}] got %v", row.Values)
	}

	bqPaths := bqCalls.recorded()
	bqCalls.mu.Lock()
	insertAllRequests = append([]bigqueryv2.TableDataInsertAllRequest(nil), insertAllRequests...)
	bqCalls.mu.Unlock()
	if len(insertAllRequests) != 1 {
		t.Fatalf("Want 1 insertAll request got %d", len(insertAllRequests))
	}
	if bqPaths[0] != "/projects/limits-dev/datasets/limits_dev/tables/quotas/insertAll" {
		t.Errorf("Unexpected insertAll path %s", bqPaths[0])
	}
	if len(insertAllRequests[0].Rows) != 1 {
		t.Fatalf("Want 1 row sent got %d", len(insertAllRequests[0].Rows))
	}
	sent := insertAllRequests[0].Rows[0].Json
	if sent["project_id"] != "proj-1" || sent["service"] != "svc-a.googleapis.com" || sent["name"] != "requests-per-day" {
		t.Errorf("Unexpected sent row %v", sent)
	}
	values, ok := sent["values"].([]interface{})
	if !ok || len(values) != 1 {
		t.Fatalf("Want one value record got %v", sent["values"])
	}
	value, _ := values[0].(map[string]interface{})
	if value["key"] != "global" || value["value"] != float64(1000) {
		t.Errorf("Want {global 1000} got %v", values[0])
	}
	if !strings.Contains(buffer.String(), "\"message\":\"finish\"") {
		t.Errorf("Want a finish log entry got %s", buffer.String())
	}
}

type forwardingBatchWriter struct {
	next    batchWriter
	batches [][]lim.ExportRow
}

func (spy *forwardingBatchWriter) Write(ctx context.Context, rows []lim.ExportRow) (gbq.WriteResult, error) {
	spy.batches = append(spy.batches, rows)
	return spy.next.Write(ctx, rows)
}

func TestUnitRunPartialFailureNotEscalated(t *testing.T) {
	buffer := captureLog(t)
	global, s := newSpiedGlobal(t)
	s.batchWriter.failedRowCount = 1
	ev := global.ev
	if err := global.run(context.Background(), ev); err != nil {
		t.Fatalf("Want no error got %v", err)
	}
	if !strings.Contains(buffer.String(), "\"failed_row_count\":1") {
		t.Errorf("Want failed row count logged got %s", buffer.String())
	}
	if !reflect.DeepEqual(s.serviceEnumerator.calls, []string{"proj-1", "proj-2"}) {
		t.Errorf("Want projects collected in order got %v", s.serviceEnumerator.calls)
	}
	if len(s.batchWriter.batches) != 1 || len(s.batchWriter.batches[0]) != 1 {
		t.Errorf("Want one batch of one row, dropped service excluded, got %v", s.batchWriter.batches)
	}
}

// logEntries parses the structured entries of a log capture, plain lines are skipped
func logEntries(buffer *bytes.Buffer) []glo.Entry {
	var entries []glo.Entry
	scanner := bufio.NewScanner(bytes.NewReader(buffer.Bytes()))
	for scanner.Scan() {
		var entry glo.Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err == nil {
			entries = append(entries, entry)
		}
	}
	return entries
}

func findEntries(entries []glo.Entry, message string) []glo.Entry {
	var found []glo.Entry
	for _, entry := range entries {
		if entry.Message == message {
			found = append(found, entry)
		}
	}
	return found
}

func TestUnitRunIsolatedServiceErrorsLogged(t *testing.T) {
	buffer := captureLog(t)
	global, s := newSpiedGlobal(t)
	s.serviceEnumerator.limits["proj-2"] = gsu.ProjectLimits{
		ProjectID: "proj-2",
		Errors: []gsu.ServiceError{
			{ProjectID: "proj-2", ServiceName: "svc-b.googleapis.com", Err: errors.New("googleapi: Error 403: Permission denied")},
			{ProjectID: "proj-2", ServiceName: "svc-c.googleapis.com", Err: errors.New("googleapi: Error 404: Not found")},
		},
	}
	ev := global.ev
	ev.TriggeringPubsubID = "4242"
	if err := global.run(context.Background(), ev); err != nil {
		t.Fatalf("Want isolated errors not to fail the run got %v", err)
	}
	if len(s.batchWriter.batches) != 1 || len(s.batchWriter.batches[0]) != 1 {
		t.Errorf("Want the proj-1 row written got %v", s.batchWriter.batches)
	}
	entries := logEntries(buffer)
	failed := findEntries(entries, "service_quota_fetch_failed")
	if len(failed) != 2 {
		t.Fatalf("Want 2 service_quota_fetch_failed entries got %d in %s", len(failed), buffer.String())
	}
	wantServices := []string{"svc-b.googleapis.com", "svc-c.googleapis.com"}
	for i, entry := range failed {
		if entry.Severity != "ERROR" {
			t.Errorf("Want severity ERROR got %s", entry.Severity)
		}
		if entry.ProjectID != "proj-2" || entry.ServiceName != wantServices[i] {
			t.Errorf("Want proj-2 %s got %s %s", wantServices[i], entry.ProjectID, entry.ServiceName)
		}
		if entry.TriggeringPubsubID != "4242" {
			t.Errorf("Want triggering pubsub id 4242 got %s", entry.TriggeringPubsubID)
		}
		if !strings.Contains(entry.Description, "Error 40") {
			t.Errorf("Want the cause in the description got %s", entry.Description)
		}
	}
	if strings.Contains(buffer.String(), "noretry") {
		t.Errorf("Want no critical entry got %s", buffer.String())
	}
	finish := findEntries(entries, "finish")
	if len(finish) != 1 || !strings.Contains(finish[0].Description, "2 failed") {
		t.Errorf("Want a finish entry counting 2 failed services got %v", finish)
	}
}

// newUnimplementedFirestoreClient returns a client whose server implements no service, every call fails
func newUnimplementedFirestoreClient(t *testing.T) *firestore.Client {
	ctx := context.Background()
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("net.Listen %v", err)
	}
	grpcServer := grpc.NewServer()
	go grpcServer.Serve(listener)
	t.Cleanup(grpcServer.Stop)
	conn, err := grpc.Dial(listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("grpc.Dial %v", err)
	}
	firestoreClient, err := firestore.NewClient(ctx, "limits-dev", option.WithGRPCConn(conn))
	if err != nil {
		t.Fatalf("firestore.NewClient %v", err)
	}
	t.Cleanup(func() { firestoreClient.Close() })
	return firestoreClient
}

func TestUnitRunExportRecordFailureNotEscalated(t *testing.T) {
	buffer := captureLog(t)
	global, s := newSpiedGlobal(t)
	global.firestoreClient = newUnimplementedFirestoreClient(t)
	global.exportsCollectionID = "exports"
	ev := global.ev
	ev.TriggeringPubsubID = "4242"
	if err := global.run(context.Background(), ev); err != nil {
		t.Fatalf("Want a failed export record not to fail the run got %v", err)
	}
	if len(s.batchWriter.batches) != 1 {
		t.Errorf("Want one batch written got %d", len(s.batchWriter.batches))
	}
	entries := logEntries(buffer)
	warnings := findEntries(entries, "export_record_failed")
	if len(warnings) != 1 {
		t.Fatalf("Want one export_record_failed entry got %d in %s", len(warnings), buffer.String())
	}
	if warnings[0].Severity != "WARNING" {
		t.Errorf("Want severity WARNING got %s", warnings[0].Severity)
	}
	if !strings.Contains(warnings[0].Description, "exports/4242") {
		t.Errorf("Want the document path in the description got %s", warnings[0].Description)
	}
	if len(findEntries(entries, "export_recorded")) != 0 {
		t.Errorf("Want no export_recorded entry")
	}
	if len(findEntries(entries, "finish")) != 1 {
		t.Errorf("Want the run to finish got %s", buffer.String())
	}
}
