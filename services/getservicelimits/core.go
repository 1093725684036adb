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
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/firestore"
	"cloud.google.com/go/functions/metadata"
	"github.com/BrunoReboul/servicelimits/utilities/aut"
	"github.com/BrunoReboul/servicelimits/utilities/erm"
	"github.com/BrunoReboul/servicelimits/utilities/ffo"
	"github.com/BrunoReboul/servicelimits/utilities/gbq"
	"github.com/BrunoReboul/servicelimits/utilities/glo"
	"github.com/BrunoReboul/servicelimits/utilities/gps"
	"github.com/BrunoReboul/servicelimits/utilities/grm"
	"github.com/BrunoReboul/servicelimits/utilities/gsu"
	"github.com/BrunoReboul/servicelimits/utilities/lim"
	"github.com/BrunoReboul/servicelimits/utilities/pol"
	"github.com/BrunoReboul/servicelimits/utilities/validater"
	"github.com/google/uuid"
	bigqueryv2 "google.golang.org/api/bigquery/v2"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/serviceusage/v1"
)

const (
	microserviceName   = "getservicelimits"
	settingsFileName   = "settings.yaml"
	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
)

type projectEnumerator interface {
	Projects(ctx context.Context, projectMode pol.ProjectMode) ([]grm.Project, error)
}

type serviceEnumerator interface {
	Collect(ctx context.Context, project grm.Project, serviceMode pol.ServiceMode) (gsu.ProjectLimits, error)
}

type batchWriter interface {
	Write(ctx context.Context, rows []lim.ExportRow) (gbq.WriteResult, error)
}

// Global structure for global variables to optimize the cloud function performances
type Global struct {
	batchWriter         batchWriter
	ev                  glo.EntryValues
	exportsCollectionID string
	firestoreClient     *firestore.Client
	initFailed          bool
	policy              *pol.Policy
	projectEnumerator   projectEnumerator
	rowBuilder          *lim.Builder
	serviceEnumerator   serviceEnumerator
	verificationToken   string
}

// ClientOptions options per Google API client, usually the same credentials for all
type ClientOptions struct {
	Cloudresourcemanager []option.ClientOption
	Serviceusage         []option.ClientOption
	Bigquery             []option.ClientOption
}

// Initialize is to be executed in the init() function of the cloud function to optimize the cold start
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	global.initFailed = true
	global.ev.InitID = fmt.Sprintf("%v", uuid.New())
	global.ev.MicroserviceName = microserviceName

	settingsFilePath := os.Getenv("SETTINGSFILEPATH")
	if settingsFilePath == "" {
		settingsFilePath = "./" + settingsFileName
	}
	instanceDeployment, err := readSettings(settingsFilePath, os.Getenv("ENVIRONMENT"))
	if err != nil {
		glo.LogCriticalNoRetry(global.ev, fmt.Sprintf("init_failed %v", err))
		return err
	}
	if token := os.Getenv("VERIFICATIONTOKEN"); token != "" {
		instanceDeployment.Settings.Instance.VerificationToken = token
	}

	var keyJSONFilePath string
	if instanceDeployment.Settings.Instance.KeyJSONFileName != "" {
		keyJSONFilePath = filepath.Join(filepath.Dir(settingsFilePath), instanceDeployment.Settings.Instance.KeyJSONFileName)
	}
	clientOptions, _, err := aut.GetClientOptions(ctx, keyJSONFilePath, cloudPlatformScope)
	if err != nil {
		glo.LogCriticalNoRetry(global.ev, fmt.Sprintf("init_failed aut.GetClientOptions %v", err))
		return err
	}
	err = configure(ctx, global, instanceDeployment, ClientOptions{
		Cloudresourcemanager: clientOptions,
		Serviceusage:         clientOptions,
		Bigquery:             clientOptions,
	})
	if err != nil {
		glo.LogCriticalNoRetry(global.ev, fmt.Sprintf("init_failed %v", err))
		return err
	}

	solutionSettings := instanceDeployment.Settings.Solution
	projectID := solutionSettings.Hosting.ProjectID
	bigQueryClient, err := bigquery.NewClient(ctx, projectID, clientOptions...)
	if err != nil {
		glo.LogCriticalNoRetry(global.ev, fmt.Sprintf("init_failed bigquery.NewClient %v", err))
		return err
	}
	defer bigQueryClient.Close()
	_, err = gbq.EnsureTable(ctx, bigQueryClient,
		solutionSettings.Hosting.Bigquery.Dataset.Name,
		solutionSettings.Hosting.Bigquery.Dataset.Location,
		solutionSettings.Hosting.Bigquery.Table.Name)
	if err != nil {
		glo.LogCriticalNoRetry(global.ev, fmt.Sprintf("init_failed %v", err))
		return err
	}

	if global.exportsCollectionID != "" {
		global.firestoreClient, err = firestore.NewClient(ctx, projectID, clientOptions...)
		if err != nil {
			glo.LogCriticalNoRetry(global.ev, fmt.Sprintf("init_failed firestore.NewClient %v", err))
			return err
		}
	}
	global.initFailed = false
	glo.LogInitColdStart(global.ev)
	return nil
}

// readSettings loads, situates and validates the instance settings
func readSettings(settingsFilePath string, environment string) (instanceDeployment *InstanceDeployment, err error) {
	instanceDeployment = &InstanceDeployment{}
	err = ffo.ReadUnmarshalYAML(settingsFilePath, instanceDeployment)
	if err != nil {
		return nil, fmt.Errorf("ReadUnmarshalYAML %v", err)
	}
	if environment != "" {
		instanceDeployment.Core.EnvironmentName = environment
	}
	instanceDeployment.Settings.Solution.Situate(instanceDeployment.Core.EnvironmentName)
	err = validater.ValidateStruct(instanceDeployment, "settings")
	if err != nil {
		return nil, err
	}
	return instanceDeployment, nil
}

// configure builds the pipeline components from settings
func configure(ctx context.Context, global *Global, instanceDeployment *InstanceDeployment, clientOptions ClientOptions) (err error) {
	global.ev.InstanceName = instanceDeployment.Core.InstanceName
	global.ev.Environment = instanceDeployment.Core.EnvironmentName
	if instanceDeployment.Core.ServiceName != "" {
		global.ev.MicroserviceName = instanceDeployment.Core.ServiceName
	}
	if global.ev.MicroserviceName == "" {
		global.ev.MicroserviceName = microserviceName
	}
	global.verificationToken = instanceDeployment.Settings.Instance.VerificationToken
	global.exportsCollectionID = instanceDeployment.Settings.Solution.Hosting.FireStore.CollectionIDs.Exports

	global.policy, err = pol.NewPolicy(instanceDeployment.Settings.Instance.Inclusions)
	if err != nil {
		return err
	}
	for _, warning := range global.policy.Warnings() {
		glo.LogWarning(global.ev, "inclusion_precedence", warning)
	}

	cloudresourcemanagerService, err := cloudresourcemanager.NewService(ctx, clientOptions.Cloudresourcemanager...)
	if err != nil {
		return fmt.Errorf("cloudresourcemanager.NewService %v", err)
	}
	global.projectEnumerator = grm.NewProjectEnumerator(cloudresourcemanagerService)

	serviceusageService, err := serviceusage.NewService(ctx, clientOptions.Serviceusage...)
	if err != nil {
		return fmt.Errorf("serviceusage.NewService %v", err)
	}
	global.serviceEnumerator, err = gsu.NewServiceEnumerator(serviceusageService, gsu.FailurePolicy(instanceDeployment.Settings.Instance.FailurePolicy))
	if err != nil {
		return err
	}

	bigqueryService, err := bigqueryv2.NewService(ctx, clientOptions.Bigquery...)
	if err != nil {
		return fmt.Errorf("bigquery.NewService %v", err)
	}
	hosting := instanceDeployment.Settings.Solution.Hosting
	global.batchWriter = gbq.NewBatchWriter(bigqueryService, hosting.ProjectID, hosting.Bigquery.Dataset.Name, hosting.Bigquery.Table.Name)
	global.rowBuilder = lim.NewBuilder(time.Now)
	return nil
}

// EntryPoint is the HTTP handler of Pub/Sub push requests.
// It always answers 200: a non 2xx status would make Pub/Sub redeliver and rerun the whole export.
func EntryPoint(w http.ResponseWriter, r *http.Request, global *Global) {
	ev := global.ev
	if global.initFailed {
		glo.LogCriticalNoRetry(ev, "init_failed, check cold start logs")
		respond(w, "init failed")
		return
	}
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		glo.LogCriticalNoRetry(ev, fmt.Sprintf("ioutil.ReadAll request body %v", err))
		respond(w, err.Error())
		return
	}
	messageID, payload, err := gps.DecodePushEnvelope(body)
	ev.TriggeringPubsubID = messageID
	if err != nil {
		glo.LogCriticalNoRetry(ev, fmt.Sprintf("missing inputs from Pub/Sub %v", err))
		respond(w, err.Error())
		return
	}
	err = checkTrigger(payload, global.verificationToken)
	if err != nil {
		glo.LogCriticalNoRetry(ev, fmt.Sprintf("missing inputs from Pub/Sub %v", err))
		respond(w, err.Error())
		return
	}
	glo.LogStartCloudEvent(ev, time.Time{})
	err = global.run(r.Context(), ev)
	if err != nil {
		logRunFailure(ev, err)
		respond(w, err.Error())
		return
	}
	respond(w, "ok")
}

// EntryPointBackground is the function to be executed for each Pub/Sub triggered cloud function occurence
func EntryPointBackground(ctxEvent context.Context, PubSubMessage gps.PubSubMessage, global *Global) error {
	ev := global.ev
	if global.initFailed {
		glo.LogCriticalNoRetry(ev, "init_failed, check cold start logs")
		return nil
	}
	metadata, err := metadata.FromContext(ctxEvent)
	if err != nil {
		// Assume an error on the function invoker and try again.
		glo.LogCriticalRetry(ev, fmt.Sprintf("pubsub_id no available metadata.FromContext: %v", err))
		return err
	}
	ev.TriggeringPubsubID = metadata.EventID
	glo.LogStartCloudEvent(ev, metadata.Timestamp)

	payload, err := gps.DecodeData(PubSubMessage.Data)
	if err != nil {
		glo.LogCriticalNoRetry(ev, fmt.Sprintf("missing inputs from Pub/Sub %v", err))
		return nil
	}
	err = checkTrigger(payload, global.verificationToken)
	if err != nil {
		glo.LogCriticalNoRetry(ev, fmt.Sprintf("missing inputs from Pub/Sub %v", err))
		return nil
	}
	err = global.run(ctxEvent, ev)
	if err != nil {
		logRunFailure(ev, err)
		return err
	}
	return nil
}

func logRunFailure(ev glo.EntryValues, err error) {
	if erm.IsTransient(err) {
		glo.LogCriticalRetry(ev, err.Error())
		return
	}
	glo.LogCriticalNoRetry(ev, err.Error())
}

func respond(w http.ResponseWriter, body string) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, body)
}
