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

// triggerlimits publishes one export trigger message, the manual counterpart of a scheduler job
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"cloud.google.com/go/pubsub"
	"github.com/BrunoReboul/servicelimits/utilities/aut"
	"github.com/BrunoReboul/servicelimits/utilities/gps"
)

func main() {
	var projectID, topicID, token, keyJSONFilePath string
	flag.StringVar(&projectID, "project", "", "Project hosting the trigger topic")
	flag.StringVar(&topicID, "topic", "", "Trigger topic ID")
	flag.StringVar(&token, "token", os.Getenv("VERIFICATIONTOKEN"), "Verification token expected by getservicelimits")
	flag.StringVar(&keyJSONFilePath, "key", "", "Optional service account key file, default to application default credentials")
	flag.Parse()
	if projectID == "" || topicID == "" || token == "" {
		flag.Usage()
		log.Fatalln("Missing project, topic or token argument")
	}

	ctx := context.Background()
	clientOptions, _, err := aut.GetClientOptions(ctx, keyJSONFilePath, pubsub.ScopePubSub)
	if err != nil {
		log.Fatalln(err)
	}
	pubsubClient, err := pubsub.NewClient(ctx, projectID, clientOptions...)
	if err != nil {
		log.Fatalf("pubsub.NewClient %v", err)
	}
	defer pubsubClient.Close()
	messageID, err := gps.PublishTrigger(ctx, pubsubClient, topicID, token)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("Published trigger %s on projects/%s/topics/%s", messageID, projectID, topicID)
}
