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

package gps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"cloud.google.com/go/pubsub"
)

// MakeTriggerData renders the JSON document expected by the export handler
func MakeTriggerData(token string) ([]byte, error) {
	return json.Marshal(map[string]string{"token": token})
}

// PublishTrigger publishes one trigger message and waits for the server id.
// No retry here, the client already retries publish.
func PublishTrigger(ctx context.Context, pubsubClient *pubsub.Client, topicID string, token string) (messageID string, err error) {
	data, err := MakeTriggerData(token)
	if err != nil {
		return "", fmt.Errorf("MakeTriggerData %v", err)
	}
	topic := pubsubClient.Topic(topicID)
	defer topic.Stop()
	publishResult := topic.Publish(ctx, &pubsub.Message{Data: data})
	messageID, err = publishResult.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("publishResult.Get topic %s %v", topicID, err)
	}
	log.Printf("gps published trigger on topic %s id %s", topicID, messageID)
	return messageID, nil
}
