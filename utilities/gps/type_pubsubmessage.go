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

// PubSubMessage is the payload of a Pub/Sub event delivered to a background function
type PubSubMessage struct {
	Data []byte `json:"data"`
}

// PushMessage the message part of a Pub/Sub push request
type PushMessage struct {
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes"`
}

// PushEnvelope the body of a Pub/Sub push request
type PushEnvelope struct {
	Message      *PushMessage `json:"message"`
	Subscription string       `json:"subscription"`
}
