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
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// DecodePushEnvelope validates a push request body and returns its message id and decoded JSON data document
func DecodePushEnvelope(body []byte) (messageID string, payload map[string]interface{}, err error) {
	if len(body) == 0 {
		return "", nil, fmt.Errorf("empty request body")
	}
	var pushEnvelope PushEnvelope
	err = json.Unmarshal(body, &pushEnvelope)
	if err != nil {
		return "", nil, fmt.Errorf("json.Unmarshal push envelope %v", err)
	}
	if pushEnvelope.Message == nil {
		return "", nil, fmt.Errorf("no message in envelope")
	}
	messageID = pushEnvelope.Message.MessageID
	if pushEnvelope.Message.Data == "" {
		return messageID, nil, fmt.Errorf("no data in message")
	}
	data, err := base64.StdEncoding.DecodeString(pushEnvelope.Message.Data)
	if err != nil {
		return messageID, nil, fmt.Errorf("base64 decode message data %v", err)
	}
	payload, err = DecodeData(data)
	return messageID, payload, err
}

// DecodeData unmarshals a message data JSON document, an empty document is an error
func DecodeData(data []byte) (payload map[string]interface{}, err error) {
	err = json.Unmarshal(data, &payload)
	if err != nil {
		return nil, fmt.Errorf("json.Unmarshal message data %v", err)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("no data in Pub/Sub message")
	}
	return payload, nil
}
