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
	"crypto/subtle"
	"fmt"
)

// checkTrigger requires the trigger document to carry the configured verification token
func checkTrigger(payload map[string]interface{}, verificationToken string) error {
	tokenValue, ok := payload["token"]
	if !ok {
		return fmt.Errorf("token missing from request")
	}
	token, ok := tokenValue.(string)
	if !ok {
		return fmt.Errorf("token is not a string")
	}
	if verificationToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(verificationToken)) != 1 {
		return fmt.Errorf("token from request doesn't match")
	}
	return nil
}
