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

package aut

import (
	"context"
	"fmt"
	"io/ioutil"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// GetClientOptions resolves credentials once and returns the client options shared by every API client.
// A key file is used when keyJSONFilePath is set, else application default credentials.
func GetClientOptions(ctx context.Context, keyJSONFilePath string, scopes ...string) (clientOptions []option.ClientOption, projectID string, err error) {
	var credentials *google.Credentials
	if keyJSONFilePath != "" {
		keyJSONdata, err := ioutil.ReadFile(keyJSONFilePath)
		if err != nil {
			return nil, "", fmt.Errorf("ioutil.ReadFile %v", err)
		}
		credentials, err = google.CredentialsFromJSON(ctx, keyJSONdata, scopes...)
		if err != nil {
			return nil, "", fmt.Errorf("google.CredentialsFromJSON %v", err)
		}
	} else {
		credentials, err = google.FindDefaultCredentials(ctx, scopes...)
		if err != nil {
			return nil, "", fmt.Errorf("google.FindDefaultCredentials %v", err)
		}
	}
	return []option.ClientOption{option.WithCredentials(credentials)}, credentials.ProjectID, nil
}
