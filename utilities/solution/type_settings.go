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

package solution

// Settings settings common to all instances
type Settings struct {
	Hosting struct {
		ProjectID  string            `yaml:"projectID,omitempty" valid:"isNotZeroValue"`
		ProjectIDs map[string]string `yaml:"projectIDs"`
		Bigquery   struct {
			Dataset struct {
				Name     string            `yaml:"name,omitempty" valid:"isNotZeroValue"`
				Names    map[string]string `yaml:"names"`
				Location string            `yaml:"location" valid:"isNotZeroValue"`
			} `yaml:"dataset"`
			Table struct {
				Name string `yaml:"name" valid:"isNotZeroValue"`
			} `yaml:"table"`
		} `yaml:"bigquery"`
		Pubsub struct {
			TopicNames struct {
				Trigger string `yaml:"trigger"`
			} `yaml:"topicNames"`
		} `yaml:"pubsub"`
		FireStore struct {
			CollectionIDs struct {
				Exports string `yaml:"exports"`
			} `yaml:"collectionIDs"`
		} `yaml:"firestore"`
	} `yaml:"hosting"`
}
