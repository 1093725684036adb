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

package ffo

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// ReadUnmarshalYAML reads a YAML file into settings, unknown keys are rejected
func ReadUnmarshalYAML(path string, settings interface{}) (err error) {
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ioutil.ReadFile %v", err)
	}
	err = yaml.UnmarshalStrict(bytes, settings)
	if err != nil {
		return fmt.Errorf("yaml.UnmarshalStrict %s %v", path, err)
	}
	return nil
}
