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
	"github.com/BrunoReboul/servicelimits/utilities/pol"
	"github.com/BrunoReboul/servicelimits/utilities/solution"
)

// InstanceDeployment settings structure as found in the settings YAML file
type InstanceDeployment struct {
	Core struct {
		ServiceName     string `yaml:"serviceName"`
		InstanceName    string `yaml:"instanceName" valid:"isNotZeroValue"`
		EnvironmentName string `yaml:"environmentName"`
	} `yaml:"core"`
	Settings struct {
		Solution solution.Settings `yaml:"solution"`
		Instance InstanceSettings  `yaml:"instance"`
	} `yaml:"settings"`
}

// InstanceSettings settings specific to one export instance
type InstanceSettings struct {
	Inclusions        pol.Settings `yaml:"inclusions"`
	VerificationToken string       `yaml:"verificationToken" valid:"isNotZeroValue"`
	FailurePolicy     string       `yaml:"failurePolicy" valid:"isOneOf=abort|isolate"`
	KeyJSONFileName   string       `yaml:"keyJSONFileName"`
}
