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

package pol

import (
	"fmt"
	"strings"
)

// NewPolicy resolves the inclusion settings into one mode per resource kind.
// Enumerate all takes precedence over an explicit list when both are set, the ignored list is reported in Warnings.
func NewPolicy(settings Settings) (policy *Policy, err error) {
	policy = &Policy{}
	if settings.IncludeAllProjects {
		if len(settings.IncludeProjects) > 0 {
			policy.warnings = append(policy.warnings, fmt.Sprintf("includeAllProjects is true, includeProjects ignored %v", settings.IncludeProjects))
		}
		policy.projectMode = ProjectMode{
			Kind:   EnumerateAll,
			Filter: strings.TrimSpace(settings.ProjectFilter),
		}
	} else {
		ids, err := checkList(settings.IncludeProjects, "includeProjects")
		if err != nil {
			return nil, err
		}
		policy.projectMode = ProjectMode{
			Kind: ExplicitList,
			IDs:  ids,
		}
	}

	if settings.IncludeAllEnabledServices {
		if len(settings.IncludeServices) > 0 {
			policy.warnings = append(policy.warnings, fmt.Sprintf("includeAllEnabledServices is true, includeServices ignored %v", settings.IncludeServices))
		}
		policy.serviceMode = ServiceMode{Kind: EnumerateAll}
	} else {
		names, err := checkList(settings.IncludeServices, "includeServices")
		if err != nil {
			return nil, err
		}
		policy.serviceMode = ServiceMode{
			Kind:  ExplicitList,
			Names: names,
		}
	}
	return policy, nil
}

func checkList(list []string, listName string) ([]string, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%s is empty while enumerate all is not set", listName)
	}
	checked := make([]string, len(list))
	for i, item := range list {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, fmt.Errorf("%s item %d is blank", listName, i)
		}
		checked[i] = item
	}
	return checked, nil
}
